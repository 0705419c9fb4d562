package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/kisaanstar/console/internal/app/converter"
	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/model"
)

const (
	advisoryOrdersPath      = `/api/advisory/orders`
	advisoryStatusCountPath = `/api/advisory/orders/status-count`
	advisoryPlaceOrderPath  = `/api/advisory/place-order`
	advisorySearchPath      = `/api/advisory/search-customer/`
	advisoryAddCustomerPath = `/api/advisory/add-customer`
	advisoryCustomersPath   = `/api/advisory/customers/`
	advisoryCustomerPath    = `/api/advisory/customer/`
)

const idempotencyKeyHeader = `X-Idempotency-Key`

// Orders fetches the full order list. No pagination is applied; the remote
// endpoint returns the entire collection in one response.
func (c *Client) Orders(ctx context.Context) (entity.Orders, error) {
	var response model.OrdersResponse
	err := c.get(ctx, advisoryOrdersPath, &response)
	if err != nil {
		return nil, err
	}

	return converter.ConvertOrdersResponseToOrders(response)
}

// CustomerOrders fetches the order history of a single customer.
func (c *Client) CustomerOrders(ctx context.Context, customerID entity.CustomerID) (entity.Orders, error) {
	var response model.OrdersResponse
	path := fmt.Sprintf("%s?customerId=%s", advisoryOrdersPath, url.QueryEscape(customerID.String()))
	err := c.get(ctx, path, &response)
	if err != nil {
		return nil, err
	}

	return converter.ConvertOrdersResponseToOrders(response)
}

// UpdateOrderStatus requests a status transition. Legality of the transition
// is deferred to the server.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, status entity.OrderStatus) error {
	request := model.UpdateOrderStatusRequest{Status: string(status)}
	path := fmt.Sprintf("%s/%s/status", advisoryOrdersPath, url.PathEscape(orderID.String()))

	return c.patch(ctx, path, request, nil)
}

func (c *Client) OrderStatusCounts(ctx context.Context) (entity.StatusCounts, error) {
	var response model.StatusCountResponse
	err := c.get(ctx, advisoryStatusCountPath, &response)
	if err != nil {
		return entity.StatusCounts{}, err
	}

	return entity.StatusCounts{
		Pending: response.Pending,
		Confirm: response.Confirm,
		Cancel:  response.Cancel,
	}, nil
}

// PlaceOrder submits a new order. Every submission carries a generated
// idempotency key so that a retried request cannot create a duplicate order.
func (c *Client) PlaceOrder(ctx context.Context, request model.PlaceOrderRequest) (entity.Order, error) {
	headers := map[string]string{idempotencyKeyHeader: uuid.NewString()}

	var response model.PlaceOrderResponse
	err := c.send(ctx, http.MethodPost, advisoryPlaceOrderPath, request, &response, headers)
	if err != nil {
		return entity.Order{}, err
	}

	return converter.ConvertOrderResponseToOrder(response.Order)
}

// SearchCustomer looks a customer up by mobile number. A missing customer
// surfaces as ErrNotFound.
func (c *Client) SearchCustomer(ctx context.Context, mobileNumber string) (entity.Customer, error) {
	var response model.CustomerResponse
	err := c.get(ctx, advisorySearchPath+url.PathEscape(mobileNumber), &response)
	if err != nil {
		return entity.Customer{}, err
	}

	return converter.ConvertCustomerResponseToCustomer(response), nil
}

func (c *Client) AddCustomer(ctx context.Context, mobileNumber, name string) (entity.Customer, error) {
	request := model.AddCustomerRequest{
		MobileNumber: mobileNumber,
		Name:         name,
	}

	var response model.AddCustomerResponse
	err := c.post(ctx, advisoryAddCustomerPath, request, &response)
	if err != nil {
		return entity.Customer{}, err
	}

	return converter.ConvertCustomerResponseToCustomer(response.Customer), nil
}

func (c *Client) Customer(ctx context.Context, mobileNumber string) (entity.Customer, error) {
	var response model.CustomerResponse
	err := c.get(ctx, advisoryCustomersPath+url.PathEscape(mobileNumber), &response)
	if err != nil {
		return entity.Customer{}, err
	}

	return converter.ConvertCustomerResponseToCustomer(response), nil
}

func (c *Client) UpdateCustomer(ctx context.Context, mobileNumber string, customer entity.Customer) error {
	request := converter.ConvertCustomerToUpdateRequest(customer)

	return c.patch(ctx, advisoryCustomerPath+url.PathEscape(mobileNumber), request, nil)
}

func (c *Client) Remarks(ctx context.Context, customerID entity.CustomerID) (entity.Remarks, error) {
	var response model.RemarksResponse
	path := fmt.Sprintf("%s%s/remarks", advisoryCustomersPath, url.PathEscape(customerID.String()))
	err := c.get(ctx, path, &response)
	if err != nil {
		return nil, err
	}

	return converter.ConvertRemarksResponseToRemarks(response)
}

func (c *Client) AddRemark(ctx context.Context, customerID entity.CustomerID, advisorID entity.AdvisorID, text string) (entity.Remark, error) {
	request := model.AddRemarkRequest{
		AdvisoryID: advisorID.String(),
		Remark:     text,
	}

	var response model.AddRemarkResponse
	path := fmt.Sprintf("%s%s/remarks", advisoryCustomersPath, url.PathEscape(customerID.String()))
	err := c.post(ctx, path, request, &response)
	if err != nil {
		return entity.Remark{}, err
	}

	return converter.ConvertRemarkResponseToRemark(response.Remark)
}
