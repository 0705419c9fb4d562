package converter

import (
	"fmt"
	"time"

	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/model"
)

func ConvertOrdersResponseToOrders(response model.OrdersResponse) (entity.Orders, error) {
	orders := make(entity.Orders, 0, len(response))

	for _, orderResponse := range response {
		order, err := ConvertOrderResponseToOrder(orderResponse)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func ConvertOrderResponseToOrder(response model.OrderResponse) (entity.Order, error) {
	createdAt, err := time.Parse(time.RFC3339, response.CreatedAt)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while parsing order creation time: %w", err)
	}

	order := entity.Order{
		ID:          entity.OrderID(response.ID),
		CreatedAt:   createdAt,
		Status:      entity.OrderStatus(response.Status),
		Lines:       convertOrderProducts(response.Products),
		Discount:    response.Discount,
		TotalAmount: response.TotalAmount,
	}

	if response.Advisor != nil {
		advisor := ConvertAdvisorRefToAdvisor(*response.Advisor)
		order.Advisor = &advisor
	}

	if response.Customer != nil {
		customer := ConvertCustomerResponseToCustomer(*response.Customer)
		order.Customer = &customer
	}

	return order, nil
}

func convertOrderProducts(products []model.OrderProduct) entity.OrderLines {
	lines := make(entity.OrderLines, 0, len(products))

	for _, product := range products {
		line := entity.OrderLine{
			Quantity:  product.Quantity,
			UnitPrice: product.Amount,
		}
		if product.Product != nil {
			line.ProductName = product.Product.Name
		}

		lines = append(lines, line)
	}

	return lines
}
