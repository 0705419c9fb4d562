// Package placeorder builds and submits advisory orders. The draft keeps a
// display total for the advisor; the authoritative total is always computed
// by the server.
package placeorder

import (
	"context"
	"errors"

	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/model"
	"go.uber.org/zap"
)

var (
	ErrNoLines           = errors.New("order has no products")
	ErrEmptyProduct      = errors.New("every order line needs a selected product")
	ErrAddressIncomplete = errors.New("customer address is required before placing an order")
)

// OrderPlacer is the slice of the remote API the placement flow depends on.
type OrderPlacer interface {
	Customer(ctx context.Context, mobileNumber string) (entity.Customer, error)
	PlaceOrder(ctx context.Context, request model.PlaceOrderRequest) (entity.Order, error)
}

type Line struct {
	ProductID entity.ProductID
	Quantity  int
	UnitPrice float64
}

// Draft accumulates order lines and a discount before submission.
type Draft struct {
	CustomerID entity.CustomerID
	AdvisorID  entity.AdvisorID
	Lines      []Line
	Discount   float64
}

func NewDraft(customerID entity.CustomerID, advisorID entity.AdvisorID) *Draft {
	return &Draft{
		CustomerID: customerID,
		AdvisorID:  advisorID,
	}
}

// AddLine appends a product line. A non-positive quantity is floored at one,
// matching the console's input handling.
func (d *Draft) AddLine(product entity.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	d.Lines = append(d.Lines, Line{
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
	})
}

func (d *Draft) RemoveLine(index int) {
	if index < 0 || index >= len(d.Lines) {
		return
	}

	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
}

// SetDiscount stores a non-negative discount; negative input becomes zero.
func (d *Draft) SetDiscount(discount float64) {
	if discount < 0 {
		discount = 0
	}
	d.Discount = discount
}

func (d *Draft) Subtotal() float64 {
	subtotal := 0.0
	for _, line := range d.Lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}

	return subtotal
}

// Total is the display total: the subtotal minus the discount, floored at
// zero.
func (d *Draft) Total() float64 {
	total := d.Subtotal() - d.Discount
	if total < 0 {
		return 0
	}

	return total
}

func (d *Draft) validate() error {
	if len(d.Lines) == 0 {
		return ErrNoLines
	}

	for _, line := range d.Lines {
		if len(line.ProductID) == 0 {
			return ErrEmptyProduct
		}
	}

	return nil
}

// AddressComplete reports whether the fields required before order placement
// have all been filled in. Alternative number and nearby location stay
// optional.
func AddressComplete(customer entity.Customer) bool {
	return len(customer.Village) != 0 &&
		len(customer.Taluka) != 0 &&
		len(customer.District) != 0 &&
		len(customer.State) != 0 &&
		len(customer.Pincode) != 0 &&
		len(customer.PostOffice) != 0
}

type Service struct {
	placer OrderPlacer
}

func NewService(placer OrderPlacer) *Service {
	return &Service{placer: placer}
}

// Place validates the draft, re-reads the customer to confirm the address is
// complete and submits the order.
func (s *Service) Place(ctx context.Context, mobileNumber string, draft *Draft) (entity.Order, error) {
	if err := draft.validate(); err != nil {
		return entity.Order{}, err
	}

	customer, err := s.placer.Customer(ctx, mobileNumber)
	if err != nil {
		zap.L().Error("error while fetching customer address before placing order", zap.Error(err))
		return entity.Order{}, err
	}

	if !AddressComplete(customer) {
		return entity.Order{}, ErrAddressIncomplete
	}

	order, err := s.placer.PlaceOrder(ctx, buildRequest(draft))
	if err != nil {
		zap.L().Error("error while placing order",
			zap.String("customer_id", draft.CustomerID.String()),
			zap.Error(err),
		)
		return entity.Order{}, err
	}

	zap.L().Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.Float64("total", order.TotalAmount),
	)

	return order, nil
}

func buildRequest(draft *Draft) model.PlaceOrderRequest {
	products := make([]model.PlaceOrderProduct, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		products = append(products, model.PlaceOrderProduct{
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			Amount:    line.UnitPrice,
		})
	}

	return model.PlaceOrderRequest{
		CustomerID:  draft.CustomerID.String(),
		AdvisorID:   draft.AdvisorID.String(),
		Products:    products,
		Discount:    draft.Discount,
		TotalAmount: draft.Total(),
	}
}
