package entity

import "time"

type OrderStatus string

const (
	StatusPendingOrder OrderStatus = `Pending`
	StatusConfirmOrder OrderStatus = `Confirm`
	StatusCancelOrder  OrderStatus = `Cancel`
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPendingOrder, StatusConfirmOrder, StatusCancelOrder:
		return true
	default:
		return false
	}
}

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

type Orders []Order

// Order is read-only from the console's perspective: it is created by the
// advisory place-order flow and mutated only through a status transition.
// TotalAmount is computed by the server and trusted as the source of truth.
type Order struct {
	ID          OrderID
	CreatedAt   time.Time
	Status      OrderStatus
	Advisor     *Advisor
	Customer    *Customer
	Lines       OrderLines
	Discount    float64
	TotalAmount float64
}

type OrderLines []OrderLine

type OrderLine struct {
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// Quantity sums line quantities for display and export.
func (l OrderLines) Quantity() int {
	total := 0
	for _, line := range l {
		total += line.Quantity
	}

	return total
}
