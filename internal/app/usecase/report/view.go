package report

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/kisaanstar/console/internal/app/entity"
	"go.uber.org/zap"
)

var ErrStatusInvalid = errors.New("order status invalid")

// OrderSource is the slice of the remote API the reporting view depends on.
type OrderSource interface {
	Orders(ctx context.Context) (entity.Orders, error)
	UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, status entity.OrderStatus) error
}

// View owns the state of the order reporting screen: the loaded order list
// and the active status and date filters. Mutation happens only through
// Load, the filter setters and UpdateStatus; a failed external call leaves
// the previously loaded state untouched.
type View struct {
	source   OrderSource
	location *time.Location

	orders entity.Orders
	status entity.OrderStatus
	day    *time.Time
}

func NewView(source OrderSource, location *time.Location) *View {
	return &View{
		source:   source,
		location: location,
	}
}

// Load replaces the view's order list with a fresh fetch, newest first.
// Overlapping loads are not deduplicated; the last response to arrive wins.
func (v *View) Load(ctx context.Context) error {
	orders, err := v.source.Orders(ctx)
	if err != nil {
		zap.L().Error("error while loading orders", zap.Error(err))
		return err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	v.orders = orders

	return nil
}

// SetStatusFilter narrows the view to one status; empty selects all.
func (v *View) SetStatusFilter(status entity.OrderStatus) error {
	if len(status) != 0 && !status.Valid() {
		return ErrStatusInvalid
	}
	v.status = status

	return nil
}

func (v *View) SetDateFilter(day time.Time) {
	v.day = &day
}

func (v *View) ClearDateFilter() {
	v.day = nil
}

// Current applies the active filters and returns the visible subset. The
// returned slice is the view's own ordering; callers must not mutate it.
func (v *View) Current() entity.Orders {
	orders := FilterByStatus(v.orders, v.status)
	if v.day != nil {
		orders = FilterByDate(orders, *v.day, v.location)
	}

	return orders
}

// Revenue derives the revenue summary over the currently visible subset.
func (v *View) Revenue() entity.Revenue {
	return ComputeRevenue(v.Current())
}

// UpdateStatus requests the transition from the server and only then applies
// it to the single matching in-memory order. On failure the local list is
// left exactly as it was; the caller may retry.
func (v *View) UpdateStatus(ctx context.Context, orderID entity.OrderID, status entity.OrderStatus) error {
	if !status.Valid() {
		return ErrStatusInvalid
	}

	err := v.source.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		zap.L().Error("error while updating order status",
			zap.String("order_id", orderID.String()),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return err
	}

	for i := range v.orders {
		if v.orders[i].ID == orderID {
			v.orders[i].Status = status
			break
		}
	}

	return nil
}
