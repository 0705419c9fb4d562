package report

import (
	"time"

	"github.com/kisaanstar/console/internal/app/entity"
)

// FilterByStatus returns the orders carrying the given status. An empty
// status selects everything.
func FilterByStatus(orders entity.Orders, status entity.OrderStatus) entity.Orders {
	if len(status) == 0 {
		return orders
	}

	filtered := make(entity.Orders, 0, len(orders))
	for _, order := range orders {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}

	return filtered
}

// FilterByDate returns the orders whose creation timestamp falls on the same
// calendar day as the given date. Both sides are compared in the supplied
// location; the timezone is an explicit parameter so the comparison never
// depends on the ambient environment.
func FilterByDate(orders entity.Orders, day time.Time, location *time.Location) entity.Orders {
	wantYear, wantMonth, wantDay := day.In(location).Date()

	filtered := make(entity.Orders, 0, len(orders))
	for _, order := range orders {
		year, month, date := order.CreatedAt.In(location).Date()
		if year == wantYear && month == wantMonth && date == wantDay {
			filtered = append(filtered, order)
		}
	}

	return filtered
}
