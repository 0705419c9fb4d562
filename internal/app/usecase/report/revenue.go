package report

import "github.com/kisaanstar/console/internal/app/entity"

// ComputeRevenue derives the revenue figures for any order subset: the grand
// total plus the totals restricted to each status. The server-computed
// TotalAmount is summed as-is; an empty subset yields all zeros.
func ComputeRevenue(orders entity.Orders) entity.Revenue {
	var revenue entity.Revenue

	for _, order := range orders {
		revenue.Total += order.TotalAmount

		switch order.Status {
		case entity.StatusPendingOrder:
			revenue.Pending += order.TotalAmount
		case entity.StatusConfirmOrder:
			revenue.Confirm += order.TotalAmount
		case entity.StatusCancelOrder:
			revenue.Cancel += order.TotalAmount
		}
	}

	return revenue
}
