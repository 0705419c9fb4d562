// Package dashboard assembles the operational-admin landing figures. Each
// block is fetched independently and a failed block never hides the others;
// the page has always rendered whatever it could get.
package dashboard

import (
	"context"

	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/usecase/report"
	"go.uber.org/zap"
)

// StatsSource is the slice of the remote API the dashboard depends on.
type StatsSource interface {
	Orders(ctx context.Context) (entity.Orders, error)
	OrderStatusCounts(ctx context.Context) (entity.StatusCounts, error)
	Counts(ctx context.Context) (entity.ConsoleCounts, error)
}

type Summary struct {
	StatusCounts entity.StatusCounts
	Counts       entity.ConsoleCounts
	Revenue      entity.Revenue
}

// BuildSummary gathers status counts, catalog/advisor counts and the revenue
// figures derived from the full order list. Failures are logged and leave
// the affected block zeroed.
func BuildSummary(ctx context.Context, source StatsSource) Summary {
	var summary Summary

	statusCounts, err := source.OrderStatusCounts(ctx)
	if err != nil {
		zap.L().Error("error while fetching order status counts", zap.Error(err))
	} else {
		summary.StatusCounts = statusCounts
	}

	counts, err := source.Counts(ctx)
	if err != nil {
		zap.L().Error("error while fetching console counts", zap.Error(err))
	} else {
		summary.Counts = counts
	}

	orders, err := source.Orders(ctx)
	if err != nil {
		zap.L().Error("error while fetching orders for revenue summary", zap.Error(err))
	} else {
		summary.Revenue = report.ComputeRevenue(orders)
	}

	return summary
}
