package report

import (
	"testing"
	"time"

	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/stretchr/testify/assert"
)

func TestComputeRevenue(t *testing.T) {
	tests := []struct {
		name   string
		orders entity.Orders
		want   entity.Revenue
	}{
		{
			name:   "empty order list",
			orders: entity.Orders{},
			want:   entity.Revenue{},
		},
		{
			name:   "nil order list",
			orders: nil,
			want:   entity.Revenue{},
		},
		{
			name: "single status",
			orders: entity.Orders{
				{ID: "o1", Status: entity.StatusPendingOrder, TotalAmount: 150},
				{ID: "o2", Status: entity.StatusPendingOrder, TotalAmount: 250},
			},
			want: entity.Revenue{Total: 400, Pending: 400},
		},
		{
			name: "all statuses",
			orders: entity.Orders{
				{ID: "o1", Status: entity.StatusPendingOrder, TotalAmount: 100},
				{ID: "o2", Status: entity.StatusConfirmOrder, TotalAmount: 200},
				{ID: "o3", Status: entity.StatusCancelOrder, TotalAmount: 300},
			},
			want: entity.Revenue{Total: 600, Pending: 100, Confirm: 200, Cancel: 300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeRevenue(tt.orders))
		})
	}
}

func TestComputeRevenueStatusSumsMatchTotal(t *testing.T) {
	orders := entity.Orders{
		{ID: "o1", Status: entity.StatusPendingOrder, TotalAmount: 12.5},
		{ID: "o2", Status: entity.StatusConfirmOrder, TotalAmount: 80},
		{ID: "o3", Status: entity.StatusConfirmOrder, TotalAmount: 7.25},
		{ID: "o4", Status: entity.StatusCancelOrder, TotalAmount: 44},
	}

	revenue := ComputeRevenue(orders)

	wantTotal := 0.0
	for _, order := range orders {
		wantTotal += order.TotalAmount
	}

	assert.Equal(t, wantTotal, revenue.Total)
	assert.Equal(t, revenue.Total, revenue.Pending+revenue.Confirm+revenue.Cancel)
}

func TestFilterByDateThenRevenue(t *testing.T) {
	location := time.UTC
	orders := entity.Orders{
		{ID: "o1", Status: entity.StatusPendingOrder, TotalAmount: 100, CreatedAt: time.Date(2024, 1, 5, 9, 0, 0, 0, location)},
		{ID: "o2", Status: entity.StatusConfirmOrder, TotalAmount: 200, CreatedAt: time.Date(2024, 1, 6, 12, 0, 0, 0, location)},
		{ID: "o3", Status: entity.StatusCancelOrder, TotalAmount: 300, CreatedAt: time.Date(2024, 1, 5, 18, 30, 0, 0, location)},
	}

	day := time.Date(2024, 1, 5, 0, 0, 0, 0, location)
	filtered := FilterByDate(orders, day, location)

	assert.Len(t, filtered, 2)
	assert.Equal(t, entity.Revenue{Total: 400, Pending: 100, Cancel: 300}, ComputeRevenue(filtered))
}
