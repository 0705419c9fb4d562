package export

import (
	"testing"
	"time"

	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() entity.Order {
	return entity.Order{
		ID:        "A1",
		CreatedAt: time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC),
		Status:    entity.StatusConfirmOrder,
		Advisor:   &entity.Advisor{ID: "adv1", Name: "Ramesh Patil"},
		Customer: &entity.Customer{
			ID:           "cus1",
			Name:         "Suresh Jadhav",
			MobileNumber: "9876543210",
			Village:      "Saswad",
			Taluka:       "Purandar",
			District:     "Pune",
			State:        "Maharashtra",
			Pincode:      "412206",
			PostOffice:   "Saswad S.O",
		},
		Lines: entity.OrderLines{
			{ProductName: "Urea", Quantity: 2, UnitPrice: 275},
		},
		Discount:    50,
		TotalAmount: 500,
	}
}

func TestBuildRow(t *testing.T) {
	rows := BuildRows(entity.Orders{sampleOrder()}, time.UTC)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "A1", row.OrderNumber)
	assert.Equal(t, "Ramesh Patil", row.AdvisorName)
	assert.Equal(t, "Suresh Jadhav", row.FarmerName)
	assert.Equal(t, "Urea", row.ProductNames)
	assert.Equal(t, 2, row.TotalQuantity)
	assert.Equal(t, 550.0, row.TotalAmount)
	assert.Equal(t, 50.0, row.DiscountAmount)
	assert.Equal(t, 500.0, row.FinalAmount)
	assert.Equal(t, "Confirm", row.OrderStatus)

	// Alternative number and nearby location were never provided.
	assert.Equal(t, "N/A", row.AltNumber)
	assert.Equal(t, "N/A", row.NearbyLocation)
}

func TestBuildRowMissingDenormalizedFields(t *testing.T) {
	order := entity.Order{
		ID:        "A2",
		CreatedAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
		Status:    entity.StatusPendingOrder,
		Lines: entity.OrderLines{
			{ProductName: "", Quantity: 1, UnitPrice: 100},
			{ProductName: "Jeevamrut", Quantity: 3, UnitPrice: 40},
		},
		TotalAmount: 220,
	}

	rows := BuildRows(entity.Orders{order}, time.UTC)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "N/A", row.AdvisorName)
	assert.Equal(t, "N/A", row.MobileNumber)
	assert.Equal(t, "N/A", row.FarmerName)
	assert.Equal(t, "N/A", row.Village)
	assert.Equal(t, "N/A", row.PostOffice)
	assert.Equal(t, "N/A, Jeevamrut", row.ProductNames)
	assert.Equal(t, 4, row.TotalQuantity)

	for _, value := range row.values() {
		assert.NotEmpty(t, value)
	}
}

func TestRowValuesMatchColumnCount(t *testing.T) {
	rows := BuildRows(entity.Orders{sampleOrder()}, time.UTC)
	require.Len(t, rows, 1)

	assert.Len(t, Columns(), 18)
	assert.Len(t, rows[0].values(), len(Columns()))
}

func TestBuildRowsCreatedAtUsesLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	order := sampleOrder()
	order.CreatedAt = time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC)

	utcRows := BuildRows(entity.Orders{order}, time.UTC)
	kolkataRows := BuildRows(entity.Orders{order}, kolkata)

	assert.Equal(t, "2024-01-05 20:00:00", utcRows[0].CreatedAt)
	assert.Equal(t, "2024-01-06 01:30:00", kolkataRows[0].CreatedAt)
}
