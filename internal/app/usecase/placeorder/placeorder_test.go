package placeorder

import (
	"context"
	"errors"
	"testing"

	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	urea = entity.Product{ID: "p1", Name: "Urea", Price: 275}
	dap  = entity.Product{ID: "p2", Name: "DAP", Price: 1350}
)

type stubPlacer struct {
	customer    entity.Customer
	customerErr error
	placed      *model.PlaceOrderRequest
	placeErr    error
}

func (s *stubPlacer) Customer(_ context.Context, _ string) (entity.Customer, error) {
	return s.customer, s.customerErr
}

func (s *stubPlacer) PlaceOrder(_ context.Context, request model.PlaceOrderRequest) (entity.Order, error) {
	s.placed = &request
	if s.placeErr != nil {
		return entity.Order{}, s.placeErr
	}

	return entity.Order{ID: "order-9", Status: entity.StatusPendingOrder, TotalAmount: request.TotalAmount}, nil
}

func completeCustomer() entity.Customer {
	return entity.Customer{
		ID:           "cus-1",
		Name:         "Suresh Jadhav",
		MobileNumber: "9876543210",
		Village:      "Shirur",
		Taluka:       "Shirur",
		District:     "Pune",
		State:        "Maharashtra",
		Pincode:      "412210",
		PostOffice:   "Shirur",
	}
}

func TestDraftAddLineFloorsQuantity(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		wantQuantity int
	}{
		{name: "positive quantity kept", quantity: 3, wantQuantity: 3},
		{name: "zero floored to one", quantity: 0, wantQuantity: 1},
		{name: "negative floored to one", quantity: -5, wantQuantity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := NewDraft("cus-1", "adv-1")
			draft.AddLine(urea, tt.quantity)

			require.Len(t, draft.Lines, 1)
			assert.Equal(t, tt.wantQuantity, draft.Lines[0].Quantity)
		})
	}
}

func TestDraftTotals(t *testing.T) {
	draft := NewDraft("cus-1", "adv-1")
	draft.AddLine(urea, 2)
	draft.AddLine(dap, 1)

	assert.Equal(t, 1900.0, draft.Subtotal())

	draft.SetDiscount(400)
	assert.Equal(t, 1500.0, draft.Total())

	draft.SetDiscount(-100)
	assert.Equal(t, 0.0, draft.Discount)
	assert.Equal(t, 1900.0, draft.Total())
}

func TestDraftTotalFlooredAtZero(t *testing.T) {
	draft := NewDraft("cus-1", "adv-1")
	draft.AddLine(urea, 1)
	draft.SetDiscount(1000)

	assert.Equal(t, 0.0, draft.Total())
}

func TestDraftRemoveLine(t *testing.T) {
	draft := NewDraft("cus-1", "adv-1")
	draft.AddLine(urea, 1)
	draft.AddLine(dap, 1)

	draft.RemoveLine(0)
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, entity.ProductID("p2"), draft.Lines[0].ProductID)

	draft.RemoveLine(5)
	assert.Len(t, draft.Lines, 1)
}

func TestPlace(t *testing.T) {
	placer := &stubPlacer{customer: completeCustomer()}
	service := NewService(placer)

	draft := NewDraft("cus-1", "adv-1")
	draft.AddLine(urea, 2)
	draft.SetDiscount(50)

	order, err := service.Place(context.Background(), "9876543210", draft)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderID("order-9"), order.ID)

	require.NotNil(t, placer.placed)
	assert.Equal(t, "cus-1", placer.placed.CustomerID)
	assert.Equal(t, "adv-1", placer.placed.AdvisorID)
	assert.Equal(t, 50.0, placer.placed.Discount)
	assert.Equal(t, 500.0, placer.placed.TotalAmount)
	require.Len(t, placer.placed.Products, 1)
	assert.Equal(t, "p1", placer.placed.Products[0].ProductID)
	assert.Equal(t, 2, placer.placed.Products[0].Quantity)
	assert.Equal(t, 275.0, placer.placed.Products[0].Amount)
}

func TestPlaceValidation(t *testing.T) {
	tests := []struct {
		name    string
		draft   func() *Draft
		wantErr error
	}{
		{
			name:    "empty draft",
			draft:   func() *Draft { return NewDraft("cus-1", "adv-1") },
			wantErr: ErrNoLines,
		},
		{
			name: "line without product",
			draft: func() *Draft {
				draft := NewDraft("cus-1", "adv-1")
				draft.AddLine(entity.Product{}, 1)
				return draft
			},
			wantErr: ErrEmptyProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placer := &stubPlacer{customer: completeCustomer()}
			service := NewService(placer)

			_, err := service.Place(context.Background(), "9876543210", tt.draft())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, placer.placed)
		})
	}
}

func TestPlaceRequiresCompleteAddress(t *testing.T) {
	customer := completeCustomer()
	customer.Village = ""

	placer := &stubPlacer{customer: customer}
	service := NewService(placer)

	draft := NewDraft("cus-1", "adv-1")
	draft.AddLine(urea, 1)

	_, err := service.Place(context.Background(), "9876543210", draft)

	assert.ErrorIs(t, err, ErrAddressIncomplete)
	assert.Nil(t, placer.placed)
}

func TestPlaceSurfacesServerError(t *testing.T) {
	wantErr := errors.New("order rejected")
	placer := &stubPlacer{customer: completeCustomer(), placeErr: wantErr}
	service := NewService(placer)

	draft := NewDraft("cus-1", "adv-1")
	draft.AddLine(urea, 1)

	_, err := service.Place(context.Background(), "9876543210", draft)

	assert.ErrorIs(t, err, wantErr)
}

func TestAddressComplete(t *testing.T) {
	assert.True(t, AddressComplete(completeCustomer()))

	optional := completeCustomer()
	optional.AlternativeNumber = ""
	optional.NearbyLocation = ""
	assert.True(t, AddressComplete(optional))

	missing := completeCustomer()
	missing.PostOffice = ""
	assert.False(t, AddressComplete(missing))
}
