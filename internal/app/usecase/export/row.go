package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
	"github.com/kisaanstar/console/internal/app/entity"
)

// placeholder renders every missing denormalized field. Exports never emit an
// empty cell for a missing value.
const placeholder = `N/A`

var columns = []string{
	"Order Number",
	"Created At",
	"Advisor Name",
	"Mobile Number",
	"Farmer Alt. Number",
	"Farmer Name",
	"Village",
	"Taluka",
	"District",
	"Pincode",
	"Nearby Location",
	"Post Office",
	"Product Names",
	"Total Quantity",
	"Total Amount",
	"Discount Amount",
	"Final Amount",
	"Order Status",
}

// Columns returns the export header, identical for every format.
func Columns() []string {
	header := make([]string, len(columns))
	copy(header, columns)

	return header
}

// Row is one pre-formatted export line. The gross total is the final amount
// plus the discount; the final amount is the server-computed order total.
type Row struct {
	OrderNumber    string
	CreatedAt      string
	AdvisorName    string
	MobileNumber   string
	AltNumber      string
	FarmerName     string
	Village        string
	Taluka         string
	District       string
	Pincode        string
	NearbyLocation string
	PostOffice     string
	ProductNames   string
	TotalQuantity  int
	TotalAmount    float64
	DiscountAmount float64
	FinalAmount    float64
	OrderStatus    string
}

func (r Row) values() []string {
	return []string{
		r.OrderNumber,
		r.CreatedAt,
		r.AdvisorName,
		r.MobileNumber,
		r.AltNumber,
		r.FarmerName,
		r.Village,
		r.Taluka,
		r.District,
		r.Pincode,
		r.NearbyLocation,
		r.PostOffice,
		r.ProductNames,
		strconv.Itoa(r.TotalQuantity),
		formatAmount(r.TotalAmount),
		formatAmount(r.DiscountAmount),
		formatAmount(r.FinalAmount),
		r.OrderStatus,
	}
}

// BuildRows flattens an order subset into export rows. Creation timestamps
// are rendered in the given location.
func BuildRows(orders entity.Orders, location *time.Location) []Row {
	rows := make([]Row, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, buildRow(order, location))
	}

	return rows
}

func buildRow(order entity.Order, location *time.Location) Row {
	row := Row{
		OrderNumber:    order.ID.String(),
		CreatedAt:      formatCreatedAt(order.CreatedAt, location),
		AdvisorName:    placeholder,
		MobileNumber:   placeholder,
		AltNumber:      placeholder,
		FarmerName:     placeholder,
		Village:        placeholder,
		Taluka:         placeholder,
		District:       placeholder,
		Pincode:        placeholder,
		NearbyLocation: placeholder,
		PostOffice:     placeholder,
		ProductNames:   productNames(order.Lines),
		TotalQuantity:  order.Lines.Quantity(),
		TotalAmount:    order.TotalAmount + order.Discount,
		DiscountAmount: order.Discount,
		FinalAmount:    order.TotalAmount,
		OrderStatus:    string(order.Status),
	}

	if order.Advisor != nil {
		row.AdvisorName = orPlaceholder(order.Advisor.Name)
	}

	if customer := order.Customer; customer != nil {
		row.MobileNumber = orPlaceholder(customer.MobileNumber)
		row.AltNumber = orPlaceholder(customer.AlternativeNumber)
		row.FarmerName = orPlaceholder(customer.Name)
		row.Village = orPlaceholder(customer.Village)
		row.Taluka = orPlaceholder(customer.Taluka)
		row.District = orPlaceholder(customer.District)
		row.Pincode = orPlaceholder(customer.Pincode)
		row.NearbyLocation = orPlaceholder(customer.NearbyLocation)
		row.PostOffice = orPlaceholder(customer.PostOffice)
	}

	return row
}

func productNames(lines entity.OrderLines) string {
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, orPlaceholder(line.ProductName))
	}

	return strings.Join(names, ", ")
}

func formatCreatedAt(createdAt time.Time, location *time.Location) string {
	return carbon.CreateFromStdTime(createdAt.In(location)).ToDateTimeString()
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func orPlaceholder(value string) string {
	if len(value) == 0 {
		return placeholder
	}

	return value
}
