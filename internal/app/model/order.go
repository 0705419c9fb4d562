package model

type OrdersResponse []OrderResponse

// OrderResponse mirrors the populated order document the advisory orders
// endpoint returns. The advisor and customer references are denormalized and
// may be absent when the referenced document has been removed.
type OrderResponse struct {
	ID          string            `json:"_id"`
	CreatedAt   string            `json:"createdAt"`
	Status      string            `json:"orderStatus"`
	Advisor     *AdvisorRef       `json:"advisorId"`
	Customer    *CustomerResponse `json:"customerId"`
	Products    []OrderProduct    `json:"products"`
	Discount    float64           `json:"discount"`
	TotalAmount float64           `json:"totalAmount"`
}

type AdvisorRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type OrderProduct struct {
	Product  *ProductRef `json:"productId"`
	Quantity int         `json:"quantity"`
	Amount   float64     `json:"amount"`
}

type ProductRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type PlaceOrderRequest struct {
	CustomerID  string              `json:"customerId"`
	AdvisorID   string              `json:"advisorId"`
	Products    []PlaceOrderProduct `json:"products"`
	Discount    float64             `json:"discount"`
	TotalAmount float64             `json:"totalAmount"`
}

type PlaceOrderProduct struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Amount    float64 `json:"amount"`
}

type PlaceOrderResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

type StatusCountResponse struct {
	Pending int `json:"Pending"`
	Confirm int `json:"Confirm"`
	Cancel  int `json:"Cancel"`
}
