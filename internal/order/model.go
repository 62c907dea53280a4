package order

import "time"

const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusRejected  = "Rejected"
	StatusDelivered = "Delivered"
)

type Order struct {
	ID              string     `json:"id"`
	CartItems       []CartItem `json:"cartItems"`
	DeliveryAddress string     `json:"deliveryAddress"`
	MobileNumber    string     `json:"mobileNumber"`
	AltMobileNumber string     `json:"altMobileNumber,omitempty"`
	PaymentMethod   string     `json:"paymentMethod"`
	TotalPrice      float64    `json:"totalPrice"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	// DeliveredAt is set exactly once, on the Accepted -> Delivered transition.
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// CartItem is a snapshot of a product line at the moment the order was
// placed. ID is the storefront's product id, not a row id.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}
