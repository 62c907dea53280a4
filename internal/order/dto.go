package order

import (
	"errors"
	"regexp"
)

var mobileRe = regexp.MustCompile(`^[0-9]{10}$`)

// SubmitRequest is the order submission payload.
type SubmitRequest struct {
	CartItems       []CartItem `json:"cartItems"`
	DeliveryAddress string     `json:"deliveryAddress"`
	MobileNumber    string     `json:"mobileNumber"`
	AltMobileNumber string     `json:"altMobileNumber"`
	PaymentMethod   string     `json:"paymentMethod"`
	TotalPrice      float64    `json:"totalPrice"`
	ReferralCode    string     `json:"referralCode"`
}

// Validate checks the payload field by field; the first failing check
// wins (cart, address, mobile, payment, price).
func (r *SubmitRequest) Validate() error {
	if len(r.CartItems) == 0 {
		return errors.New("Cart items are required")
	}
	if r.DeliveryAddress == "" {
		return errors.New("Delivery address is required")
	}
	if !mobileRe.MatchString(r.MobileNumber) {
		return errors.New("Valid mobile number is required")
	}
	if r.PaymentMethod != "cod" {
		return errors.New("Payment method must be COD")
	}
	if r.TotalPrice <= 0 {
		return errors.New("Valid total price is required")
	}
	return nil
}
