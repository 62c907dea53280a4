package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmit() SubmitRequest {
	return SubmitRequest{
		CartItems:       []CartItem{{ID: "1", Name: "Whole Chicken", Price: 300, Quantity: 2}},
		DeliveryAddress: "12 Main St",
		MobileNumber:    "9876543210",
		PaymentMethod:   "cod",
		TotalPrice:      600,
	}
}

func TestSubmitRequest_Validate(t *testing.T) {
	req := validSubmit()
	require.NoError(t, req.Validate())
}

func TestSubmitRequest_Validate_Failures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*SubmitRequest)
		wantErr string
	}{
		{"empty cart", func(r *SubmitRequest) { r.CartItems = nil }, "Cart items are required"},
		{"empty address", func(r *SubmitRequest) { r.DeliveryAddress = "" }, "Delivery address is required"},
		{"short mobile", func(r *SubmitRequest) { r.MobileNumber = "987654321" }, "Valid mobile number is required"},
		{"long mobile", func(r *SubmitRequest) { r.MobileNumber = "98765432101" }, "Valid mobile number is required"},
		{"alpha mobile", func(r *SubmitRequest) { r.MobileNumber = "98765x4321" }, "Valid mobile number is required"},
		{"non-cod", func(r *SubmitRequest) { r.PaymentMethod = "card" }, "Payment method must be COD"},
		{"uppercase cod", func(r *SubmitRequest) { r.PaymentMethod = "COD" }, "Payment method must be COD"},
		{"zero price", func(r *SubmitRequest) { r.TotalPrice = 0 }, "Valid total price is required"},
		{"negative price", func(r *SubmitRequest) { r.TotalPrice = -5 }, "Valid total price is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmit()
			tc.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}

func TestSubmitRequest_Validate_CheckOrder(t *testing.T) {
	// Everything invalid at once: the cart check is reported first.
	req := SubmitRequest{MobileNumber: "x", PaymentMethod: "card", TotalPrice: -1}
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Cart items are required", err.Error())
}

func TestSubmitRequest_AltMobileOptional(t *testing.T) {
	req := validSubmit()
	req.AltMobileNumber = ""
	assert.NoError(t, req.Validate())
	req.AltMobileNumber = "9123456780"
	assert.NoError(t, req.Validate())
}
