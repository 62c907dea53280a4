package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdulq/chicken-shop/internal/order"
)

func TestOrderNotificationBody(t *testing.T) {
	o := &order.Order{
		ID: "ord-1",
		CartItems: []order.CartItem{
			{ID: "1", Name: "Whole Chicken", Price: 300, Quantity: 2},
			{ID: "2", Name: "Mutton Curry Cut", Price: 99.95, Quantity: 3},
		},
		DeliveryAddress: "12 Main St",
		MobileNumber:    "9876543210",
		TotalPrice:      899.85,
	}
	body := orderNotificationBody(o)

	assert.Contains(t, body, "Order ID:</strong> ord-1")
	assert.Contains(t, body, "<li>Whole Chicken (Qty: 2) - ₹600</li>")
	// decimal, not float, arithmetic on the line total
	assert.Contains(t, body, "<li>Mutton Curry Cut (Qty: 3) - ₹299.85</li>")
	assert.Contains(t, body, "Total:</strong> ₹899.85")
	assert.Contains(t, body, "12 Main St")
	assert.Contains(t, body, "Alt Mobile:</strong> N/A")
}

func TestOrderNotificationBody_EscapesUserFields(t *testing.T) {
	o := &order.Order{
		ID:              "ord-2",
		CartItems:       []order.CartItem{{Name: "<script>x</script>", Price: 1, Quantity: 1}},
		DeliveryAddress: `12 "Main" St`,
		TotalPrice:      1,
	}
	body := orderNotificationBody(o)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestReferralInviteBody(t *testing.T) {
	body := referralInviteBody("https://shop.example.com/signup?ref=FRIEND50")
	assert.Contains(t, body, `href="https://shop.example.com/signup?ref=FRIEND50"`)
	assert.Contains(t, body, "₹100 discount")
}
