package mail

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/abdulq/chicken-shop/internal/order"
)

func orderNotificationBody(o *order.Order) string {
	var items strings.Builder
	for _, it := range o.CartItems {
		// NUMERIC arithmetic for the line total; float multiplication
		// turns 3 x 99.95 into 299.84999....
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		fmt.Fprintf(&items, "<li>%s (Qty: %d) - ₹%s</li>", html.EscapeString(it.Name), it.Quantity, line.String())
	}
	alt := o.AltMobileNumber
	if alt == "" {
		alt = "N/A"
	}
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #333;">New Order Received - Abdul's Chicken</h2>`)
	fmt.Fprintf(&b, `<p><strong>Order ID:</strong> %s</p>`, o.ID)
	b.WriteString(`<p><strong>Items:</strong></p>`)
	fmt.Fprintf(&b, `<ul>%s</ul>`, items.String())
	fmt.Fprintf(&b, `<p><strong>Total:</strong> ₹%s</p>`, decimal.NewFromFloat(o.TotalPrice).String())
	fmt.Fprintf(&b, `<p><strong>Delivery Address:</strong> %s</p>`, html.EscapeString(o.DeliveryAddress))
	fmt.Fprintf(&b, `<p><strong>Mobile:</strong> %s</p>`, html.EscapeString(o.MobileNumber))
	fmt.Fprintf(&b, `<p><strong>Alt Mobile:</strong> %s</p>`, html.EscapeString(alt))
	b.WriteString(`<p style="color: #777; font-size: 14px; margin-top: 20px;">`)
	b.WriteString(`Please visit the owner dashboard to accept or reject this order.`)
	b.WriteString(`</p></div>`)
	return b.String()
}

func referralInviteBody(link string) string {
	safe := html.EscapeString(link)
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #333;">You've Been Invited to Abdul's Chicken!</h2>`)
	b.WriteString(`<p>A friend has invited you to join Abdul's Chicken, where you can enjoy delicious chicken and mutton products.</p>`)
	b.WriteString(`<p>Use the link below to sign up and get a ₹100 discount on your first order:</p>`)
	fmt.Fprintf(&b, `<p><a href="%s" style="color: #d32f2f; text-decoration: none;">%s</a></p>`, safe, safe)
	b.WriteString(`<p>We can't wait to have you on board!</p>`)
	b.WriteString(`<p style="color: #777; font-size: 14px; margin-top: 20px;">Abdul's Chicken Team</p>`)
	b.WriteString(`</div>`)
	return b.String()
}
