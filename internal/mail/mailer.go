// Package mail sends the storefront's transactional email through a
// plain SMTP transport.
package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/abdulq/chicken-shop/internal/order"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
	owner  string
}

// New builds a mailer that authenticates against the given SMTP server.
// owner is the store owner's address, the target of order notifications.
func New(host string, port int, user, pass, owner string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
		owner:  owner,
	}
}

// Ping dials the SMTP server once so bad credentials surface at startup
// instead of on the first order.
func (m *Mailer) Ping() error {
	c, err := m.dialer.Dial()
	if err != nil {
		return err
	}
	return c.Close()
}

// SendOrderNotification mails the store owner a summary of a freshly
// placed order.
func (m *Mailer) SendOrderNotification(o *order.Order) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.owner)
	msg.SetHeader("Subject", "New Order Received - Order ID: "+o.ID)
	msg.SetBody("text/html", orderNotificationBody(o))
	return m.dialer.DialAndSend(msg)
}

// SendReferralInvite mails the referred friend their signup link.
func (m *Mailer) SendReferralInvite(to, link string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "You’re Invited to Abdul’s Chicken – Get ₹100 Off!")
	msg.SetBody("text/html", referralInviteBody(link))
	return m.dialer.DialAndSend(msg)
}
