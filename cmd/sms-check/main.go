// sms-check sends one test SMS through the configured Twilio account so
// credentials can be verified without placing an order.
package main

import (
	"context"
	"log"
	"time"

	"github.com/abdulq/chicken-shop/internal/config"
	"github.com/abdulq/chicken-shop/internal/sms"
)

func main() {
	cfg := config.Load()
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		log.Fatal("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN must be set")
	}
	if cfg.TwilioFrom == "" || cfg.OwnerPhone == "" {
		log.Fatal("TWILIO_PHONE_NUMBER and OWNER_PHONE_NUMBER must be set")
	}

	client := sms.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	sid, err := client.Send(ctx, cfg.OwnerPhone, "Test SMS from Abdul's Chicken backend")
	if err != nil {
		log.Fatalf("Error sending SMS: %v", err)
	}
	log.Printf("SMS sent: %s", sid)
}
