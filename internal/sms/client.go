// Package sms is a minimal client for the Twilio Messages REST API,
// used by the sms-check diagnostic.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.twilio.com"

type Client struct {
	HTTP       *http.Client
	BaseURL    string
	accountSID string
	authToken  string
	from       string
}

func New(accountSID, authToken, from string) *Client {
	return &Client{
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
	}
}

// Send posts one outbound message and returns the provider's message SID.
func (c *Client) Send(ctx context.Context, to, body string) (string, error) {
	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", strings.TrimRight(c.BaseURL, "/"), c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var out struct {
			SID string `json:"sid"`
		}
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			return "", err
		}
		return out.SID, nil
	default:
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = res.Status
		}
		return "", fmt.Errorf("twilio: %s", apiErr.Message)
	}
}
