package referral

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/url"
)

const (
	codePrefix   = "DISCOUNT"
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLen      = 8
)

// CodeFunc produces a fresh discount code. Handlers take one so tests
// can pin the generated value.
type CodeFunc func() string

// NewDiscountCode returns a code like DISCOUNTK3F9A27B.
func NewDiscountCode() string {
	buf := make([]byte, codeLen)
	if _, err := rand.Read(buf); err != nil {
		// a guessable discount code must never leave this function
		panic("referral: crypto/rand: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return codePrefix + string(buf)
}

// CodeFromLink extracts the referral code from a shareable link's
// `ref` query parameter.
func CodeFromLink(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parse referral link: %w", err)
	}
	if !u.IsAbs() {
		return "", errors.New("referral link is not an absolute URL")
	}
	code := u.Query().Get("ref")
	if code == "" {
		return "", errors.New("referral link has no ref code")
	}
	return code, nil
}
