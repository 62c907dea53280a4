package referral

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscountCode_Format(t *testing.T) {
	code := NewDiscountCode()
	require.Len(t, code, len(codePrefix)+codeLen)
	require.True(t, strings.HasPrefix(code, codePrefix))
	for _, r := range code[len(codePrefix):] {
		assert.Contains(t, codeAlphabet, string(r))
	}
}

func TestNewDiscountCode_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewDiscountCode()] = true
	}
	// 50 collisions out of 36^8 would mean the generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestCodeFromLink(t *testing.T) {
	code, err := CodeFromLink("https://shop.example.com/signup?ref=FRIEND50")
	require.NoError(t, err)
	assert.Equal(t, "FRIEND50", code)
}

func TestCodeFromLink_KeepsOtherParams(t *testing.T) {
	code, err := CodeFromLink("https://shop.example.com/signup?utm_source=x&ref=ABC123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", code)
}

func TestCodeFromLink_Invalid(t *testing.T) {
	cases := []struct {
		name string
		link string
	}{
		{"empty", ""},
		{"relative", "/signup?ref=FRIEND50"},
		{"no scheme", "shop.example.com?ref=FRIEND50"},
		{"missing ref", "https://shop.example.com/signup"},
		{"empty ref", "https://shop.example.com/signup?ref="},
		{"garbage", "::not-a-url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CodeFromLink(tc.link)
			assert.Error(t, err)
		})
	}
}
