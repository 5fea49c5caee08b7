package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"a@b.co",
		"weird!chars@host.tld",
	}
	for _, s := range valid {
		assert.True(t, IsValidEmail(s), "expected valid: %q", s)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-at-sign.com",
		"no-dot@domain",
		"spaces in@local.com",
		"user@dom ain.com",
		"user@@double.com",
	}
	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), "expected invalid: %q", s)
	}
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("password123"))
	assert.True(t, IsValidPassword("12345678"))
	assert.True(t, IsValidPassword("abcdefg1"))

	assert.False(t, IsValidPassword(""))
	assert.False(t, IsValidPassword("short1"))
	assert.False(t, IsValidPassword("nodigitshere"))
	assert.False(t, IsValidPassword("abc1"))
}

func TestIsValidMobile(t *testing.T) {
	assert.True(t, IsValidMobile("1234567890"))   // 10 digits
	assert.True(t, IsValidMobile("12345678901"))  // 11 digits
	assert.True(t, IsValidMobile("123456789012")) // 12 digits

	assert.False(t, IsValidMobile(""))
	assert.False(t, IsValidMobile("123456789"))     // 9 digits
	assert.False(t, IsValidMobile("1234567890123")) // 13 digits
	assert.False(t, IsValidMobile("12345abc90"))
	assert.False(t, IsValidMobile("123-456-7890"))
}

func TestNormalizeMobile(t *testing.T) {
	assert.Equal(t, "1234567890", NormalizeMobile("123-456-7890"))
	assert.Equal(t, "1234567890", NormalizeMobile("(123) 456 7890"))
	assert.Equal(t, "1234567890", NormalizeMobile("1234567890"))
	assert.Equal(t, "", NormalizeMobile("no digits"))

	// Normalization feeds the validator: a formatted number passes.
	assert.True(t, IsValidMobile(NormalizeMobile("123-456-7890")))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("http://example.com/image.png"))
	assert.True(t, IsValidURL("https://cdn.example.com/a/b?c=d"))

	assert.False(t, IsValidURL(""))
	assert.False(t, IsValidURL("ftp://example.com/file"))
	assert.False(t, IsValidURL("example.com/no-scheme"))
	assert.False(t, IsValidURL("http://"))
	assert.False(t, IsValidURL("https://"))
	assert.False(t, IsValidURL("://bad"))
	assert.False(t, IsValidURL("http://%zz-malformed"))
}
