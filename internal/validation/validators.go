// Package validation holds the pure field predicates and the entity
// validators built from them. Nothing here touches the database: uniqueness
// checks belong to the services because they need a store lookup.
package validation

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitRegex  = regexp.MustCompile(`\d`)
	mobileRegex = regexp.MustCompile(`^\d{10,12}$`)
)

// IsValidEmail reports whether s looks like local@domain.tld
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	return emailRegex.MatchString(s)
}

// IsValidPassword reports whether s is at least 8 characters long and
// contains at least one decimal digit
func IsValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	return digitRegex.MatchString(s)
}

// IsValidMobile reports whether s is exactly 10 to 12 decimal digits.
// Callers normalize first with NormalizeMobile.
func IsValidMobile(s string) bool {
	if s == "" {
		return false
	}
	return mobileRegex.MatchString(s)
}

// NormalizeMobile strips every non-digit rune. This is the single
// canonical normalization step applied before IsValidMobile at every call
// site, so the stored value is always digits-only.
func NormalizeMobile(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidURL reports whether s is a well-formed absolute http or https URL
// with a non-empty host. Malformed input returns false, never an error.
func IsValidURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
