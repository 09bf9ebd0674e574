package booking

import (
	"regexp"
	"strings"
)

// ContactInfo carries the user-entered booking form fields. Email and
// PickupLocation are required, the rest is optional.
type ContactInfo struct {
	Name           string
	Email          string
	Phone          string
	PickupLocation string
	Notes          string
}

var nonDigits = regexp.MustCompile(`\D`)

// SanitizePhone strips every non-digit character. Applied on each edit, not
// just at submit time, so the stored phone is always digits-only.
func SanitizePhone(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

// Sanitized trims all fields and normalizes the phone.
func (c ContactInfo) Sanitized() ContactInfo {
	return ContactInfo{
		Name:           strings.TrimSpace(c.Name),
		Email:          strings.TrimSpace(c.Email),
		Phone:          SanitizePhone(c.Phone),
		PickupLocation: strings.TrimSpace(c.PickupLocation),
		Notes:          strings.TrimSpace(c.Notes),
	}
}

// simple local@domain.tld shape; deliberately not a full RFC 5322 check
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ValidationResult struct {
	Errors []string
}

func (r ValidationResult) Valid() bool { return len(r.Errors) == 0 }

// Validate checks the contact fields independently of any selected range. It
// never fails hard; problems come back as human-readable messages.
func Validate(c ContactInfo) ValidationResult {
	c = c.Sanitized()
	var errs []string
	if c.Email == "" {
		errs = append(errs, "Email is required.")
	} else if !emailShape.MatchString(c.Email) {
		errs = append(errs, "Enter a valid email address.")
	}
	if c.PickupLocation == "" {
		errs = append(errs, "Pickup location is required.")
	}
	return ValidationResult{Errors: errs}
}
