package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@b.com", true},
		{"local.part+tag@sub.domain.org", true},
		{"abc", false},
		{"a@b", false},
		{"", false},
		{"a @b.com", false},
		{"@b.com", false},
		{"a@b.", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			res := Validate(ContactInfo{Email: tt.email, PickupLocation: "Valletta"})
			assert.Equal(t, tt.ok, res.Valid(), "errors: %v", res.Errors)
		})
	}
}

func TestValidatePickupLocation(t *testing.T) {
	res := Validate(ContactInfo{Email: "a@b.com", PickupLocation: "   "})
	assert.False(t, res.Valid())
	assert.Contains(t, res.Errors, "Pickup location is required.")
}

func TestValidateAggregatesMessages(t *testing.T) {
	res := Validate(ContactInfo{})
	assert.Equal(t, []string{"Email is required.", "Pickup location is required."}, res.Errors)
}

func TestOptionalFieldsNeverBlock(t *testing.T) {
	res := Validate(ContactInfo{Email: "a@b.com", PickupLocation: "Airport", Name: "", Phone: "", Notes: ""})
	assert.True(t, res.Valid())
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"+356 9912 3456", "35699123456"},
		{"(079) 12-34", "0791234"},
		{"abc", ""},
		{"123", "123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizePhone(tt.raw), tt.raw)
	}
}

func TestSanitizedTrims(t *testing.T) {
	c := ContactInfo{Name: "  Ada ", Email: " a@b.com ", Phone: "+1 23", PickupLocation: " Airport ", Notes: " none "}.Sanitized()
	assert.Equal(t, ContactInfo{Name: "Ada", Email: "a@b.com", Phone: "123", PickupLocation: "Airport", Notes: "none"}, c)
}
