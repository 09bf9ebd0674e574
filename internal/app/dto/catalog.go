package dto

// Unit is the catalog entry backing one booking page: identity, display data
// and the nightly rate the quote derives from.
type Unit struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NightlyRateCents int64    `json:"nightly_rate_cents"`
	Photos           []string `json:"photos,omitempty"`
	Equipment        []string `json:"equipment,omitempty"`
	Description      string   `json:"description,omitempty"`
}
