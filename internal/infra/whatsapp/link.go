package whatsapp

import (
	"net/url"
	"strings"
)

const sendEndpoint = "https://api.whatsapp.com/send"

// NormalizePhone reduces a configured contact number to the digits the send
// endpoint expects: everything but digits and "+" is dropped, then the
// leading "+" is stripped (the URL carries the country code bare).
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	return strings.TrimPrefix(b.String(), "+")
}

// Link builds the prefilled-message deep link. With no usable phone the link
// still opens a composer, just without a preselected recipient.
func Link(contactPhone, message string) string {
	params := url.Values{}
	if phone := NormalizePhone(contactPhone); phone != "" {
		params.Set("phone", phone)
	}
	params.Set("text", message)
	return sendEndpoint + "?" + params.Encode()
}
