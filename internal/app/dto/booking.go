package dto

// BookingPayload is the body posted to the booking backend. Field names match
// that API's contract; dates are YYYY-MM-DD with End checkout-exclusive.
type BookingPayload struct {
	Slug              string            `json:"slug"`
	Start             string            `json:"start"`
	End               string            `json:"end"`
	Nights            int               `json:"nights"`
	Total             float64           `json:"total"`
	Email             string            `json:"email"`
	Name              string            `json:"name"`
	Phone             string            `json:"phone"`
	Notes             string            `json:"notes"`
	Location          string            `json:"location"`
	EmailConfirmation EmailConfirmation `json:"emailConfirmation"`
}

// EmailConfirmation mirrors the booking fields for the confirmation mail the
// backend sends out.
type EmailConfirmation struct {
	To      string       `json:"to"`
	Subject string       `json:"subject"`
	Details EmailDetails `json:"details"`
}

// EmailDetails uses the checkout-inclusive date (the last occupied night),
// which is what the guest expects to read in a mail.
type EmailDetails struct {
	CustomerName   string `json:"customerName"`
	UnitName       string `json:"vanName"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	Nights         int    `json:"nights"`
	Total          string `json:"total"`
	PickupLocation string `json:"pickupLocation"`
	EquipmentList  string `json:"equipmentList"`
	CustomerPhone  string `json:"customerPhone"`
	SpecialNotes   string `json:"specialNotes"`
}

// BookingResult is the backend's application-level verdict. A transport
// failure never produces one.
type BookingResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
