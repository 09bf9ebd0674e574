package dto

// Blocked-submission reasons, surfaced distinctly so the rendering layer can
// point at the calendar, the stay length or the form.
const (
	ReasonRangeIncomplete = "RANGE_INCOMPLETE"
	ReasonMinimumStay     = "MIN_STAY"
	ReasonFieldErrors     = "FIELD_ERRORS"
)

type QuoteView struct {
	Nights           int     `json:"nights"`
	NightlyRate      float64 `json:"nightly_rate"`
	Total            float64 `json:"total"`
	MeetsMinimumStay bool    `json:"meets_minimum_stay"`
}

type SubmissionView struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// SessionSnapshot is the full UI-facing state of one booking session. The
// rendered summary and the enabled/disabled submit affordances follow
// deterministically from it.
type SessionSnapshot struct {
	ID               string         `json:"id"`
	UnitID           string         `json:"unit_id"`
	UnitName         string         `json:"unit_name"`
	NightlyRateCents int64          `json:"nightly_rate_cents"`
	State            string         `json:"state"`
	Start            *string        `json:"start"`
	End              *string        `json:"end"`
	Quote            *QuoteView     `json:"quote,omitempty"`
	Summary          string         `json:"summary"`
	CanSubmit        bool           `json:"can_submit"`
	BlockedReason    string         `json:"blocked_reason,omitempty"`
	FieldErrors      []string       `json:"field_errors,omitempty"`
	Submission       SubmissionView `json:"submission"`
}
