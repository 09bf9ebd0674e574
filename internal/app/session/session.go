package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"vanbook/internal/app/dto"
	"vanbook/internal/domain/availability"
	"vanbook/internal/domain/booking"
	"vanbook/internal/domain/pricing"
	"vanbook/internal/domain/selection"
	"vanbook/internal/domain/shared/dateonly"
)

var (
	ErrRangeIncomplete = errors.New("session: select check-in and check-out first")
	ErrMinimumStay     = errors.New("session: stay is below the minimum nights")
	ErrContactInvalid  = errors.New("session: contact fields failed validation")
)

// BlockReason maps a gate error to the machine-readable reason carried in
// snapshots and 409 responses.
func BlockReason(err error) string {
	switch {
	case errors.Is(err, ErrRangeIncomplete):
		return dto.ReasonRangeIncomplete
	case errors.Is(err, ErrMinimumStay):
		return dto.ReasonMinimumStay
	case errors.Is(err, ErrContactInvalid):
		return dto.ReasonFieldErrors
	default:
		return ""
	}
}

// Session owns the mutable booking state for one unit page view: the
// selection machine, the contact fields and the submission status. The busy
// set is fetched once at creation and read-only afterwards. A single mutex
// gives every transition run-to-completion semantics.
type Session struct {
	mu sync.Mutex

	id         string
	unit       dto.Unit
	machine    *selection.Machine
	calc       pricing.Calculator
	contact    booking.ContactInfo
	submission booking.Submission
}

func New(id string, unit dto.Unit, busy *availability.Set, calc pricing.Calculator) *Session {
	return &Session{
		id:         id,
		unit:       unit,
		machine:    selection.NewMachine(busy),
		calc:       calc,
		submission: booking.Submission{Status: booking.StatusIdle},
	}
}

func (s *Session) ID() string { return s.id }

// Tap feeds a calendar tap through the machine. Rejected taps are absorbed by
// the machine itself; this never fails.
func (s *Session) Tap(d dateonly.Date) dto.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.Tap(d)
	return s.snapshotLocked()
}

// UpdateContact replaces the contact fields, sanitizing as it goes (the phone
// is reduced to digits on every edit, not at submit time).
func (s *Session) UpdateContact(c booking.ContactInfo) dto.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contact = c.Sanitized()
	return s.snapshotLocked()
}

func (s *Session) Snapshot() dto.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// gateLocked checks the shared submission preconditions: complete range,
// minimum stay met, valid contact fields. The returned error identifies the
// first failing gate so callers can surface it distinctly.
func (s *Session) gateLocked() (pricing.Quote, error) {
	r := s.machine.Range()
	if !r.Complete() {
		return pricing.Quote{}, ErrRangeIncomplete
	}
	quote := s.calc.Quote(*r.Start, *r.End, s.unit.NightlyRateCents)
	if !quote.MeetsMinimumStay {
		return quote, ErrMinimumStay
	}
	if !booking.Validate(s.contact).Valid() {
		return quote, ErrContactInvalid
	}
	return quote, nil
}

// BeginSubmission gates, flips the status to Pending and composes the
// payload. The caller performs the network call without holding the session.
func (s *Session) BeginSubmission() (dto.BookingPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quote, err := s.gateLocked()
	if err != nil {
		return dto.BookingPayload{}, err
	}
	s.submission = booking.Submission{Status: booking.StatusPending}
	return s.payloadLocked(quote), nil
}

// FinishSubmission applies the outcome of the latest submit attempt in
// arrival order; a stale response still wins if it arrives last. On success
// the contact inputs are cleared for the next guest action.
func (s *Session) FinishSubmission(result dto.BookingResult, transportErr error) dto.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case transportErr != nil:
		s.submission = booking.Submission{Status: booking.StatusFailed, Reason: "Network error. Please try again."}
	case !result.OK:
		reason := result.Error
		if reason == "" {
			reason = "Failed to send request"
		}
		s.submission = booking.Submission{Status: booking.StatusFailed, Reason: reason}
	default:
		s.submission = booking.Submission{Status: booking.StatusSucceeded}
		s.contact = booking.ContactInfo{}
	}
	return s.snapshotLocked()
}

// ComposeMessage gates and builds the human-readable text for the messaging
// deep link. It performs no status transition: closing the external composer
// is outside this service's visibility.
func (s *Session) ComposeMessage() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quote, err := s.gateLocked()
	if err != nil {
		return "", err
	}
	r := s.machine.Range()
	lastNight := r.End.AddDays(-1)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I'd like to book %s (%s) from %s to %s (%d nights). Total: €%.2f",
		s.unit.Name, s.unit.ID, r.Start, lastNight, quote.Nights, quote.Total())
	if s.contact.Name != "" {
		fmt.Fprintf(&b, "\n\nName: %s", s.contact.Name)
	}
	if s.contact.Email != "" {
		fmt.Fprintf(&b, "\nEmail: %s", s.contact.Email)
	}
	if s.contact.Phone != "" {
		fmt.Fprintf(&b, "\nPhone: %s", s.contact.Phone)
	}
	if s.contact.PickupLocation != "" {
		fmt.Fprintf(&b, "\nPickup location: %s", s.contact.PickupLocation)
	}
	if s.contact.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", s.contact.Notes)
	}
	return b.String(), nil
}

func (s *Session) payloadLocked(quote pricing.Quote) dto.BookingPayload {
	r := s.machine.Range()
	lastNight := r.End.AddDays(-1)

	var equipment strings.Builder
	for i, item := range s.unit.Equipment {
		if i > 0 {
			equipment.WriteString("\n")
		}
		equipment.WriteString("• " + item)
	}

	return dto.BookingPayload{
		Slug:     s.unit.ID,
		Start:    r.Start.String(),
		End:      r.End.String(),
		Nights:   quote.Nights,
		Total:    quote.Total(),
		Email:    s.contact.Email,
		Name:     s.contact.Name,
		Phone:    s.contact.Phone,
		Notes:    s.contact.Notes,
		Location: s.contact.PickupLocation,
		EmailConfirmation: dto.EmailConfirmation{
			To:      s.contact.Email,
			Subject: "Booking Confirmation - " + s.unit.Name,
			Details: dto.EmailDetails{
				CustomerName:   s.contact.Name,
				UnitName:       s.unit.Name,
				CheckIn:        r.Start.String(),
				CheckOut:       lastNight.String(),
				Nights:         quote.Nights,
				Total:          fmt.Sprintf("%.2f", quote.Total()),
				PickupLocation: s.contact.PickupLocation,
				EquipmentList:  equipment.String(),
				CustomerPhone:  s.contact.Phone,
				SpecialNotes:   s.contact.Notes,
			},
		},
	}
}

func (s *Session) snapshotLocked() dto.SessionSnapshot {
	r := s.machine.Range()
	snap := dto.SessionSnapshot{
		ID:               s.id,
		UnitID:           s.unit.ID,
		UnitName:         s.unit.Name,
		NightlyRateCents: s.unit.NightlyRateCents,
		State:            string(s.machine.State()),
		Submission: dto.SubmissionView{
			Status: string(s.submission.Status),
			Reason: s.submission.Reason,
		},
	}
	if r.Start != nil {
		start := r.Start.String()
		snap.Start = &start
	}
	if r.End != nil {
		end := r.End.String()
		snap.End = &end
	}

	if res := booking.Validate(s.contact); !res.Valid() {
		snap.FieldErrors = res.Errors
	}

	switch {
	case r.Complete():
		quote := s.calc.Quote(*r.Start, *r.End, s.unit.NightlyRateCents)
		snap.Quote = &dto.QuoteView{
			Nights:           quote.Nights,
			NightlyRate:      quote.NightlyRate(),
			Total:            quote.Total(),
			MeetsMinimumStay: quote.MeetsMinimumStay,
		}
		snap.Summary = summaryLine(*r.Start, *r.End, quote, s.calc.MinNights)
	case r.Start != nil:
		snap.Summary = fmt.Sprintf("Check-in: %s. Select check-out.", r.Start)
	default:
		snap.Summary = "Select check-in and check-out on the calendar"
	}

	if _, err := s.gateLocked(); err != nil {
		snap.BlockedReason = BlockReason(err)
	} else {
		snap.CanSubmit = true
	}
	return snap
}

func summaryLine(start, end dateonly.Date, quote pricing.Quote, minNights int) string {
	lastNight := end.AddDays(-1)
	unit := "nights"
	if quote.Nights == 1 {
		unit = "night"
	}
	line := fmt.Sprintf("%s → %s · %d %s", start, lastNight, quote.Nights, unit)
	if !quote.MeetsMinimumStay {
		line += fmt.Sprintf(" · minimum %d nights", minNights)
	}
	return line
}
