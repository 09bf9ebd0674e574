package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"vanbook/internal/app/dto"
	"vanbook/internal/infra/whatsapp"
)

// Submitter performs the single booking-API call. Implementations distinguish
// transport failures (returned error) from application failures (ok=false).
type Submitter interface {
	Submit(ctx context.Context, payload dto.BookingPayload) (dto.BookingResult, error)
}

// EventPublisher fans out booking lifecycle events. Optional; a nil publisher
// disables fan-out entirely.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte, headers map[string]string) error
}

// Coordinator drives the two submission paths behind the shared precondition
// gate. The API path performs exactly one network call per invocation with no
// automatic retry; the direct-contact path only builds a deep link.
type Coordinator struct {
	Submitter    Submitter
	Events       EventPublisher
	ContactPhone string
	TopicPrefix  string
	Logger       *slog.Logger
}

// Submit runs the API path. A gate failure leaves the submission status
// untouched and comes back as an error for the caller to surface; everything
// past the gate lands in the session's submission status instead.
func (co *Coordinator) Submit(ctx context.Context, s *Session) (dto.SessionSnapshot, error) {
	payload, err := s.BeginSubmission()
	if err != nil {
		return s.Snapshot(), err
	}

	result, submitErr := co.Submitter.Submit(ctx, payload)
	snap := s.FinishSubmission(result, submitErr)

	switch {
	case submitErr != nil:
		co.logWarn("booking submit transport failure", "unit_id", payload.Slug, "error", submitErr)
	case !result.OK:
		co.logWarn("booking submit rejected", "unit_id", payload.Slug, "reason", result.Error)
	default:
		co.logInfo("booking submitted", "unit_id", payload.Slug, "start", payload.Start, "end", payload.End, "nights", payload.Nights)
		co.publishRequested(ctx, payload)
	}
	return snap, nil
}

// WhatsAppLink runs the direct-contact path: gate, compose, build the URL.
// It never touches the submission status.
func (co *Coordinator) WhatsAppLink(s *Session) (string, error) {
	message, err := s.ComposeMessage()
	if err != nil {
		return "", err
	}
	return whatsapp.Link(co.ContactPhone, message), nil
}

func (co *Coordinator) publishRequested(ctx context.Context, payload dto.BookingPayload) {
	if co.Events == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		co.logWarn("booking event encode failed", "unit_id", payload.Slug, "error", err)
		return
	}
	topic := co.TopicPrefix + "booking.requested"
	if err := co.Events.Publish(ctx, topic, payload.Slug, body, map[string]string{"content-type": "application/json"}); err != nil {
		// Event fan-out is best effort; the booking already went through.
		co.logWarn("booking event publish failed", "topic", topic, "error", err)
	}
}

func (co *Coordinator) logInfo(msg string, args ...any) {
	if co.Logger != nil {
		co.Logger.Info(msg, args...)
	}
}

func (co *Coordinator) logWarn(msg string, args ...any) {
	if co.Logger != nil {
		co.Logger.Warn(msg, args...)
	}
}
