package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tversen/venue-booking-backend/internal/booking"
)

// EmailSender turns notification messages into outbound mail. Delivery is
// logged rather than handed to an SMTP relay; the worker owns retries, so
// Send only has to be idempotent.
type EmailSender struct {
	from string
	log  *zap.Logger
}

func NewEmailSender(from string, log *zap.Logger) *EmailSender {
	return &EmailSender{from: from, log: log}
}

func (s *EmailSender) Send(ctx context.Context, m Message) error {
	if m.Recipient == RecipientGuest && m.GuestEmail == "" {
		s.log.Warn("skipping guest notification without email", zap.String("reference", m.Reference))
		return nil
	}

	s.log.Info("sending email",
		zap.String("from", s.from),
		zap.String("to", s.addressFor(m)),
		zap.String("subject", subjectFor(m)),
		zap.String("reference", m.Reference),
	)
	return nil
}

func (s *EmailSender) addressFor(m Message) string {
	if m.Recipient == RecipientOwner {
		return fmt.Sprintf("owner+%s@venue.local", m.ResourceID)
	}
	return m.GuestEmail
}

func subjectFor(m Message) string {
	switch m.Event {
	case booking.EventSubmitted:
		return fmt.Sprintf("Booking %s received", m.Reference)
	case booking.EventApproved:
		return fmt.Sprintf("Booking %s confirmed", m.Reference)
	case booking.EventRejected:
		return fmt.Sprintf("Booking %s declined", m.Reference)
	case booking.EventCancelled:
		return fmt.Sprintf("Booking %s cancelled", m.Reference)
	case booking.EventReminder:
		return fmt.Sprintf("Reminder for booking %s", m.Reference)
	default:
		return fmt.Sprintf("Update for booking %s", m.Reference)
	}
}
