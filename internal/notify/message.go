package notify

import (
	"time"

	"github.com/tversen/venue-booking-backend/internal/booking"
)

// Recipient identifies which side of a booking a message is addressed to.
type Recipient string

const (
	RecipientGuest Recipient = "guest"
	RecipientOwner Recipient = "owner"
)

// Message is the wire form of a booking notification. It is what the Kafka
// notifier publishes and what the delivery worker consumes.
type Message struct {
	Event      booking.Event `json:"event"`
	Recipient  Recipient     `json:"recipient"`
	Reference  string        `json:"reference"`
	ResourceID string        `json:"resource_id"`
	GuestName  string        `json:"guest_name"`
	GuestEmail string        `json:"guest_email"`
	GuestPhone string        `json:"guest_phone"`
	Status     string        `json:"status"`
	Date       string        `json:"date,omitempty"`
	StartTime  string        `json:"start_time,omitempty"`
	CheckIn    string        `json:"check_in,omitempty"`
	CheckOut   string        `json:"check_out,omitempty"`
	SentAt     time.Time     `json:"sent_at"`
}

func newMessage(b *booking.Booking, event booking.Event, to Recipient) Message {
	return Message{
		Event:      event,
		Recipient:  to,
		Reference:  b.ID.RefCode(),
		ResourceID: b.ResourceID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		Status:     string(b.Status),
		Date:       b.Date,
		StartTime:  b.StartTime,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		SentAt:     time.Now().UTC(),
	}
}
