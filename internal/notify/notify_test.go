package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tversen/venue-booking-backend/internal/booking"
)

func sampleBooking() *booking.Booking {
	return &booking.Booking{
		ID:         42,
		ResourceID: "res-room",
		GuestName:  "Mika Aaltonen",
		GuestEmail: "mika@example.com",
		GuestPhone: "+358 40 123 4567",
		CheckIn:    "2026-12-01",
		CheckOut:   "2026-12-05",
		Status:     booking.StatusPending,
	}
}

func TestMessageCarriesBookingFields(t *testing.T) {
	m := newMessage(sampleBooking(), booking.EventSubmitted, RecipientGuest)

	assert.Equal(t, "BKG-000042", m.Reference)
	assert.Equal(t, booking.EventSubmitted, m.Event)
	assert.Equal(t, RecipientGuest, m.Recipient)
	assert.Equal(t, "pending", m.Status)
	assert.Equal(t, "2026-12-01", m.CheckIn)
	assert.False(t, m.SentAt.IsZero())
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	require.NoError(t, n.NotifyRequester(sampleBooking(), booking.EventApproved))
	require.NoError(t, n.NotifyResourceOwner(sampleBooking(), booking.EventApproved))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "booking notification", entries[0].Message)
	assert.Equal(t, "guest", entries[0].ContextMap()["recipient"])
	assert.Equal(t, "owner", entries[1].ContextMap()["recipient"])
}

func TestEmailSubjects(t *testing.T) {
	tests := []struct {
		event booking.Event
		want  string
	}{
		{booking.EventSubmitted, "Booking BKG-000042 received"},
		{booking.EventApproved, "Booking BKG-000042 confirmed"},
		{booking.EventRejected, "Booking BKG-000042 declined"},
		{booking.EventCancelled, "Booking BKG-000042 cancelled"},
		{booking.EventReminder, "Reminder for booking BKG-000042"},
	}

	for _, tt := range tests {
		m := newMessage(sampleBooking(), tt.event, RecipientGuest)
		assert.Equal(t, tt.want, subjectFor(m))
	}
}

func TestEmailSenderSkipsGuestWithoutAddress(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sender := NewEmailSender("no-reply@venue.local", zap.New(core))

	b := sampleBooking()
	b.GuestEmail = ""
	m := newMessage(b, booking.EventApproved, RecipientGuest)

	require.NoError(t, sender.Send(context.Background(), m))
	for _, e := range logs.All() {
		assert.NotEqual(t, "sending email", e.Message)
	}
}
