package notify

import (
	"go.uber.org/zap"

	"github.com/tversen/venue-booking-backend/internal/booking"
)

// LogNotifier writes notifications to the application log instead of an
// external channel. It is the default when no Kafka brokers are configured,
// which keeps local development runnable without infrastructure.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyRequester(b *booking.Booking, event booking.Event) error {
	n.emit(newMessage(b, event, RecipientGuest))
	return nil
}

func (n *LogNotifier) NotifyResourceOwner(b *booking.Booking, event booking.Event) error {
	n.emit(newMessage(b, event, RecipientOwner))
	return nil
}

func (n *LogNotifier) emit(m Message) {
	n.log.Info("booking notification",
		zap.String("event", string(m.Event)),
		zap.String("recipient", string(m.Recipient)),
		zap.String("reference", m.Reference),
		zap.String("resource_id", m.ResourceID),
		zap.String("status", m.Status),
	)
}
