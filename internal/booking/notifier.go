package booking

// Event names a lifecycle moment worth telling humans about.
type Event string

const (
	EventSubmitted Event = "submitted"
	EventApproved  Event = "approved"
	EventRejected  Event = "rejected"
	EventCancelled Event = "cancelled"
	EventReminder  Event = "reminder"
)

// Notifier delivers booking events to the guest and to the resource owner.
// Implementations must not panic on delivery failure; the returned error is
// for logging only. A failed notification never rolls back the state
// transition it follows.
type Notifier interface {
	NotifyRequester(b *Booking, event Event) error
	NotifyResourceOwner(b *Booking, event Event) error
}
