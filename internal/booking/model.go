package booking

import (
	"time"

	"github.com/tversen/venue-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.NotFound("booking not found")
	ErrResourceNotFound  = apperror.NotFound("resource not found")
	ErrTimeConflict      = apperror.Conflict("requested time is already booked")
	ErrInvalidTransition = apperror.Conflict("booking is not in a state that allows this operation")
	ErrWrongMode         = apperror.BadRequest("operation does not apply to this resource's booking mode")

	ErrInvalidReference = apperror.BadRequest("invalid booking reference")
	ErrInvalidDate      = apperror.BadRequest("date must be in YYYY-MM-DD format")
	ErrInvalidTime      = apperror.BadRequest("time must be in HH:MM format")
	ErrMissingName      = apperror.BadRequest("guest name is required")
	ErrInvalidPhone     = apperror.BadRequest("phone must contain at least 10 digits")
	ErrInvalidEmail     = apperror.BadRequest("email address is invalid")
	ErrInvalidStay      = apperror.BadRequest("check-out must be after check-in")
	ErrInvalidDuration  = apperror.BadRequest("duration must be positive")
	ErrDurationTooLong  = apperror.BadRequest("duration exceeds the working day")
	ErrDayOff           = apperror.BadRequest("resource does not work on the requested day")
	ErrSlotNotOffered   = apperror.BadRequest("start time does not match an offered slot")
	ErrResourceInactive = apperror.Conflict("resource is not accepting bookings")
	ErrPartyTooLarge    = apperror.Conflict("party size exceeds resource capacity")
	ErrNothingToChange  = apperror.BadRequest("nothing to reschedule")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

// IsActive reports whether a booking in this status blocks the calendar.
// Only pending and approved bookings participate in conflict detection.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

// CanTransitionTo encodes the lifecycle state machine: pending may be approved,
// rejected or cancelled; approved may be cancelled or completed. Terminal
// states allow nothing, so a repeated approve/reject fails rather than
// silently succeeding.
func (s Status) CanTransitionTo(next Status) bool {
	switch next {
	case StatusApproved, StatusRejected:
		return s == StatusPending
	case StatusCancelled:
		return s == StatusPending || s == StatusApproved
	case StatusCompleted:
		return s == StatusApproved
	default:
		return false
	}
}

// Booking is a request to occupy a resource, gated by the approval workflow.
// Slot-style bookings carry Date/StartTime/DurationMinutes; range-style
// bookings carry CheckIn/CheckOut. Which set is populated follows the owning
// resource's mode and the two are never mixed.
type Booking struct {
	ID         BookingID
	ResourceID string

	GuestName  string
	GuestPhone string
	GuestEmail string
	PartySize  int

	// Slot-style fields (local, caller-supplied; no timezone math).
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	DurationMinutes int

	// Range-style fields.
	CheckIn  string // YYYY-MM-DD
	CheckOut string // YYYY-MM-DD, exclusive: checkout day is free for new check-in

	Status    Status
	Notes     string
	CreatedAt time.Time
}

// IsActive reports whether the booking currently blocks its resource.
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// IsRange reports whether the booking occupies whole days.
func (b *Booking) IsRange() bool {
	return b.CheckIn != ""
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ResourceID string
	Status     string
	Date       string // slot-style date filter, YYYY-MM-DD
	Page       int
	PageSize   int
}
