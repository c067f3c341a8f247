package resource

import (
	"strings"
	"time"

	"github.com/tversen/venue-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.NotFound("resource not found")
	ErrEmptyName         = apperror.BadRequest("name cannot be empty")
	ErrInvalidMode       = apperror.BadRequest("mode must be 'slot' or 'range'")
	ErrInvalidWorkingDay = apperror.BadRequest("invalid working day")
	ErrInvalidTimeOfDay  = apperror.BadRequest("times of day must be in HH:MM format")
	ErrInvalidWindow     = apperror.BadRequest("day end must be after day start")
	ErrInvalidBreak      = apperror.BadRequest("break window must lie within the working window")
	ErrInvalidSlotSize   = apperror.BadRequest("slot duration must be positive")
	ErrInvalidBuffer     = apperror.BadRequest("buffer minutes must not be negative")
	ErrInvalidCapacity   = apperror.BadRequest("capacity must be positive")
)

// Mode selects which conflict semantics apply to a resource.
// A resource is booked either in fixed slots (practitioner) or in whole-day
// ranges (room); the two are never mixed on one resource.
type Mode string

const (
	ModeSlot  Mode = "slot"
	ModeRange Mode = "range"
)

// Resource is a bookable unit: a practitioner's chair, a hotel room.
// The scheduling fields describe its working calendar; the engine treats
// resources as read-only and only administrative routes mutate them.
type Resource struct {
	ID          string
	Name        string
	Description string
	Mode        Mode

	// Capacity is the maximum party size a single booking may bring.
	Capacity int

	// WorkingDays holds lowercase weekday names ("monday".."sunday").
	WorkingDays []string

	// Times of day in local "HH:MM". BreakStart == BreakEnd means no break.
	DayStart   string
	DayEnd     string
	BreakStart string
	BreakEnd   string

	SlotDurationMinutes int
	// BufferMinutes is idle turnaround enforced after each booking.
	BufferMinutes int

	Active    bool
	CreatedAt time.Time
}

// weekdayNames maps time.Weekday onto the stored working-day representation.
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// WorksOn reports whether the resource works on the given weekday.
func (r *Resource) WorksOn(day time.Weekday) bool {
	name := weekdayNames[day]
	for _, d := range r.WorkingDays {
		if d == name {
			return true
		}
	}
	return false
}

// IsValidWorkingDay reports whether name is a recognized lowercase weekday name.
func IsValidWorkingDay(name string) bool {
	for _, n := range weekdayNames {
		if n == strings.ToLower(name) {
			return true
		}
	}
	return false
}

// Filter defines parameters for listing resources.
type Filter struct {
	Mode       string
	ActiveOnly bool
	Page       int
	PageSize   int
}
