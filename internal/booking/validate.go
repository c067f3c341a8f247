package booking

import (
	"slices"
	"strings"
	"unicode"

	"github.com/tversen/venue-booking-backend/internal/pkg/timex"
	"github.com/tversen/venue-booking-backend/internal/resource"
)

// CreateRequest carries a candidate booking into the engine. The orchestration
// layer is responsible for collecting and sanitizing the raw user input; the
// validator only enforces structural validity.
type CreateRequest struct {
	ResourceID string

	GuestName  string
	GuestPhone string
	GuestEmail string
	PartySize  int

	// Slot-style request.
	Date            string
	StartTime       string
	DurationMinutes int

	// Range-style request.
	CheckIn  string
	CheckOut string

	Notes string
}

// validateCreate enforces the entry rules in front of the state machine.
// The rules are independent; the first violated rule is reported.
func validateCreate(res *resource.Resource, req CreateRequest) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return ErrMissingName
	}
	if !validPhone(req.GuestPhone) {
		return ErrInvalidPhone
	}
	if !validEmail(req.GuestEmail) {
		return ErrInvalidEmail
	}
	if !res.Active {
		return ErrResourceInactive
	}
	if req.PartySize > res.Capacity {
		return ErrPartyTooLarge
	}

	switch res.Mode {
	case resource.ModeRange:
		// Cross-mode fields are rejected outright: a stray slot field on a
		// range booking (or vice versa) would flip how the conflict detector
		// classifies the row and silently break the non-overlap invariant.
		if req.Date != "" || req.StartTime != "" || req.DurationMinutes != 0 {
			return ErrWrongMode
		}

		in, err := timex.ParseDate(req.CheckIn)
		if err != nil {
			return ErrInvalidDate
		}
		out, err := timex.ParseDate(req.CheckOut)
		if err != nil {
			return ErrInvalidDate
		}
		if !out.After(in) {
			return ErrInvalidStay
		}

	default: // slot mode
		if req.CheckIn != "" || req.CheckOut != "" {
			return ErrWrongMode
		}

		day, err := timex.ParseDate(req.Date)
		if err != nil {
			return ErrInvalidDate
		}
		start, err := timex.ParseMinutes(req.StartTime)
		if err != nil {
			return ErrInvalidTime
		}
		if req.DurationMinutes < 1 {
			return ErrInvalidDuration
		}
		if !res.WorksOn(day.Weekday()) {
			return ErrDayOff
		}

		dayStart, err := timex.ParseMinutes(res.DayStart)
		if err != nil {
			return err
		}
		dayEnd, err := timex.ParseMinutes(res.DayEnd)
		if err != nil {
			return err
		}
		if req.DurationMinutes > dayEnd-dayStart {
			return ErrDurationTooLong
		}
		if start < dayStart || start+req.DurationMinutes > dayEnd {
			return ErrDurationTooLong
		}

		// The start must be one of the resource's offered slot starts; an
		// off-grid time like 10:17 would fragment the calendar even when it
		// collides with nothing.
		slots, err := GenerateSlots(res, req.Date)
		if err != nil {
			return err
		}
		if !slices.Contains(slots, req.StartTime) {
			return ErrSlotNotOffered
		}
	}

	return nil
}

// validPhone requires at least 10 digit characters; punctuation and spacing
// are ignored, so "+1 (555) 123-4567" passes and "12345" does not.
func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 10
}

// validEmail requires an "@" with a "." somewhere after it. Semantic checks
// (disposable domains, fake names) belong to the orchestration layer.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
