package booking

import (
	"fmt"

	"github.com/tversen/venue-booking-backend/internal/pkg/timex"
	"github.com/tversen/venue-booking-backend/internal/resource"
)

// GenerateSlots produces the ordered list of theoretically bookable start
// times (HH:MM) for a slot-mode resource on the given date. It is pure and
// deterministic: working calendar in, slot starts out.
//
// Starting at day start, the cursor advances by the slot duration. A candidate
// that overlaps the break window at all is skipped and the cursor jumps to the
// end of the break, so no fragment shorter than a full slot is ever emitted.
// A candidate that would run past day end terminates the walk. A date outside
// the resource's working days yields no slots.
func GenerateSlots(res *resource.Resource, date string) ([]string, error) {
	day, err := timex.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !res.WorksOn(day.Weekday()) {
		return []string{}, nil
	}

	dayStart, err := timex.ParseMinutes(res.DayStart)
	if err != nil {
		return nil, fmt.Errorf("resource %s has malformed day start: %w", res.ID, err)
	}
	dayEnd, err := timex.ParseMinutes(res.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("resource %s has malformed day end: %w", res.ID, err)
	}
	breakStart, err := timex.ParseMinutes(res.BreakStart)
	if err != nil {
		return nil, fmt.Errorf("resource %s has malformed break start: %w", res.ID, err)
	}
	breakEnd, err := timex.ParseMinutes(res.BreakEnd)
	if err != nil {
		return nil, fmt.Errorf("resource %s has malformed break end: %w", res.ID, err)
	}

	duration := res.SlotDurationMinutes
	if duration < 1 {
		return nil, fmt.Errorf("resource %s has non-positive slot duration", res.ID)
	}

	hasBreak := breakStart != breakEnd

	slots := make([]string, 0)
	for cursor := dayStart; cursor+duration <= dayEnd; {
		// Half-open overlap with [breakStart, breakEnd): any intersection
		// skips the whole candidate and resumes at the end of the break.
		if hasBreak && cursor < breakEnd && breakStart < cursor+duration {
			cursor = breakEnd
			continue
		}

		slots = append(slots, timex.FormatMinutes(cursor))
		cursor += duration
	}

	return slots, nil
}
