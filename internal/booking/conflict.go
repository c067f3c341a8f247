package booking

import (
	"github.com/tversen/venue-booking-backend/internal/pkg/timex"
)

// SlotBusy decides whether a candidate interval collides with any existing
// active booking for the same resource. Intervals are half-open minute ranges;
// the buffer extends the trailing edge of each *existing* booking, modeling
// turnaround time after it. A candidate starting exactly at an existing
// buffered end does not conflict.
//
// Bookings whose own interval is excluded (reschedule) are skipped via
// excludeID; pass 0 to consider everything.
func SlotBusy(startMin, durationMin, bufferMin int, existing []*Booking, excludeID BookingID) (bool, error) {
	candEnd := startMin + durationMin

	for _, b := range existing {
		if b.ID == excludeID || !b.IsActive() || b.IsRange() {
			continue
		}

		otherStart, err := timex.ParseMinutes(b.StartTime)
		if err != nil {
			return false, err
		}
		otherEnd := otherStart + b.DurationMinutes + bufferMin

		if startMin < otherEnd && otherStart < candEnd {
			return true, nil
		}
	}
	return false, nil
}

// RangeBusy decides whether a candidate [checkIn, checkOut) date range
// collides with any existing active range booking. Ranges are half-open on
// the checkout day: a stay ending the day another begins does not conflict.
func RangeBusy(checkIn, checkOut string, existing []*Booking, excludeID BookingID) (bool, error) {
	candIn, err := timex.ParseDate(checkIn)
	if err != nil {
		return false, ErrInvalidDate
	}
	candOut, err := timex.ParseDate(checkOut)
	if err != nil {
		return false, ErrInvalidDate
	}

	for _, b := range existing {
		if b.ID == excludeID || !b.IsActive() || !b.IsRange() {
			continue
		}

		otherIn, err := timex.ParseDate(b.CheckIn)
		if err != nil {
			return false, err
		}
		otherOut, err := timex.ParseDate(b.CheckOut)
		if err != nil {
			return false, err
		}

		if candIn.Before(otherOut) && otherIn.Before(candOut) {
			return true, nil
		}
	}
	return false, nil
}

// FreeSlots filters generated slot starts down to the ones that do not
// collide with existing active bookings, buffer included.
func FreeSlots(slots []string, durationMin, bufferMin int, existing []*Booking) ([]string, error) {
	free := make([]string, 0, len(slots))
	for _, s := range slots {
		start, err := timex.ParseMinutes(s)
		if err != nil {
			return nil, err
		}
		busy, err := SlotBusy(start, durationMin, bufferMin, existing, 0)
		if err != nil {
			return nil, err
		}
		if !busy {
			free = append(free, s)
		}
	}
	return free, nil
}
