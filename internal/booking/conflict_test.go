package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tversen/venue-booking-backend/internal/pkg/timex"
)

func slotBooking(id BookingID, start string, duration int, status Status) *Booking {
	return &Booking{
		ID:              id,
		ResourceID:      "res-clinic",
		Date:            "2026-01-05",
		StartTime:       start,
		DurationMinutes: duration,
		Status:          status,
	}
}

func rangeBooking(id BookingID, checkIn, checkOut string, status Status) *Booking {
	return &Booking{
		ID:         id,
		ResourceID: "res-room",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     status,
	}
}

func TestSlotBusy(t *testing.T) {
	existing := []*Booking{slotBooking(1, "10:00", 30, StatusApproved)}

	tests := []struct {
		name     string
		start    string
		duration int
		buffer   int
		busy     bool
	}{
		{"same start", "10:00", 30, 0, true},
		{"overlaps tail", "10:15", 30, 0, true},
		{"starts at end, no buffer", "10:30", 30, 0, false},
		{"starts inside buffer", "10:30", 30, 15, true},
		{"starts at buffered end", "10:45", 30, 15, false},
		{"ends at start", "09:30", 30, 0, false},
		{"long booking swallows existing", "09:00", 120, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := mustMinutes(t, tt.start)
			busy, err := SlotBusy(start, tt.duration, tt.buffer, existing, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.busy, busy)
		})
	}

	t.Run("terminal bookings do not block", func(t *testing.T) {
		gone := []*Booking{
			slotBooking(2, "10:00", 30, StatusCancelled),
			slotBooking(3, "10:00", 30, StatusRejected),
			slotBooking(4, "10:00", 30, StatusCompleted),
		}
		busy, err := SlotBusy(mustMinutes(t, "10:00"), 30, 0, gone, 0)
		require.NoError(t, err)
		assert.False(t, busy)
	})

	t.Run("excluded booking does not block itself", func(t *testing.T) {
		busy, err := SlotBusy(mustMinutes(t, "10:00"), 30, 0, existing, 1)
		require.NoError(t, err)
		assert.False(t, busy)
	})
}

func TestRangeBusy(t *testing.T) {
	existing := []*Booking{rangeBooking(1, "2026-12-01", "2026-12-05", StatusApproved)}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		busy     bool
	}{
		{"identical stay", "2026-12-01", "2026-12-05", true},
		{"overlaps middle", "2026-12-04", "2026-12-06", true},
		{"contained", "2026-12-02", "2026-12-03", true},
		{"checkout day reusable", "2026-12-05", "2026-12-07", false},
		{"ends on checkin day", "2026-11-28", "2026-12-01", false},
		{"spans the whole stay", "2026-11-30", "2026-12-06", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			busy, err := RangeBusy(tt.checkIn, tt.checkOut, existing, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.busy, busy)
		})
	}

	t.Run("cancelled stay does not block", func(t *testing.T) {
		gone := []*Booking{rangeBooking(2, "2026-12-01", "2026-12-05", StatusCancelled)}
		busy, err := RangeBusy("2026-12-01", "2026-12-05", gone, 0)
		require.NoError(t, err)
		assert.False(t, busy)
	})

	t.Run("malformed candidate dates", func(t *testing.T) {
		_, err := RangeBusy("not-a-date", "2026-12-05", existing, 0)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestFreeSlots(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00", "10:30", "11:00"}
	existing := []*Booking{slotBooking(1, "10:00", 30, StatusPending)}

	t.Run("without buffer", func(t *testing.T) {
		free, err := FreeSlots(slots, 30, 0, existing)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00"}, free)
	})

	t.Run("buffer extends the blocked window", func(t *testing.T) {
		free, err := FreeSlots(slots, 30, 15, existing)
		require.NoError(t, err)

		// 10:30 falls inside the 15 minute turnaround after the 10:00 booking.
		assert.Equal(t, []string{"09:00", "09:30", "11:00"}, free)
	})
}

func mustMinutes(t *testing.T, hhmm string) int {
	t.Helper()
	min, err := timex.ParseMinutes(hhmm)
	require.NoError(t, err)
	return min
}
