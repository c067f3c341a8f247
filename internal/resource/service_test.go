package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tversen/venue-booking-backend/internal/pkg/timex"
)

type memRepo struct {
	nextID int
	rows   map[string]*Resource
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, rows: make(map[string]*Resource)}
}

func (r *memRepo) Create(_ context.Context, res *Resource) error {
	res.ID = string(rune('a' + r.nextID))
	r.nextID++
	cp := *res
	r.rows[res.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Resource, error) {
	res, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *memRepo) List(_ context.Context, filter Filter) ([]*Resource, int, error) {
	out := make([]*Resource, 0)
	for _, res := range r.rows {
		if filter.Mode != "" && string(res.Mode) != filter.Mode {
			continue
		}
		if filter.ActiveOnly && !res.Active {
			continue
		}
		cp := *res
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *memRepo) Update(_ context.Context, res *Resource) error {
	if _, ok := r.rows[res.ID]; !ok {
		return ErrNotFound
	}
	cp := *res
	r.rows[res.ID] = &cp
	return nil
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Name:                "Dr. Lindqvist",
		Mode:                "slot",
		Capacity:            1,
		WorkingDays:         []string{"Monday", "tuesday", " WEDNESDAY "},
		DayStart:            "09:00",
		DayEnd:              "17:00",
		BreakStart:          "12:00",
		BreakEnd:            "13:00",
		SlotDurationMinutes: 30,
		BufferMinutes:       10,
	}
}

func TestCreateResource(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes working days and starts active", func(t *testing.T) {
		svc := NewService(newMemRepo())

		res, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		assert.True(t, res.Active)
		assert.Equal(t, []string{"monday", "tuesday", "wednesday"}, res.WorkingDays)
		assert.NotEmpty(t, res.ID)
	})

	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"blank name", func(r *CreateRequest) { r.Name = "  " }, ErrEmptyName},
		{"unknown mode", func(r *CreateRequest) { r.Mode = "hourly" }, ErrInvalidMode},
		{"zero capacity", func(r *CreateRequest) { r.Capacity = 0 }, ErrInvalidCapacity},
		{"bogus weekday", func(r *CreateRequest) { r.WorkingDays = []string{"funday"} }, ErrInvalidWorkingDay},
		{"malformed time", func(r *CreateRequest) { r.DayStart = "9am" }, ErrInvalidTimeOfDay},
		{"window ends before it starts", func(r *CreateRequest) { r.DayEnd = "08:00" }, ErrInvalidWindow},
		{"break outside window", func(r *CreateRequest) { r.BreakStart = "07:00"; r.BreakEnd = "08:00" }, ErrInvalidBreak},
		{"zero slot duration in slot mode", func(r *CreateRequest) { r.SlotDurationMinutes = 0 }, ErrInvalidSlotSize},
		{"negative buffer", func(r *CreateRequest) { r.BufferMinutes = -5 }, ErrInvalidBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newMemRepo())
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("range mode needs no slot duration", func(t *testing.T) {
		svc := NewService(newMemRepo())

		req := validCreateRequest()
		req.Mode = "range"
		req.SlotDurationMinutes = 0
		req.BreakStart = "00:00"
		req.BreakEnd = "00:00"
		req.DayStart = "00:00"
		req.DayEnd = "23:59"

		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	})
}

func TestUpdateResource(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (Service, string) {
		t.Helper()
		svc := NewService(newMemRepo())
		res, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		return svc, res.ID
	}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		svc, id := seed(t)

		buffer := 20
		res, err := svc.Update(ctx, id, UpdateRequest{BufferMinutes: &buffer})
		require.NoError(t, err)

		assert.Equal(t, 20, res.BufferMinutes)
		assert.Equal(t, "09:00", res.DayStart)
		assert.Equal(t, 30, res.SlotDurationMinutes)
	})

	t.Run("schedule is revalidated as a whole", func(t *testing.T) {
		svc, id := seed(t)

		// Moving day end before the existing break must fail even though the
		// break fields themselves are untouched.
		end := "11:00"
		_, err := svc.Update(ctx, id, UpdateRequest{DayEnd: &end})
		assert.ErrorIs(t, err, ErrInvalidBreak)
	})

	t.Run("unknown resource", func(t *testing.T) {
		svc, _ := seed(t)

		name := "New Name"
		_, err := svc.Update(ctx, "missing", UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeactivateResource(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	res, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, res.ID))

	got, err := svc.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestWorksOn(t *testing.T) {
	res := &Resource{WorkingDays: []string{"monday", "friday"}}

	// 2026-01-05 is a Monday.
	assert.True(t, res.WorksOn(mustDate(t, "2026-01-05").Weekday()))
	assert.False(t, res.WorksOn(mustDate(t, "2026-01-06").Weekday()))
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := timex.ParseDate(s)
	require.NoError(t, err)
	return d
}
