package resource

import (
	"context"
	"strings"

	"github.com/tversen/venue-booking-backend/internal/pkg/timex"
)

type CreateRequest struct {
	Name                string
	Description         string
	Mode                string
	Capacity            int
	WorkingDays         []string
	DayStart            string
	DayEnd              string
	BreakStart          string
	BreakEnd            string
	SlotDurationMinutes int
	BufferMinutes       int
}

type UpdateRequest struct {
	Name          *string
	Description   *string
	Capacity      *int
	WorkingDays   []string
	DayStart      *string
	DayEnd        *string
	BreakStart    *string
	BreakEnd      *string
	SlotDuration  *int
	BufferMinutes *int
	Active        *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	mode := Mode(req.Mode)
	if mode != ModeSlot && mode != ModeRange {
		return nil, ErrInvalidMode
	}

	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	days := make([]string, 0, len(req.WorkingDays))
	for _, d := range req.WorkingDays {
		d = strings.ToLower(strings.TrimSpace(d))
		if !IsValidWorkingDay(d) {
			return nil, ErrInvalidWorkingDay
		}
		days = append(days, d)
	}

	if err := validateSchedule(req.DayStart, req.DayEnd, req.BreakStart, req.BreakEnd); err != nil {
		return nil, err
	}

	if mode == ModeSlot && req.SlotDurationMinutes < 1 {
		return nil, ErrInvalidSlotSize
	}
	if req.BufferMinutes < 0 {
		return nil, ErrInvalidBuffer
	}

	res := &Resource{
		Name:                req.Name,
		Description:         req.Description,
		Mode:                mode,
		Capacity:            req.Capacity,
		WorkingDays:         days,
		DayStart:            req.DayStart,
		DayEnd:              req.DayEnd,
		BreakStart:          req.BreakStart,
		BreakEnd:            req.BreakEnd,
		SlotDurationMinutes: req.SlotDurationMinutes,
		BufferMinutes:       req.BufferMinutes,
		Active:              true,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		res.Name = *req.Name
	}
	if req.Description != nil {
		res.Description = *req.Description
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		res.Capacity = *req.Capacity
	}
	if req.WorkingDays != nil {
		days := make([]string, 0, len(req.WorkingDays))
		for _, d := range req.WorkingDays {
			d = strings.ToLower(strings.TrimSpace(d))
			if !IsValidWorkingDay(d) {
				return nil, ErrInvalidWorkingDay
			}
			days = append(days, d)
		}
		res.WorkingDays = days
	}

	if req.DayStart != nil {
		res.DayStart = *req.DayStart
	}
	if req.DayEnd != nil {
		res.DayEnd = *req.DayEnd
	}
	if req.BreakStart != nil {
		res.BreakStart = *req.BreakStart
	}
	if req.BreakEnd != nil {
		res.BreakEnd = *req.BreakEnd
	}
	if err := validateSchedule(res.DayStart, res.DayEnd, res.BreakStart, res.BreakEnd); err != nil {
		return nil, err
	}

	if req.SlotDuration != nil {
		if res.Mode == ModeSlot && *req.SlotDuration < 1 {
			return nil, ErrInvalidSlotSize
		}
		res.SlotDurationMinutes = *req.SlotDuration
	}
	if req.BufferMinutes != nil {
		if *req.BufferMinutes < 0 {
			return nil, ErrInvalidBuffer
		}
		res.BufferMinutes = *req.BufferMinutes
	}
	if req.Active != nil {
		res.Active = *req.Active
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Deactivate soft-removes a resource from the bookable set. Existing bookings
// are left untouched; the validator rejects new ones against inactive resources.
func (s *service) Deactivate(ctx context.Context, id string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	res.Active = false
	return s.repo.Update(ctx, res)
}

// validateSchedule checks the HH:MM fields and that the break window sits
// inside the working window. An empty break (start == end) is allowed.
func validateSchedule(dayStart, dayEnd, breakStart, breakEnd string) error {
	start, err := timex.ParseMinutes(dayStart)
	if err != nil {
		return ErrInvalidTimeOfDay
	}
	end, err := timex.ParseMinutes(dayEnd)
	if err != nil {
		return ErrInvalidTimeOfDay
	}
	if end <= start {
		return ErrInvalidWindow
	}

	bStart, err := timex.ParseMinutes(breakStart)
	if err != nil {
		return ErrInvalidTimeOfDay
	}
	bEnd, err := timex.ParseMinutes(breakEnd)
	if err != nil {
		return ErrInvalidTimeOfDay
	}
	if bStart == bEnd {
		return nil // no break
	}
	if bEnd < bStart || bStart < start || bEnd > end {
		return ErrInvalidBreak
	}
	return nil
}
