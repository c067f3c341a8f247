package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tversen/venue-booking-backend/internal/pkg/timex"
	"github.com/tversen/venue-booking-backend/internal/resource"
)

// ResourceDirectory is the read-only view of the resource calendar the engine
// consumes. The admin-facing resource service satisfies it.
type ResourceDirectory interface {
	GetByID(ctx context.Context, id string) (*resource.Resource, error)
	List(ctx context.Context, filter resource.Filter) ([]*resource.Resource, int, error)
}

// RescheduleRequest updates a booking's interval in place. Nil fields keep
// their current value. Date/StartTime apply to slot-mode bookings,
// CheckIn/CheckOut to range-mode ones.
type RescheduleRequest struct {
	Date      *string
	StartTime *string
	CheckIn   *string
	CheckOut  *string
}

// Warnings carry non-fatal follow-up failures (notification delivery) attached
// to an otherwise successful transition.
type Warnings []string

type Service interface {
	AvailableSlots(ctx context.Context, resourceID, date string) ([]string, error)
	AvailableResources(ctx context.Context, checkIn, checkOut string, partySize int) ([]*resource.Resource, error)

	Create(ctx context.Context, req CreateRequest) (*Booking, Warnings, error)
	Get(ctx context.Context, id BookingID) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	Approve(ctx context.Context, id BookingID) (*Booking, Warnings, error)
	Reject(ctx context.Context, id BookingID) (*Booking, Warnings, error)
	Cancel(ctx context.Context, id BookingID) (*Booking, Warnings, error)
	Complete(ctx context.Context, id BookingID) (*Booking, error)
	Reschedule(ctx context.Context, id BookingID, req RescheduleRequest) (*Booking, error)
	Delete(ctx context.Context, id BookingID) error
}

type service struct {
	store     Store
	resources ResourceDirectory
	notifier  Notifier
	log       *zap.Logger
}

// NewService wires the lifecycle component with its collaborators. All
// dependencies are passed in here; nothing is resolved from shared process
// state.
func NewService(store Store, resources ResourceDirectory, notifier Notifier, log *zap.Logger) Service {
	return &service{
		store:     store,
		resources: resources,
		notifier:  notifier,
		log:       log,
	}
}

// AvailableSlots returns the free slot starts for a slot-mode resource on the
// given date: generated calendar slots minus the ones colliding with active
// bookings (buffer included).
func (s *service) AvailableSlots(ctx context.Context, resourceID, date string) ([]string, error) {
	res, err := s.getResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if res.Mode != resource.ModeSlot {
		return nil, ErrWrongMode
	}
	if !res.Active {
		return []string{}, nil
	}

	slots, err := GenerateSlots(res, date)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return slots, nil
	}

	existing, err := s.store.ListActive(ctx, res.ID, date)
	if err != nil {
		return nil, fmt.Errorf("list active bookings failed: %w", err)
	}

	return FreeSlots(slots, res.SlotDurationMinutes, res.BufferMinutes, existing)
}

// AvailableResources returns the active range-mode resources that can host
// the requested stay and party size.
func (s *service) AvailableResources(ctx context.Context, checkIn, checkOut string, partySize int) ([]*resource.Resource, error) {
	in, err := timex.ParseDate(checkIn)
	if err != nil {
		return nil, ErrInvalidDate
	}
	out, err := timex.ParseDate(checkOut)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !out.After(in) {
		return nil, ErrInvalidStay
	}

	// The availability scan must see the whole catalog, so it walks every
	// page rather than trusting one.
	const scanPageSize = 100
	var candidates []*resource.Resource
	for page := 1; ; page++ {
		batch, total, err := s.resources.List(ctx, resource.Filter{
			Mode:       string(resource.ModeRange),
			ActiveOnly: true,
			Page:       page,
			PageSize:   scanPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list resources failed: %w", err)
		}
		candidates = append(candidates, batch...)
		if len(batch) == 0 || len(candidates) >= total {
			break
		}
	}

	free := make([]*resource.Resource, 0, len(candidates))
	for _, res := range candidates {
		if res.Capacity < partySize {
			continue
		}
		existing, err := s.store.ListActive(ctx, res.ID, "")
		if err != nil {
			return nil, fmt.Errorf("list active bookings failed: %w", err)
		}
		busy, err := RangeBusy(checkIn, checkOut, existing, 0)
		if err != nil {
			return nil, err
		}
		if !busy {
			free = append(free, res)
		}
	}
	return free, nil
}

// Create runs the full entry path: validation, fast-path conflict check,
// pending insert, notifications. A conflict detected at commit time by the
// store's uniqueness guard surfaces as the same ErrTimeConflict as the fast
// path, so callers cannot tell the two apart.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, Warnings, error) {
	res, err := s.getResource(ctx, req.ResourceID)
	if err != nil {
		return nil, nil, err
	}

	// Defaults before validation: slot bookings inherit the resource's slot
	// duration, a lone guest counts as a party of one.
	if res.Mode == resource.ModeSlot && req.DurationMinutes == 0 {
		req.DurationMinutes = res.SlotDurationMinutes
	}
	if req.PartySize == 0 {
		req.PartySize = 1
	}

	if err := validateCreate(res, req); err != nil {
		return nil, nil, err
	}

	if err := s.checkConflict(ctx, res, req, 0); err != nil {
		return nil, nil, err
	}

	b := &Booking{
		ResourceID:      res.ID,
		GuestName:       req.GuestName,
		GuestPhone:      req.GuestPhone,
		GuestEmail:      req.GuestEmail,
		PartySize:       req.PartySize,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Status:          StatusPending,
		Notes:           req.Notes,
	}

	if err := s.store.Create(ctx, b); err != nil {
		// Two concurrent creates may both pass the fast path; the store's
		// uniqueness guard lets exactly one insert win.
		if errors.Is(err, ErrTimeConflict) {
			return nil, nil, ErrTimeConflict
		}
		return nil, nil, fmt.Errorf("create booking failed: %w", err)
	}

	var warnings Warnings
	warnings = s.notify(warnings, b, EventSubmitted, true)
	warnings = s.notify(warnings, b, EventSubmitted, false)

	return b, warnings, nil
}

func (s *service) Get(ctx context.Context, id BookingID) (*Booking, error) {
	return s.store.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.store.List(ctx, filter)
}

// Approve confirms a pending booking and tells the guest. The store already
// guarantees no second active booking holds the same interval (pending
// bookings block the calendar too), so no conflict re-check happens here.
func (s *service) Approve(ctx context.Context, id BookingID) (*Booking, Warnings, error) {
	return s.transition(ctx, id, StatusApproved, EventApproved)
}

// Reject declines a pending booking and tells the guest to pick another time.
func (s *service) Reject(ctx context.Context, id BookingID) (*Booking, Warnings, error) {
	return s.transition(ctx, id, StatusRejected, EventRejected)
}

// Cancel withdraws a pending or approved booking.
func (s *service) Cancel(ctx context.Context, id BookingID) (*Booking, Warnings, error) {
	return s.transition(ctx, id, StatusCancelled, EventCancelled)
}

// Complete marks an approved booking as carried out. No notification; the
// guest was there.
func (s *service) Complete(ctx context.Context, id BookingID) (*Booking, error) {
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(StatusCompleted) {
		return nil, ErrInvalidTransition
	}
	return s.store.UpdateStatus(ctx, id, StatusCompleted)
}

// Reschedule moves a booking to a new interval without touching its status.
// The new interval is validated against every other active booking; the
// booking's own prior interval never blocks itself.
func (s *service) Reschedule(ctx context.Context, id BookingID, req RescheduleRequest) (*Booking, error) {
	if req.Date == nil && req.StartTime == nil && req.CheckIn == nil && req.CheckOut == nil {
		return nil, ErrNothingToChange
	}

	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	res, err := s.getResource(ctx, b.ResourceID)
	if err != nil {
		return nil, err
	}

	next := CreateRequest{
		ResourceID:      b.ResourceID,
		GuestName:       b.GuestName,
		GuestPhone:      b.GuestPhone,
		GuestEmail:      b.GuestEmail,
		PartySize:       b.PartySize,
		Date:            b.Date,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Notes:           b.Notes,
	}
	switch res.Mode {
	case resource.ModeRange:
		if req.Date != nil || req.StartTime != nil {
			return nil, ErrWrongMode
		}
		if req.CheckIn != nil {
			next.CheckIn = *req.CheckIn
		}
		if req.CheckOut != nil {
			next.CheckOut = *req.CheckOut
		}
	default:
		if req.CheckIn != nil || req.CheckOut != nil {
			return nil, ErrWrongMode
		}
		if req.Date != nil {
			next.Date = *req.Date
		}
		if req.StartTime != nil {
			next.StartTime = *req.StartTime
		}
	}

	if err := validateCreate(res, next); err != nil {
		return nil, err
	}
	if err := s.checkConflict(ctx, res, next, b.ID); err != nil {
		return nil, err
	}

	b.Date = next.Date
	b.StartTime = next.StartTime
	b.CheckIn = next.CheckIn
	b.CheckOut = next.CheckOut

	if err := s.store.UpdateSchedule(ctx, b); err != nil {
		if errors.Is(err, ErrTimeConflict) {
			return nil, ErrTimeConflict
		}
		return nil, fmt.Errorf("update booking schedule failed: %w", err)
	}
	return b, nil
}

// Delete physically removes a booking. Exposed for the orchestration layer's
// explicit delete operation; normal flows end bookings via cancel.
func (s *service) Delete(ctx context.Context, id BookingID) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// transition applies one step of the state machine and notifies the guest.
func (s *service) transition(ctx context.Context, id BookingID, next Status, event Event) (*Booking, Warnings, error) {
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !b.Status.CanTransitionTo(next) {
		return nil, nil, ErrInvalidTransition
	}

	updated, err := s.store.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, nil, fmt.Errorf("update booking status failed: %w", err)
	}

	var warnings Warnings
	warnings = s.notify(warnings, updated, event, true)

	return updated, warnings, nil
}

// checkConflict is the fast-path collision check against the bookings
// currently on the calendar. The store's uniqueness guard remains the last
// line of defense for races that slip past it.
func (s *service) checkConflict(ctx context.Context, res *resource.Resource, req CreateRequest, exclude BookingID) error {
	var listDate string
	if res.Mode == resource.ModeSlot {
		listDate = req.Date
	}
	existing, err := s.store.ListActive(ctx, res.ID, listDate)
	if err != nil {
		return fmt.Errorf("list active bookings failed: %w", err)
	}

	var busy bool
	if res.Mode == resource.ModeRange {
		busy, err = RangeBusy(req.CheckIn, req.CheckOut, existing, exclude)
	} else {
		var start int
		start, err = timex.ParseMinutes(req.StartTime)
		if err != nil {
			return ErrInvalidTime
		}
		busy, err = SlotBusy(start, req.DurationMinutes, res.BufferMinutes, existing, exclude)
	}
	if err != nil {
		return err
	}
	if busy {
		return ErrTimeConflict
	}
	return nil
}

// notify dispatches one notification and folds a failure into the warning
// list. Delivery problems are logged and reported to the caller, never
// escalated into a failure of the transition itself.
func (s *service) notify(warnings Warnings, b *Booking, event Event, toRequester bool) Warnings {
	var err error
	target := "requester"
	if toRequester {
		err = s.notifier.NotifyRequester(b, event)
	} else {
		target = "resource owner"
		err = s.notifier.NotifyResourceOwner(b, event)
	}
	if err != nil {
		s.log.Warn("notification delivery failed",
			zap.String("booking", b.ID.RefCode()),
			zap.String("event", string(event)),
			zap.String("target", target),
			zap.Error(err),
		)
		warnings = append(warnings, fmt.Sprintf("failed to notify %s of %s", target, event))
	}
	return warnings
}

func (s *service) getResource(ctx context.Context, id string) (*resource.Resource, error) {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("get resource failed: %w", err)
	}
	return res, nil
}
