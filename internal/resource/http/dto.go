package http

import (
	"time"

	"github.com/tversen/venue-booking-backend/internal/pkg/request"
	"github.com/tversen/venue-booking-backend/internal/resource"
)

type ResourceResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	Mode                string    `json:"mode"`
	Capacity            int       `json:"capacity"`
	WorkingDays         []string  `json:"working_days"`
	DayStart            string    `json:"day_start"`
	DayEnd              string    `json:"day_end"`
	BreakStart          string    `json:"break_start"`
	BreakEnd            string    `json:"break_end"`
	SlotDurationMinutes int       `json:"slot_duration_minutes,omitempty"`
	BufferMinutes       int       `json:"buffer_minutes"`
	Active              bool      `json:"active"`
	CreatedAt           time.Time `json:"created_at"`
}

func NewResponse(r *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		Mode:                string(r.Mode),
		Capacity:            r.Capacity,
		WorkingDays:         r.WorkingDays,
		DayStart:            r.DayStart,
		DayEnd:              r.DayEnd,
		BreakStart:          r.BreakStart,
		BreakEnd:            r.BreakEnd,
		SlotDurationMinutes: r.SlotDurationMinutes,
		BufferMinutes:       r.BufferMinutes,
		Active:              r.Active,
		CreatedAt:           r.CreatedAt,
	}
}

type CreateResourceRequest struct {
	Name                string   `json:"name" binding:"required"`
	Description         string   `json:"description"`
	Mode                string   `json:"mode" binding:"required,oneof=slot range"`
	Capacity            int      `json:"capacity" binding:"omitempty,min=1"`
	WorkingDays         []string `json:"working_days" binding:"required,min=1"`
	DayStart            string   `json:"day_start" binding:"required"`
	DayEnd              string   `json:"day_end" binding:"required"`
	BreakStart          string   `json:"break_start"`
	BreakEnd            string   `json:"break_end"`
	SlotDurationMinutes int      `json:"slot_duration_minutes" binding:"omitempty,min=1"`
	BufferMinutes       int      `json:"buffer_minutes" binding:"omitempty,min=0"`
}

type UpdateResourceRequest struct {
	Name                *string  `json:"name"`
	Description         *string  `json:"description"`
	Capacity            *int     `json:"capacity" binding:"omitempty,min=1"`
	WorkingDays         []string `json:"working_days"`
	DayStart            *string  `json:"day_start"`
	DayEnd              *string  `json:"day_end"`
	BreakStart          *string  `json:"break_start"`
	BreakEnd            *string  `json:"break_end"`
	SlotDurationMinutes *int     `json:"slot_duration_minutes" binding:"omitempty,min=1"`
	BufferMinutes       *int     `json:"buffer_minutes" binding:"omitempty,min=0"`
	Active              *bool    `json:"active"`
}

type ListResourcesRequest struct {
	request.ListParams
	Mode       string `form:"mode" binding:"omitempty,oneof=slot range"`
	ActiveOnly bool   `form:"active_only"`
}
