package http

import (
	"time"

	"github.com/tversen/venue-booking-backend/internal/booking"
	"github.com/tversen/venue-booking-backend/internal/pkg/request"
)

type BookingResponse struct {
	Reference  string `json:"reference"`
	ResourceID string `json:"resource_id"`

	GuestName  string `json:"guest_name"`
	GuestPhone string `json:"guest_phone"`
	GuestEmail string `json:"guest_email,omitempty"`
	PartySize  int    `json:"party_size"`

	Date            string `json:"date,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`

	CheckIn  string `json:"check_in,omitempty"`
	CheckOut string `json:"check_out,omitempty"`

	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Warnings surface notification delivery failures that did not affect
	// the outcome of the operation itself.
	Warnings []string `json:"warnings,omitempty"`
}

func NewBookingResponse(b *booking.Booking, warnings booking.Warnings) BookingResponse {
	return BookingResponse{
		Reference:       b.ID.RefCode(),
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
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		Warnings:        warnings,
	}
}

type CreateBookingRequest struct {
	ResourceID string `json:"resource_id" binding:"required,uuid"`

	GuestName  string `json:"guest_name" binding:"required"`
	GuestPhone string `json:"guest_phone" binding:"required"`
	GuestEmail string `json:"guest_email"`
	PartySize  int    `json:"party_size" binding:"omitempty,min=1"`

	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1"`

	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`

	Notes string `json:"notes"`
}

type RescheduleBookingRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	CheckIn   *string `json:"check_in"`
	CheckOut  *string `json:"check_out"`
}

type ListBookingsRequest struct {
	request.ListParams
	ResourceID string `form:"resource_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled completed"`
	Date       string `form:"date"`
}

type SlotsRequest struct {
	ResourceID string `form:"resource_id" binding:"required,uuid"`
	Date       string `form:"date" binding:"required"`
}

type AvailableResourcesRequest struct {
	CheckIn   string `form:"check_in" binding:"required"`
	CheckOut  string `form:"check_out" binding:"required"`
	PartySize int    `form:"party_size" binding:"omitempty,min=1"`
}

type SlotsResponse struct {
	ResourceID string   `json:"resource_id"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
}
