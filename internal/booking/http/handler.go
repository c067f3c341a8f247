package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tversen/venue-booking-backend/internal/booking"
	"github.com/tversen/venue-booking-backend/internal/pkg/response"
	resHttp "github.com/tversen/venue-booking-backend/internal/resource/http"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Slots answers "when can I come in?" for slot-style resources.
func (h *Handler) Slots(c *gin.Context) {
	var query SlotsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), query.ResourceID, query.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, SlotsResponse{
		ResourceID: query.ResourceID,
		Date:       query.Date,
		Slots:      slots,
	})
}

// Available answers "what can host my stay?" for range-style resources.
func (h *Handler) Available(c *gin.Context) {
	var query AvailableResourcesRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	if query.PartySize == 0 {
		query.PartySize = 1
	}

	items, err := h.service.AvailableResources(c.Request.Context(), query.CheckIn, query.CheckOut, query.PartySize)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]resHttp.ResourceResponse, len(items))
	for i, r := range items {
		out[i] = resHttp.NewResponse(r)
	}

	c.JSON(http.StatusOK, gin.H{"items": out})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, warnings, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		ResourceID:      body.ResourceID,
		GuestName:       body.GuestName,
		GuestPhone:      body.GuestPhone,
		GuestEmail:      body.GuestEmail,
		PartySize:       body.PartySize,
		Date:            body.Date,
		StartTime:       body.StartTime,
		DurationMinutes: body.DurationMinutes,
		CheckIn:         body.CheckIn,
		CheckOut:        body.CheckOut,
		Notes:           body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b, warnings))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := booking.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b, nil))
}

func (h *Handler) List(c *gin.Context) {
	var query ListBookingsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	query.Normalize()

	items, total, err := h.service.List(c.Request.Context(), booking.Filter{
		ResourceID: query.ResourceID,
		Status:     query.Status,
		Date:       query.Date,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]BookingResponse, len(items))
	for i, b := range items {
		out[i] = NewBookingResponse(b, nil)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(out, query.Page, query.PageSize, total))
}

// Pending lists the approval queue, oldest first.
func (h *Handler) Pending(c *gin.Context) {
	var query ListBookingsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	query.Normalize()
	query.Status = string(booking.StatusPending)

	items, total, err := h.service.List(c.Request.Context(), booking.Filter{
		ResourceID: query.ResourceID,
		Status:     query.Status,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]BookingResponse, len(items))
	for i, b := range items {
		out[i] = NewBookingResponse(b, nil)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(out, query.Page, query.PageSize, total))
}

func (h *Handler) Approve(c *gin.Context) {
	h.transition(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.transition(c, h.service.Reject)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

func (h *Handler) Complete(c *gin.Context) {
	id, err := booking.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Complete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b, nil))
}

func (h *Handler) Reschedule(c *gin.Context) {
	id, err := booking.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var body RescheduleBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Reschedule(c.Request.Context(), id, booking.RescheduleRequest{
		Date:      body.Date,
		StartTime: body.StartTime,
		CheckIn:   body.CheckIn,
		CheckOut:  body.CheckOut,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b, nil))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := booking.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// transition is the shared plumbing for approve/reject/cancel: parse the
// reference, run the operation, and attach delivery warnings to the result.
func (h *Handler) transition(c *gin.Context, op func(ctx context.Context, id booking.BookingID) (*booking.Booking, booking.Warnings, error)) {
	id, err := booking.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	b, warnings, err := op(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b, warnings))
}
