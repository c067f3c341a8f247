package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tversen/venue-booking-backend/internal/pkg/request"
	"github.com/tversen/venue-booking-backend/internal/pkg/response"
	"github.com/tversen/venue-booking-backend/internal/resource"
)

type Handler struct {
	service resource.Service
}

func NewHandler(service resource.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateResourceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if body.Capacity == 0 {
		body.Capacity = 1
	}

	res, err := h.service.Create(c.Request.Context(), resource.CreateRequest{
		Name:                body.Name,
		Description:         body.Description,
		Mode:                body.Mode,
		Capacity:            body.Capacity,
		WorkingDays:         body.WorkingDays,
		DayStart:            body.DayStart,
		DayEnd:              body.DayEnd,
		BreakStart:          body.BreakStart,
		BreakEnd:            body.BreakEnd,
		SlotDurationMinutes: body.SlotDurationMinutes,
		BufferMinutes:       body.BufferMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(res))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByUUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource id"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(res))
}

func (h *Handler) List(c *gin.Context) {
	var query ListResourcesRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	query.Normalize()

	items, total, err := h.service.List(c.Request.Context(), resource.Filter{
		Mode:       query.Mode,
		ActiveOnly: query.ActiveOnly,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]ResourceResponse, len(items))
	for i, r := range items {
		out[i] = NewResponse(r)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(out, query.Page, query.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByUUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource id"})
		return
	}

	var body UpdateResourceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Update(c.Request.Context(), uri.ID, resource.UpdateRequest{
		Name:          body.Name,
		Description:   body.Description,
		Capacity:      body.Capacity,
		WorkingDays:   body.WorkingDays,
		DayStart:      body.DayStart,
		DayEnd:        body.DayEnd,
		BreakStart:    body.BreakStart,
		BreakEnd:      body.BreakEnd,
		SlotDuration:  body.SlotDurationMinutes,
		BufferMinutes: body.BufferMinutes,
		Active:        body.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(res))
}

func (h *Handler) Deactivate(c *gin.Context) {
	var uri request.ByUUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource id"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
