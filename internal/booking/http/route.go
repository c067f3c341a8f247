package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, staffOnly gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Public Routes ===
	// Guests browse availability, submit requests, and follow up by reference.
	group.GET("/slots", h.Slots)
	group.GET("/available", h.Available)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.POST("/:id/cancel", h.Cancel)

	// === Staff Routes ===
	staff := group.Group("")
	staff.Use(staffOnly)
	{
		staff.GET("", h.List)
		staff.GET("/pending", h.Pending)
		staff.POST("/:id/approve", h.Approve)
		staff.POST("/:id/reject", h.Reject)
		staff.POST("/:id/complete", h.Complete)
		staff.PATCH("/:id/schedule", h.Reschedule)
		staff.DELETE("/:id", h.Delete)
	}
}
