package auth

import "github.com/gin-gonic/gin"

// GetStaffID returns the authenticated staff member's ID or empty string.
func GetStaffID(c *gin.Context) string {
	if v, ok := c.Get("staffID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetStaffName returns the authenticated staff member's display name or empty string.
func GetStaffName(c *gin.Context) string {
	if v, ok := c.Get("staffName"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
