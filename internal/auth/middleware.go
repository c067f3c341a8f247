package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaffRequired is a Gin middleware that validates a staff JWT from Authorization: Bearer <token>.
// It guards the approval panel and administrative resource routes; guest-facing
// availability and booking submission stay open.
func StaffRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		// Store staff info into Gin context for later handlers.
		c.Set("staffID", claims.StaffID)
		c.Set("staffName", claims.Name)

		c.Next()
	}
}
