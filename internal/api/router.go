package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tversen/venue-booking-backend/internal/auth"
	"github.com/tversen/venue-booking-backend/internal/booking"
	bookingHttp "github.com/tversen/venue-booking-backend/internal/booking/http"
	"github.com/tversen/venue-booking-backend/internal/config"
	"github.com/tversen/venue-booking-backend/internal/resource"
	resHttp "github.com/tversen/venue-booking-backend/internal/resource/http"
)

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, request id, metrics,
// recovery) and registering routes for each module.
func NewRouter(
	cfg *config.Config,
	resourceService resource.Service,
	bookingService booking.Service,
	jwtManager *auth.JWTManager,
) *gin.Engine {

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(RequestID())
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(Metrics())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// staffOnly: validates the staff JWT for approval and admin routes.
	staffOnly := auth.StaffRequired(jwtManager)

	resourceHandler := resHttp.NewHandler(resourceService)
	bookingHandler := bookingHttp.NewHandler(bookingService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		resHttp.RegisterRoutes(v1, resourceHandler, staffOnly)
		bookingHttp.RegisterRoutes(v1, bookingHandler, staffOnly)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
