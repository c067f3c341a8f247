package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tversen/venue-booking-backend/internal/auth"
	"github.com/tversen/venue-booking-backend/internal/config"
	"github.com/tversen/venue-booking-backend/internal/db"
	"github.com/tversen/venue-booking-backend/internal/resource"
)

// seedResource mirrors the fixture file layout.
type seedResource struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Mode                string   `json:"mode"`
	Capacity            int      `json:"capacity"`
	WorkingDays         []string `json:"working_days"`
	DayStart            string   `json:"day_start"`
	DayEnd              string   `json:"day_end"`
	BreakStart          string   `json:"break_start"`
	BreakEnd            string   `json:"break_end"`
	SlotDurationMinutes int      `json:"slot_duration_minutes"`
	BufferMinutes       int      `json:"buffer_minutes"`
}

// Seeds resources from a JSON fixture and optionally mints a staff token for
// poking at the admin routes locally.
func main() {
	fixture := flag.String("fixture", "fixtures/resources.json", "path to the resource fixture file")
	tokenFor := flag.String("token-for", "", "print a staff token for the given staff name and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if *tokenFor != "" {
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTokenTTL)
		token, err := jwtManager.GenerateToken("staff-seed", *tokenFor)
		if err != nil {
			log.Fatalf("failed to generate token: %v", err)
		}
		fmt.Println(token)
		return
	}

	data, err := os.ReadFile(*fixture)
	if err != nil {
		log.Fatalf("failed to read fixture: %v", err)
	}

	var seeds []seedResource
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Fatalf("failed to parse fixture: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DBDSN, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	service := resource.NewService(resource.NewPgxRepository(pool))

	for _, s := range seeds {
		capacity := s.Capacity
		if capacity == 0 {
			capacity = 1
		}
		res, err := service.Create(ctx, resource.CreateRequest{
			Name:                s.Name,
			Description:         s.Description,
			Mode:                s.Mode,
			Capacity:            capacity,
			WorkingDays:         s.WorkingDays,
			DayStart:            s.DayStart,
			DayEnd:              s.DayEnd,
			BreakStart:          s.BreakStart,
			BreakEnd:            s.BreakEnd,
			SlotDurationMinutes: s.SlotDurationMinutes,
			BufferMinutes:       s.BufferMinutes,
		})
		if err != nil {
			log.Fatalf("failed to seed %q: %v", s.Name, err)
		}
		fmt.Printf("seeded %s (%s, %s)\n", res.Name, res.Mode, res.ID)
	}
}
