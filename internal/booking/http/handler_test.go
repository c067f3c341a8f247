package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tversen/venue-booking-backend/internal/booking"
	"github.com/tversen/venue-booking-backend/internal/resource"
)

// stubService returns canned values; each test sets only what it needs.
type stubService struct {
	slots     []string
	resources []*resource.Resource
	booking   *booking.Booking
	warnings  booking.Warnings
	err       error

	gotID  booking.BookingID
	gotReq booking.CreateRequest
}

func (s *stubService) AvailableSlots(_ context.Context, _, _ string) ([]string, error) {
	return s.slots, s.err
}

func (s *stubService) AvailableResources(_ context.Context, _, _ string, _ int) ([]*resource.Resource, error) {
	return s.resources, s.err
}

func (s *stubService) Create(_ context.Context, req booking.CreateRequest) (*booking.Booking, booking.Warnings, error) {
	s.gotReq = req
	return s.booking, s.warnings, s.err
}

func (s *stubService) Get(_ context.Context, id booking.BookingID) (*booking.Booking, error) {
	s.gotID = id
	return s.booking, s.err
}

func (s *stubService) List(_ context.Context, _ booking.Filter) ([]*booking.Booking, int, error) {
	if s.booking == nil {
		return nil, 0, s.err
	}
	return []*booking.Booking{s.booking}, 1, s.err
}

func (s *stubService) Approve(_ context.Context, id booking.BookingID) (*booking.Booking, booking.Warnings, error) {
	s.gotID = id
	return s.booking, s.warnings, s.err
}

func (s *stubService) Reject(_ context.Context, id booking.BookingID) (*booking.Booking, booking.Warnings, error) {
	s.gotID = id
	return s.booking, s.warnings, s.err
}

func (s *stubService) Cancel(_ context.Context, id booking.BookingID) (*booking.Booking, booking.Warnings, error) {
	s.gotID = id
	return s.booking, s.warnings, s.err
}

func (s *stubService) Complete(_ context.Context, id booking.BookingID) (*booking.Booking, error) {
	s.gotID = id
	return s.booking, s.err
}

func (s *stubService) Reschedule(_ context.Context, id booking.BookingID, _ booking.RescheduleRequest) (*booking.Booking, error) {
	s.gotID = id
	return s.booking, s.err
}

func (s *stubService) Delete(_ context.Context, id booking.BookingID) error {
	s.gotID = id
	return s.err
}

func newTestRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	allowAll := func(c *gin.Context) { c.Next() }
	RegisterRoutes(v1, NewHandler(svc), allowAll)
	return r
}

func sampleBooking() *booking.Booking {
	return &booking.Booking{
		ID:              42,
		ResourceID:      "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		GuestName:       "Mika Aaltonen",
		GuestPhone:      "+358 40 123 4567",
		GuestEmail:      "mika@example.com",
		PartySize:       1,
		Date:            "2026-01-05",
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          booking.StatusPending,
	}
}

func TestCreateEndpoint(t *testing.T) {
	svc := &stubService{booking: sampleBooking(), warnings: booking.Warnings{"failed to notify resource owner of submitted"}}
	router := newTestRouter(svc)

	body := `{
		"resource_id": "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		"guest_name": "Mika Aaltonen",
		"guest_phone": "+358 40 123 4567",
		"guest_email": "mika@example.com",
		"date": "2026-01-05",
		"start_time": "10:00"
	}`

	req := httptest.NewRequest("POST", "/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BKG-000042", resp.Reference)
	assert.Equal(t, "pending", resp.Status)
	// Delivery warnings ride along without failing the request.
	assert.Len(t, resp.Warnings, 1)

	assert.Equal(t, "Mika Aaltonen", svc.gotReq.GuestName)
}

func TestCreateEndpointRejectsBadBody(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest("POST", "/v1/bookings", strings.NewReader(`{"resource_id": "not-a-uuid"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetByReference(t *testing.T) {
	svc := &stubService{booking: sampleBooking()}
	router := newTestRouter(svc)

	t.Run("accepts reference code", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/bookings/BKG-000042", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, booking.BookingID(42), svc.gotID)
	})

	t.Run("accepts raw id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/bookings/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, booking.BookingID(42), svc.gotID)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/bookings/forty-two", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"conflict", booking.ErrTimeConflict, http.StatusConflict},
		{"invalid transition", booking.ErrInvalidTransition, http.StatusConflict},
		{"not found", booking.ErrNotFound, http.StatusNotFound},
		{"validation", booking.ErrInvalidPhone, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubService{err: tt.err})

			req := httptest.NewRequest("POST", "/v1/bookings/42/approve", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestSlotsEndpoint(t *testing.T) {
	svc := &stubService{slots: []string{"09:00", "09:30"}}
	router := newTestRouter(svc)

	req := httptest.NewRequest("GET", "/v1/bookings/slots?resource_id=9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d&date=2026-01-05", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"09:00", "09:30"}, resp.Slots)
	assert.Equal(t, "2026-01-05", resp.Date)
}

func TestDeleteEndpoint(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest("DELETE", "/v1/bookings/BKG-000007", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, booking.BookingID(7), svc.gotID)
}
