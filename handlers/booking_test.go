package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vedicjivan/models"
	"vedicjivan/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBookingService captures CreateBooking calls to the handler's
// service dependency.
type recordingBookingService struct {
	created []booking.CreateBookingInput
}

func (s *recordingBookingService) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*models.Booking, error) {
	s.created = append(s.created, input)
	return &models.Booking{ID: "b1", Status: models.BookingPending}, nil
}

func (s *recordingBookingService) GetBooking(ctx context.Context, id string, requester *models.User) (*models.Booking, error) {
	return nil, nil
}

func (s *recordingBookingService) ListBookings(ctx context.Context, requester *models.User, input booking.ListInput) ([]models.Booking, error) {
	return nil, nil
}

func (s *recordingBookingService) CancelBooking(ctx context.Context, id string, requester *models.User) (*models.Booking, error) {
	return nil, nil
}

func (s *recordingBookingService) Confirm(ctx context.Context, id, paymentID string) error {
	return nil
}

func (s *recordingBookingService) OverrideStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	return nil, nil
}

func postCreateBooking(t *testing.T, svc booking.BookingService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("currentUser", &models.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: models.RoleUser})
	c.Request = httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")

	NewBookingHandler(svc).CreateBookingHandler(c)
	return w
}

func TestCreateBookingHandlerAcceptsWellFormedInput(t *testing.T) {
	svc := &recordingBookingService{}
	w := postCreateBooking(t, svc,
		`{"service_slug":"call-consultation","date":"2026-03-10","time_slot":"14:00","duration_minutes":30}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, svc.created, 1)
	assert.Equal(t, "asha@example.com", svc.created[0].UserEmail)
	assert.Equal(t, 30, svc.created[0].DurationMinutes)
}

func TestCreateBookingHandlerRejectsOutOfRangeDurations(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero", `{"service_slug":"premium-kundli","date":"2026-03-10","time_slot":"14:00","duration_minutes":0}`},
		{"negative", `{"service_slug":"premium-kundli","date":"2026-03-10","time_slot":"14:00","duration_minutes":-30}`},
		{"missing", `{"service_slug":"premium-kundli","date":"2026-03-10","time_slot":"14:00"}`},
		{"below minimum", `{"service_slug":"call-consultation","date":"2026-03-10","time_slot":"14:00","duration_minutes":10}`},
		{"above maximum", `{"service_slug":"call-consultation","date":"2026-03-10","time_slot":"14:00","duration_minutes":150}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &recordingBookingService{}
			w := postCreateBooking(t, svc, tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, svc.created, "out-of-range duration must never reach the service")
		})
	}
}

func TestCreateBookingHandlerRejectsMalformedDateAndTime(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"wrong date order", `{"service_slug":"call-consultation","date":"10-03-2026","time_slot":"14:00","duration_minutes":30}`},
		{"unpadded date", `{"service_slug":"call-consultation","date":"2026-3-1","time_slot":"14:00","duration_minutes":30}`},
		{"not a date", `{"service_slug":"call-consultation","date":"tomorrow","time_slot":"14:00","duration_minutes":30}`},
		{"unpadded time", `{"service_slug":"call-consultation","date":"2026-03-10","time_slot":"9:30","duration_minutes":30}`},
		{"out-of-range time", `{"service_slug":"call-consultation","date":"2026-03-10","time_slot":"25:00","duration_minutes":30}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &recordingBookingService{}
			w := postCreateBooking(t, svc, tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, svc.created)
		})
	}
}
