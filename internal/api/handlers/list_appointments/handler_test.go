package list_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barber-BookingService/internal/service/appointments/models"
)

type mockService struct {
	resp       *models.AppointmentListResponse
	err        error
	lastFilter *models.ListAppointmentsFilter
	calls      int
}

func (m *mockService) List(_ context.Context, filter *models.ListAppointmentsFilter) (*models.AppointmentListResponse, error) {
	m.calls++
	m.lastFilter = filter
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func emptyList() *models.AppointmentListResponse {
	return &models.AppointmentListResponse{Appointments: []*models.AppointmentResponse{}}
}

func doRequest(t *testing.T, handler *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_NoFilter(t *testing.T) {
	svc := &mockService{resp: emptyList()}
	handler := NewHandler(svc, nopLogger{})

	rec := doRequest(t, handler, "/api/v1/appointments")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.lastFilter)
}

func TestHandle_BarberDayFilter(t *testing.T) {
	svc := &mockService{resp: emptyList()}
	handler := NewHandler(svc, nopLogger{})

	rec := doRequest(t, handler, "/api/v1/appointments?barberId=3&date=2024-06-10")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastFilter)
	assert.Equal(t, int64(3), svc.lastFilter.BarberID)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), svc.lastFilter.Date)
}

func TestHandle_InvalidFilter(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"date without barber", "/api/v1/appointments?date=2024-06-10"},
		{"barber without date", "/api/v1/appointments?barberId=3"},
		{"malformed barber id", "/api/v1/appointments?barberId=carlos&date=2024-06-10"},
		{"negative barber id", "/api/v1/appointments?barberId=-1&date=2024-06-10"},
		{"malformed date", "/api/v1/appointments?barberId=3&date=10/06/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{resp: emptyList()}
			handler := NewHandler(svc, nopLogger{})

			rec := doRequest(t, handler, tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, svc.calls)
		})
	}
}
