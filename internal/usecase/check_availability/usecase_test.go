package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	"github.com/m04kA/Barber-BookingService/pkg/ptr"
)

type mockRepo struct {
	count    int
	err      error
	lastSlot domain.Slot
	lastExcl *int64
	onCount  func() // выполняется один раз перед возвратом результата
}

func (m *mockRepo) CountAtSlot(_ context.Context, slot domain.Slot, excludeID *int64) (int, error) {
	m.lastSlot = slot
	m.lastExcl = excludeID
	if m.onCount != nil {
		hook := m.onCount
		m.onCount = nil
		hook()
	}
	return m.count, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		BarberID: 1,
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:     "10:00",
	}
}

func TestExecute_FreeSlot(t *testing.T) {
	repo := &mockRepo{count: 0}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.Available)

	// Дата запроса приколачивается к полудню UTC перед обращением к хранилищу
	assert.Equal(t, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC), repo.lastSlot.Date)
}

func TestExecute_TakenSlot(t *testing.T) {
	repo := &mockRepo{count: 1}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_ExcludesOwnAppointment(t *testing.T) {
	repo := &mockRepo{count: 0}
	uc := NewUseCase(repo, nopLogger{})

	req := validRequest()
	req.ExcludeAppointmentID = ptr.Ptr(int64(55))

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, repo.lastExcl)
	assert.Equal(t, int64(55), *repo.lastExcl)
}

func TestExecute_SupersededCheckAnswersWithLatestResult(t *testing.T) {
	// Пока первая проверка ждала хранилище, вторая успела завершиться
	// и увидела занятый слот. Первая не должна ответить «свободно» поверх
	// более позднего «занято».
	repo := &mockRepo{}
	uc := NewUseCase(repo, nopLogger{})

	repo.onCount = func() {
		repo.count = 1
		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		require.False(t, resp.Available)
		repo.count = 0
	}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockRepo{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing barber", func(r *Request) { r.BarberID = 0 }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing time", func(r *Request) { r.Time = "" }},
		{"malformed time", func(r *Request) { r.Time = "10am" }},
		{"lunch break", func(r *Request) { r.Time = "12:00" }},
		{"off-grid time", func(r *Request) { r.Time = "10:15" }},
		{"bad exclude id", func(r *Request) { r.ExcludeAppointmentID = ptr.Ptr(int64(0)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
