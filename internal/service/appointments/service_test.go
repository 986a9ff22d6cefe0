package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Barber-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/Barber-BookingService/internal/integrations/clientservice"
	"github.com/m04kA/Barber-BookingService/internal/service/appointments/models"
)

type mockRepo struct {
	appointments map[int64]*domain.Appointment
	daySchedule  []*domain.Appointment
	listErr      error
	lastBarberID int64
	lastDate     time.Time
	completed    []int64
	deleted      []int64
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := m.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (m *mockRepo) List(_ context.Context) ([]*domain.Appointment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domain.Appointment, 0, len(m.appointments))
	for _, appt := range m.appointments {
		out = append(out, appt)
	}
	return out, nil
}

func (m *mockRepo) ListByBarberAndDate(_ context.Context, barberID int64, date time.Time) ([]*domain.Appointment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.lastBarberID = barberID
	m.lastDate = date
	return m.daySchedule, nil
}

func (m *mockRepo) SetCompleted(_ context.Context, id int64) error {
	appt, ok := m.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Completed = true
	m.completed = append(m.completed, id)
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(m.appointments, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockCatalog struct {
	barberErr  error
	serviceErr error
}

func (m *mockCatalog) GetBarberWithGracefulDegradation(_ context.Context, id int64) (*catalogservice.Barber, error) {
	if m.barberErr != nil {
		return nil, m.barberErr
	}
	return &catalogservice.Barber{ID: id, Name: "Carlos", Available: true}, nil
}

func (m *mockCatalog) GetServiceWithGracefulDegradation(_ context.Context, id int64) (*catalogservice.Service, error) {
	if m.serviceErr != nil {
		return nil, m.serviceErr
	}
	return &catalogservice.Service{ID: id, Name: "Corte", Price: 45.0}, nil
}

type mockClients struct {
	err error
}

func (m *mockClients) GetClientWithGracefulDegradation(_ context.Context, id int64) (*clientservice.ClientRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &clientservice.ClientRecord{ID: id, Name: "João"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleAppointment(id int64, revenue float64) *domain.Appointment {
	return &domain.Appointment{
		ID:      id,
		Client:  domain.ClientReference(9),
		Barber:  domain.BarberReference(1),
		Service: domain.ServiceReference(2),
		Date:    time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
		Time:    "10:00",
		Revenue: revenue,
	}
}

func newTestService(repo *mockRepo, catalog *mockCatalog, clients *mockClients) *Service {
	return NewService(repo, catalog, clients, nopLogger{})
}

func TestGetByID_ExpandsReferences(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{50: sampleAppointment(50, 45.0)}}
	svc := newTestService(repo, &mockCatalog{}, &mockClients{})

	resp, err := svc.GetByID(context.Background(), 50)
	require.NoError(t, err)

	assert.Equal(t, int64(50), resp.ID)
	assert.True(t, resp.Barber.IsExpanded())
	assert.True(t, resp.Service.IsExpanded())
	assert.True(t, resp.Client.IsExpanded())
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "10/06/2024", resp.DateDisplay)
}

func TestGetByID_DegradedReferencesStayBare(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{50: sampleAppointment(50, 45.0)}}
	catalog := &mockCatalog{barberErr: catalogservice.ErrServiceDegraded}
	clients := &mockClients{err: clientservice.ErrServiceDegraded}
	svc := newTestService(repo, catalog, clients)

	resp, err := svc.GetByID(context.Background(), 50)
	require.NoError(t, err)

	// Недоступные ссылки остаются голыми id, запрос не падает
	assert.False(t, resp.Barber.IsExpanded())
	assert.Equal(t, int64(1), resp.Barber.ID())
	assert.False(t, resp.Client.IsExpanded())
	assert.True(t, resp.Service.IsExpanded())
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&mockRepo{appointments: map[int64]*domain.Appointment{}}, &mockCatalog{}, &mockClients{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_SumsRevenueSnapshots(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{
		1: sampleAppointment(1, 45.0),
		2: sampleAppointment(2, 60.0),
		3: sampleAppointment(3, 30.0),
	}}
	svc := newTestService(repo, &mockCatalog{}, &mockClients{})

	resp, err := svc.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.InDelta(t, 135.0, resp.TotalRevenue, 0.001)
}

func TestList_FilteredByBarberAndDate(t *testing.T) {
	repo := &mockRepo{daySchedule: []*domain.Appointment{sampleAppointment(1, 45.0)}}
	svc := newTestService(repo, &mockCatalog{}, &mockClients{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsFilter{
		BarberID: 1,
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), repo.lastBarberID)
	// Дата фильтра приколачивается к полудню UTC — так она хранится в базе
	assert.Equal(t, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC), repo.lastDate)
}

func TestList_StorageFailure(t *testing.T) {
	repo := &mockRepo{listErr: errors.New("connection reset")}
	svc := newTestService(repo, &mockCatalog{}, &mockClients{})

	_, err := svc.List(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestComplete(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{50: sampleAppointment(50, 45.0)}}
	svc := newTestService(repo, &mockCatalog{}, &mockClients{})

	resp, err := svc.Complete(context.Background(), 50)
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.Equal(t, []int64{50}, repo.completed)
}

func TestComplete_Idempotent(t *testing.T) {
	appt := sampleAppointment(50, 45.0)
	appt.Completed = true
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{50: appt}}
	svc := newTestService(repo, &mockCatalog{}, &mockClients{})

	// Повторное завершение — успех без записи в хранилище
	resp, err := svc.Complete(context.Background(), 50)
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.Empty(t, repo.completed)
}

func TestComplete_NotFound(t *testing.T) {
	svc := newTestService(&mockRepo{appointments: map[int64]*domain.Appointment{}}, &mockCatalog{}, &mockClients{})

	_, err := svc.Complete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{50: sampleAppointment(50, 45.0)}}
	svc := newTestService(repo, &mockCatalog{}, &mockClients{})

	require.NoError(t, svc.Delete(context.Background(), 50, true))
	assert.Equal(t, []int64{50}, repo.deleted)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{50: sampleAppointment(50, 45.0)}}
	svc := newTestService(repo, &mockCatalog{}, &mockClients{})

	err := svc.Delete(context.Background(), 50, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Empty(t, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(&mockRepo{appointments: map[int64]*domain.Appointment{}}, &mockCatalog{}, &mockClients{})

	err := svc.Delete(context.Background(), 404, true)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
