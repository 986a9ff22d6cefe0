package update_appointment

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
)

type mockRepo struct {
	existing  *domain.Appointment
	getErr    error
	count     int
	countErr  error
	lastExcl  *int64
	updated   *domain.Appointment
	updateErr error
}

func (m *mockRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return m.existing, m.getErr
}

func (m *mockRepo) CountAtSlot(_ context.Context, _ domain.Slot, excludeID *int64) (int, error) {
	m.lastExcl = excludeID
	return m.count, m.countErr
}

func (m *mockRepo) Update(_ context.Context, id int64, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	appt.ID = id
	appt.Client = m.existing.Client
	appt.Completed = m.existing.Completed
	appt.CreatedAt = m.existing.CreatedAt
	appt.UpdatedAt = time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)
	m.updated = appt
	return appt, nil
}

type mockCatalog struct {
	barber     *catalogservice.Barber
	barberErr  error
	service    *catalogservice.Service
	serviceErr error
}

func (m *mockCatalog) GetBarber(_ context.Context, _ int64) (*catalogservice.Barber, error) {
	return m.barber, m.barberErr
}

func (m *mockCatalog) GetService(_ context.Context, _ int64) (*catalogservice.Service, error) {
	return m.service, m.serviceErr
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func existingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:      50,
		Client:  domain.ClientReference(9),
		Barber:  domain.BarberReference(1),
		Service: domain.ServiceReference(2),
		Date:    time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
		Time:    "10:00",
		Revenue: 45.0,
	}
}

func defaultCatalog() *mockCatalog {
	return &mockCatalog{
		barber:  &catalogservice.Barber{ID: 3, Name: "Miguel", Available: true},
		service: &catalogservice.Service{ID: 4, Name: "Barba", Price: 60.0, DurationMinutes: 30},
	}
}

func newTestUseCase(repo *mockRepo, catalog *mockCatalog) *UseCase {
	uc := NewUseCase(repo, catalog, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		AppointmentID: 50,
		BarberID:      3,
		ServiceID:     4,
		Date:          time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		Time:          "14:00",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &mockRepo{existing: existingAppointment()}
	uc := newTestUseCase(repo, defaultCatalog())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(50), resp.ID)
	// Клиент записи не меняется при редактировании
	assert.Equal(t, int64(9), resp.ClientID)
	assert.Equal(t, int64(3), resp.BarberID)
	// Revenue переснапшотится из актуальной цены услуги
	assert.Equal(t, 60.0, resp.Revenue)
	assert.Equal(t, time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), resp.Date)

	// Собственная запись исключается из проверки занятости
	require.NotNil(t, repo.lastExcl)
	assert.Equal(t, int64(50), *repo.lastExcl)
}

func TestExecute_MoveToOwnSlot(t *testing.T) {
	// Перенос на тот же слот — валидная операция: собственная запись
	// исключена из пересчета, count остается 0
	repo := &mockRepo{existing: existingAppointment()}
	uc := newTestUseCase(repo, defaultCatalog())

	req := validRequest()
	req.BarberID = 1
	req.ServiceID = 2
	req.Date = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	req.Time = "10:00"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &mockRepo{existing: existingAppointment(), count: 1}
	uc := newTestUseCase(repo, defaultCatalog())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.updated)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	repo := &mockRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	uc := newTestUseCase(repo, defaultCatalog())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_BarberNotFound(t *testing.T) {
	catalog := defaultCatalog()
	catalog.barber = nil
	catalog.barberErr = catalogservice.ErrBarberNotFound
	uc := newTestUseCase(&mockRepo{existing: existingAppointment()}, catalog)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalog := defaultCatalog()
	catalog.service = nil
	catalog.serviceErr = catalogservice.ErrServiceNotFound
	uc := newTestUseCase(&mockRepo{existing: existingAppointment()}, catalog)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	repo := &mockRepo{existing: existingAppointment(), updateErr: appointmentRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, defaultCatalog())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_StorageFailure(t *testing.T) {
	repo := &mockRepo{existing: existingAppointment(), countErr: errors.New("timeout")}
	uc := newTestUseCase(repo, defaultCatalog())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, repo.updated)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&mockRepo{existing: existingAppointment()}, defaultCatalog())

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing id", func(r *Request) { r.AppointmentID = 0 }, ErrInvalidInput},
		{"missing barber", func(r *Request) { r.BarberID = 0 }, ErrInvalidInput},
		{"missing service", func(r *Request) { r.ServiceID = 0 }, ErrInvalidInput},
		{"past date", func(r *Request) { r.Date = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }, ErrInvalidDate},
		{"lunch break", func(r *Request) { r.Time = "12:00" }, ErrInvalidTimeSlot},
		{"malformed time", func(r *Request) { r.Time = "2pm" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
