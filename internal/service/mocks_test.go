package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/doctor"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
)

var testNow = time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newTestCollector(t *testing.T) *metrics.Collector {
	t.Helper()
	return metrics.NewCollector("test", prometheus.NewRegistry())
}

func testLogger() *zap.Logger { return zap.NewNop() }

// MockDoctorRepository is a testify mock of doctor.Repository.
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(ctx context.Context, d *doctor.Doctor) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDoctorRepository) GetByID(ctx context.Context, id int64) (*doctor.Doctor, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*doctor.Doctor); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDoctorRepository) Update(ctx context.Context, d *doctor.Doctor) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDoctorRepository) List(ctx context.Context, activeOnly bool) ([]*doctor.Doctor, error) {
	args := m.Called(ctx, activeOnly)
	if ds, ok := args.Get(0).([]*doctor.Doctor); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPatientRepository is a testify mock of patient.Repository.
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, p *patient.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id int64) (*patient.Patient, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*patient.Patient); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, p *patient.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPatientRepository) List(ctx context.Context) ([]*patient.Patient, error) {
	args := m.Called(ctx)
	if ps, ok := args.Get(0).([]*patient.Patient); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockAppointmentRepository is a testify mock of appointment.Repository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id int64) (*appointment.Appointment, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*appointment.Appointment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id int64, status appointment.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) List(ctx context.Context, date string) ([]*appointment.Listing, error) {
	args := m.Called(ctx, date)
	if ls, ok := args.Get(0).([]*appointment.Listing); ok {
		return ls, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUserRepository is a testify mock of domain.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
