package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/doctor"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/validation"
)

func validDoctorFields() doctor.Fields {
	return doctor.Fields{
		Name:           "  Dr. Ada Park ",
		Specialization: "Cardiology",
		Phone:          "(555) 111-2222",
		Email:          "",
	}
}

func TestDoctorService_CreateDoctor(t *testing.T) {
	repo := new(MockDoctorRepository)
	collector := newTestCollector(t)
	svc := NewDoctorService(repo, testLogger(), collector)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *doctor.Doctor) bool {
		return d.Name == "Dr. Ada Park" && d.Phone == "5551112222" && d.Email == nil && d.Status == doctor.StatusActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*doctor.Doctor).ID = 7
	}).Return(nil)

	d, err := svc.CreateDoctor(context.Background(), validDoctorFields())
	require.NoError(t, err)
	assert.Equal(t, int64(7), d.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.DoctorsCreatedTotal))
	repo.AssertExpectations(t)
}

func TestDoctorService_CreateDoctorValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *doctor.Fields)
		field   string
		message string
	}{
		{"blank name", func(f *doctor.Fields) { f.Name = "  " }, "name", "Name is required."},
		{"blank specialization", func(f *doctor.Fields) { f.Specialization = "" }, "specialization", "Specialization is required."},
		{"short phone", func(f *doctor.Fields) { f.Phone = "555-1234" }, "phone", "Phone must be exactly 10 digits."},
		{"bad email", func(f *doctor.Fields) { f.Email = "ada@clinic" }, "email", "Enter a valid email or leave it blank."},
		{"bad status", func(f *doctor.Fields) { f.Status = "RETIRED" }, "status", "Status must be ACTIVE or INACTIVE."},
		{"name checked before phone", func(f *doctor.Fields) { f.Name = ""; f.Phone = "1" }, "name", "Name is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDoctorRepository)
			svc := NewDoctorService(repo, testLogger(), newTestCollector(t))

			f := validDoctorFields()
			tt.mutate(&f)

			_, err := svc.CreateDoctor(context.Background(), f)

			var vErr *validation.Error
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, vErr.Message)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestDoctorService_UpdateDoctorNotFound(t *testing.T) {
	repo := new(MockDoctorRepository)
	svc := NewDoctorService(repo, testLogger(), newTestCollector(t))

	repo.On("Update", mock.Anything, mock.MatchedBy(func(d *doctor.Doctor) bool { return d.ID == 99 })).
		Return(doctor.ErrDoctorNotFound)

	_, err := svc.UpdateDoctor(context.Background(), 99, validDoctorFields())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Doctor not found (it may have been deleted).")
	repo.AssertExpectations(t)
}

func TestDoctorService_StorageErrorPassesThrough(t *testing.T) {
	repo := new(MockDoctorRepository)
	svc := NewDoctorService(repo, testLogger(), newTestCollector(t))

	storageErr := &domain.StorageError{Op: "list doctors", Err: errors.New("database is locked")}
	repo.On("List", mock.Anything, true).Return(nil, storageErr)

	_, err := svc.ListDoctorOptions(context.Background(), true)
	var se *domain.StorageError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestDoctorService_ListDoctorOptions(t *testing.T) {
	repo := new(MockDoctorRepository)
	svc := NewDoctorService(repo, testLogger(), newTestCollector(t))

	repo.On("List", mock.Anything, true).Return([]*doctor.Doctor{
		{ID: 2, Name: "Dr. Adams", Status: doctor.StatusActive},
		{ID: 1, Name: "Dr. Zhou", Status: doctor.StatusActive},
	}, nil)

	opts, err := svc.ListDoctorOptions(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, []domain.Option{{ID: 2, Label: "Dr. Adams"}, {ID: 1, Label: "Dr. Zhou"}}, opts)
}
