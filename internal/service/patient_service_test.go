package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/validation"
)

func validPatientFields() patient.Fields {
	return patient.Fields{
		FirstName: "Maya",
		LastName:  "Okafor",
		DOB:       "1990-04-12",
		Gender:    "F",
		Phone:     "555.987.6543",
		Email:     " maya@example.com ",
		Address:   "   ",
	}
}

func TestPatientService_CreatePatientNormalizes(t *testing.T) {
	repo := new(MockPatientRepository)
	svc := NewPatientService(repo, testLogger(), newTestCollector(t), fixedNow)

	var stored *patient.Patient
	repo.On("Create", mock.Anything, mock.AnythingOfType("*patient.Patient")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*patient.Patient)
			stored.ID = 3
		}).
		Return(nil)

	p, err := svc.CreatePatient(context.Background(), validPatientFields())
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, "5559876543", stored.Phone)
	require.NotNil(t, stored.Email)
	assert.Equal(t, "maya@example.com", *stored.Email)
	assert.Nil(t, stored.Address)
	assert.Equal(t, patient.GenderFemale, stored.Gender)
}

func TestPatientService_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *patient.Fields)
		message string
	}{
		{"missing last name", func(f *patient.Fields) { f.LastName = ""; f.DOB = "bad" }, "First name and last name are required."},
		{"malformed dob", func(f *patient.Fields) { f.DOB = "2000-02-30"; f.Phone = "1" }, "DOB must be in YYYY-MM-DD format (e.g., 2000-01-31)."},
		{"future dob", func(f *patient.Fields) { f.DOB = "2025-06-16" }, "DOB cannot be in the future."},
		{"dob before 1900", func(f *patient.Fields) { f.DOB = "1899-12-31" }, "DOB must be 1900-01-01 or later."},
		{"bad gender", func(f *patient.Fields) { f.Gender = "X" }, "Gender must be one of M, F, O or N/A."},
		{"phone before email", func(f *patient.Fields) { f.Phone = "12345"; f.Email = "nope" }, "Phone must be exactly 10 digits."},
		{"bad email", func(f *patient.Fields) { f.Email = "@example.com" }, "Enter a valid email or leave it blank."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPatientRepository)
			svc := NewPatientService(repo, testLogger(), newTestCollector(t), fixedNow)

			f := validPatientFields()
			tt.mutate(&f)

			_, err := svc.CreatePatient(context.Background(), f)
			var vErr *validation.Error
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.message, vErr.Message)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPatientService_DOBTodayAccepted(t *testing.T) {
	repo := new(MockPatientRepository)
	svc := NewPatientService(repo, testLogger(), newTestCollector(t), fixedNow)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	f := validPatientFields()
	f.DOB = "2025-06-15"
	p, err := svc.UpdatePatient(context.Background(), 5, f)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, "2025-06-15", p.DOB)
}

func TestPatientService_UpdateMissing(t *testing.T) {
	repo := new(MockPatientRepository)
	svc := NewPatientService(repo, testLogger(), newTestCollector(t), fixedNow)
	repo.On("Update", mock.Anything, mock.Anything).Return(patient.ErrPatientNotFound)

	_, err := svc.UpdatePatient(context.Background(), 5, validPatientFields())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPatientService_GetPatient(t *testing.T) {
	repo := new(MockPatientRepository)
	svc := NewPatientService(repo, testLogger(), newTestCollector(t), fixedNow)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&patient.Patient{ID: 1, FirstName: "Maya", LastName: "Okafor"}, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, patient.ErrPatientNotFound)

	p, err := svc.GetPatient(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Maya Okafor", p.FullName())

	_, err = svc.GetPatient(context.Background(), 2)
	assert.ErrorIs(t, err, patient.ErrPatientNotFound)
}

func TestPatientService_ListPatientOptions(t *testing.T) {
	repo := new(MockPatientRepository)
	svc := NewPatientService(repo, testLogger(), newTestCollector(t), fixedNow)
	repo.On("List", mock.Anything).Return([]*patient.Patient{
		{ID: 4, FirstName: "Carla", LastName: "Alvarez"},
		{ID: 1, FirstName: "Amir", LastName: "Brown"},
	}, nil)

	opts, err := svc.ListPatientOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Option{{ID: 4, Label: "Carla Alvarez"}, {ID: 1, Label: "Amir Brown"}}, opts)
}
