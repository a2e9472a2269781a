package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/validation"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
)

type PatientService struct {
	repo      patient.Repository
	log       *zap.Logger
	collector *metrics.Collector
	now       func() time.Time
}

func NewPatientService(repo patient.Repository, log *zap.Logger, collector *metrics.Collector, now func() time.Time) *PatientService {
	return &PatientService{
		repo:      repo,
		log:       log,
		collector: collector,
		now:       now,
	}
}

func (s *PatientService) CreatePatient(ctx context.Context, f patient.Fields) (*patient.Patient, error) {
	p, err := buildPatient(f, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		logStorageFailure(s.log, "failed to create patient", err)
		return nil, err
	}

	s.collector.PatientsCreatedTotal.Inc()
	s.log.Info("patient created", zap.Int64("patient_id", p.ID))

	return p, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id int64) (*patient.Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logStorageFailure(s.log, "failed to load patient", err, zap.Int64("patient_id", id))
		return nil, err
	}
	return p, nil
}

func (s *PatientService) UpdatePatient(ctx context.Context, id int64, f patient.Fields) (*patient.Patient, error) {
	p, err := buildPatient(f, s.now())
	if err != nil {
		return nil, err
	}
	p.ID = id

	if err := s.repo.Update(ctx, p); err != nil {
		logStorageFailure(s.log, "failed to update patient", err, zap.Int64("patient_id", id))
		return nil, err
	}

	s.log.Info("patient updated", zap.Int64("patient_id", id))
	return p, nil
}

// ListPatients returns every patient ordered by last name, then first name.
func (s *PatientService) ListPatients(ctx context.Context) ([]*patient.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		logStorageFailure(s.log, "failed to list patients", err)
		return nil, err
	}
	return patients, nil
}

// ListPatientOptions labels each patient "First Last", ordered by last name.
func (s *PatientService) ListPatientOptions(ctx context.Context) ([]domain.Option, error) {
	patients, err := s.ListPatients(ctx)
	if err != nil {
		return nil, err
	}

	opts := make([]domain.Option, 0, len(patients))
	for _, p := range patients {
		opts = append(opts, domain.Option{ID: p.ID, Label: p.FullName()})
	}
	return opts, nil
}

// buildPatient checks fields in form order and stops at the first failure.
func buildPatient(f patient.Fields, now time.Time) (*patient.Patient, error) {
	first, last, err := validation.PersonName(f.FirstName, f.LastName)
	if err != nil {
		return nil, err
	}
	dob, err := validation.ParseDOB(f.DOB, now)
	if err != nil {
		return nil, err
	}
	gender, err := validation.Gender(f.Gender)
	if err != nil {
		return nil, err
	}
	phone, err := validation.NormalizePhone(f.Phone)
	if err != nil {
		return nil, err
	}
	email, err := validation.OptionalEmail(f.Email)
	if err != nil {
		return nil, err
	}

	return &patient.Patient{
		FirstName: first,
		LastName:  last,
		Gender:    gender,
		DOB:       dob,
		Phone:     phone,
		Email:     email,
		Address:   validation.OptionalText(f.Address),
	}, nil
}
