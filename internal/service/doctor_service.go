package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/doctor"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/validation"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
)

type DoctorService struct {
	repo      doctor.Repository
	log       *zap.Logger
	collector *metrics.Collector
}

func NewDoctorService(repo doctor.Repository, log *zap.Logger, collector *metrics.Collector) *DoctorService {
	return &DoctorService{repo: repo, log: log, collector: collector}
}

func (s *DoctorService) CreateDoctor(ctx context.Context, f doctor.Fields) (*doctor.Doctor, error) {
	d, err := buildDoctor(f)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, d); err != nil {
		logStorageFailure(s.log, "failed to create doctor", err)
		return nil, err
	}

	s.collector.DoctorsCreatedTotal.Inc()
	s.log.Info("doctor created", zap.Int64("doctor_id", d.ID))

	return d, nil
}

func (s *DoctorService) GetDoctor(ctx context.Context, id int64) (*doctor.Doctor, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logStorageFailure(s.log, "failed to load doctor", err, zap.Int64("doctor_id", id))
		return nil, err
	}
	return d, nil
}

// UpdateDoctor applies the same rules as CreateDoctor and overwrites every field.
func (s *DoctorService) UpdateDoctor(ctx context.Context, id int64, f doctor.Fields) (*doctor.Doctor, error) {
	d, err := buildDoctor(f)
	if err != nil {
		return nil, err
	}
	d.ID = id

	if err := s.repo.Update(ctx, d); err != nil {
		logStorageFailure(s.log, "failed to update doctor", err, zap.Int64("doctor_id", id))
		return nil, err
	}

	s.log.Info("doctor updated", zap.Int64("doctor_id", id))
	return d, nil
}

func (s *DoctorService) ListDoctors(ctx context.Context, activeOnly bool) ([]*doctor.Doctor, error) {
	doctors, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		logStorageFailure(s.log, "failed to list doctors", err)
		return nil, err
	}
	return doctors, nil
}

// ListDoctorOptions feeds the doctor picker of the booking form.
func (s *DoctorService) ListDoctorOptions(ctx context.Context, activeOnly bool) ([]domain.Option, error) {
	doctors, err := s.ListDoctors(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	opts := make([]domain.Option, 0, len(doctors))
	for _, d := range doctors {
		opts = append(opts, domain.Option{ID: d.ID, Label: d.Label()})
	}
	return opts, nil
}

func buildDoctor(f doctor.Fields) (*doctor.Doctor, error) {
	name, err := validation.RequiredText("name", "Name", f.Name)
	if err != nil {
		return nil, err
	}
	specialization, err := validation.RequiredText("specialization", "Specialization", f.Specialization)
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
	status, err := validation.DoctorStatus(f.Status)
	if err != nil {
		return nil, err
	}

	return &doctor.Doctor{
		Name:           name,
		Specialization: specialization,
		Phone:          phone,
		Email:          email,
		Status:         status,
	}, nil
}
