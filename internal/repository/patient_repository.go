package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/patient"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

var _ patient.Repository = (*PatientRepository)(nil)

func (r *PatientRepository) Create(ctx context.Context, p *patient.Patient) (err error) {
	ctx, span := startSpan(ctx, "PatientRepository.Create")
	defer func() { finish(span, err) }()

	err = r.db.WithContext(ctx).Create(p).Error
	return translate("create patient", err, nil, nil)
}

func (r *PatientRepository) GetByID(ctx context.Context, id int64) (_ *patient.Patient, err error) {
	ctx, span := startSpan(ctx, "PatientRepository.GetByID", attribute.Int64("patient.id", id))
	defer func() { finish(span, err) }()

	var p patient.Patient
	if err = r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate("get patient", err, patient.ErrPatientNotFound, nil)
	}
	return &p, nil
}

func (r *PatientRepository) Update(ctx context.Context, p *patient.Patient) (err error) {
	ctx, span := startSpan(ctx, "PatientRepository.Update", attribute.Int64("patient.id", p.ID))
	defer func() { finish(span, err) }()

	result := r.db.WithContext(ctx).
		Model(&patient.Patient{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"first_name": p.FirstName,
			"last_name":  p.LastName,
			"gender":     p.Gender,
			"dob":        p.DOB,
			"phone":      p.Phone,
			"email":      p.Email,
			"address":    p.Address,
		})
	if result.Error != nil {
		return translate("update patient", result.Error, nil, nil)
	}
	if result.RowsAffected == 0 {
		return patient.ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepository) List(ctx context.Context) (_ []*patient.Patient, err error) {
	ctx, span := startSpan(ctx, "PatientRepository.List")
	defer func() { finish(span, err) }()

	patients := make([]*patient.Patient, 0)
	err = r.db.WithContext(ctx).
		Order("last_name, first_name, id").
		Find(&patients).Error
	if err != nil {
		return nil, translate("list patients", err, nil, nil)
	}
	return patients, nil
}
