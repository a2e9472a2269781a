package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/doctor"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

var _ doctor.Repository = (*DoctorRepository)(nil)

func (r *DoctorRepository) Create(ctx context.Context, d *doctor.Doctor) (err error) {
	ctx, span := startSpan(ctx, "DoctorRepository.Create")
	defer func() { finish(span, err) }()

	err = r.db.WithContext(ctx).Create(d).Error
	return translate("create doctor", err, nil, nil)
}

func (r *DoctorRepository) GetByID(ctx context.Context, id int64) (_ *doctor.Doctor, err error) {
	ctx, span := startSpan(ctx, "DoctorRepository.GetByID", attribute.Int64("doctor.id", id))
	defer func() { finish(span, err) }()

	var d doctor.Doctor
	if err = r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, translate("get doctor", err, doctor.ErrDoctorNotFound, nil)
	}
	return &d, nil
}

func (r *DoctorRepository) Update(ctx context.Context, d *doctor.Doctor) (err error) {
	ctx, span := startSpan(ctx, "DoctorRepository.Update", attribute.Int64("doctor.id", d.ID))
	defer func() { finish(span, err) }()

	// A map so that a nil email is written as NULL rather than skipped.
	result := r.db.WithContext(ctx).
		Model(&doctor.Doctor{}).
		Where("id = ?", d.ID).
		Updates(map[string]any{
			"name":           d.Name,
			"specialization": d.Specialization,
			"phone":          d.Phone,
			"email":          d.Email,
			"status":         d.Status,
		})
	if result.Error != nil {
		return translate("update doctor", result.Error, nil, nil)
	}
	if result.RowsAffected == 0 {
		return doctor.ErrDoctorNotFound
	}
	return nil
}

func (r *DoctorRepository) List(ctx context.Context, activeOnly bool) (_ []*doctor.Doctor, err error) {
	ctx, span := startSpan(ctx, "DoctorRepository.List", attribute.Bool("doctor.active_only", activeOnly))
	defer func() { finish(span, err) }()

	q := r.db.WithContext(ctx).Model(&doctor.Doctor{})
	if activeOnly {
		q = q.Where("status = ?", doctor.StatusActive)
	}

	doctors := make([]*doctor.Doctor, 0)
	if err = q.Order("name, id").Find(&doctors).Error; err != nil {
		return nil, translate("list doctors", err, nil, nil)
	}
	return doctors, nil
}
