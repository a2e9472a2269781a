package repository

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/appointment"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

var _ appointment.Repository = (*AppointmentRepository)(nil)

// Create relies on the foreign keys and the booked-slot unique index. There is
// no read before the insert, so two concurrent bookings of one slot cannot
// both pass.
func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) (err error) {
	ctx, span := startSpan(ctx, "AppointmentRepository.Create",
		attribute.Int64("doctor.id", a.DoctorID),
		attribute.Int64("patient.id", a.PatientID),
	)
	defer func() { finish(span, err) }()

	err = r.db.WithContext(ctx).Omit("Patient", "Doctor").Create(a).Error
	return translate("book appointment", err, appointment.ErrParticipantNotFound, appointment.ErrDoubleBooking)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (_ *appointment.Appointment, err error) {
	ctx, span := startSpan(ctx, "AppointmentRepository.GetByID", attribute.Int64("appointment.id", id))
	defer func() { finish(span, err) }()

	var a appointment.Appointment
	if err = r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, translate("get appointment", err, appointment.ErrAppointmentNotFound, nil)
	}
	return &a, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status appointment.Status) (err error) {
	ctx, span := startSpan(ctx, "AppointmentRepository.UpdateStatus",
		attribute.Int64("appointment.id", id),
		attribute.String("appointment.status", string(status)),
	)
	defer func() { finish(span, err) }()

	result := r.db.WithContext(ctx).
		Model(&appointment.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		// Moving a row back to BOOKED can collide with a newer booking of the slot.
		return translate("update appointment status", result.Error, nil, appointment.ErrDoubleBooking)
	}
	if result.RowsAffected == 0 {
		return appointment.ErrAppointmentNotFound
	}
	return nil
}

type listingRow struct {
	ID         int64
	Datetime   string
	PatientID  int64
	FirstName  string
	LastName   string
	DoctorID   int64
	DoctorName string
	Reason     *string
	Status     appointment.Status
}

func (r *AppointmentRepository) List(ctx context.Context, date string) (_ []*appointment.Listing, err error) {
	ctx, span := startSpan(ctx, "AppointmentRepository.List", attribute.String("appointment.date", date))
	defer func() { finish(span, err) }()

	q := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(`a.id, a.appointment_datetime AS datetime, a.patient_id, p.first_name, p.last_name,
			a.doctor_id, d.name AS doctor_name, a.reason, a.status`).
		Joins("JOIN patients p ON p.id = a.patient_id").
		Joins("JOIN doctors d ON d.id = a.doctor_id")

	if date != "" {
		// The stored datetime starts with the calendar date.
		q = q.Where("a.appointment_datetime LIKE ?", date+" %")
	}

	var rows []listingRow
	if err = q.Order("a.appointment_datetime, a.id").Scan(&rows).Error; err != nil {
		return nil, translate("list appointments", err, nil, nil)
	}

	listings := make([]*appointment.Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, &appointment.Listing{
			ID:          row.ID,
			Datetime:    row.Datetime,
			PatientID:   row.PatientID,
			PatientName: strings.TrimSpace(row.FirstName + " " + row.LastName),
			DoctorID:    row.DoctorID,
			DoctorName:  row.DoctorName,
			Reason:      row.Reason,
			Status:      row.Status,
		})
	}
	return listings, nil
}
