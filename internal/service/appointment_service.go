package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/validation"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
)

type AppointmentService struct {
	repo      appointment.Repository
	log       *zap.Logger
	collector *metrics.Collector
	now       func() time.Time
}

func NewAppointmentService(
	repo appointment.Repository,
	log *zap.Logger,
	collector *metrics.Collector,
	now func() time.Time,
) *AppointmentService {
	return &AppointmentService{repo: repo, log: log, collector: collector, now: now}
}

// BookAppointment inserts a BOOKED appointment. Whether the patient and doctor
// exist and whether the slot is free are decided by the insert itself.
func (s *AppointmentService) BookAppointment(ctx context.Context, cmd appointment.BookCommand) (*appointment.Appointment, error) {
	a, err := s.buildAppointment(cmd)
	if err != nil {
		s.collector.BookingsRejected.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.collector.BookingsRejected.WithLabelValues(rejectionReason(err)).Inc()
		logStorageFailure(s.log, "failed to book appointment", err,
			zap.Int64("doctor_id", cmd.DoctorID),
			zap.Int64("patient_id", cmd.PatientID),
		)
		return nil, err
	}

	s.collector.AppointmentsBooked.Inc()
	s.log.Info("appointment booked",
		zap.Int64("appointment_id", a.ID),
		zap.Int64("doctor_id", a.DoctorID),
		zap.String("appointment_datetime", a.Datetime),
	)

	return a, nil
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id int64) (*appointment.Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logStorageFailure(s.log, "failed to load appointment", err, zap.Int64("appointment_id", id))
		return nil, err
	}
	return a, nil
}

// ListAppointments returns appointments ordered by datetime. dateFilter is
// either blank or a YYYY-MM-DD calendar date.
func (s *AppointmentService) ListAppointments(ctx context.Context, dateFilter string) ([]*appointment.Listing, error) {
	date, err := validation.ParseDateFilter(dateFilter)
	if err != nil {
		return nil, err
	}

	listings, err := s.repo.List(ctx, date)
	if err != nil {
		logStorageFailure(s.log, "failed to list appointments", err, zap.String("date", date))
		return nil, err
	}
	return listings, nil
}

// UpdateAppointmentStatus sets any of the three statuses from any other.
// Setting the status an appointment already has is refused.
func (s *AppointmentService) UpdateAppointmentStatus(ctx context.Context, id int64, rawStatus string) error {
	status, err := validation.AppointmentStatus(rawStatus)
	if err != nil {
		return err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logStorageFailure(s.log, "failed to load appointment", err, zap.Int64("appointment_id", id))
		return err
	}
	if current.Status == status {
		return errStatusUnchanged(status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		logStorageFailure(s.log, "failed to update appointment status", err, zap.Int64("appointment_id", id))
		return err
	}

	s.collector.StatusChangesTotal.WithLabelValues(string(status)).Inc()
	s.log.Info("appointment status updated",
		zap.Int64("appointment_id", id),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *AppointmentService) buildAppointment(cmd appointment.BookCommand) (*appointment.Appointment, error) {
	if cmd.PatientID <= 0 {
		return nil, errPatientNotSelected
	}
	if cmd.DoctorID <= 0 {
		return nil, errDoctorNotSelected
	}

	datetime, err := validation.ParseAppointmentDateTime(cmd.Datetime, s.now())
	if err != nil {
		return nil, err
	}

	return &appointment.Appointment{
		PatientID: cmd.PatientID,
		DoctorID:  cmd.DoctorID,
		Datetime:  datetime,
		Reason:    validation.OptionalText(cmd.Reason),
		Status:    appointment.StatusBooked,
	}, nil
}
