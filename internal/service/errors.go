package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")

	errMissingCredentials = &validation.Error{Field: "username", Message: "Enter username and password."}
	errPatientNotSelected = &validation.Error{Field: "patient_id", Message: "Select a patient."}
	errDoctorNotSelected  = &validation.Error{Field: "doctor_id", Message: "Select a doctor."}
)

func errStatusUnchanged(status appointment.Status) error {
	return &validation.Error{Field: "status", Message: "This appointment is already " + string(status) + "."}
}

// logStorageFailure logs err only when it is a *domain.StorageError. Every
// other kind is an expected outcome reported to the caller.
func logStorageFailure(log *zap.Logger, msg string, err error, fields ...zap.Field) {
	var se *domain.StorageError
	if errors.As(err, &se) {
		log.Error(msg, append(fields, zap.String("op", se.Op), zap.Error(se.Err))...)
	}
}

// rejectionReason labels a failed booking for the bookings_rejected metric.
func rejectionReason(err error) string {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return "validation"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "double_booking"
	default:
		return "storage"
	}
}
