package appointment

import "github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"

var (
	ErrAppointmentNotFound = &domain.NotFoundError{Resource: "appointment"}

	// ErrParticipantNotFound is returned when a booking references a patient
	// or doctor that does not exist. The foreign key check cannot tell which.
	ErrParticipantNotFound = &domain.NotFoundError{Resource: "patient or doctor"}

	ErrDoubleBooking = &domain.ConflictError{
		Message: "That doctor already has an appointment at this time. Choose a different time.",
	}
)
