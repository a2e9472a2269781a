package appointment

import "context"

type Repository interface {
	// Create inserts a with its current status. A second BOOKED row for the
	// same doctor and datetime is rejected by the storage engine with
	// ErrDoubleBooking; unknown patient or doctor ids with ErrParticipantNotFound.
	Create(ctx context.Context, a *Appointment) error

	GetByID(ctx context.Context, id int64) (*Appointment, error)

	// UpdateStatus sets the status unconditionally.
	// Returns ErrAppointmentNotFound when no row was affected.
	UpdateStatus(ctx context.Context, id int64, status Status) error

	// List returns appointments ordered by datetime. A non-empty date keeps
	// only rows on that calendar date.
	List(ctx context.Context, date string) ([]*Listing, error)
}
