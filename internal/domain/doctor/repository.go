package doctor

import "context"

type Repository interface {
	// Create inserts d and sets d.ID.
	Create(ctx context.Context, d *Doctor) error

	// GetByID returns ErrDoctorNotFound if no row has the id.
	GetByID(ctx context.Context, id int64) (*Doctor, error)

	// Update overwrites every mutable column of the row with d.ID.
	// Returns ErrDoctorNotFound when no row was affected.
	Update(ctx context.Context, d *Doctor) error

	// List returns doctors ordered by name, optionally only ACTIVE ones.
	List(ctx context.Context, activeOnly bool) ([]*Doctor, error)
}
