package patient

import "context"

type Repository interface {
	// Create inserts p and sets p.ID.
	Create(ctx context.Context, p *Patient) error

	// GetByID returns ErrPatientNotFound if no row has the id.
	GetByID(ctx context.Context, id int64) (*Patient, error)

	// Update overwrites every mutable column of the row with p.ID.
	// Returns ErrPatientNotFound when no row was affected.
	Update(ctx context.Context, p *Patient) error

	// List returns all patients ordered by last name, then first name.
	List(ctx context.Context) ([]*Patient, error)
}
