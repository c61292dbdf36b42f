package profile

import "context"

type Repository interface {
	// Upsert inserts the profile or replaces the existing row for the same
	// borrower.
	Upsert(ctx context.Context, p *Profile) error
	GetByBorrowerID(ctx context.Context, borrowerID string) (*Profile, error)
}
