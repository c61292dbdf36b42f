package ledger

import "context"

type Repository interface {
	// Get returns the singleton stats row, creating the zeroed row on first
	// access.
	Get(ctx context.Context) (*Stats, error)
	// GetForUpdate locks the stats row for the rest of the transaction.
	GetForUpdate(ctx context.Context) (*Stats, error)
	Save(ctx context.Context, s *Stats) error
}
