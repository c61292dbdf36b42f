package loan

import "context"

type ApplicationRepository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id uint64) (*Application, error)
	// GetByIDForUpdate locks the row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Application, error)
	Save(ctx context.Context, a *Application) error
}

type ActiveLoanRepository interface {
	Create(ctx context.Context, l *ActiveLoan) error
	GetByID(ctx context.Context, id uint64) (*ActiveLoan, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*ActiveLoan, error)
	Save(ctx context.Context, l *ActiveLoan) error
}
