package repository

import (
	"context"

	"github.com/premiafi/finance-terms/internal/domain"
)

// FinanceTermRepository defines the interface for finance term data operations
type FinanceTermRepository interface {
	// EnsureSchema creates the FinanceTerms table if it does not exist
	EnsureSchema(ctx context.Context) error

	// Create inserts a new finance term row and fills in the generated id
	Create(ctx context.Context, term *domain.FinanceTerm) error

	// GetByID retrieves a finance term by its id
	GetByID(ctx context.Context, id int64) (*domain.FinanceTerm, error)

	// UpdateStatus sets the status of a finance term, returning the affected row count
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)

	// List retrieves finance terms matching the filter, optionally sorted
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.FinanceTerm, error)

	// CountByStatus returns the number of rows per status value
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// Clear deletes every row; maintenance tooling only
	Clear(ctx context.Context) error
}
