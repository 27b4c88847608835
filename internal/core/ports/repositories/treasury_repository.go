package repositories

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
)

// TreasuryRepository defines persistence operations for the ledger and the
// starting-balance singleton.
type TreasuryRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error)
	// FindAllTransactions returns the full ledger, ordered by transaction date.
	// The balance computation scans this set on every call.
	FindAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// DeleteTransaction removes the row permanently. Returns ErrNotFound when absent.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// GetStartingBalance returns ErrNotFound when the singleton row was never written.
	GetStartingBalance(ctx context.Context) (*domain.StartingBalance, error)
	// UpsertStartingBalance writes the singleton row transactionally; a second
	// writer updates the same row, it can never create a second one.
	UpsertStartingBalance(ctx context.Context, sb domain.StartingBalance) error
}
