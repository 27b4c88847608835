package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTreasuryRepository persists ledger entries and the starting-balance
// singleton.
type PgxTreasuryRepository struct {
	db *pgxpool.Pool
}

var _ portsrepo.TreasuryRepository = (*PgxTreasuryRepository)(nil)

func NewTreasuryRepository(db *pgxpool.Pool) *PgxTreasuryRepository {
	return &PgxTreasuryRepository{db: db}
}

const transactionColumns = `
	transaction_id, type, amount, category, description, transaction_date,
	event_id, recorded_by, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxTreasuryRepository) scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.Type,
		&t.Amount,
		&t.Category,
		&t.Description,
		&t.TransactionDate,
		&t.EventID,
		&t.RecordedBy,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgxTreasuryRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions (transaction_id, type, amount, category, description,
            transaction_date, event_id, recorded_by, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID,
		txn.Type,
		txn.Amount,
		txn.Category,
		txn.Description,
		txn.TransactionDate,
		txn.EventID,
		txn.RecordedBy,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxTreasuryRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := r.scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTreasuryRepository) FindTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + transactionColumns + `
        FROM transactions
        ORDER BY transaction_date DESC, created_at DESC
        LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()
	return r.collectTransactions(rows)
}

func (r *PgxTreasuryRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
        FROM transactions
        ORDER BY transaction_date ASC, created_at ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query full ledger: %w", err)
	}
	defer rows.Close()
	return r.collectTransactions(rows)
}

func (r *PgxTreasuryRepository) collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *PgxTreasuryRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        UPDATE transactions
        SET type = $1, amount = $2, category = $3, description = $4,
            transaction_date = $5, event_id = $6, last_updated_at = $7, last_updated_by = $8
        WHERE transaction_id = $9;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		txn.Type,
		txn.Amount,
		txn.Category,
		txn.Description,
		txn.TransactionDate,
		txn.EventID,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
		txn.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", mapPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTreasuryRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	// Hard delete, no undo.
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTreasuryRepository) GetStartingBalance(ctx context.Context) (*domain.StartingBalance, error) {
	query := `SELECT amount, balance_date, updated_by, updated_at FROM starting_balance WHERE one_row;`
	var sb domain.StartingBalance
	err := r.db.QueryRow(ctx, query).Scan(&sb.Amount, &sb.Date, &sb.UpdatedBy, &sb.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get starting balance: %w", err)
	}
	return &sb, nil
}

func (r *PgxTreasuryRepository) UpsertStartingBalance(ctx context.Context, sb domain.StartingBalance) error {
	// The table is constrained to a single row; concurrent first-writers land
	// on the same conflict target, so a second row can never appear.
	query := `
        INSERT INTO starting_balance (one_row, amount, balance_date, updated_by, updated_at)
        VALUES (TRUE, $1, $2, $3, $4)
        ON CONFLICT (one_row) DO UPDATE SET
            amount = EXCLUDED.amount,
            balance_date = EXCLUDED.balance_date,
            updated_by = EXCLUDED.updated_by,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.db.Exec(ctx, query, sb.Amount, sb.Date, sb.UpdatedBy, sb.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert starting balance: %w", mapPgError(err))
	}
	return nil
}
