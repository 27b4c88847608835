package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// treasuryService handles the ledger and the balance computation. GetBalance is
// the SOURCE OF TRUTH for the treasury balance: every surface that shows a
// balance goes through it, nothing else may re-sum transactions.
type treasuryService struct {
	treasuryRepo portsrepo.TreasuryRepository
	userRepo     portsrepo.UserRepository
}

// NewTreasuryService creates a new treasury service.
func NewTreasuryService(tr portsrepo.TreasuryRepository, ur portsrepo.UserRepository) portssvc.TreasurySvcFacade {
	return &treasuryService{treasuryRepo: tr, userRepo: ur}
}

var _ portssvc.TreasurySvcFacade = (*treasuryService)(nil)

// GetBalance computes startingBalance + Σ(signed transaction amounts) over the
// full ledger. Accumulation is exact decimal arithmetic; rounding happens only
// at the response boundary. A missing starting-balance record reads as zero; a
// failed transaction fetch fails the whole computation, no partial balance is
// ever returned.
func (s *treasuryService) GetBalance(ctx context.Context) (*domain.BalanceSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	startingBalance := decimal.Zero
	var startingBalanceDate *time.Time
	sb, err := s.treasuryRepo.GetStartingBalance(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load starting balance", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to load starting balance: %w", err)
		}
		// Never configured: treated as zero, not an error.
	} else {
		startingBalance = sb.Amount
		startingBalanceDate = sb.Date
	}

	txns, err := s.treasuryRepo.FindAllTransactions(ctx)
	if err != nil {
		logger.Error("Failed to load ledger for balance computation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	transactionsTotal := decimal.Zero
	for _, txn := range txns {
		transactionsTotal = transactionsTotal.Add(txn.SignedAmount())
	}

	return &domain.BalanceSummary{
		StartingBalance:     startingBalance,
		StartingBalanceDate: startingBalanceDate,
		TransactionsTotal:   transactionsTotal,
		CurrentBalance:      startingBalance.Add(transactionsTotal),
		TransactionsCount:   len(txns),
		CalculatedAt:        time.Now(),
	}, nil
}

func (s *treasuryService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.treasuryRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *treasuryService) ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	txns, err := s.treasuryRepo.FindTransactions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *treasuryService) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.treasuryRepo.FindAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list full ledger: %w", err)
	}
	return txns, nil
}

func (s *treasuryService) GetStartingBalance(ctx context.Context) (*domain.StartingBalance, error) {
	return s.treasuryRepo.GetStartingBalance(ctx)
}

func (s *treasuryService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, callerUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := authorize(ctx, s.userRepo, domain.OpManageTransactions, callerUserID)
	if err != nil {
		return nil, err
	}

	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	txnDate, err := time.Parse(dateLayout, req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: transactionDate must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            txnType,
		Amount:          req.Amount.Round(2),
		Category:        req.Category,
		Description:     req.Description,
		TransactionDate: txnDate,
		EventID:         req.EventID,
		RecordedBy:      caller.UserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.treasuryRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()),
	)
	return &txn, nil
}

func (s *treasuryService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, callerUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := authorize(ctx, s.userRepo, domain.OpManageTransactions, callerUserID)
	if err != nil {
		return nil, err
	}

	txn, err := s.treasuryRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		txnType := domain.TransactionType(*req.Type)
		if !txnType.IsValid() {
			return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, *req.Type)
		}
		txn.Type = txnType
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = req.Amount.Round(2)
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
		}
		txn.Description = *req.Description
	}
	if req.TransactionDate != nil {
		txnDate, err := time.Parse(dateLayout, *req.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: transactionDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		txn.TransactionDate = txnDate
	}
	if req.EventID != nil {
		txn.EventID = req.EventID
	}

	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = caller.UserID

	if err := s.treasuryRepo.UpdateTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *treasuryService) DeleteTransaction(ctx context.Context, transactionID string, callerUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := authorize(ctx, s.userRepo, domain.OpManageTransactions, callerUserID); err != nil {
		return err
	}

	if err := s.treasuryRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *treasuryService) SetStartingBalance(ctx context.Context, req dto.SetStartingBalanceRequest, callerUserID string) (*domain.StartingBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := authorize(ctx, s.userRepo, domain.OpManageStartingBalance, callerUserID)
	if err != nil {
		return nil, err
	}

	sb := domain.StartingBalance{
		Amount:    req.StartingBalance.Round(2),
		UpdatedBy: caller.UserID,
		UpdatedAt: time.Now(),
	}
	if req.StartingBalanceDate != nil {
		d, err := time.Parse(dateLayout, *req.StartingBalanceDate)
		if err != nil {
			return nil, fmt.Errorf("%w: startingBalanceDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		sb.Date = &d
	}

	if err := s.treasuryRepo.UpsertStartingBalance(ctx, sb); err != nil {
		logger.Error("Failed to upsert starting balance", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to set starting balance: %w", err)
	}

	logger.Info("Starting balance updated", slog.String("amount", sb.Amount.String()))
	return &sb, nil
}
