package services

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/assogestion/assogestion/internal/dto"
)

// TreasuryReaderSvc defines read operations over the ledger.
type TreasuryReaderSvc interface {
	// GetBalance is the single sanctioned balance computation. Every surface
	// that displays a balance goes through this method.
	GetBalance(ctx context.Context) (*domain.BalanceSummary, error)

	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error)
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetStartingBalance(ctx context.Context) (*domain.StartingBalance, error)
}

// TreasuryWriterSvc defines the role-gated ledger mutations.
type TreasuryWriterSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, callerUserID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, callerUserID string) (*domain.Transaction, error)
	// DeleteTransaction removes the entry permanently; there is no undo.
	DeleteTransaction(ctx context.Context, transactionID string, callerUserID string) error
	SetStartingBalance(ctx context.Context, req dto.SetStartingBalanceRequest, callerUserID string) (*domain.StartingBalance, error)
}

// TreasurySvcFacade combines all treasury service interfaces.
type TreasurySvcFacade interface {
	TreasuryReaderSvc
	TreasuryWriterSvc
}
