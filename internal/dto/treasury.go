package dto

import (
	"time"

	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the input for recording a ledger entry.
// The date is a calendar date without a time component.
type CreateTransactionRequest struct {
	Type            string          `json:"type" binding:"required,oneof=income expense"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Category        string          `json:"category"`
	Description     string          `json:"description" binding:"required"`
	TransactionDate string          `json:"transactionDate" binding:"required"` // YYYY-MM-DD
	EventID         *string         `json:"eventID"`
}

// UpdateTransactionRequest defines the fields that may be changed on an entry.
// Pointers differentiate omitted fields from zero values.
type UpdateTransactionRequest struct {
	Type            *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Amount          *decimal.Decimal `json:"amount"`
	Category        *string          `json:"category"`
	Description     *string          `json:"description"`
	TransactionDate *string          `json:"transactionDate"` // YYYY-MM-DD
	EventID         *string          `json:"eventID"`
}

// SetStartingBalanceRequest writes the starting-balance singleton.
type SetStartingBalanceRequest struct {
	StartingBalance     decimal.Decimal `json:"startingBalance" binding:"required"`
	StartingBalanceDate *string         `json:"startingBalanceDate"` // YYYY-MM-DD, informational only
}

// ListTransactionsParams defines query parameters for listing ledger entries.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// TransactionResponse is the API shape of one ledger entry.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transactionDate"`
	EventID         *string         `json:"eventID,omitempty"`
	RecordedBy      string          `json:"recordedBy"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its API shape.
// Amounts are rounded to two decimals here, at the response boundary.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Type:            string(t.Type),
		Amount:          t.Amount.Round(2),
		Category:        t.Category,
		Description:     t.Description,
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		EventID:         t.EventID,
		RecordedBy:      t.RecordedBy,
		CreatedAt:       t.CreatedAt,
		LastUpdatedAt:   t.LastUpdatedAt,
	}
}

// ListTransactionsResponse wraps the list of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: out}
}

// StartingBalanceResponse is the API shape of the singleton configuration record.
type StartingBalanceResponse struct {
	StartingBalance     decimal.Decimal `json:"startingBalance"`
	StartingBalanceDate *string         `json:"startingBalanceDate,omitempty"`
	UpdatedBy           string          `json:"updatedBy"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// ToStartingBalanceResponse converts the domain singleton to its API shape.
func ToStartingBalanceResponse(sb *domain.StartingBalance) StartingBalanceResponse {
	resp := StartingBalanceResponse{
		StartingBalance: sb.Amount.Round(2),
		UpdatedBy:       sb.UpdatedBy,
		UpdatedAt:       sb.UpdatedAt,
	}
	if sb.Date != nil {
		d := sb.Date.Format("2006-01-02")
		resp.StartingBalanceDate = &d
	}
	return resp
}

// BalanceMeta carries computation metadata for the balance endpoint.
type BalanceMeta struct {
	TransactionsCount int       `json:"transactionsCount"`
	CalculatedAt      time.Time `json:"calculatedAt"`
}

// BalanceResponse is the authoritative balance payload. All amounts are rounded
// to two decimals at this boundary only; the computation itself is exact.
type BalanceResponse struct {
	StartingBalance     decimal.Decimal `json:"startingBalance"`
	StartingBalanceDate *string         `json:"startingBalanceDate,omitempty"`
	TransactionsTotal   decimal.Decimal `json:"transactionsTotal"`
	CurrentBalance      decimal.Decimal `json:"currentBalance"`
	Meta                BalanceMeta     `json:"meta"`
}

// ToBalanceResponse converts a domain.BalanceSummary to its API shape.
func ToBalanceResponse(b *domain.BalanceSummary) BalanceResponse {
	resp := BalanceResponse{
		StartingBalance:   b.StartingBalance.Round(2),
		TransactionsTotal: b.TransactionsTotal.Round(2),
		CurrentBalance:    b.CurrentBalance.Round(2),
		Meta: BalanceMeta{
			TransactionsCount: b.TransactionsCount,
			CalculatedAt:      b.CalculatedAt,
		},
	}
	if b.StartingBalanceDate != nil {
		d := b.StartingBalanceDate.Format("2006-01-02")
		resp.StartingBalanceDate = &d
	}
	return resp
}
