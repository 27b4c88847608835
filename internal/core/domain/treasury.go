package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry is income or an expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents one entry of the treasury ledger.
// Amount is always positive; the sign is derived from Type, never stored.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"` // Positive, two-decimal precision
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"` // Calendar date, no time component
	EventID         *string         `json:"eventID,omitempty"` // Weak reference, association only
	RecordedBy      string          `json:"recordedBy"`        // UserID reference, audit trail
	AuditFields
}

// SignedAmount returns the amount with the sign derived from the type.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// StartingBalance is the singleton treasury configuration record: the balance
// before the ledger began being tracked digitally.
type StartingBalance struct {
	Amount    decimal.Decimal `json:"startingBalance"` // Any sign
	Date      *time.Time      `json:"startingBalanceDate,omitempty"` // Informational only
	UpdatedBy string          `json:"updatedBy"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// BalanceSummary is the authoritative balance computation result. Every surface
// that displays a balance must be fed from this value; nothing else may re-sum
// the ledger.
type BalanceSummary struct {
	StartingBalance     decimal.Decimal
	StartingBalanceDate *time.Time
	TransactionsTotal   decimal.Decimal
	CurrentBalance      decimal.Decimal
	TransactionsCount   int
	CalculatedAt        time.Time
}
