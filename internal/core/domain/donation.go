package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation represents a recorded donation. Donations are tracked separately
// from the treasury ledger; a treasurer records the matching income transaction
// explicitly so the ledger stays the single balance source.
type Donation struct {
	DonationID string          `json:"donationID"` // Primary Key (UUID)
	DonorName  string          `json:"donorName"`
	DonorEmail string          `json:"donorEmail"`
	Amount     decimal.Decimal `json:"amount"` // Positive, two-decimal precision
	Message    string          `json:"message,omitempty"`
	OptIn      bool            `json:"optIn"` // Consent to bulk communications
	CreatedAt  time.Time       `json:"createdAt"`
}
