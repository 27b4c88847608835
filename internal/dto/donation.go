package dto

import (
	"time"

	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordDonationRequest is the public donation form payload.
type RecordDonationRequest struct {
	DonorName  string          `json:"donorName" binding:"required"`
	DonorEmail string          `json:"donorEmail" binding:"required,email"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Message    string          `json:"message"`
	OptIn      bool            `json:"optIn"`
}

// ListDonationsParams defines query parameters for listing donations.
type ListDonationsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// DonationResponse is the API shape of a donation.
type DonationResponse struct {
	DonationID string          `json:"donationID"`
	DonorName  string          `json:"donorName"`
	DonorEmail string          `json:"donorEmail"`
	Amount     decimal.Decimal `json:"amount"`
	Message    string          `json:"message,omitempty"`
	OptIn      bool            `json:"optIn"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToDonationResponse converts a domain.Donation; the amount is rounded at the
// response boundary.
func ToDonationResponse(d *domain.Donation) DonationResponse {
	return DonationResponse{
		DonationID: d.DonationID,
		DonorName:  d.DonorName,
		DonorEmail: d.DonorEmail,
		Amount:     d.Amount.Round(2),
		Message:    d.Message,
		OptIn:      d.OptIn,
		CreatedAt:  d.CreatedAt,
	}
}

// ListDonationsResponse wraps the list of donations.
type ListDonationsResponse struct {
	Donations []DonationResponse `json:"donations"`
}

// ToListDonationsResponse converts a slice of domain.Donation.
func ToListDonationsResponse(donations []domain.Donation) ListDonationsResponse {
	out := make([]DonationResponse, len(donations))
	for i := range donations {
		out[i] = ToDonationResponse(&donations[i])
	}
	return ListDonationsResponse{Donations: out}
}
