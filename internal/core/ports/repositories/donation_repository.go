package repositories

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
)

// DonationRepository defines persistence operations for donations.
type DonationRepository interface {
	SaveDonation(ctx context.Context, donation domain.Donation) error
	FindDonations(ctx context.Context, limit, offset int) ([]domain.Donation, error)
}
