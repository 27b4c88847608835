package services

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/assogestion/assogestion/internal/dto"
)

// DonationSvcFacade defines donation operations. Recording is public (donation
// form); listing is gated on donation administration.
type DonationSvcFacade interface {
	RecordDonation(ctx context.Context, req dto.RecordDonationRequest) (*domain.Donation, error)
	ListDonations(ctx context.Context, limit, offset int, callerUserID string) ([]domain.Donation, error)
}
