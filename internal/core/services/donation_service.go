package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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

type donationService struct {
	donationRepo portsrepo.DonationRepository
	campaignRepo portsrepo.CampaignRepository
	userRepo     portsrepo.UserRepository
}

// NewDonationService creates a new donation service.
func NewDonationService(dr portsrepo.DonationRepository, cr portsrepo.CampaignRepository, ur portsrepo.UserRepository) portssvc.DonationSvcFacade {
	return &donationService{donationRepo: dr, campaignRepo: cr, userRepo: ur}
}

var _ portssvc.DonationSvcFacade = (*donationService)(nil)

// RecordDonation stores a donation from the public form. An opt-in also
// upserts the donor into the contact list; donations never touch the treasury
// ledger directly.
func (s *donationService) RecordDonation(ctx context.Context, req dto.RecordDonationRequest) (*domain.Donation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	donation := domain.Donation{
		DonationID: uuid.NewString(),
		DonorName:  req.DonorName,
		DonorEmail: strings.ToLower(strings.TrimSpace(req.DonorEmail)),
		Amount:     req.Amount.Round(2),
		Message:    req.Message,
		OptIn:      req.OptIn,
		CreatedAt:  now,
	}

	if err := s.donationRepo.SaveDonation(ctx, donation); err != nil {
		logger.Error("Failed to save donation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record donation: %w", err)
	}

	if donation.OptIn {
		contact := domain.Contact{
			ContactID: uuid.NewString(),
			Name:      donation.DonorName,
			Email:     donation.DonorEmail,
			OptIn:     true,
			CreatedAt: now,
		}
		// A contact failure must not lose the donation itself.
		if err := s.campaignRepo.SaveContact(ctx, contact); err != nil {
			logger.Error("Failed to save opted-in contact", slog.String("error", err.Error()), slog.String("donation_id", donation.DonationID))
		}
	}

	logger.Info("Donation recorded",
		slog.String("donation_id", donation.DonationID),
		slog.String("amount", donation.Amount.String()),
	)
	return &donation, nil
}

func (s *donationService) ListDonations(ctx context.Context, limit, offset int, callerUserID string) ([]domain.Donation, error) {
	if _, err := authorize(ctx, s.userRepo, domain.OpManageDonations, callerUserID); err != nil {
		return nil, err
	}

	donations, err := s.donationRepo.FindDonations(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}
