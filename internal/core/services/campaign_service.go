package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/assogestion/assogestion/internal/core/ports"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/google/uuid"
)

type campaignService struct {
	campaignRepo portsrepo.CampaignRepository
	userRepo     portsrepo.UserRepository
	mailer       ports.Mailer
}

// NewCampaignService creates a new campaign service.
func NewCampaignService(cr portsrepo.CampaignRepository, ur portsrepo.UserRepository, mailer ports.Mailer) portssvc.CampaignSvcFacade {
	return &campaignService{campaignRepo: cr, userRepo: ur, mailer: mailer}
}

var _ portssvc.CampaignSvcFacade = (*campaignService)(nil)

func (s *campaignService) CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest, callerUserID string) (*domain.Campaign, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := authorize(ctx, s.userRepo, domain.OpManageCampaigns, callerUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	campaign := domain.Campaign{
		CampaignID: uuid.NewString(),
		Subject:    req.Subject,
		BodyHTML:   req.BodyHTML,
		Status:     domain.CampaignDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.campaignRepo.SaveCampaign(ctx, campaign); err != nil {
		logger.Error("Failed to save campaign", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	logger.Info("Campaign drafted", slog.String("campaign_id", campaign.CampaignID))
	return &campaign, nil
}

func (s *campaignService) ListCampaigns(ctx context.Context, limit, offset int, callerUserID string) ([]domain.Campaign, error) {
	if _, err := authorize(ctx, s.userRepo, domain.OpManageCampaigns, callerUserID); err != nil {
		return nil, err
	}
	campaigns, err := s.campaignRepo.FindCampaigns(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *campaignService) GetCampaignByID(ctx context.Context, campaignID string, callerUserID string) (*domain.Campaign, error) {
	if _, err := authorize(ctx, s.userRepo, domain.OpManageCampaigns, callerUserID); err != nil {
		return nil, err
	}
	return s.campaignRepo.FindCampaignByID(ctx, campaignID)
}

// SendCampaign delivers a draft campaign to every opted-in contact. One email
// log row is written per attempt, success or failure, so the audit trail is
// complete even when the provider misbehaves. A failed delivery is counted and
// skipped, never retried; the campaign is marked sent once the loop finishes.
func (s *campaignService) SendCampaign(ctx context.Context, campaignID string, callerUserID string) (*dto.SendCampaignResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := authorize(ctx, s.userRepo, domain.OpManageCampaigns, callerUserID)
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != domain.CampaignDraft {
		return nil, fmt.Errorf("%w: campaign already sent", apperrors.ErrConflict)
	}

	contacts, err := s.campaignRepo.FindOptedInContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}

	result := &dto.SendCampaignResult{CampaignID: campaignID, Attempted: len(contacts)}
	for _, contact := range contacts {
		emailLog := domain.EmailLog{
			LogID:      uuid.NewString(),
			CampaignID: &campaign.CampaignID,
			Recipient:  contact.Email,
			Subject:    campaign.Subject,
			CreatedAt:  time.Now(),
		}

		providerMessageID, sendErr := s.mailer.Send(ctx, contact.Email, campaign.Subject, campaign.BodyHTML)
		if sendErr != nil {
			emailLog.Status = domain.EmailFailed
			emailLog.Error = sendErr.Error()
			result.Failed++
			logger.Warn("Campaign delivery failed",
				slog.String("campaign_id", campaignID),
				slog.String("error", sendErr.Error()),
			)
		} else {
			emailLog.Status = domain.EmailSent
			emailLog.ProviderMessageID = providerMessageID
			result.Sent++
		}

		if err := s.campaignRepo.SaveEmailLog(ctx, emailLog); err != nil {
			logger.Error("Failed to save email log", slog.String("error", err.Error()), slog.String("campaign_id", campaignID))
		}
	}

	now := time.Now()
	campaign.Status = domain.CampaignSent
	campaign.SentAt = &now
	campaign.LastUpdatedAt = now
	campaign.LastUpdatedBy = caller.UserID
	if err := s.campaignRepo.UpdateCampaign(ctx, *campaign); err != nil {
		logger.Error("Failed to mark campaign as sent", slog.String("error", err.Error()), slog.String("campaign_id", campaignID))
		return nil, fmt.Errorf("failed to mark campaign as sent: %w", err)
	}

	logger.Info("Campaign sent",
		slog.String("campaign_id", campaignID),
		slog.Int("attempted", result.Attempted),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *campaignService) ListEmailLogs(ctx context.Context, campaignID string, callerUserID string) ([]domain.EmailLog, error) {
	if _, err := authorize(ctx, s.userRepo, domain.OpManageCampaigns, callerUserID); err != nil {
		return nil, err
	}
	if _, err := s.campaignRepo.FindCampaignByID(ctx, campaignID); err != nil {
		return nil, err
	}
	logs, err := s.campaignRepo.FindEmailLogsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}
	return logs, nil
}
