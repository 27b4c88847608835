package services

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/assogestion/assogestion/internal/dto"
)

// CampaignSvcFacade defines email campaign operations, all gated on campaign
// administration.
type CampaignSvcFacade interface {
	CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest, callerUserID string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, limit, offset int, callerUserID string) ([]domain.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID string, callerUserID string) (*domain.Campaign, error)
	// SendCampaign delivers the campaign to every opted-in contact, logging one
	// email-log row per attempt regardless of outcome. Failed deliveries are
	// counted, not retried.
	SendCampaign(ctx context.Context, campaignID string, callerUserID string) (*dto.SendCampaignResult, error)
	ListEmailLogs(ctx context.Context, campaignID string, callerUserID string) ([]domain.EmailLog, error)
}
