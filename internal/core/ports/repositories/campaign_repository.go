package repositories

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
)

// CampaignRepository defines persistence operations for campaigns, contacts and
// the email audit log.
type CampaignRepository interface {
	SaveCampaign(ctx context.Context, campaign domain.Campaign) error
	FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	FindCampaigns(ctx context.Context, limit, offset int) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign domain.Campaign) error

	SaveContact(ctx context.Context, contact domain.Contact) error
	FindOptedInContacts(ctx context.Context) ([]domain.Contact, error)

	// SaveEmailLog appends one delivery-attempt record; called for every attempt
	// regardless of outcome.
	SaveEmailLog(ctx context.Context, log domain.EmailLog) error
	FindEmailLogsByCampaign(ctx context.Context, campaignID string) ([]domain.EmailLog, error)
}
