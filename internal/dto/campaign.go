package dto

import (
	"time"

	"github.com/assogestion/assogestion/internal/core/domain"
)

// CreateCampaignRequest defines the input for drafting a campaign.
type CreateCampaignRequest struct {
	Subject  string `json:"subject" binding:"required"`
	BodyHTML string `json:"bodyHTML" binding:"required"`
}

// ListCampaignsParams defines query parameters for listing campaigns.
type ListCampaignsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// CampaignResponse is the API shape of a campaign.
type CampaignResponse struct {
	CampaignID string     `json:"campaignID"`
	Subject    string     `json:"subject"`
	BodyHTML   string     `json:"bodyHTML"`
	Status     string     `json:"status"`
	SentAt     *time.Time `json:"sentAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ToCampaignResponse converts a domain.Campaign.
func ToCampaignResponse(c *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		CampaignID: c.CampaignID,
		Subject:    c.Subject,
		BodyHTML:   c.BodyHTML,
		Status:     string(c.Status),
		SentAt:     c.SentAt,
		CreatedAt:  c.CreatedAt,
	}
}

// ListCampaignsResponse wraps the list of campaigns.
type ListCampaignsResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}

// ToListCampaignsResponse converts a slice of domain.Campaign.
func ToListCampaignsResponse(campaigns []domain.Campaign) ListCampaignsResponse {
	out := make([]CampaignResponse, len(campaigns))
	for i := range campaigns {
		out[i] = ToCampaignResponse(&campaigns[i])
	}
	return ListCampaignsResponse{Campaigns: out}
}

// SendCampaignResult summarises a campaign send.
type SendCampaignResult struct {
	CampaignID string `json:"campaignID"`
	Attempted  int    `json:"attempted"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
}

// EmailLogResponse is the API shape of one delivery-attempt record.
type EmailLogResponse struct {
	LogID             string    `json:"logID"`
	Recipient         string    `json:"recipient"`
	Subject           string    `json:"subject"`
	Status            string    `json:"status"`
	ProviderMessageID string    `json:"providerMessageID,omitempty"`
	Error             string    `json:"error,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ToEmailLogResponse converts a domain.EmailLog.
func ToEmailLogResponse(l *domain.EmailLog) EmailLogResponse {
	return EmailLogResponse{
		LogID:             l.LogID,
		Recipient:         l.Recipient,
		Subject:           l.Subject,
		Status:            string(l.Status),
		ProviderMessageID: l.ProviderMessageID,
		Error:             l.Error,
		CreatedAt:         l.CreatedAt,
	}
}
