package domain

import "time"

// Contact is a bulk-communication recipient. Only opted-in contacts ever
// receive campaign mail.
type Contact struct {
	ContactID string    `json:"contactID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	OptIn     bool      `json:"optIn"`
	CreatedAt time.Time `json:"createdAt"`
}

// CampaignStatus tracks the lifecycle of an email campaign.
type CampaignStatus string

const (
	CampaignDraft CampaignStatus = "draft"
	CampaignSent  CampaignStatus = "sent"
)

// Campaign is a bulk email to the opted-in contact list.
type Campaign struct {
	CampaignID string         `json:"campaignID"` // Primary Key (UUID)
	Subject    string         `json:"subject"`
	BodyHTML   string         `json:"bodyHTML"`
	Status     CampaignStatus `json:"status"`
	SentAt     *time.Time     `json:"sentAt,omitempty"`
	AuditFields
}

// EmailStatus is the outcome of a single delivery attempt.
type EmailStatus string

const (
	EmailSent   EmailStatus = "sent"
	EmailFailed EmailStatus = "failed"
)

// EmailLog is the durable audit record of one delivery attempt. Every attempt
// is logged regardless of outcome.
type EmailLog struct {
	LogID             string      `json:"logID"` // Primary Key (UUID)
	CampaignID        *string     `json:"campaignID,omitempty"`
	Recipient         string      `json:"recipient"`
	Subject           string      `json:"subject"`
	Status            EmailStatus `json:"status"`
	ProviderMessageID string      `json:"providerMessageID,omitempty"`
	Error             string      `json:"error,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}
