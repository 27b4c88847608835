package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCampaignRepository persists campaigns, contacts and the email audit log.
type PgxCampaignRepository struct {
	db *pgxpool.Pool
}

var _ portsrepo.CampaignRepository = (*PgxCampaignRepository)(nil)

func NewCampaignRepository(db *pgxpool.Pool) *PgxCampaignRepository {
	return &PgxCampaignRepository{db: db}
}

const campaignColumns = `
	campaign_id, subject, body_html, status, sent_at,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxCampaignRepository) scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.CampaignID,
		&c.Subject,
		&c.BodyHTML,
		&c.Status,
		&c.SentAt,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	query := `
        INSERT INTO campaigns (campaign_id, subject, body_html, status, sent_at,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		campaign.CampaignID,
		campaign.Subject,
		campaign.BodyHTML,
		campaign.Status,
		campaign.SentAt,
		campaign.CreatedAt,
		campaign.CreatedBy,
		campaign.LastUpdatedAt,
		campaign.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save campaign: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxCampaignRepository) FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE campaign_id = $1;`
	campaign, err := r.scanCampaign(r.db.QueryRow(ctx, query, campaignID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find campaign %s: %w", campaignID, err)
	}
	return campaign, nil
}

func (r *PgxCampaignRepository) FindCampaigns(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + campaignColumns + `
        FROM campaigns
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []domain.Campaign{}
	for rows.Next() {
		campaign, err := r.scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign row: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating campaign rows: %w", rows.Err())
	}
	return campaigns, nil
}

func (r *PgxCampaignRepository) UpdateCampaign(ctx context.Context, campaign domain.Campaign) error {
	query := `
        UPDATE campaigns
        SET subject = $1, body_html = $2, status = $3, sent_at = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE campaign_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		campaign.Subject,
		campaign.BodyHTML,
		campaign.Status,
		campaign.SentAt,
		campaign.LastUpdatedAt,
		campaign.LastUpdatedBy,
		campaign.CampaignID,
	)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", mapPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("campaign not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCampaignRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	// Contacts are keyed by email; a repeat opt-in refreshes name and consent.
	query := `
        INSERT INTO contacts (contact_id, name, email, opt_in, created_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (email) DO UPDATE SET
            name = EXCLUDED.name,
            opt_in = EXCLUDED.opt_in;
    `
	_, err := r.db.Exec(ctx, query,
		contact.ContactID,
		contact.Name,
		contact.Email,
		contact.OptIn,
		contact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxCampaignRepository) FindOptedInContacts(ctx context.Context) ([]domain.Contact, error) {
	query := `
        SELECT contact_id, name, email, opt_in, created_at
        FROM contacts
        WHERE opt_in
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ContactID, &c.Name, &c.Email, &c.OptIn, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", rows.Err())
	}
	return contacts, nil
}

func (r *PgxCampaignRepository) SaveEmailLog(ctx context.Context, log domain.EmailLog) error {
	query := `
        INSERT INTO email_logs (log_id, campaign_id, recipient, subject, status,
            provider_message_id, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		log.LogID,
		log.CampaignID,
		log.Recipient,
		log.Subject,
		log.Status,
		log.ProviderMessageID,
		log.Error,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save email log: %w", err)
	}
	return nil
}

func (r *PgxCampaignRepository) FindEmailLogsByCampaign(ctx context.Context, campaignID string) ([]domain.EmailLog, error) {
	query := `
        SELECT log_id, campaign_id, recipient, subject, status, provider_message_id, error, created_at
        FROM email_logs
        WHERE campaign_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to query email logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.EmailLog{}
	for rows.Next() {
		var l domain.EmailLog
		if err := rows.Scan(&l.LogID, &l.CampaignID, &l.Recipient, &l.Subject, &l.Status, &l.ProviderMessageID, &l.Error, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan email log row: %w", err)
		}
		logs = append(logs, l)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating email log rows: %w", rows.Err())
	}
	return logs, nil
}
