package pgsql

import (
	"context"
	"fmt"

	"github.com/assogestion/assogestion/internal/core/domain"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDonationRepository persists donations.
type PgxDonationRepository struct {
	db *pgxpool.Pool
}

var _ portsrepo.DonationRepository = (*PgxDonationRepository)(nil)

func NewDonationRepository(db *pgxpool.Pool) *PgxDonationRepository {
	return &PgxDonationRepository{db: db}
}

func (r *PgxDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	query := `
        INSERT INTO donations (donation_id, donor_name, donor_email, amount, message, opt_in, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		donation.DonationID,
		donation.DonorName,
		donation.DonorEmail,
		donation.Amount,
		donation.Message,
		donation.OptIn,
		donation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save donation: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxDonationRepository) FindDonations(ctx context.Context, limit, offset int) ([]domain.Donation, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT donation_id, donor_name, donor_email, amount, message, opt_in, created_at
        FROM donations
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query donations: %w", err)
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.DonationID, &d.DonorName, &d.DonorEmail, &d.Amount, &d.Message, &d.OptIn, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan donation row: %w", err)
		}
		donations = append(donations, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating donation rows: %w", rows.Err())
	}
	return donations, nil
}
