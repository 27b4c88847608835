package pgsql

import (
	"context"
	"fmt"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxVolunteerRepository persists volunteer sign-ups. The capacity and
// duplicate constraints live in the database (trigger + unique index), so the
// insert is a single atomic statement and there is no read-then-write window.
type PgxVolunteerRepository struct {
	db *pgxpool.Pool
}

var _ portsrepo.VolunteerRepository = (*PgxVolunteerRepository)(nil)

func NewVolunteerRepository(db *pgxpool.Pool) *PgxVolunteerRepository {
	return &PgxVolunteerRepository{db: db}
}

func (r *PgxVolunteerRepository) SaveSignup(ctx context.Context, signup domain.VolunteerSignup) error {
	query := `
        INSERT INTO volunteer_signups (signup_id, event_id, name, email, phone, shift, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		signup.SignupID,
		signup.EventID,
		signup.Name,
		signup.Email,
		signup.Phone,
		signup.Shift,
		signup.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save volunteer signup: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxVolunteerRepository) FindSignupsByEvent(ctx context.Context, eventID string) ([]domain.VolunteerSignup, error) {
	query := `
        SELECT signup_id, event_id, name, email, phone, shift, created_at
        FROM volunteer_signups
        WHERE event_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteer signups: %w", err)
	}
	defer rows.Close()

	signups := []domain.VolunteerSignup{}
	for rows.Next() {
		var s domain.VolunteerSignup
		if err := rows.Scan(&s.SignupID, &s.EventID, &s.Name, &s.Email, &s.Phone, &s.Shift, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan signup row: %w", err)
		}
		signups = append(signups, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating signup rows: %w", rows.Err())
	}
	return signups, nil
}

func (r *PgxVolunteerRepository) DeleteSignup(ctx context.Context, signupID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM volunteer_signups WHERE signup_id = $1;`, signupID)
	if err != nil {
		return fmt.Errorf("failed to delete signup: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("signup not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
