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

// PgxEventRepository persists events.
type PgxEventRepository struct {
	db *pgxpool.Pool
}

var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

func NewEventRepository(db *pgxpool.Pool) *PgxEventRepository {
	return &PgxEventRepository{db: db}
}

const eventColumns = `
	event_id, title, description, location, starts_at, ends_at, image_url,
	volunteer_target, is_published, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxEventRepository) scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.EventID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.StartsAt,
		&e.EndsAt,
		&e.ImageURL,
		&e.VolunteerTarget,
		&e.IsPublished,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	query := `
        INSERT INTO events (event_id, title, description, location, starts_at, ends_at,
            image_url, volunteer_target, is_published, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		event.EventID,
		event.Title,
		event.Description,
		event.Location,
		event.StartsAt,
		event.EndsAt,
		event.ImageURL,
		event.VolunteerTarget,
		event.IsPublished,
		event.CreatedAt,
		event.CreatedBy,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`
	event, err := r.scanEvent(r.db.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	return event, nil
}

func (r *PgxEventRepository) FindEvents(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + eventColumns + `
        FROM events
        WHERE ($1 = FALSE OR is_published)
        ORDER BY starts_at DESC
        LIMIT $2 OFFSET $3;`
	rows, err := r.db.Query(ctx, query, publishedOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		event, err := r.scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, *event)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", rows.Err())
	}
	return events, nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	query := `
        UPDATE events
        SET title = $1, description = $2, location = $3, starts_at = $4, ends_at = $5,
            image_url = $6, volunteer_target = $7, is_published = $8,
            last_updated_at = $9, last_updated_by = $10
        WHERE event_id = $11;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		event.Title,
		event.Description,
		event.Location,
		event.StartsAt,
		event.EndsAt,
		event.ImageURL,
		event.VolunteerTarget,
		event.IsPublished,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
		event.EventID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", mapPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
