package repositories

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
)

// EventRepository defines persistence operations for events.
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	FindEvents(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, eventID string) error
}
