package services

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/assogestion/assogestion/internal/dto"
)

// EventSvcFacade defines event operations. Listing published events is public;
// mutations are gated on event administration.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, callerUserID string) (*domain.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, callerUserID string) (*domain.Event, error)
	PublishEvent(ctx context.Context, eventID string, callerUserID string) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID string, callerUserID string) error
	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Event, error)
}
