package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/google/uuid"
)

type eventService struct {
	eventRepo portsrepo.EventRepository
	userRepo  portsrepo.UserRepository
}

// NewEventService creates a new event service.
func NewEventService(er portsrepo.EventRepository, ur portsrepo.UserRepository) portssvc.EventSvcFacade {
	return &eventService{eventRepo: er, userRepo: ur}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, callerUserID string) (*domain.Event, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := authorize(ctx, s.userRepo, domain.OpManageEvents, callerUserID)
	if err != nil {
		return nil, err
	}

	if req.EndsAt != nil && req.EndsAt.Before(req.StartsAt) {
		return nil, fmt.Errorf("%w: endsAt must not be before startsAt", apperrors.ErrValidation)
	}

	now := time.Now()
	event := domain.Event{
		EventID:         uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		ImageURL:        req.ImageURL,
		VolunteerTarget: req.VolunteerTarget,
		IsPublished:     false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Error("Failed to save event", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	logger.Info("Event created", slog.String("event_id", event.EventID), slog.String("title", event.Title))
	return &event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, callerUserID string) (*domain.Event, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := authorize(ctx, s.userRepo, domain.OpManageEvents, callerUserID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
		}
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if req.VolunteerTarget != nil {
		if *req.VolunteerTarget < 0 {
			return nil, fmt.Errorf("%w: volunteerTarget must not be negative", apperrors.ErrValidation)
		}
		event.VolunteerTarget = *req.VolunteerTarget
	}
	if event.EndsAt != nil && event.EndsAt.Before(event.StartsAt) {
		return nil, fmt.Errorf("%w: endsAt must not be before startsAt", apperrors.ErrValidation)
	}

	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = caller.UserID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		logger.Error("Failed to update event", slog.String("error", err.Error()), slog.String("event_id", eventID))
		return nil, err
	}

	logger.Info("Event updated", slog.String("event_id", eventID))
	return event, nil
}

func (s *eventService) PublishEvent(ctx context.Context, eventID string, callerUserID string) (*domain.Event, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := authorize(ctx, s.userRepo, domain.OpManageEvents, callerUserID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsPublished {
		return event, nil
	}

	event.IsPublished = true
	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = caller.UserID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		logger.Error("Failed to publish event", slog.String("error", err.Error()), slog.String("event_id", eventID))
		return nil, err
	}

	logger.Info("Event published", slog.String("event_id", eventID))
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string, callerUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := authorize(ctx, s.userRepo, domain.OpManageEvents, callerUserID); err != nil {
		return err
	}

	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		return err
	}

	logger.Info("Event deleted", slog.String("event_id", eventID))
	return nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.eventRepo.FindEventByID(ctx, eventID)
}

func (s *eventService) ListEvents(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Event, error) {
	events, err := s.eventRepo.FindEvents(ctx, publishedOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
