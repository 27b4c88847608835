package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/google/uuid"
)

type volunteerService struct {
	volunteerRepo portsrepo.VolunteerRepository
	eventRepo     portsrepo.EventRepository
	userRepo      portsrepo.UserRepository
}

// NewVolunteerService creates a new volunteer service.
func NewVolunteerService(vr portsrepo.VolunteerRepository, er portsrepo.EventRepository, ur portsrepo.UserRepository) portssvc.VolunteerSvcFacade {
	return &volunteerService{volunteerRepo: vr, eventRepo: er, userRepo: ur}
}

var _ portssvc.VolunteerSvcFacade = (*volunteerService)(nil)

// SignUp registers a volunteer for an event. No credential is required, this
// backs the public sign-up form. The capacity and one-signup-per-email rules
// are enforced atomically by the storage layer, there is no read-then-write
// window here.
func (s *volunteerService) SignUp(ctx context.Context, eventID string, req dto.VolunteerSignupRequest) (*domain.VolunteerSignup, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished {
		// Unpublished events are invisible to the public.
		return nil, apperrors.ErrNotFound
	}
	if event.VolunteerTarget <= 0 {
		return nil, fmt.Errorf("%w: event does not take volunteers", apperrors.ErrValidation)
	}

	signup := domain.VolunteerSignup{
		SignupID:  uuid.NewString(),
		EventID:   eventID,
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     req.Phone,
		Shift:     req.Shift,
		CreatedAt: time.Now(),
	}

	if err := s.volunteerRepo.SaveSignup(ctx, signup); err != nil {
		logger.Warn("Volunteer sign-up rejected",
			slog.String("event_id", eventID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Volunteer signed up", slog.String("event_id", eventID), slog.String("signup_id", signup.SignupID))
	return &signup, nil
}

func (s *volunteerService) ListSignups(ctx context.Context, eventID string, callerUserID string) ([]domain.VolunteerSignup, error) {
	if _, err := authorize(ctx, s.userRepo, domain.OpManageVolunteers, callerUserID); err != nil {
		return nil, err
	}

	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	signups, err := s.volunteerRepo.FindSignupsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sign-ups: %w", err)
	}
	return signups, nil
}

func (s *volunteerService) CancelSignup(ctx context.Context, eventID, signupID string, callerUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := authorize(ctx, s.userRepo, domain.OpManageVolunteers, callerUserID); err != nil {
		return err
	}

	signups, err := s.volunteerRepo.FindSignupsByEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to list sign-ups: %w", err)
	}
	found := false
	for _, su := range signups {
		if su.SignupID == signupID {
			found = true
			break
		}
	}
	if !found {
		return apperrors.ErrNotFound
	}

	if err := s.volunteerRepo.DeleteSignup(ctx, signupID); err != nil {
		return err
	}

	logger.Info("Volunteer sign-up cancelled", slog.String("event_id", eventID), slog.String("signup_id", signupID))
	return nil
}
