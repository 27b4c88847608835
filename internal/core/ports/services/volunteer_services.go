package services

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/assogestion/assogestion/internal/dto"
)

// VolunteerSvcFacade defines volunteer sign-up operations. Signing up is
// public; listing and cancelling are gated on volunteer administration.
type VolunteerSvcFacade interface {
	SignUp(ctx context.Context, eventID string, req dto.VolunteerSignupRequest) (*domain.VolunteerSignup, error)
	ListSignups(ctx context.Context, eventID string, callerUserID string) ([]domain.VolunteerSignup, error)
	CancelSignup(ctx context.Context, eventID, signupID string, callerUserID string) error
}
