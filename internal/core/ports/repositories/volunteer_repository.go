package repositories

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
)

// VolunteerRepository defines persistence operations for volunteer sign-ups.
type VolunteerRepository interface {
	// SaveSignup inserts a sign-up. The storage layer enforces the capacity and
	// duplicate constraints atomically: ErrConflict when the event's volunteer
	// target is reached, ErrDuplicate when the email already signed up.
	SaveSignup(ctx context.Context, signup domain.VolunteerSignup) error
	FindSignupsByEvent(ctx context.Context, eventID string) ([]domain.VolunteerSignup, error)
	DeleteSignup(ctx context.Context, signupID string) error
}
