package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	"github.com/assogestion/assogestion/internal/middleware"
)

// authorize resolves the caller's profile and applies the role gate for op.
// The profile is loaded fresh on every call; authorization decisions are never
// cached across requests.
//
// Returns apperrors.ErrUnauthorized when the caller identity is missing or
// unknown, apperrors.ErrForbidden when the profile fails the allow-list. The
// resolved profile is returned so callers can use it for audit fields.
func authorize(ctx context.Context, userRepo portsrepo.UserRepository, op domain.Operation, callerUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if callerUserID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	caller, err := userRepo.FindUserByID(ctx, callerUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// A credential referencing a deleted or unknown profile is not
			// authenticated, which is distinct from forbidden.
			logger.Warn("Authorization failed: caller profile not found", slog.String("caller_user_id", callerUserID))
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to resolve caller profile", slog.String("error", err.Error()), slog.String("caller_user_id", callerUserID))
		return nil, fmt.Errorf("failed to resolve caller profile: %w", err)
	}

	if !domain.IsAuthorized(op, caller) {
		logger.Warn("Authorization failed: role not allowed",
			slog.String("caller_user_id", callerUserID),
			slog.String("role", string(caller.Role)),
			slog.String("operation", string(op)),
		)
		return nil, apperrors.ErrForbidden
	}

	return caller, nil
}
