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

type bureauService struct {
	bureauRepo portsrepo.BureauRepository
	userRepo   portsrepo.UserRepository
}

// NewBureauService creates a new bureau directory service.
func NewBureauService(br portsrepo.BureauRepository, ur portsrepo.UserRepository) portssvc.BureauSvcFacade {
	return &bureauService{bureauRepo: br, userRepo: ur}
}

var _ portssvc.BureauSvcFacade = (*bureauService)(nil)

func (s *bureauService) ListBureauMembers(ctx context.Context) ([]domain.BureauMember, error) {
	members, err := s.bureauRepo.FindBureauMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bureau members: %w", err)
	}
	return members, nil
}

func (s *bureauService) CreateBureauMember(ctx context.Context, req dto.CreateBureauMemberRequest, callerUserID string) (*domain.BureauMember, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := authorize(ctx, s.userRepo, domain.OpManageBureau, callerUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	member := domain.BureauMember{
		MemberID:     uuid.NewString(),
		Name:         req.Name,
		RoleTitle:    req.RoleTitle,
		PhotoURL:     req.PhotoURL,
		DisplayOrder: req.DisplayOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.bureauRepo.SaveBureauMember(ctx, member); err != nil {
		logger.Error("Failed to save bureau member", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create bureau member: %w", err)
	}

	logger.Info("Bureau member created", slog.String("member_id", member.MemberID))
	return &member, nil
}

func (s *bureauService) UpdateBureauMember(ctx context.Context, memberID string, req dto.UpdateBureauMemberRequest, callerUserID string) (*domain.BureauMember, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := authorize(ctx, s.userRepo, domain.OpManageBureau, callerUserID)
	if err != nil {
		return nil, err
	}

	member, err := s.bureauRepo.FindBureauMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
		}
		member.Name = *req.Name
	}
	if req.RoleTitle != nil {
		member.RoleTitle = *req.RoleTitle
	}
	if req.PhotoURL != nil {
		member.PhotoURL = *req.PhotoURL
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}

	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = caller.UserID

	if err := s.bureauRepo.UpdateBureauMember(ctx, *member); err != nil {
		logger.Error("Failed to update bureau member", slog.String("error", err.Error()), slog.String("member_id", memberID))
		return nil, err
	}

	logger.Info("Bureau member updated", slog.String("member_id", memberID))
	return member, nil
}

func (s *bureauService) DeleteBureauMember(ctx context.Context, memberID string, callerUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := authorize(ctx, s.userRepo, domain.OpManageBureau, callerUserID); err != nil {
		return err
	}

	if err := s.bureauRepo.DeleteBureauMember(ctx, memberID); err != nil {
		return err
	}

	logger.Info("Bureau member deleted", slog.String("member_id", memberID))
	return nil
}
