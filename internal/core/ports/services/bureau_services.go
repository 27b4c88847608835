package services

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/assogestion/assogestion/internal/dto"
)

// BureauSvcFacade defines bureau directory operations. The listing is public;
// mutations are gated on bureau administration.
type BureauSvcFacade interface {
	ListBureauMembers(ctx context.Context) ([]domain.BureauMember, error)
	CreateBureauMember(ctx context.Context, req dto.CreateBureauMemberRequest, callerUserID string) (*domain.BureauMember, error)
	UpdateBureauMember(ctx context.Context, memberID string, req dto.UpdateBureauMemberRequest, callerUserID string) (*domain.BureauMember, error)
	DeleteBureauMember(ctx context.Context, memberID string, callerUserID string) error
}
