package repositories

import (
	"context"

	"github.com/assogestion/assogestion/internal/core/domain"
)

// BureauRepository defines persistence operations for bureau members.
type BureauRepository interface {
	SaveBureauMember(ctx context.Context, member domain.BureauMember) error
	FindBureauMemberByID(ctx context.Context, memberID string) (*domain.BureauMember, error)
	FindBureauMembers(ctx context.Context) ([]domain.BureauMember, error)
	UpdateBureauMember(ctx context.Context, member domain.BureauMember) error
	DeleteBureauMember(ctx context.Context, memberID string) error
}
