package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBureauRepository persists the bureau directory.
type PgxBureauRepository struct {
	db *pgxpool.Pool
}

var _ portsrepo.BureauRepository = (*PgxBureauRepository)(nil)

func NewBureauRepository(db *pgxpool.Pool) *PgxBureauRepository {
	return &PgxBureauRepository{db: db}
}

const bureauColumns = `
	member_id, name, role_title, photo_url, display_order,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxBureauRepository) scanMember(row pgx.Row) (*domain.BureauMember, error) {
	var m domain.BureauMember
	err := row.Scan(
		&m.MemberID,
		&m.Name,
		&m.RoleTitle,
		&m.PhotoURL,
		&m.DisplayOrder,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBureauRepository) SaveBureauMember(ctx context.Context, member domain.BureauMember) error {
	query := `
        INSERT INTO bureau_members (member_id, name, role_title, photo_url, display_order,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		member.MemberID,
		member.Name,
		member.RoleTitle,
		member.PhotoURL,
		member.DisplayOrder,
		member.CreatedAt,
		member.CreatedBy,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save bureau member: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxBureauRepository) FindBureauMemberByID(ctx context.Context, memberID string) (*domain.BureauMember, error) {
	query := `SELECT ` + bureauColumns + ` FROM bureau_members WHERE member_id = $1;`
	member, err := r.scanMember(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bureau member %s: %w", memberID, err)
	}
	return member, nil
}

func (r *PgxBureauRepository) FindBureauMembers(ctx context.Context) ([]domain.BureauMember, error) {
	query := `SELECT ` + bureauColumns + ` FROM bureau_members ORDER BY display_order ASC, name ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bureau members: %w", err)
	}
	defer rows.Close()

	members := []domain.BureauMember{}
	for rows.Next() {
		member, err := r.scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bureau member row: %w", err)
		}
		members = append(members, *member)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bureau member rows: %w", rows.Err())
	}
	return members, nil
}

func (r *PgxBureauRepository) UpdateBureauMember(ctx context.Context, member domain.BureauMember) error {
	query := `
        UPDATE bureau_members
        SET name = $1, role_title = $2, photo_url = $3, display_order = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE member_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		member.Name,
		member.RoleTitle,
		member.PhotoURL,
		member.DisplayOrder,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
		member.MemberID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bureau member: %w", mapPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bureau member not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBureauRepository) DeleteBureauMember(ctx context.Context, memberID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM bureau_members WHERE member_id = $1;`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete bureau member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bureau member not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
