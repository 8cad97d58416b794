package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `id, user_id, name, description, website, created_at`

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.CompanyProfile) (*domain.CompanyProfile, error) {
	owner, err := uuid.Parse(profile.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO company_profiles (user_id, name, description, website)
		VALUES ($1, $2, $3, $4)
		RETURNING `+profileColumns,
		owner,
		profile.Name,
		profile.Description,
		profile.Website,
	)

	p, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("insert company profile: %w", constraintErr(err, domain.ErrDuplicateProfile))
	}
	return p, nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM company_profiles WHERE user_id = $1`, uid)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan company profile: %w", storeErr(err))
	}
	return p, nil
}

func scanProfile(row pgx.Row) (*domain.CompanyProfile, error) {
	var p domain.CompanyProfile
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Website, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
