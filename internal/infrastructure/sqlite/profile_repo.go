package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/google/uuid"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.CompanyProfile) (*domain.CompanyProfile, error) {
	p := *profile
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO company_profiles (id, user_id, name, description, website, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.UserID,
		p.Name,
		p.Description,
		p.Website,
		p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert company profile: %w", constraintErr(err, domain.ErrDuplicateProfile))
	}
	return &p, nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, name, description, website, created_at
FROM company_profiles
WHERE user_id = ?`,
		userID,
	)

	var (
		p       domain.CompanyProfile
		website sql.NullString
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &website, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan company profile: %w", storeErr(err))
	}
	if website.Valid {
		p.Website = &website.String
	}
	return &p, nil
}
