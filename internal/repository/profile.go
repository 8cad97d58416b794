package repository

import (
	"context"

	"github.com/ErlanBelekov/jobboard/internal/domain"
)

// ProfileRepository enforces one profile per user at the storage level:
// Create returns domain.ErrDuplicateProfile when the user already owns one.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.CompanyProfile) (*domain.CompanyProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error)
}
