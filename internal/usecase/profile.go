package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/ErlanBelekov/jobboard/internal/metrics"
	"github.com/ErlanBelekov/jobboard/internal/repository"
)

type ProfileUsecase struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{profiles: profiles}
}

type CreateProfileInput struct {
	UserID      string
	Name        string
	Description string
	Website     *string
}

func (u *ProfileUsecase) Create(ctx context.Context, input CreateProfileInput) (*domain.CompanyProfile, error) {
	_, err := u.profiles.FindByUserID(ctx, input.UserID)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateProfile
	case !errors.Is(err, domain.ErrProfileNotFound):
		return nil, fmt.Errorf("find company profile: %w", err)
	}

	website := input.Website
	if website != nil {
		trimmed := strings.TrimSpace(*website)
		website = &trimmed
		if trimmed == "" {
			website = nil
		}
	}

	profile, err := u.profiles.Create(ctx, &domain.CompanyProfile{
		UserID:      input.UserID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Website:     website,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateProfile) {
			return nil, domain.ErrDuplicateProfile
		}
		return nil, fmt.Errorf("create company profile: %w", err)
	}
	metrics.ProfilesCreatedTotal.Inc()

	return profile, nil
}

func (u *ProfileUsecase) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	profile, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get company profile: %w", err)
	}
	return profile, nil
}
