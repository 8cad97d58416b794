package repository

import (
	"context"

	"github.com/ErlanBelekov/jobboard/internal/domain"
)

// UserRepository returns domain.ErrUserNotFound from the Find methods and
// domain.ErrDuplicateEmail from Create when the email is taken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
