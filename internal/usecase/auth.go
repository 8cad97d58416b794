package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/ErlanBelekov/jobboard/internal/email"
	"github.com/ErlanBelekov/jobboard/internal/metrics"
	"github.com/ErlanBelekov/jobboard/internal/password"
	"github.com/ErlanBelekov/jobboard/internal/repository"
	"github.com/ErlanBelekov/jobboard/internal/token"
)

type AuthUsecase struct {
	users      repository.UserRepository
	hasher     *password.Hasher
	tokens     *token.Manager
	email      email.Sender
	appBaseURL string
	logger     *slog.Logger
}

func NewAuthUsecase(
	users repository.UserRepository,
	hasher *password.Hasher,
	tokens *token.Manager,
	emailSender email.Sender,
	appBaseURL string,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:      users,
		hasher:     hasher,
		tokens:     tokens,
		email:      emailSender,
		appBaseURL: appBaseURL,
		logger:     logger.With("component", "auth_usecase"),
	}
}

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
	Country   string
}

type LoginResult struct {
	Token string
	User  *domain.User
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Signup creates a user with a hashed password. The lookup only produces the
// early error; the unique index on users.email decides concurrent signups.
func (u *AuthUsecase) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	addr := normalizeEmail(input.Email)

	_, err := u.users.FindByEmail(ctx, addr)
	switch {
	case err == nil:
		metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleJobSeeker
	}

	user, err := u.users.Create(ctx, &domain.User{
		Email:        addr,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         role,
		Country:      strings.TrimSpace(input.Country),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	metrics.SignupsTotal.WithLabelValues("created").Inc()

	subject, body := email.Welcome(user.FirstName, u.appBaseURL)
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.WarnContext(ctx, "send welcome email", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// Login checks the password against the stored hash and issues a token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, plaintext string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(emailAddr))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.hasher.Verify(plaintext, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(domain.Claims{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return &LoginResult{Token: signed, User: user}, nil
}

// Authenticate verifies rawToken and resolves the user named by its subject.
// A bad token, a token for a user that no longer exists and a token whose
// email no longer matches that user all return ErrTokenInvalid.
func (u *AuthUsecase) Authenticate(ctx context.Context, rawToken string) (*domain.User, error) {
	if rawToken == "" {
		return nil, domain.ErrNoToken
	}

	claims, err := u.tokens.Verify(rawToken)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		u.logger.DebugContext(ctx, "token rejected", "error", err)
		return nil, domain.ErrTokenInvalid
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.TokenVerificationsTotal.WithLabelValues("unknown_user").Inc()
			return nil, domain.ErrTokenInvalid
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	if user.Email != claims.Email {
		metrics.TokenVerificationsTotal.WithLabelValues("unknown_user").Inc()
		return nil, domain.ErrTokenInvalid
	}

	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return user, nil
}
