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

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	u := *user
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = domain.RoleJobSeeker
	}
	u.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, email, password_hash, firstname, lastname, role, country, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		[]byte(u.PasswordHash),
		u.FirstName,
		u.LastName,
		string(u.Role),
		u.Country,
		u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", constraintErr(err, domain.ErrDuplicateEmail))
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, password_hash, firstname, lastname, role, country, created_at
FROM users
WHERE email = ?`,
		email,
	)
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, password_hash, firstname, lastname, role, country, created_at
FROM users
WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var (
		u    domain.User
		hash []byte
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &hash, &u.FirstName, &u.LastName, &role, &u.Country, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", storeErr(err))
	}
	u.PasswordHash = domain.PasswordHash(hash)
	u.Role = domain.Role(role)
	return &u, nil
}
