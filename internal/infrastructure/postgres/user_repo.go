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

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, password_hash, firstname, lastname, role, country, created_at`

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	role := user.Role
	if role == "" {
		role = domain.RoleJobSeeker
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, firstname, lastname, role, country)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		user.Email,
		[]byte(user.PasswordHash),
		user.FirstName,
		user.LastName,
		string(role),
		user.Country,
	)

	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", constraintErr(err, domain.ErrDuplicateEmail))
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return findUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, uid)
	return findUser(row)
}

func findUser(row pgx.Row) (*domain.User, error) {
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", storeErr(err))
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		hash []byte
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &hash, &u.FirstName, &u.LastName, &role, &u.Country, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.PasswordHash = domain.PasswordHash(hash)
	u.Role = domain.Role(role)
	return &u, nil
}
