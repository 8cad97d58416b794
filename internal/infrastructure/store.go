// Package infrastructure opens the configured storage backend.
package infrastructure

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/jobboard/internal/health"
	"github.com/ErlanBelekov/jobboard/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/jobboard/internal/infrastructure/sqlite"
	"github.com/ErlanBelekov/jobboard/internal/repository"
)

// Store bundles the repositories of one opened, migrated database.
type Store struct {
	Name     string
	Users    repository.UserRepository
	Profiles repository.ProfileRepository
	Pinger   health.Pinger
	close    func() error
}

func (s *Store) Close() error {
	return s.close()
}

// Open connects to databaseURL and applies pending migrations. With
// usePostgres unset databaseURL is a SQLite file path or ":memory:".
func Open(ctx context.Context, databaseURL string, usePostgres bool) (*Store, error) {
	if usePostgres {
		pool, err := postgres.NewPool(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return &Store{
			Name:     "postgres",
			Users:    postgres.NewUserRepository(pool),
			Profiles: postgres.NewProfileRepository(pool),
			Pinger:   pool,
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil
	}

	db, err := sqlite.Open(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{
		Name:     "sqlite",
		Users:    sqlite.NewUserRepository(db),
		Profiles: sqlite.NewProfileRepository(db),
		Pinger:   health.PingerFunc(db.PingContext),
		close:    db.Close,
	}, nil
}
