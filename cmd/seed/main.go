// seed inserts a company user and its profile into the configured database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/ErlanBelekov/jobboard/config"
	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/ErlanBelekov/jobboard/internal/email"
	"github.com/ErlanBelekov/jobboard/internal/infrastructure"
	"github.com/ErlanBelekov/jobboard/internal/password"
	"github.com/ErlanBelekov/jobboard/internal/token"
	"github.com/ErlanBelekov/jobboard/internal/usecase"
	"github.com/lmittmann/tint"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "seed-password"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.SlogLevel()}))

	store, err := infrastructure.Open(ctx, cfg.DatabaseURL, cfg.UsesPostgres())
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer store.Close()

	auth := usecase.NewAuthUsecase(
		store.Users,
		password.NewHasher(cfg.BcryptCost),
		token.NewManager([]byte(cfg.JWTSecret), cfg.JWTTTL),
		email.NewSender("local", "", "", logger),
		cfg.AppBaseURL,
		logger,
	)

	user, err := auth.Signup(ctx, usecase.SignupInput{
		Email:     seedEmail,
		Password:  seedPassword,
		FirstName: "Seed",
		LastName:  "Company",
		Role:      domain.RoleCompany,
		Country:   "KG",
	})
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		user, err = store.Users.FindByEmail(ctx, seedEmail)
		if err != nil {
			log.Fatalf("find seed user: %v", err)
		}
	case err != nil:
		log.Fatalf("seed user: %v", err)
	}

	website := "https://seed.test.local"
	_, err = usecase.NewProfileUsecase(store.Profiles).Create(ctx, usecase.CreateProfileInput{
		UserID:      user.ID,
		Name:        "Seed Co",
		Description: "A company created by the seed command.",
		Website:     &website,
	})
	if err != nil && !errors.Is(err, domain.ErrDuplicateProfile) {
		log.Fatalf("seed profile: %v", err)
	}

	res, err := auth.Login(ctx, seedEmail, seedPassword)
	if err != nil {
		log.Fatalf("login seed user: %v", err)
	}

	logger.Info("seeded", "store", store.Name, "email", seedEmail, "password", seedPassword, "user_id", user.ID)
	logger.Info("bearer token", "token", res.Token)
}
