package service

import (
	"context"
	"testing"

	"github.com/skillsenselab/recruitd/internal/auth"
	"github.com/skillsenselab/recruitd/internal/database"
	"github.com/skillsenselab/recruitd/internal/logger"
	"github.com/skillsenselab/recruitd/internal/models"
	"github.com/skillsenselab/recruitd/internal/repository"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	cfg := database.Config{MaxRetries: 1, LogLevel: "silent"}
	cfg.ApplyDefaults()
	cfg.DSN = ":memory:"

	db, err := database.Open(context.Background(), cfg, logger.NewDefault("test"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newAuthService(t *testing.T, db *database.DB) *AuthService {
	t.Helper()
	tokens, err := auth.NewTokenService(&auth.Config{Secret: "test-secret"})
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	// Minimum cost keeps the hashing in these tests fast.
	hasher := auth.NewBcryptHasher(auth.WithCost(4))
	return NewAuthService(repository.NewUsers(db), hasher, tokens, logger.NewDefault("test"))
}
