package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/applytrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$invalidhashforseededuser0000000000000000000000000000",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedApplication creates an application for the given user with the given
// status and returns it. Optional fields are left NULL.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.ApplicationStatus) domain.Application {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	app := domain.Application{
		ID:       uuid.New(),
		UserID:   userID,
		Company:  "Company " + suffix,
		Position: "Engineer " + suffix,
		Status:   status,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO applications (id, user_id, company, position, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		app.ID, app.UserID, app.Company, app.Position, string(app.Status),
	).Scan(&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication insert: %v", err)
	}

	return app
}
