//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/applytrack-backend/internal/adapter/postgres"
	applicationrepo "github.com/heartmarshall/applytrack-backend/internal/adapter/postgres/application"
	"github.com/heartmarshall/applytrack-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/heartmarshall/applytrack-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/applytrack-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/applytrack-backend/internal/auth"
	"github.com/heartmarshall/applytrack-backend/internal/config"
	analyticssvc "github.com/heartmarshall/applytrack-backend/internal/service/analytics"
	applicationsvc "github.com/heartmarshall/applytrack-backend/internal/service/application"
	authsvc "github.com/heartmarshall/applytrack-backend/internal/service/auth"
	"github.com/heartmarshall/applytrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/applytrack-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	userRepo := userrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)
	appRepo := applicationrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtIssuer := "test-issuer"
	accessTTL := 15 * time.Minute
	jwtMgr := authpkg.NewJWTManager(jwtSecret, jwtIssuer, accessTTL)

	// 5. Services.
	authService := authsvc.NewService(
		logger, userRepo, tokenRepo, txm, jwtMgr,
		config.AuthConfig{
			JWTSecret:        jwtSecret,
			JWTIssuer:        jwtIssuer,
			AccessTokenTTL:   accessTTL,
			RefreshTokenTTL:  720 * time.Hour,
			PasswordHashCost: 4, // min bcrypt cost keeps tests fast
		},
	)

	trackerCfg := config.TrackerConfig{
		MaxApplicationsPerUser: 5000,
		ResponseTimeMaxDays:    90,
	}
	applicationService := applicationsvc.NewService(logger, appRepo, trackerCfg)
	analyticsService := analyticssvc.NewService(logger, appRepo, trackerCfg)

	// 6. Handlers + mux, mirroring the app router.
	healthHandler := rest.NewHealthHandler(pool, "test-version")
	authHandler := rest.NewAuthHandler(authService, logger)
	applicationHandler := rest.NewApplicationHandler(applicationService, logger)
	analyticsHandler := rest.NewAnalyticsHandler(analyticsService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireUser(h)
	}
	mux.Handle("POST /api/applications", protected(applicationHandler.Create))
	mux.Handle("GET /api/applications", protected(applicationHandler.List))
	mux.Handle("GET /api/applications/{id}", protected(applicationHandler.Get))
	mux.Handle("PUT /api/applications/{id}", protected(applicationHandler.Update))
	mux.Handle("DELETE /api/applications/{id}", protected(applicationHandler.Delete))
	mux.Handle("POST /api/applications/{id}/status", protected(applicationHandler.ChangeStatus))
	mux.Handle("GET /api/analytics", protected(analyticsHandler.GetReport))

	// 7. Middleware chain.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	// 8. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// doJSON sends a JSON request and returns status + decoded body.
// ---------------------------------------------------------------------------

func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// Account helpers. Every test registers its own user because the database
// is shared across parallel tests.
// ---------------------------------------------------------------------------

type testAccount struct {
	Email        string
	Password     string
	AccessToken  string
	RefreshToken string
	UserID       string
}

// registerTestUser registers a fresh user through the API and returns
// the issued tokens.
func registerTestUser(t *testing.T, ts *testServer) *testAccount {
	t.Helper()

	email := fmt.Sprintf("e2e-%s@example.com", uuid.New().String()[:8])
	password := "correct-horse-battery"

	status, body := ts.doJSON(t, http.MethodPost, "/auth/register", map[string]any{
		"email":    email,
		"name":     "E2E Test User",
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, status, "register failed: %v", body)

	access, _ := body["accessToken"].(string)
	refresh, _ := body["refreshToken"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object in register response")
	userID, _ := user["id"].(string)
	require.NotEmpty(t, userID)

	return &testAccount{
		Email:        email,
		Password:     password,
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       userID,
	}
}

// createApplication creates an application through the API and returns
// the response body.
func createApplication(t *testing.T, ts *testServer, token string, fields map[string]any) map[string]any {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/applications", fields, token)
	require.Equal(t, http.StatusCreated, status, "create application failed: %v", body)
	return body
}
