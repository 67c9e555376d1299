//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arlearn/admin-backend/internal/adapter/postgres/account"
	"github.com/arlearn/admin-backend/internal/adapter/postgres/armodel"
	"github.com/arlearn/admin-backend/internal/adapter/postgres/quiz"
	"github.com/arlearn/admin-backend/internal/adapter/postgres/testhelper"
	"github.com/arlearn/admin-backend/internal/config"
	"github.com/arlearn/admin-backend/internal/domain"
	authsvc "github.com/arlearn/admin-backend/internal/service/auth"
	"github.com/arlearn/admin-backend/internal/service/catalog"
	"github.com/arlearn/admin-backend/internal/transport/middleware"
	"github.com/arlearn/admin-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	// 3. Repositories.
	accountRepo := account.New(pool)
	modelRepo := armodel.New(pool)
	quizRepo := quiz.New(pool)

	// 4. Services.
	authService := authsvc.NewService(logger, accountRepo)
	catalogService := catalog.NewService(logger, modelRepo, quizRepo)

	// 5. Router. Rate limiting is off so login tests can hammer the
	// endpoint without tripping the bucket.
	rateLimiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rateLimiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Models:  rest.NewModelsHandler(catalogService, logger),
		Health:  rest.NewHealthHandler(pool, "test-version"),

		Logger: logger,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Session",
			MaxAge:         86400,
		},
		RateLimit:   config.RateLimitConfig{Enabled: false},
		RateLimiter: rateLimiter,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// createAccount inserts a fresh account with a unique name and returns it
// with the plaintext password still set.
func (ts *testServer) createAccount(t *testing.T) *domain.Account {
	t.Helper()

	acc := &domain.Account{
		Name:     "admin-" + uuid.NewString()[:8],
		Password: "pw-" + uuid.NewString()[:8],
	}
	created, err := account.New(ts.Pool).Create(context.Background(), acc)
	require.NoError(t, err)

	created.Password = acc.Password
	return created
}

// login posts credentials and returns the decoded session marker.
func (ts *testServer) login(t *testing.T, name, password string) domain.SessionRecord {
	t.Helper()

	resp := ts.doJSON(t, http.MethodPost, "/api/auth/login", "",
		map[string]string{"name": name, "password": password})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rec domain.SessionRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	return rec
}

// doJSON sends a JSON request. A non-empty session value is forwarded in
// the X-Session header.
func (ts *testServer) doJSON(t *testing.T, method, path, session string, body any) *http.Response {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session", session)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes the response body into a map and closes it.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var m map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}
