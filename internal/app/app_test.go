package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"study_tracker_backend/internal/config"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/pkg/prefs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: "test"},
		Database:  config.DatabaseConfig{Driver: "memory"},
		JWT:       config.JWTConfig{Secret: "test-secret-test-secret-test-secret"},
		Storage:   config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 0},
		Calendar:  config.CalendarConfig{Timezone: "UTC"},
	}
	app := newApp(cfg, nil, repository.NewMemoryCollections(), prefs.NewMemoryStore())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() { cancel(); app.Close(ctx) })
	return app
}

func serve(app *App, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestViewRoutesMirrorAPI(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/dashboard", "/logbook", "/subjects", "/insights"} {
		view := serve(app, http.MethodGet, path)
		api := serve(app, http.MethodGet, "/api"+path)
		require.Equal(t, http.StatusOK, view.Code, path)
		assert.JSONEq(t, api.Body.String(), view.Body.String(), path)
	}

	home := serve(app, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, home.Code)
	var body struct {
		Data struct {
			AppName string `json:"appName"`
			Links   []any  `json:"links"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(home.Body.Bytes(), &body))
	assert.Equal(t, "Study Tracker", body.Data.AppName)
	assert.Len(t, body.Data.Links, 5)
}

func TestUnknownPaths(t *testing.T) {
	app := newTestApp(t)

	w := serve(app, http.MethodGet, "/somewhere/else")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = serve(app, http.MethodGet, "/api/nothing-here")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":404`)
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	w := serve(app, http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"memory"`)

	w = serve(app, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
