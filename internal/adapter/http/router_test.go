package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifedash-backend/internal/adapter/repository/memory"
	"github.com/simaogato/lifedash-backend/internal/auth"
	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
	"github.com/simaogato/lifedash-backend/internal/usecase/snapshot"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// recordingSink keeps the last uploaded file
type recordingSink struct {
	name string
	body []byte
	err  error
}

func (s *recordingSink) Put(_ context.Context, name string, body []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.name, s.body = name, body
	return "mem://" + name, nil
}

var fixedNow = time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

func newHandler(t *testing.T, withAuth bool) (*Handler, *recordingSink) {
	t.Helper()

	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	repos := memory.NewStore().Repositories()
	require.NoError(t, repos.Tasks.Create(context.Background(), &domain.Task{
		ID:        uuid.New(),
		Title:     "Call mom",
		Status:    domain.TaskStatusPending,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}))

	exporter := snapshot.NewExporter(repos, calendar.New(la))
	exporter.Now = func() time.Time { return fixedNow }

	sink := &recordingSink{}
	h := &Handler{Exporter: exporter, Sink: sink, Log: zerolog.Nop()}
	if withAuth {
		issuer := auth.NewIssuer("hunter2", "test-secret", time.Hour)
		issuer.Now = func() time.Time { return fixedNow }
		h.Auth = issuer
	}
	return h, sink
}

func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Healthz(t *testing.T) {
	h, _ := newHandler(t, true)

	w := do(h.Router(), http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_LoginAndExport(t *testing.T) {
	// Setup
	h, _ := newHandler(t, true)
	r := h.Router()

	// Execute
	w := do(r, http.MethodPost, "/api/login", `{"password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expiresAt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)
	assert.True(t, login.ExpiresAt.Equal(fixedNow.Add(time.Hour)))

	w = do(r, http.MethodGet, "/api/export", "", login.Token)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`attachment; filename="life-dashboard-backup-2024-03-15T183000Z.json"`,
		w.Header().Get("Content-Disposition"))

	var snap snapshot.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, snapshot.Version, snap.Version)
	assert.Equal(t, 1, snap.Stats.Tasks)
	assert.Equal(t, "March 15, 2024 at 11:30 AM", snap.ExportedAtLA)
}

func TestRouter_Unauthorized(t *testing.T) {
	h, _ := newHandler(t, true)
	r := h.Router()

	tests := []struct {
		name  string
		path  string
		token string
	}{
		{"Missing Token", "/api/export", ""},
		{"Forged Token", "/api/export", "not-a-jwt"},
		{"Stats Without Token", "/api/backup/stats", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, tt.path, "", tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	w := do(r, http.MethodPost, "/api/login", `{"password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/login", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_AuthDisabled(t *testing.T) {
	h, _ := newHandler(t, false)
	r := h.Router()

	w := do(r, http.MethodGet, "/api/backup/stats", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tasks":1`)

	w = do(r, http.MethodPost, "/api/login", `{"password":"anything"}`, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_WarnsWhenAuthDisabled(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newHandler(t, false)
	h.Log = zerolog.New(&buf)

	h.Router()

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "Authentication is disabled")

	buf.Reset()
	secured, _ := newHandler(t, true)
	secured.Log = zerolog.New(&buf)
	secured.Router()
	assert.NotContains(t, buf.String(), "Authentication is disabled")
}

func TestRouter_Backup(t *testing.T) {
	// Setup
	h, sink := newHandler(t, false)

	// Execute
	w := do(h.Router(), http.MethodPost, "/api/backup", "", "")

	// Assert
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "life-dashboard-backup-2024-03-15T183000Z.json", sink.name)

	var result snapshot.BackupResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "mem://"+sink.name, result.Location)
	assert.Equal(t, len(sink.body), result.Size)
	assert.Equal(t, 1, result.Stats.Tasks)
}

func TestRouter_BackupErrors(t *testing.T) {
	h, sink := newHandler(t, false)
	sink.err = errors.New("bucket unreachable")

	w := do(h.Router(), http.MethodPost, "/api/backup", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	h.Sink = nil
	w = do(h.Router(), http.MethodPost, "/api/backup", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
