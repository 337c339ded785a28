package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appuser "userservice/internal/app/user"
	"userservice/internal/clients/userapi"
	"userservice/internal/config"
	"userservice/internal/db"
	"userservice/internal/db/repository"
	"userservice/internal/http/handlers/health"
	userhandler "userservice/internal/http/handlers/user"
	"userservice/internal/logging"
)

func newTestServer(t *testing.T, dbPath string) *httptest.Server {
	t.Helper()
	logger := logging.NewNop()

	client, err := db.NewClient(config.DBConfig{Driver: "sqlite3", Path: dbPath}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	db.EnsureSchema(context.Background(), client, logger)

	svc := appuser.NewService(repository.NewUserRepository(client, logger), nil, logger)
	r := NewRouter(logger, Options{MaxBodyBytes: 1024},
		health.NewHandler(client),
		userhandler.NewHandler(svc, logger),
	)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func newAPI(t *testing.T, ts *httptest.Server) *userapi.Client {
	t.Helper()
	c, err := userapi.New(ts.URL, 5*time.Second, logging.NewNop())
	require.NoError(t, err)
	return c
}

func doRaw(t *testing.T, ts *httptest.Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

func requireAPIError(t *testing.T, err error, status int, category, message string) {
	t.Helper()
	var apiErr *userapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status, apiErr.StatusCode)
	assert.Equal(t, category, apiErr.Category)
	assert.Equal(t, message, apiErr.Message)
}

func TestUsers_RoundTrip(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "users.db"))
	api := newAPI(t, ts)
	ctx := context.Background()

	created, err := api.Create(ctx, userapi.UserInput{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", created.Message)
	assert.Positive(t, created.ID)

	got, err := api.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, userapi.User{ID: created.ID, Name: "Ada", Email: "ada@example.com"}, got)

	updated, err := api.Update(ctx, created.ID, userapi.UserInput{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "User updated successfully", updated.Message)

	got, err = api.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.Name)
	assert.Equal(t, "grace@example.com", got.Email)

	deleted, err := api.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "User deleted successfully", deleted.Message)

	_, err = api.Get(ctx, created.ID)
	requireAPIError(t, err, http.StatusNotFound, "Not Found", "User not found")
}

func TestUsers_CreateReturnsLocation(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "users.db"))

	resp, err := http.Post(ts.URL+"/users", "application/json", strings.NewReader(`{"name":"a","email":"b"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/users/1", resp.Header.Get("Location"))
}

func TestUsers_ValidationFailures(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "users.db"))

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		message string
	}{
		{"create missing email", http.MethodPost, "/users", `{"name":"Al"}`, "Missing name or email"},
		{"create empty name", http.MethodPost, "/users", `{"name":"","email":"a@b"}`, "Missing name or email"},
		{"create zero name", http.MethodPost, "/users", `{"name":0,"email":"a@b"}`, "Missing name or email"},
		{"create empty body", http.MethodPost, "/users", ``, "No data provided"},
		{"create non-json", http.MethodPost, "/users", `hello`, "No data provided"},
		{"create empty object", http.MethodPost, "/users", `{}`, "No data provided"},
		{"update missing name", http.MethodPut, "/users/1", `{"email":"a@b"}`, "Missing name or email"},
		{"update empty body", http.MethodPut, "/users/1", ``, "No data provided"},
		{"oversized body", http.MethodPost, "/users", `{"name":"` + strings.Repeat("x", 2048) + `","email":"e"}`, "Invalid input or missing data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRaw(t, ts, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "Bad Request", body["error"])
			assert.Equal(t, tt.message, body["message"])
		})
	}

	list, err := newAPI(t, ts).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list, "no invalid request may persist a row")
}

func TestUsers_UpdateAndDeleteMissingIDSucceed(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "users.db"))
	api := newAPI(t, ts)
	ctx := context.Background()

	res, err := api.Update(ctx, 999, userapi.UserInput{Name: "n", Email: "e"})
	require.NoError(t, err)
	assert.Equal(t, "User updated successfully", res.Message)

	for i := 0; i < 2; i++ {
		res, err = api.Delete(ctx, 999)
		require.NoError(t, err)
		assert.Equal(t, "User deleted successfully", res.Message)
	}

	list, err := api.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUsers_ListShape(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "users.db"))
	api := newAPI(t, ts)
	ctx := context.Background()

	resp, err := http.Get(ts.URL + "/users")
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, `[]`, string(raw))

	const n = 3
	for i := 0; i < n; i++ {
		_, err := api.Create(ctx, userapi.UserInput{Name: "n", Email: "e"})
		require.NoError(t, err)
	}

	resp, err = http.Get(ts.URL + "/users")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, n)
	for _, item := range items {
		assert.Len(t, item, 3)
		assert.Contains(t, item, "id")
		assert.Contains(t, item, "name")
		assert.Contains(t, item, "email")
	}
}

func TestUsers_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "users.db"))
	api := newAPI(t, ts)

	const n = 8
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := api.Create(context.Background(), userapi.UserInput{Name: "n", Email: "e"})
			if err == nil {
				ids <- res.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.NotEmpty(t, seen)
}

func TestRouting_GenericFallbacks(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "users.db"))

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/nope"},
		{"non-integer id", http.MethodGet, "/users/abc"},
		{"negative id", http.MethodDelete, "/users/-1"},
		{"id overflow", http.MethodGet, "/users/99999999999999999999"},
		{"unmatched method", http.MethodPatch, "/users/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRaw(t, ts, tt.method, tt.path, "")
			assert.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, "Not Found", body["error"])
			assert.Equal(t, "Resource not found", body["message"])
		})
	}
}

func TestUsers_UnreachableStore(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "missing", "users.db"))

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/users", ""},
		{http.MethodGet, "/users/1", ""},
		{http.MethodPost, "/users", `{"name":"a","email":"b"}`},
		{http.MethodPut, "/users/1", `{"name":"a","email":"b"}`},
		{http.MethodDelete, "/users/1", ""},
	} {
		status, body := doRaw(t, ts, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, status, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Internal Server Error", body["error"])
		assert.Equal(t, "Failed to connect to the database", body["message"])
	}

	// Validation still runs before the store is touched.
	status, body := doRaw(t, ts, http.MethodPost, "/users", `{"name":"a"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing name or email", body["message"])
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "users.db"))
	status, body := doRaw(t, ts, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["db"])

	bad := newTestServer(t, filepath.Join(t.TempDir(), "missing", "users.db"))
	status, body = doRaw(t, bad, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "degraded", body["status"])
}

func TestSwaggerDocServed(t *testing.T) {
	ts := newTestServer(t, filepath.Join(t.TempDir(), "users.db"))

	resp, err := http.Get(ts.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "2.0", doc["swagger"])
}

func TestRecoverer_WritesEnvelope(t *testing.T) {
	h := recoverer(logging.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"error":"Internal Server Error","message":"Something went wrong on the server"}`,
		rec.Body.String())
}
