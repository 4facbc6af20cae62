// AngelaMos | 2026
// handler_test.go

package todo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/todoapp/internal/core"
	"github.com/angelamos/todoapp/internal/middleware"
)

// stubVerifier maps bearer tokens straight to identities so handler tests can
// exercise the real Authenticator middleware without signing tokens.
type stubVerifier struct {
	identities map[string]middleware.Identity
}

func (s *stubVerifier) VerifyAccessToken(
	_ context.Context,
	token string,
) (middleware.Identity, error) {
	identity, ok := s.identities[token]
	if !ok {
		return middleware.Identity{}, core.ErrTokenInvalid
	}
	return identity, nil
}

func newTestRouter(t *testing.T) (chi.Router, *fakeRepository) {
	t.Helper()

	repo := newFakeRepository()
	handler := NewHandler(NewService(repo))

	verifier := &stubVerifier{identities: map[string]middleware.Identity{
		"alice-token": alice,
		"bob-token":   bob,
	}}

	router := chi.NewRouter()
	handler.RegisterRoutes(router, middleware.Authenticator(verifier))
	return router, repo
}

func doRequest(
	t *testing.T,
	router chi.Router,
	method, path, token string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validRequest() TodoRequest {
	return TodoRequest{
		Title:       "write report",
		Description: "quarterly numbers",
		Priority:    3,
	}
}

func TestHandlerRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/todos/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/todos/", "forged-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandlerCreate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(
		t, router, http.MethodPost, "/todos/", "alice-token", validRequest(),
	)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "write report", resp.Title)
	assert.Equal(t, alice.UserID, resp.OwnerID)
	assert.NotZero(t, resp.ID)
}

func TestHandlerCreateValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name     string
		mutate   func(*TodoRequest)
		expected int
	}{
		{"priority below range", func(r *TodoRequest) { r.Priority = 0 }, http.StatusBadRequest},
		{"priority above range", func(r *TodoRequest) { r.Priority = 6 }, http.StatusBadRequest},
		{"priority at lower bound", func(r *TodoRequest) { r.Priority = 1 }, http.StatusCreated},
		{"priority at upper bound", func(r *TodoRequest) { r.Priority = 5 }, http.StatusCreated},
		{"title too short", func(r *TodoRequest) { r.Title = "ab" }, http.StatusBadRequest},
		{"title at minimum length", func(r *TodoRequest) { r.Title = "abc" }, http.StatusCreated},
		{"missing description", func(r *TodoRequest) { r.Description = "" }, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			rec := doRequest(
				t, router, http.MethodPost, "/todos/", "alice-token", req,
			)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestHandlerList(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 0; i < 2; i++ {
		rec := doRequest(
			t, router, http.MethodPost, "/todos/", "alice-token", validRequest(),
		)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := doRequest(
		t, router, http.MethodPost, "/todos/", "bob-token", validRequest(),
	)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/todos/", "alice-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var todos []TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	assert.Len(t, todos, 2)
}

func TestHandlerGetOwnership(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(
		t, router, http.MethodPost, "/todos/", "alice-token", validRequest(),
	)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	path := fmt.Sprintf("/todos/%d", created.ID)

	rec = doRequest(t, router, http.MethodGet, path, "alice-token", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// another owner sees 404, not 403
	rec = doRequest(t, router, http.MethodGet, path, "bob-token", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerGetBadID(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/todos/0", "/todos/-1", "/todos/abc"} {
		rec := doRequest(t, router, http.MethodGet, path, "alice-token", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, "path %s", path)
	}
}

func TestHandlerUpdate(t *testing.T) {
	router, repo := newTestRouter(t)

	rec := doRequest(
		t, router, http.MethodPost, "/todos/", "alice-token", validRequest(),
	)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	path := fmt.Sprintf("/todos/%d", created.ID)

	update := TodoRequest{
		Title:       "revised report",
		Description: "final numbers",
		Priority:    5,
		Complete:    true,
	}
	rec = doRequest(t, router, http.MethodPut, path, "alice-token", update)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "revised report", resp.Title)
	assert.True(t, resp.Complete)

	stored := repo.todos[created.ID]
	assert.Equal(t, "revised report", stored.Title)

	// another owner cannot update it
	rec = doRequest(t, router, http.MethodPut, path, "bob-token", update)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerDelete(t *testing.T) {
	router, repo := newTestRouter(t)

	rec := doRequest(
		t, router, http.MethodPost, "/todos/", "alice-token", validRequest(),
	)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	path := fmt.Sprintf("/todos/%d", created.ID)

	rec = doRequest(t, router, http.MethodDelete, path, "bob-token", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, repo.todos, created.ID)

	rec = doRequest(t, router, http.MethodDelete, path, "alice-token", nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, repo.todos, created.ID)

	rec = doRequest(t, router, http.MethodDelete, path, "alice-token", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
