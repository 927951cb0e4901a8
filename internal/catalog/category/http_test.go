package category_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galereya/api/internal/catalog/category"
	"github.com/galereya/api/internal/platform/ctxutil"
	"github.com/galereya/api/internal/platform/sec"
)

// withClaims injects auth claims the way the Authenticate middleware
// would, so admin-gated routes can be exercised without a real token.
func withClaims(role sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := &sec.AuthClaims{Role: string(role)}
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithAuthUser(request.Context(), claims)))
		})
	}
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (chi.Router, *fakeRepository) {
	t.Helper()

	repo := newFakeRepository()
	handler := category.NewHandler(newTestService(repo))

	router := chi.NewRouter()
	router.Use(middlewares...)
	router.Route("/categories", handler.RegisterRoutes)
	return router, repo
}

func doJSON(t *testing.T, router http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, target, reader)
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	envelope := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

/*
TestCategoryHandler_CreateAndList walks the happy path: create through the
admin route, then read the category back through the public list.
*/
func TestCategoryHandler_CreateAndList(t *testing.T) {
	router, _ := newTestRouter(t, withClaims(sec.RoleAdmin))

	recorder := doJSON(t, router, http.MethodPost, "/categories", map[string]interface{}{
		"name":        "Живопись",
		"description": "Картины маслом",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	var created category.Category
	require.NoError(t, json.Unmarshal(envelope["data"], &created))
	assert.Equal(t, "живопись", created.Slug)
	assert.NotEmpty(t, created.ID)

	recorder = doJSON(t, router, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope = decodeEnvelope(t, recorder)
	var listed []category.Category
	require.NoError(t, json.Unmarshal(envelope["data"], &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Живопись", listed[0].Name)
}

func TestCategoryHandler_Create_Duplicate(t *testing.T) {
	router, _ := newTestRouter(t, withClaims(sec.RoleAdmin))

	recorder := doJSON(t, router, http.MethodPost, "/categories", map[string]interface{}{"name": "Живопись"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/categories", map[string]interface{}{"name": "Живопись"})
	require.Equal(t, http.StatusConflict, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	var code string
	require.NoError(t, json.Unmarshal(envelope["code"], &code))
	assert.Equal(t, "DUPLICATE_KEY", code)
}

func TestCategoryHandler_Create_MissingName(t *testing.T) {
	router, _ := newTestRouter(t, withClaims(sec.RoleAdmin))

	recorder := doJSON(t, router, http.MethodPost, "/categories", map[string]interface{}{"description": "без имени"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	var code string
	require.NoError(t, json.Unmarshal(envelope["code"], &code))
	assert.Equal(t, "MISSING_REQUIRED_FIELD", code)
}

func TestCategoryHandler_Mutations_RequireAdmin(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{"create", http.MethodPost, "/categories"},
		{"update", http.MethodPut, "/categories/some-id"},
		{"delete", http.MethodDelete, "/categories/some-id"},
		{"reset", http.MethodPost, "/categories/reset"},
		{"add_new", http.MethodPost, "/categories/add-new"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_anonymous", func(t *testing.T) {
			router, _ := newTestRouter(t)
			recorder := doJSON(t, router, tt.method, tt.target, map[string]interface{}{"name": "x"})
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})

		t.Run(tt.name+"_viewer", func(t *testing.T) {
			router, _ := newTestRouter(t, withClaims(sec.RoleViewer))
			recorder := doJSON(t, router, tt.method, tt.target, map[string]interface{}{"name": "x"})
			assert.Equal(t, http.StatusForbidden, recorder.Code)
		})
	}
}

func TestCategoryHandler_Get_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/categories/missing-id", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCategoryHandler_Delete(t *testing.T) {
	router, repo := newTestRouter(t, withClaims(sec.RoleAdmin))

	recorder := doJSON(t, router, http.MethodPost, "/categories", map[string]interface{}{"name": "Скульптура"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	var created category.Category
	require.NoError(t, json.Unmarshal(envelope["data"], &created))

	recorder = doJSON(t, router, http.MethodDelete, "/categories/"+created.ID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)

	recorder = doJSON(t, router, http.MethodDelete, "/categories/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCategoryHandler_Check(t *testing.T) {
	router, _ := newTestRouter(t, withClaims(sec.RoleAdmin))

	for _, name := range []string{"Скульптура", "Графика"} {
		recorder := doJSON(t, router, http.MethodPost, "/categories", map[string]interface{}{"name": name})
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := doJSON(t, router, http.MethodGet, "/categories/check", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			Count      int                 `json:"count"`
			Categories []category.Category `json:"categories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 2, envelope.Data.Count)
	require.Len(t, envelope.Data.Categories, 2)

	// Ordered by name, not display order.
	assert.Equal(t, "Графика", envelope.Data.Categories[0].Name)
	assert.Equal(t, "Скульптура", envelope.Data.Categories[1].Name)
}

func TestCategoryHandler_Check_Public(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/categories/check", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCategoryHandler_AddNew(t *testing.T) {
	router, _ := newTestRouter(t, withClaims(sec.RoleAdmin))

	recorder := doJSON(t, router, http.MethodPost, "/categories/add-new", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	var categories []category.Category
	require.NoError(t, json.Unmarshal(envelope["data"], &categories))
	assert.Len(t, categories, 4)

	// Idempotent on repeat.
	recorder = doJSON(t, router, http.MethodPost, "/categories/add-new", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope = decodeEnvelope(t, recorder)
	require.NoError(t, json.Unmarshal(envelope["data"], &categories))
	assert.Len(t, categories, 4)
}
