// Copyright (c) 2026 Galereya. All rights reserved.

package media_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galereya/api/internal/media"
	"github.com/galereya/api/internal/platform/ctxutil"
	"github.com/galereya/api/internal/platform/sec"
)

const placeholderURL = "https://images.example.com/placeholder.jpg"

func newTestRouter(asAdmin bool) chi.Router {
	handler := media.NewHandler(placeholderURL)

	router := chi.NewRouter()
	if asAdmin {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				claims := &sec.AuthClaims{Role: string(sec.RoleAdmin)}
				next.ServeHTTP(writer, request.WithContext(ctxutil.WithAuthUser(request.Context(), claims)))
			})
		})
	}
	router.Route("/upload", handler.RegisterRoutes)
	return router
}

func multipartBody(t *testing.T, fieldName string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile(fieldName, "artwork.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	return body, form.FormDataContentType()
}

func TestUpload_ReturnsPlaceholderURL(t *testing.T) {
	router := newTestRouter(true)

	body, contentType := multipartBody(t, "file")
	request := httptest.NewRequest(http.MethodPost, "/upload", body)
	request.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, placeholderURL, envelope.Data.URL)
}

func TestUpload_MissingFilePart(t *testing.T) {
	router := newTestRouter(true)

	// A multipart form whose file part uses the wrong field name.
	body, contentType := multipartBody(t, "attachment")
	request := httptest.NewRequest(http.MethodPost, "/upload", body)
	request.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "MISSING_REQUIRED_FIELD", envelope.Code)
}

func TestUpload_NotMultipart(t *testing.T) {
	router := newTestRouter(true)

	request := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString(`{"file":"x"}`))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpload_RequiresAdmin(t *testing.T) {
	router := newTestRouter(false)

	body, contentType := multipartBody(t, "file")
	request := httptest.NewRequest(http.MethodPost, "/upload", body)
	request.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
