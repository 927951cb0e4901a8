// Copyright (c) 2026 Galereya. All rights reserved.

// Package media handles artwork image uploads.
//
// Storage is stubbed: the handler validates that a file part is present
// and returns a configured placeholder URL without persisting anything.
// TODO: replace the placeholder with real object storage once the gallery
// picks a CDN provider.
package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/galereya/api/internal/platform/apperr"
	"github.com/galereya/api/internal/platform/middleware"
	"github.com/galereya/api/internal/platform/respond"
)

// maxUploadSize bounds the multipart form parse buffer (32 MiB).
const maxUploadSize = 32 << 20

type Handler struct {
	placeholderURL string
}

func NewHandler(placeholderURL string) *Handler {
	return &Handler{placeholderURL: placeholderURL}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.With(middleware.RequireAdmin).Post("/", handler.upload)
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Error(writer, request, apperr.MissingField(apperr.FieldError{
			Field:   "file",
			Message: "file is required",
		}))
		return
	}

	file, _, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.MissingField(apperr.FieldError{
			Field:   "file",
			Message: "file is required",
		}))
		return
	}
	defer file.Close()

	respond.OK(writer, uploadResponse{URL: handler.placeholderURL})
}
