package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/galereya/api/internal/platform/middleware"
	requestutil "github.com/galereya/api/internal/platform/request"
	"github.com/galereya/api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listCategories)
	router.Get("/check", handler.checkCategories)
	router.Get("/{id}", handler.getCategory)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.createCategory)
		adminRoute.Put("/{id}", handler.updateCategory)
		adminRoute.Delete("/{id}", handler.deleteCategory)
		adminRoute.Post("/reset", handler.resetCategories)
		adminRoute.Post("/add-new", handler.appendCategories)
	})
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

// checkCategories is a diagnostic read: collection size plus the
// name-ordered list, independent of display order.
func (handler *Handler) checkCategories(writer http.ResponseWriter, request *http.Request) {
	categories, count, err := handler.service.Check(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{
		"count":      count,
		"categories": categories,
	})
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, c)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Category deleted successfully"})
}

func (handler *Handler) resetCategories(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Reset(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "All categories deleted successfully"})
}

func (handler *Handler) appendCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.AppendSupplemental(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}
