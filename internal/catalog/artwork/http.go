package artwork

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/galereya/api/internal/platform/middleware"
	requestutil "github.com/galereya/api/internal/platform/request"
	"github.com/galereya/api/internal/platform/respond"
	"github.com/galereya/api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listArtworks)
	router.Get("/{id}", handler.getArtwork)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.createArtwork)
		adminRoute.Put("/{id}", handler.updateArtwork)
		adminRoute.Delete("/{id}", handler.deleteArtwork)
	})
}

func (handler *Handler) listArtworks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	query := request.URL.Query()
	filter := Filter{
		Search:       query.Get("search"),
		CategoryID:   query.Get("category"),
		FeaturedOnly: query.Get("featured") == "true",
	}

	artworks, total, err := handler.service.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, artworks, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getArtwork(writer http.ResponseWriter, request *http.Request) {
	a, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, a)
}

func (handler *Handler) createArtwork(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, a)
}

func (handler *Handler) updateArtwork(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, a)
}

func (handler *Handler) deleteArtwork(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Artwork deleted successfully"})
}
