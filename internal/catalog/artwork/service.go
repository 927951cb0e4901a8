package artwork

import (
	"context"
	"log/slog"

	"github.com/galereya/api/internal/platform/apperr"
	"github.com/galereya/api/internal/platform/validate"
	"github.com/galereya/api/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]*Artwork, int, error) {
	return service.repo.List(ctx, filter, limit, offset)
}

func (service *Service) Get(ctx context.Context, id string) (*Artwork, error) {
	a, err := service.repo.Get(ctx, id)
	if err != nil {
		return nil, service.named(err)
	}
	return a, nil
}

func (service *Service) Create(ctx context.Context, input CreateInput) (*Artwork, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, MaxTitleLen).
		Required(FieldImageURL, input.ImageURL)

	if input.Price != nil {
		validator.NonNegative("price", *input.Price)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	categories := input.Categories
	if categories == nil {
		categories = []string{}
	}

	a := &Artwork{
		ID:          uuidv7.New(),
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Categories:  categories,
		Year:        input.Year,
		Technique:   input.Technique,
		Dimensions:  input.Dimensions,
		Price:       input.Price,
		IsSold:      input.IsSold,
		IsFeatured:  input.IsFeatured,
	}

	if err := service.repo.Create(ctx, a); err != nil {
		return nil, service.named(err)
	}

	service.logger.Info("artwork_created", slog.String("artwork_id", a.ID), slog.String("title", a.Title))
	return a, nil
}

// Update applies a partial update: the current record is read, the non-nil
// input fields are layered on top, and the merged record is written back.
// Two concurrent updates resolve last-writer-wins.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Artwork, error) {
	a, err := service.repo.Get(ctx, id)
	if err != nil {
		return nil, service.named(err)
	}

	applyUpdate(a, input)

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, a.Title).
		MaxLen(FieldTitle, a.Title, MaxTitleLen).
		Required(FieldImageURL, a.ImageURL)

	if a.Price != nil {
		validator.NonNegative("price", *a.Price)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(ctx, a); err != nil {
		return nil, service.named(err)
	}

	service.logger.Info("artwork_updated", slog.String("artwork_id", id))
	return a, nil
}

func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return service.named(err)
	}

	service.logger.Warn("artwork_deleted", slog.String("artwork_id", id))
	return nil
}

func applyUpdate(a *Artwork, input UpdateInput) {
	if input.Title != nil {
		a.Title = *input.Title
	}
	if input.Description != nil {
		a.Description = *input.Description
	}
	if input.ImageURL != nil {
		a.ImageURL = *input.ImageURL
	}
	if input.Categories != nil {
		a.Categories = *input.Categories
	}
	if input.Year != nil {
		a.Year = *input.Year
	}
	if input.Technique != nil {
		a.Technique = *input.Technique
	}
	if input.Dimensions != nil {
		a.Dimensions = *input.Dimensions
	}
	if input.Price != nil {
		a.Price = input.Price
	}
	if input.IsSold != nil {
		a.IsSold = *input.IsSold
	}
	if input.IsFeatured != nil {
		a.IsFeatured = *input.IsFeatured
	}
}

func (service *Service) named(err error) error {
	if apperr.IsCode(err, apperr.CodeNotFound) {
		return apperr.NotFound("Artwork")
	}
	return err
}
