package category

import (
	"context"
	"log/slog"

	"github.com/galereya/api/internal/platform/apperr"
	"github.com/galereya/api/internal/platform/validate"
	"github.com/galereya/api/pkg/slug"
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

// Input carries the mutable category fields of a create or update request.
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"order"`
}

// List returns every category ordered by (sort order, name). It is a pure
// read; seeding happens once at startup via [Service.EnsureSeeded].
func (service *Service) List(ctx context.Context) ([]*Category, error) {
	return service.repo.List(ctx)
}

func (service *Service) Get(ctx context.Context, id string) (*Category, error) {
	c, err := service.repo.Get(ctx, id)
	if err != nil {
		return nil, service.named(err)
	}
	return c, nil
}

func (service *Service) Create(ctx context.Context, input Input) (*Category, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	c := &Category{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Description: input.Description,
		Slug:        slug.Make(input.Name),
		SortOrder:   input.SortOrder,
	}

	if err := service.repo.Create(ctx, c); err != nil {
		return nil, service.named(err)
	}

	service.logger.Info("category_created", slog.String("name", c.Name), slog.String("slug", c.Slug))
	return c, nil
}

func (service *Service) Update(ctx context.Context, id string, input Input) (*Category, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// The slug is always re-derived from the incoming name; a stored slug
	// never survives a rename.
	c := &Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Slug:        slug.Make(input.Name),
		SortOrder:   input.SortOrder,
	}

	if err := service.repo.Update(ctx, c); err != nil {
		return nil, service.named(err)
	}

	service.logger.Info("category_updated", slog.String("category_id", id))
	return c, nil
}

func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return service.named(err)
	}

	// Artworks referencing this category keep their dangling reference;
	// membership is opaque and never cascaded.
	service.logger.Warn("category_deleted", slog.String("category_id", id))
	return nil
}

// Reset unconditionally empties the collection. Irreversible; any
// confirmation step is a UI concern.
func (service *Service) Reset(ctx context.Context) error {
	if err := service.repo.DeleteAll(ctx); err != nil {
		return err
	}

	service.logger.Warn("categories_reset")
	return nil
}

// EnsureSeeded inserts the default category set when the collection is
// empty. It is called once at startup, keeping [Service.List] free of
// write side effects. Safe under concurrent startup of multiple replicas.
func (service *Service) EnsureSeeded(ctx context.Context) error {
	total, err := service.repo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	inserted := 0
	for _, seed := range defaultSeeds {
		ok, err := service.createSeed(ctx, seed)
		if err != nil {
			return err
		}
		if ok {
			inserted++
		}
	}

	service.logger.Info("categories_seeded", slog.Int("inserted", inserted))
	return nil
}

// AppendSupplemental inserts each category of the fixed supplemental set
// unless one with the same name already exists, then returns the full
// resulting collection ordered by name. Idempotent under repeated calls.
func (service *Service) AppendSupplemental(ctx context.Context) ([]*Category, error) {
	inserted := 0
	for _, seed := range supplementalSeeds {
		ok, err := service.createSeed(ctx, seed)
		if err != nil {
			return nil, err
		}
		if ok {
			inserted++
		}
	}

	service.logger.Info("categories_appended", slog.Int("inserted", inserted))
	return service.repo.ListByName(ctx)
}

// Check returns the name-ordered collection together with its size. It
// backs a diagnostic endpoint used to verify seeding after a deploy.
func (service *Service) Check(ctx context.Context) ([]*Category, int, error) {
	categories, err := service.repo.ListByName(ctx)
	if err != nil {
		return nil, 0, err
	}
	return categories, len(categories), nil
}

func (service *Service) createSeed(ctx context.Context, seed Seed) (bool, error) {
	c := &Category{
		ID:          uuidv7.New(),
		Name:        seed.Name,
		Description: seed.Description,
		Slug:        slug.Make(seed.Name),
	}
	return service.repo.CreateIfAbsent(ctx, c)
}

// named rewrites generic storage errors into category-specific client
// messages; everything else passes through untouched.
func (service *Service) named(err error) error {
	switch {
	case apperr.IsCode(err, apperr.CodeNotFound):
		return apperr.NotFound("Category")
	case apperr.IsCode(err, apperr.CodeDuplicateKey):
		return apperr.DuplicateKey("A category with this name already exists")
	}
	return err
}

func validateInput(input Input) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxNameLen)

	return validator.Err()
}
