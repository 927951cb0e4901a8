package category

import "context"

// Repository is the persistence contract for categories.
//
// Implementations surface failures as apperr values: NOT_FOUND when an ID
// does not resolve, DUPLICATE_KEY when a name or slug collides with an
// existing record.
type Repository interface {
	// List returns all categories ordered by (sort order, name).
	List(ctx context.Context) ([]*Category, error)

	// ListByName returns all categories ordered by name.
	ListByName(ctx context.Context) ([]*Category, error)

	Get(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error

	// DeleteAll unconditionally empties the collection.
	DeleteAll(ctx context.Context) error

	Count(ctx context.Context) (int, error)

	// CreateIfAbsent inserts c unless a category with the same name
	// already exists. It reports whether a row was inserted. Losing an
	// insert race is not an error.
	CreateIfAbsent(ctx context.Context, c *Category) (bool, error)
}
