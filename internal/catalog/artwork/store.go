package artwork

import "context"

// Repository is the persistence contract for artworks. Implementations
// surface failures as apperr values.
type Repository interface {
	// List returns a page of artworks matching the filter, newest first,
	// together with the total match count before pagination.
	List(ctx context.Context, f Filter, limit, offset int) ([]*Artwork, int, error)

	Get(ctx context.Context, id string) (*Artwork, error)
	Create(ctx context.Context, a *Artwork) error
	Update(ctx context.Context, a *Artwork) error
	Delete(ctx context.Context, id string) error
}
