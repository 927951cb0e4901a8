package category

import "time"

// Category is a curated grouping of artworks (painting, graphics, ...).
//
// The slug is always re-derived from the name immediately before
// persistence; name and slug are both unique across the collection.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	SortOrder   int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const (
	FieldName        = "name"
	FieldDescription = "description"
)

// MaxNameLen bounds the category name, and thereby the derived slug.
const MaxNameLen = 50
