package artwork

import "time"

// Artwork is a single catalog piece. Categories holds category IDs as
// opaque strings; there is no referential integrity against the category
// table, and deleting a category leaves its references in place.
type Artwork struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Categories  []string  `json:"categories"`
	Year        int       `json:"year"`
	Technique   string    `json:"technique"`
	Dimensions  string    `json:"dimensions"`
	Price       *float64  `json:"price"`
	IsSold      bool      `json:"isSold"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Filter narrows a listing. Zero-valued fields impose no restriction;
// set fields compose with AND.
type Filter struct {
	// Search matches the title, case-insensitive substring.
	Search string

	// CategoryID filters by membership in the categories array.
	CategoryID string

	FeaturedOnly bool
}

// UpdateInput carries a partial update: only non-nil fields are applied.
// Concurrent updates are last-writer-wins.
type UpdateInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Categories  *[]string `json:"categories"`
	Year        *int      `json:"year"`
	Technique   *string   `json:"technique"`
	Dimensions  *string   `json:"dimensions"`
	Price       *float64  `json:"price"`
	IsSold      *bool     `json:"isSold"`
	IsFeatured  *bool     `json:"isFeatured"`
}

// CreateInput carries the fields accepted on creation. Only Title and
// ImageURL are mandatory.
type CreateInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Categories  []string `json:"categories"`
	Year        int      `json:"year"`
	Technique   string   `json:"technique"`
	Dimensions  string   `json:"dimensions"`
	Price       *float64 `json:"price"`
	IsSold      bool     `json:"isSold"`
	IsFeatured  bool     `json:"isFeatured"`
}

const (
	FieldTitle    = "title"
	FieldImageURL = "imageUrl"
)

const MaxTitleLen = 100
