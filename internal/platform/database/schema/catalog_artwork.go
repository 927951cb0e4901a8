package schema

// RefArtworkTable represents the 'catalog.artwork' table
type RefArtworkTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	ImageURL    string
	Categories  string
	Year        string
	Technique   string
	Dimensions  string
	Price       string
	IsSold      string
	IsFeatured  string
	CreatedAt   string
	UpdatedAt   string
}

// RefArtwork is the schema definition for catalog.artwork
var RefArtwork = RefArtworkTable{
	Table:       "catalog.artwork",
	ID:          "id",
	Title:       "title",
	Description: "description",
	ImageURL:    "imageurl",
	Categories:  "categories",
	Year:        "year",
	Technique:   "technique",
	Dimensions:  "dimensions",
	Price:       "price",
	IsSold:      "issold",
	IsFeatured:  "isfeatured",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t RefArtworkTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.ImageURL, t.Categories,
		t.Year, t.Technique, t.Dimensions, t.Price,
		t.IsSold, t.IsFeatured, t.CreatedAt, t.UpdatedAt,
	}
}
