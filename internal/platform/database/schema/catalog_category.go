package schema

// RefCategoryTable represents the 'catalog.category' table
type RefCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Slug        string
	SortOrder   string
	CreatedAt   string
	UpdatedAt   string
}

// RefCategory is the schema definition for catalog.category
var RefCategory = RefCategoryTable{
	Table:       "catalog.category",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Slug:        "slug",
	SortOrder:   "sortorder",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t RefCategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.Slug, t.SortOrder, t.CreatedAt, t.UpdatedAt}
}
