package category_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galereya/api/internal/catalog/category"
	"github.com/galereya/api/internal/platform/apperr"
	"github.com/galereya/api/internal/platform/dberr"
)

// fakeRepository is an in-memory Repository enforcing the same name
// uniqueness the database does.
type fakeRepository struct {
	items map[string]*category.Category
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]*category.Category)}
}

func (f *fakeRepository) List(_ context.Context) ([]*category.Category, error) {
	out := f.all()
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeRepository) ListByName(_ context.Context) ([]*category.Category, error) {
	out := f.all()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRepository) all() []*category.Category {
	out := make([]*category.Category, 0, len(f.items))
	for _, c := range f.items {
		clone := *c
		out = append(out, &clone)
	}
	return out
}

func (f *fakeRepository) Get(_ context.Context, id string) (*category.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeRepository) Create(_ context.Context, c *category.Category) error {
	if f.nameTaken(c.Name, c.ID) {
		return dberr.ErrDuplicate
	}
	clone := *c
	f.items[c.ID] = &clone
	return nil
}

func (f *fakeRepository) Update(_ context.Context, c *category.Category) error {
	if _, ok := f.items[c.ID]; !ok {
		return dberr.ErrNotFound
	}
	if f.nameTaken(c.Name, c.ID) {
		return dberr.ErrDuplicate
	}
	clone := *c
	f.items[c.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRepository) DeleteAll(_ context.Context) error {
	f.items = make(map[string]*category.Category)
	return nil
}

func (f *fakeRepository) Count(_ context.Context) (int, error) {
	return len(f.items), nil
}

func (f *fakeRepository) CreateIfAbsent(_ context.Context, c *category.Category) (bool, error) {
	if f.nameTaken(c.Name, c.ID) {
		return false, nil
	}
	clone := *c
	f.items[c.ID] = &clone
	return true, nil
}

func (f *fakeRepository) nameTaken(name, excludeID string) bool {
	for id, existing := range f.items {
		if id != excludeID && existing.Name == name {
			return true
		}
	}
	return false
}

func newTestService(repo category.Repository) *category.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return category.NewService(repo, logger)
}

/*
TestService_Create verifies slug derivation and field validation on the
create path.
*/
func TestService_Create(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	created, err := service.Create(context.Background(), category.Input{
		Name:        "Живопись",
		Description: "Картины маслом",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Живопись", created.Name)
	assert.Equal(t, "живопись", created.Slug)
}

func TestService_Create_MissingName(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Create(context.Background(), category.Input{Description: "без имени"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeMissingField, ae.Code)
	assert.Equal(t, category.FieldName, ae.Details[0].Field)
}

func TestService_Create_NameTooLong(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Create(context.Background(), category.Input{
		Name: strings.Repeat("я", category.MaxNameLen+1),
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
}

func TestService_Create_DuplicateName(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Create(context.Background(), category.Input{Name: "Живопись"})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), category.Input{Name: "Живопись"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeDuplicateKey, ae.Code)
	assert.Equal(t, "A category with this name already exists", ae.Message)
}

func TestService_Update_RederivesSlug(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	created, err := service.Create(context.Background(), category.Input{Name: "Графика"})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, category.Input{
		Name:      "Цифровое искусство",
		SortOrder: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "цифровое-искусство", updated.Slug)
	assert.Equal(t, 3, updated.SortOrder)
}

func TestService_Update_NotFound(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Update(context.Background(), "missing-id", category.Input{Name: "Пейзаж"})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestService_Delete_NotFound(t *testing.T) {
	service := newTestService(newFakeRepository())

	err := service.Delete(context.Background(), "missing-id")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.Contains(t, ae.Message, "Category")
}

/*
TestService_EnsureSeeded verifies that startup seeding fills an empty
collection exactly once and leaves a non-empty one untouched.
*/
func TestService_EnsureSeeded(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	require.NoError(t, service.EnsureSeeded(context.Background()))

	first, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 14, first)

	// Second call must be a no-op.
	require.NoError(t, service.EnsureSeeded(context.Background()))
	second, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_EnsureSeeded_SkipsNonEmpty(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	_, err := service.Create(context.Background(), category.Input{Name: "Портрет"})
	require.NoError(t, err)

	require.NoError(t, service.EnsureSeeded(context.Background()))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

/*
TestService_AppendSupplemental checks idempotency of the bulk append and
that the result comes back ordered by name.
*/
func TestService_AppendSupplemental(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	categories, err := service.AppendSupplemental(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 4)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Стикеры Telegram")
	assert.Contains(t, names, "Брендинг")

	// Repeating the call must not duplicate anything.
	categories, err = service.AppendSupplemental(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}

func TestService_Reset(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	require.NoError(t, service.EnsureSeeded(context.Background()))
	require.NoError(t, service.Reset(context.Background()))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}
