package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galereya/api/internal/platform/database/schema"
	"github.com/galereya/api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Description,
		schema.RefCategory.Slug, schema.RefCategory.SortOrder,
		schema.RefCategory.CreatedAt, schema.RefCategory.UpdatedAt,
		schema.RefCategory.Table, schema.RefCategory.SortOrder, schema.RefCategory.Name,
	)

	return repository.queryMany(ctx, query, "list_categories")
}

func (repository *PostgresRepository) ListByName(ctx context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Description,
		schema.RefCategory.Slug, schema.RefCategory.SortOrder,
		schema.RefCategory.CreatedAt, schema.RefCategory.UpdatedAt,
		schema.RefCategory.Table, schema.RefCategory.Name,
	)

	return repository.queryMany(ctx, query, "list_categories_by_name")
}

func (repository *PostgresRepository) queryMany(ctx context.Context, query, action string) ([]*Category, error) {
	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Description,
		schema.RefCategory.Slug, schema.RefCategory.SortOrder,
		schema.RefCategory.CreatedAt, schema.RefCategory.UpdatedAt,
		schema.RefCategory.Table, schema.RefCategory.ID,
	)

	c := &Category{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Slug, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category")
	}

	return c, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, c *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.RefCategory.Table,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Description,
		schema.RefCategory.Slug, schema.RefCategory.SortOrder,
		schema.RefCategory.CreatedAt, schema.RefCategory.UpdatedAt,
		schema.RefCategory.CreatedAt, schema.RefCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, c.ID, c.Name, c.Description, c.Slug, c.SortOrder).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_category")
}

func (repository *PostgresRepository) Update(ctx context.Context, c *Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.RefCategory.Table,
		schema.RefCategory.Name, schema.RefCategory.Description,
		schema.RefCategory.Slug, schema.RefCategory.SortOrder, schema.RefCategory.UpdatedAt,
		schema.RefCategory.ID,
		schema.RefCategory.CreatedAt, schema.RefCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, c.ID, c.Name, c.Description, c.Slug, c.SortOrder).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "update_category")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefCategory.Table, schema.RefCategory.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteAll(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s`, schema.RefCategory.Table)

	_, err := repository.db.Exec(ctx, query)
	return dberr.Wrap(err, "reset_categories")
}

func (repository *PostgresRepository) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.RefCategory.Table)

	var total int
	if err := repository.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_categories")
	}
	return total, nil
}

func (repository *PostgresRepository) CreateIfAbsent(ctx context.Context, c *Category) (bool, error) {
	// ON CONFLICT DO NOTHING makes concurrent seeding benign: two racing
	// first-writers cannot both insert, and the loser sees no error.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (%s) DO NOTHING
	`,
		schema.RefCategory.Table,
		schema.RefCategory.ID, schema.RefCategory.Name, schema.RefCategory.Description,
		schema.RefCategory.Slug, schema.RefCategory.SortOrder,
		schema.RefCategory.CreatedAt, schema.RefCategory.UpdatedAt,
		schema.RefCategory.Name,
	)

	cmd, err := repository.db.Exec(ctx, query, c.ID, c.Name, c.Description, c.Slug, c.SortOrder)
	if err != nil {
		return false, dberr.Wrap(err, "create_category_if_absent")
	}

	return cmd.RowsAffected() > 0, nil
}
