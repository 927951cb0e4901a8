package artwork

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

func (repository *PostgresRepository) List(ctx context.Context, f Filter, limit, offset int) ([]*Artwork, int, error) {
	columns := strings.Join(schema.RefArtwork.Columns(), ", ")
	query := fmt.Sprintf(`SELECT %s FROM %s`, columns, schema.RefArtwork.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.RefArtwork.Table)

	conditions := []string{}
	args := []any{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conditions = append(conditions, schema.RefArtwork.Title+` ILIKE $`+itos(len(args)))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conditions = append(conditions, `$`+itos(len(args))+` = ANY(`+schema.RefArtwork.Categories+`)`)
	}
	if f.FeaturedOnly {
		conditions = append(conditions, schema.RefArtwork.IsFeatured+` = TRUE`)
	}

	if len(conditions) > 0 {
		where := " WHERE " + strings.Join(conditions, " AND ")
		query += where
		countQuery += where
	}

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artworks")
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.RefArtwork.CreatedAt) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_artworks")
	}
	defer rows.Close()

	artworks := make([]*Artwork, 0)
	for rows.Next() {
		a := &Artwork{}
		if err := scanArtwork(rows.Scan, a); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_artwork")
		}
		artworks = append(artworks, a)
	}

	return artworks, total, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id string) (*Artwork, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.RefArtwork.Columns(), ", "),
		schema.RefArtwork.Table, schema.RefArtwork.ID,
	)

	a := &Artwork{}
	if err := scanArtwork(repository.db.QueryRow(ctx, query, id).Scan, a); err != nil {
		return nil, dberr.Wrap(err, "get_artwork")
	}

	return a, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, a *Artwork) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.RefArtwork.Table,
		strings.Join(schema.RefArtwork.Columns(), ", "),
		schema.RefArtwork.CreatedAt, schema.RefArtwork.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		a.ID, a.Title, a.Description, a.ImageURL, a.Categories,
		a.Year, a.Technique, a.Dimensions, a.Price, a.IsSold, a.IsFeatured,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_artwork")
}

func (repository *PostgresRepository) Update(ctx context.Context, a *Artwork) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6,
			%s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.RefArtwork.Table,
		schema.RefArtwork.Title, schema.RefArtwork.Description, schema.RefArtwork.ImageURL,
		schema.RefArtwork.Categories, schema.RefArtwork.Year,
		schema.RefArtwork.Technique, schema.RefArtwork.Dimensions, schema.RefArtwork.Price,
		schema.RefArtwork.IsSold, schema.RefArtwork.IsFeatured, schema.RefArtwork.UpdatedAt,
		schema.RefArtwork.ID,
		schema.RefArtwork.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		a.ID, a.Title, a.Description, a.ImageURL, a.Categories,
		a.Year, a.Technique, a.Dimensions, a.Price, a.IsSold, a.IsFeatured,
	).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_artwork")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefArtwork.Table, schema.RefArtwork.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_artwork")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// scanArtwork reads one row in Columns() order into a.
func scanArtwork(scan func(dest ...any) error, a *Artwork) error {
	return scan(
		&a.ID, &a.Title, &a.Description, &a.ImageURL, &a.Categories,
		&a.Year, &a.Technique, &a.Dimensions, &a.Price,
		&a.IsSold, &a.IsFeatured, &a.CreatedAt, &a.UpdatedAt,
	)
}

func itos(i int) string {
	return strconv.Itoa(i)
}
