package repository

import (
	"context"
	"fmt"

	"github.com/plazanorte/directory-api/internal/database"
	"github.com/plazanorte/directory-api/internal/normalize"
)

// Querier is the subset of database.DB the repositories depend on. Tests
// supply fakes; production wires the real pool.
type Querier interface {
	RawRows(ctx context.Context, query string, args ...any) ([]normalize.RawRow, error)
	Count(ctx context.Context, query string, args ...any) (int, error)
	Exec(ctx context.Context, query string, args ...any) error
	Columns(ctx context.Context, table string) ([]string, error)
}

var _ Querier = (*database.DB)(nil)

// CatalogRepository describes read access to the legacy category and content
// tables. Rows come back raw; normalization happens in the service layer.
type CatalogRepository interface {
	CountRows(ctx context.Context, table string) (int, error)
	ListRows(ctx context.Context, table string, limit, offset int) ([]normalize.RawRow, error)
	AllRows(ctx context.Context, table string) ([]normalize.RawRow, error)
}

// MySQLCatalogRepository implements CatalogRepository over the MySQL pool.
// Table names are interpolated, never parameterized, so callers must pass
// only names taken from the static profile registry.
type MySQLCatalogRepository struct {
	db Querier
}

// NewMySQLCatalogRepository wires a MySQL backed repository.
func NewMySQLCatalogRepository(db Querier) *MySQLCatalogRepository {
	return &MySQLCatalogRepository{db: db}
}

// CountRows returns the number of rows in a table.
func (r *MySQLCatalogRepository) CountRows(ctx context.Context, table string) (int, error) {
	n, err := r.db.Count(ctx, fmt.Sprintf("SELECT COUNT(*) FROM `%s`", table))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// ListRows returns one page of raw rows. Pages are ordered by an id-like
// column discovered from the table metadata; unordered LIMIT/OFFSET is not
// stable in MySQL.
func (r *MySQLCatalogRepository) ListRows(ctx context.Context, table string, limit, offset int) ([]normalize.RawRow, error) {
	query := fmt.Sprintf("SELECT * FROM `%s`", table)
	if col, ok := r.orderColumn(ctx, table); ok {
		query += fmt.Sprintf(" ORDER BY `%s`", col)
	}
	query += " LIMIT ? OFFSET ?"

	rows, err := r.db.RawRows(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return rows, nil
}

func (r *MySQLCatalogRepository) orderColumn(ctx context.Context, table string) (string, bool) {
	columns, err := r.db.Columns(ctx, table)
	if err != nil {
		return "", false
	}
	return normalize.OrderColumn(columns)
}

// AllRows returns every raw row of a table. Used for slug lookups: slugs are
// derived during normalization, so they cannot be filtered in SQL. The legacy
// tables are small enough for this to stay cheap.
func (r *MySQLCatalogRepository) AllRows(ctx context.Context, table string) ([]normalize.RawRow, error) {
	query := fmt.Sprintf("SELECT * FROM `%s`", table)
	// Same ordering as ListRows so position-derived fallbacks line up.
	if col, ok := r.orderColumn(ctx, table); ok {
		query += fmt.Sprintf(" ORDER BY `%s`", col)
	}

	rows, err := r.db.RawRows(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	return rows, nil
}
