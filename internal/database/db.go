package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/plazanorte/directory-api/internal/normalize"
)

// DB wraps the MySQL pool with the raw-row query helpers the repositories
// consume, plus a per-process column-metadata cache (table name to column
// list, populated lazily, never invalidated within process lifetime).
type DB struct {
	sql *sql.DB

	colMu   sync.RWMutex
	columns map[string][]string
}

// Connect opens a bounded MySQL connection pool and verifies connectivity.
func Connect(ctx context.Context, dsn string) (*DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN must not be empty")
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql pool: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(1 * time.Hour)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sql: db, columns: make(map[string][]string)}, nil
}

// Close releases the pool.
func (d *DB) Close() error {
	return d.sql.Close()
}

// RawRows runs a query and returns every row as a column-name keyed map.
// []byte cells are converted to string so no driver types leak upward; the
// normalization engine handles everything else.
func (d *DB) RawRows(ctx context.Context, query string, args ...any) ([]normalize.RawRow, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var out []normalize.RawRow
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(normalize.RawRow, len(cols))
		for i, col := range cols {
			if b, ok := cells[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = cells[i]
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// Count runs a single-value count query.
func (d *DB) Count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := d.sql.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return n, nil
}

// Exec runs a statement without returning rows.
func (d *DB) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := d.sql.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

// Columns returns the column list for a table, cached for the process
// lifetime. Concurrent population is an idempotent overwrite.
func (d *DB) Columns(ctx context.Context, table string) ([]string, error) {
	d.colMu.RLock()
	cached, ok := d.columns[table]
	d.colMu.RUnlock()
	if ok {
		return cached, nil
	}

	rows, err := d.sql.QueryContext(ctx, "SHOW COLUMNS FROM `"+table+"`")
	if err != nil {
		return nil, fmt.Errorf("show columns for %s: %w", table, err)
	}
	defer rows.Close()

	meta, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read column metadata: %w", err)
	}

	var names []string
	for rows.Next() {
		cells := make([]any, len(meta))
		ptrs := make([]any, len(meta))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan column metadata: %w", err)
		}
		switch v := cells[0].(type) {
		case []byte:
			names = append(names, string(v))
		case string:
			names = append(names, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column metadata: %w", err)
	}

	d.colMu.Lock()
	d.columns[table] = names
	d.colMu.Unlock()
	return names, nil
}
