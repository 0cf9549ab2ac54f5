// Package sqlite provides a SQLite-backed inventory storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/beanstock/internal/platform/storage/sqliteschema"
	"github.com/louisbranch/beanstock/internal/services/inventory/storage"
	"github.com/louisbranch/beanstock/internal/services/inventory/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// selectColumns reads every column in table order. NULL text columns read
// as empty strings so rows written by older tools still scan.
const selectColumns = `id,
       COALESCE(Body, ''), COALESCE(Acidity, ''), COALESCE(Flavor, ''), COALESCE(Aroma, ''),
       COALESCE(Roast, ''), COALESCE(Roastery, ''), COALESCE(RoastDate, ''),
       COALESCE(Country, ''), COALESCE(Blend, ''), COALESCE(Sold, 0)`

// Store persists inventory rows in SQLite through one scoped connection.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite inventory store and ensures the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps every statement on one handle for the
	// lifetime of the store.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	store := &Store{sqlDB: sqlDB}
	if err := store.InitSchema(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// InitSchema creates the inventory table when it does not exist yet.
func (s *Store) InitSchema(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := sqliteschema.Apply(ctx, s.sqlDB, migrations.FS, "."); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// InsertItem appends one row with a zero sold counter.
func (s *Store) InsertItem(ctx context.Context, item storage.NewItem) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO coffee_data (
		   Body, Acidity, Flavor, Aroma, Roast, Roastery, RoastDate, Country, Blend, Sold
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		item.Body,
		item.Acidity,
		item.Flavor,
		item.Aroma,
		item.Roast,
		item.Roastery,
		item.RoastDate,
		item.Country,
		item.Blend,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// DeleteItem removes the row with id. A missing id is not an error.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM coffee_data WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// GetItem returns one row by id.
func (s *Store) GetItem(ctx context.Context, id int64) (storage.Item, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Item{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM coffee_data WHERE id = ?`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Item{}, storage.ErrNotFound
		}
		return storage.Item{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// ListItems returns every row in storage order.
func (s *Store) ListItems(ctx context.Context) ([]storage.Item, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return s.query(ctx, "list items", `SELECT `+selectColumns+` FROM coffee_data`)
}

// ListItemsSorted returns every row ordered ascending by column, then by id.
func (s *Store) ListItemsSorted(ctx context.Context, column storage.Column) ([]storage.Item, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if !column.Valid() {
		return nil, fmt.Errorf("sort items: %w: %q", storage.ErrUnknownColumn, string(column))
	}
	query := fmt.Sprintf(`SELECT %s FROM coffee_data ORDER BY %s ASC, id ASC`, selectColumns, quoteIdent(column))
	return s.query(ctx, "sort items", query)
}

// SearchItems returns rows whose column contains substring. Wildcard
// characters in substring match literally.
func (s *Store) SearchItems(ctx context.Context, column storage.Column, substring string) ([]storage.Item, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if !column.Searchable() {
		return nil, fmt.Errorf("search items: %w: %q", storage.ErrUnknownColumn, string(column))
	}
	query := fmt.Sprintf(
		`SELECT %s FROM coffee_data WHERE COALESCE(%s, '') LIKE ? ESCAPE '\'`,
		selectColumns,
		quoteIdent(column),
	)
	return s.query(ctx, "search items", query, "%"+escapeLike(substring)+"%")
}

// IncrementSold adds quantity to the sold counter of id. Negative
// quantities are applied as given; a missing id is not an error.
func (s *Store) IncrementSold(ctx context.Context, id int64, quantity int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE coffee_data SET Sold = COALESCE(Sold, 0) + ? WHERE id = ?`,
		quantity,
		id,
	); err != nil {
		return fmt.Errorf("increment sold: %w", err)
	}
	return nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func (s *Store) query(ctx context.Context, op string, query string, args ...any) ([]storage.Item, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]storage.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (storage.Item, error) {
	var item storage.Item
	err := row.Scan(
		&item.ID,
		&item.Body,
		&item.Acidity,
		&item.Flavor,
		&item.Aroma,
		&item.Roast,
		&item.Roastery,
		&item.RoastDate,
		&item.Country,
		&item.Blend,
		&item.Sold,
	)
	return item, err
}

// quoteIdent quotes an allow-listed column for interpolation.
func quoteIdent(column storage.Column) string {
	return `"` + strings.ReplaceAll(string(column), `"`, `""`) + `"`
}

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeReplacer.Replace(value)
}

var _ storage.Store = (*Store)(nil)
