// Package sqliteschema applies embedded, idempotent SQLite schema files.
package sqliteschema

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

const (
	upMarker   = "-- +schema Up"
	downMarker = "-- +schema Down"
)

// Apply executes every .sql file under root in lexical order.
//
// Files are not tracked: each one must be safe to run against a database
// that already has its objects (CREATE ... IF NOT EXISTS). Each file runs
// in its own transaction, so a failing file leaves earlier files applied
// and its own statements rolled back.
func Apply(ctx context.Context, sqlDB *sql.DB, schemaFS fs.FS, root string) error {
	if sqlDB == nil {
		return fmt.Errorf("sql db is required")
	}
	if schemaFS == nil {
		return fmt.Errorf("schema fs is required")
	}

	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}

	files, err := Files(schemaFS, root)
	if err != nil {
		return err
	}

	for _, file := range files {
		content, err := fs.ReadFile(schemaFS, path.Join(root, file))
		if err != nil {
			return fmt.Errorf("read schema %s: %w", file, err)
		}
		upSQL := ExtractUp(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}
		if err := applyFile(ctx, sqlDB, file, upSQL); err != nil {
			return err
		}
	}
	return nil
}

// Files lists the .sql file names directly under root, sorted.
func Files(schemaFS fs.FS, root string) ([]string, error) {
	entries, err := fs.ReadDir(schemaFS, root)
	if err != nil {
		return nil, fmt.Errorf("read schema dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func applyFile(ctx context.Context, sqlDB *sql.DB, file string, upSQL string) error {
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction %s: %w", file, err)
	}
	if _, err := tx.ExecContext(ctx, upSQL); err != nil && !IsAlreadyExistsError(err) {
		_ = tx.Rollback()
		return fmt.Errorf("exec schema %s: %w", file, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema %s: %w", file, err)
	}
	return nil
}

// ExtractUp returns the SQL in the "-- +schema Up" section, or the whole
// content when no marker is present.
func ExtractUp(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	body := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(body, downMarker); downIdx != -1 {
		return body[:downIdx]
	}
	return body
}

// IsAlreadyExistsError reports whether err means the DDL already took effect.
func IsAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}
