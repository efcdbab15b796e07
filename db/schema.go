package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Execer is the subset of *sql.DB needed to apply the schema.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Schema returns the DDL for the players and matches tables and the
// standings view.
func Schema() string {
	return schemaSQL
}

// ApplySchema creates the tables and views if they are missing.
func ApplySchema(ctx context.Context, conn Execer) error {
	if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
