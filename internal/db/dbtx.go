package db

import (
	"context"
	"database/sql"
)

// DBTX is the narrow query surface shared by *sql.DB and *sql.Tx. The
// repositories take it instead of a concrete connection, so the same repo
// type can run standalone or inside a unit-of-work transaction (see how
// RecordStamp builds a tx-scoped stamp repo).
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
