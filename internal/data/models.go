package data

import (
	"context"
	"database/sql"
	"errors"
)

// ErrRecordNotFound will be returned when a record is not found in the database.
var ErrRecordNotFound = errors.New("record not found")

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Models struct {
	Lemmas LemmaModel
}

// NewModels returns a Models struct containing the initialized models.
func NewModels(db *sql.DB) Models {
	return Models{
		Lemmas: LemmaModel{DB: db},
	}
}
