package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Lemma is one persisted lemma cache entry.
type Lemma struct {
	Token string `json:"token"`
	Lemma string `json:"lemma"`
}

// LemmaModel persists the lemma cache between process runs.
type LemmaModel struct {
	DB *sql.DB
}

// All returns every stored entry as a token -> lemma map.
func (m LemmaModel) All() (map[string]string, error) {
	query := `
		SELECT token, lemma
		FROM lemmas`

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lemmas := make(map[string]string)
	for rows.Next() {
		var l Lemma
		if err := rows.Scan(&l.Token, &l.Lemma); err != nil {
			return nil, err
		}
		lemmas[l.Token] = l.Lemma
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lemmas, nil
}

// Get returns the stored lemma of token.
func (m LemmaModel) Get(token string) (*Lemma, error) {
	query := `
		SELECT token, lemma
		FROM lemmas
		WHERE token = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var l Lemma
	err := m.DB.QueryRowContext(ctx, query, token).Scan(&l.Token, &l.Lemma)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &l, nil
}

// InsertBatch stores entries in one transaction. Tokens already stored keep
// their lemma. It returns the number of rows inserted.
func (m LemmaModel) InsertBatch(entries map[string]string) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO lemmas (token, lemma)
		VALUES ($1, $2)
		ON CONFLICT (token) DO NOTHING`

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var inserted int64
	for token, lemma := range entries {
		result, err := insertLemma(ctx, tx, query, token, lemma)
		if err != nil {
			return 0, fmt.Errorf("insert lemma %q: %w", token, err)
		}
		inserted += result
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

func insertLemma(ctx context.Context, db DBTX, query, token, lemma string) (int64, error) {
	result, err := db.ExecContext(ctx, query, token, lemma)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
