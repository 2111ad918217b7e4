package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/termwire/internal/term"
)

// ReadBatch returns all terms of a batch in sequence order.
//
// Returns an empty slice (not nil) if the batch has no terms.
func (s *Store) ReadBatch(ctx context.Context, batch string) ([]term.Value, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, payload
		FROM terms
		WHERE batch = ?
		ORDER BY seq ASC
	`, batch)
	if err != nil {
		return nil, fmt.Errorf("query batch: %w", err)
	}
	defer rows.Close()

	var values []term.Value
	for rows.Next() {
		var kind string
		var payload []byte
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}

		v, err := decodeTerm(kind, payload)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate terms: %w", err)
	}

	if values == nil {
		values = []term.Value{}
	}
	return values, nil
}

// ReadTerm returns the term at one sequence position of a batch.
// Returns sql.ErrNoRows via the wrapped error when the position is empty.
func (s *Store) ReadTerm(ctx context.Context, batch string, seq int64) (term.Value, error) {
	var kind string
	var payload []byte

	err := s.db.QueryRowContext(ctx, `
		SELECT kind, payload
		FROM terms
		WHERE batch = ? AND seq = ?
	`, batch, seq).Scan(&kind, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read term %s/%d: %w", batch, seq, err)
	}
	if err != nil {
		return nil, fmt.Errorf("read term: %w", err)
	}

	return decodeTerm(kind, payload)
}
