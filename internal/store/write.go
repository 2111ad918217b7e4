package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/termwire/internal/term"
)

// NewBatchToken returns a fresh batch identifier.
// Uses github.com/google/uuid for RFC 4122 compliant UUIDs.
func NewBatchToken() string {
	return uuid.NewString()
}

// WriteTerm inserts one term into a batch at the given sequence position.
// Uses ON CONFLICT(batch, seq) DO NOTHING for idempotency - rewriting the
// same position is silently ignored.
func (s *Store) WriteTerm(ctx context.Context, batch string, seq int64, v term.Value) error {
	kind, payload, err := encodeTerm(v)
	if err != nil {
		return fmt.Errorf("write term: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO terms (id, batch, seq, kind, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(batch, seq) DO NOTHING
	`,
		uuid.NewString(),
		batch,
		seq,
		kind,
		payload,
	)
	if err != nil {
		return fmt.Errorf("write term: %w", err)
	}

	return nil
}

// WriteBatch persists values as a new batch, sequenced in slice order
// starting at 1, and returns the batch token.
func (s *Store) WriteBatch(ctx context.Context, values []term.Value) (string, error) {
	batch := NewBatchToken()
	for i, v := range values {
		if err := s.WriteTerm(ctx, batch, int64(i+1), v); err != nil {
			return "", fmt.Errorf("write batch %s: %w", batch, err)
		}
	}
	return batch, nil
}
