package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a batch does not exist.
var ErrNotFound = errors.New("batch not found")

// Batch is one recorded command list.
type Batch struct {
	ID      string  `json:"id"`
	Seq     int64   `json:"seq"`
	Recipe  string  `json:"recipe,omitempty"`
	Payload string  `json:"payload"`
	Digest  string  `json:"digest"`
	Replies []Reply `json:"replies,omitempty"`
}

// Reply is sway's result for the command at Index of a batch.
type Reply struct {
	Index   int    `json:"index"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Failed reports whether any reply is unsuccessful.
func (b Batch) Failed() bool {
	for _, r := range b.Replies {
		if !r.Success {
			return true
		}
	}
	return false
}

// RecordBatch stores a sent payload and returns the batch
// with its assigned ID, seq and digest.
func (s *Store) RecordBatch(ctx context.Context, recipe, payload string) (Batch, error) {
	b := Batch{
		ID:      s.ids.Generate(),
		Recipe:  recipe,
		Payload: payload,
		Digest:  Digest(payload),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Batch{}, fmt.Errorf("record batch: begin: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM batches`).Scan(&b.Seq); err != nil {
		return Batch{}, fmt.Errorf("record batch: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO batches (id, seq, recipe, payload, digest)
		VALUES (?, ?, ?, ?, ?)
	`, b.ID, b.Seq, b.Recipe, b.Payload, b.Digest)
	if err != nil {
		return Batch{}, fmt.Errorf("record batch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Batch{}, fmt.Errorf("record batch: commit: %w", err)
	}
	return b, nil
}

// RecordReplies stores sway's replies for a batch. Replies already
// recorded at the same index are left unchanged, so the call is
// idempotent.
func (s *Store) RecordReplies(ctx context.Context, batchID string, replies []Reply) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record replies: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO replies (batch_id, idx, success, error)
		VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("record replies: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range replies {
		if _, err := stmt.ExecContext(ctx, batchID, r.Index, r.Success, r.Error); err != nil {
			return fmt.Errorf("record replies for %s: %w", batchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record replies: commit: %w", err)
	}
	return nil
}

// ListBatches returns the most recent batches first, with their replies.
// A limit of zero or less returns every batch.
func (s *Store) ListBatches(ctx context.Context, limit int) ([]Batch, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, recipe, payload, digest
		FROM batches
		ORDER BY seq DESC, id ASC COLLATE BINARY
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	return s.scanBatches(ctx, rows)
}

// GetBatch returns one batch with its replies, or ErrNotFound.
func (s *Store) GetBatch(ctx context.Context, id string) (Batch, error) {
	var b Batch
	err := s.db.QueryRowContext(ctx, `
		SELECT id, seq, recipe, payload, digest
		FROM batches
		WHERE id = ?
	`, id).Scan(&b.ID, &b.Seq, &b.Recipe, &b.Payload, &b.Digest)
	if errors.Is(err, sql.ErrNoRows) {
		return Batch{}, fmt.Errorf("get batch %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Batch{}, fmt.Errorf("get batch %s: %w", id, err)
	}

	b.Replies, err = s.readReplies(ctx, b.ID)
	if err != nil {
		return Batch{}, err
	}
	return b, nil
}

// FindByDigest returns the batches with the given digest, oldest first.
func (s *Store) FindByDigest(ctx context.Context, digest string) ([]Batch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, recipe, payload, digest
		FROM batches
		WHERE digest = ?
		ORDER BY seq ASC, id ASC COLLATE BINARY
	`, digest)
	if err != nil {
		return nil, fmt.Errorf("find by digest: %w", err)
	}
	return s.scanBatches(ctx, rows)
}

// scanBatches reads and closes rows, then loads each batch's replies.
func (s *Store) scanBatches(ctx context.Context, rows *sql.Rows) ([]Batch, error) {
	var batches []Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.Seq, &b.Recipe, &b.Payload, &b.Digest); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	err := rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}

	// Replies are loaded after rows is closed: the pool has one connection.
	for i := range batches {
		batches[i].Replies, err = s.readReplies(ctx, batches[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return batches, nil
}

func (s *Store) readReplies(ctx context.Context, batchID string) ([]Reply, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, success, error
		FROM replies
		WHERE batch_id = ?
		ORDER BY idx ASC
	`, batchID)
	if err != nil {
		return nil, fmt.Errorf("read replies for %s: %w", batchID, err)
	}
	defer rows.Close()

	var replies []Reply
	for rows.Next() {
		var r Reply
		if err := rows.Scan(&r.Index, &r.Success, &r.Error); err != nil {
			return nil, fmt.Errorf("scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate replies: %w", err)
	}
	return replies, nil
}
