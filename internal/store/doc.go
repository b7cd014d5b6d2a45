// Package store provides SQLite-backed send history.
//
// Every command list sent to sway is recorded as a batch, together with
// sway's per-command replies:
//   - batches: id, seq, recipe name, rendered payload, payload digest
//   - replies: one row per command result, keyed by (batch_id, idx)
//
// # Ordering
//
// Batches are ordered by seq, a logical clock assigned inside the insert
// transaction, never by timestamps. Queries add "id COLLATE BINARY" as a
// tie breaker so results are identical across runs.
//
// # Digests
//
// Digest hashes the NFC-normalized, whitespace-normalized payload with a
// domain prefix, so equivalent batches can be found with FindByDigest.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
