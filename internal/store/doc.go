// Package store provides the SQLite-backed message journal.
//
// The journal is append-only. Each row holds one message: its id, a logical
// sequence number, the normalized key sheet it was keyed with, and the input
// and output texts. Machine state is never stored; replay always rebuilds a
// machine from the key sheet.
//
// # Ordering
//
// All ordering uses the seq column (a logical clock assigned on insert),
// never timestamps. Listing queries use ORDER BY seq ASC, id ASC COLLATE
// BINARY so results are identical across runs.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
package store
