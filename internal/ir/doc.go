// Package ir provides the canonical record types shared by the journal,
// the operator and the CLI, plus the canonical JSON encoding used to
// fingerprint key sheets and golden traces.
//
// This package imports nothing internal.
//
// Key design constraints:
//   - No float types: numbers are int or int64
//   - All JSON tags use snake_case
//   - Ordering uses the journal's logical seq, never wall-clock time
package ir
