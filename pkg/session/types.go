// Package session serializes pipeline requests per instance_id/user_id.
//
// A single /v1/process call spans several separate database
// transactions — replaying prior events, running the constitutional
// pipeline (which seals an audit record under its own user-scoped
// advisory lock), then appending any new events the caller declared.
// Postgres advisory locks serialize each of those transactions
// individually, but not the sequence as a whole: two concurrent
// requests for the same instance could still interleave their
// read-decide-write steps. Manager holds one in-process lock per key
// for the lifetime of a request to close that gap.
package session

import (
	"sync"
)

// entry is a refcounted mutex: refs tracks how many goroutines are
// currently waiting on or holding mu, so Manager can garbage-collect
// locks nobody references anymore instead of growing the map forever.
type entry struct {
	mu   sync.Mutex
	refs int
}
