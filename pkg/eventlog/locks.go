package eventlog

import "hash/fnv"

// advisoryLockKey derives a stable int64 key from instance_id for
// Postgres's pg_advisory_xact_lock(bigint), which serializes appends per
// instance without a dedicated lock table. Grounded on tarsy's per-
// session claim idiom (pkg/queue/worker.go's "UPDATE ... WHERE" claim),
// generalized here from row-claiming to a transaction-scoped advisory lock.
func advisoryLockKey(instanceID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(instanceID))
	return int64(h.Sum64())
}
