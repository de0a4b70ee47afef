package store

import "context"

// Keys in durable storage. Each holds one string value; writes overwrite
// the whole value.
const (
	zonesKey         = "zones"
	schemaVersionKey = "schemaVersion"
	questsKey        = "quests"
)

// SchemaVersion gates whether persisted zone data is trusted. Any stored
// marker that differs causes a destructive reseed; no migration between
// versions is attempted.
const SchemaVersion = 3

// KV abstracts the durable key-value storage the stores persist to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
