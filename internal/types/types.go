// internal/types/types.go
package types

// EntityID identifies a spawned entity within one session.
// Ids are never reused, even after the entity is removed.
type EntityID uint64
