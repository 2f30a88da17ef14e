package config

import "sync/atomic"

// Snapshot is an immutable view of the policy sections that can change at
// runtime through the config API. Readers must never mutate it.
type Snapshot struct {
	Routing *RoutingConfig
	Safety  *SafetyConfig
	Queue   *QueueConfig
}

// Holder publishes the current Snapshot. Writers replace the whole snapshot
// atomically; readers always observe a consistent document.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder creates a holder seeded with the given snapshot.
func NewHolder(snap *Snapshot) *Holder {
	h := &Holder{}
	h.current.Store(snap)
	return h
}

// Load returns the current snapshot.
func (h *Holder) Load() *Snapshot {
	return h.current.Load()
}

// Store replaces the current snapshot.
func (h *Holder) Store(snap *Snapshot) {
	h.current.Store(snap)
}
