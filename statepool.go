package uikit

// Collectable is implemented by pools that need end-of-frame garbage
// collection. The frame context calls CollectGarbage exactly once per frame,
// after the widget traversal, so entries touched earlier in the same frame
// are never evicted mid-traversal.
type Collectable interface {
	CollectGarbage(frame uint64)
}

// poolEntry wraps a state value with the frame it was last touched in.
type poolEntry[T any] struct {
	value T
	stamp uint64
}

// DefaultGraceWindow is how many frames an entry may go untouched before
// eviction. Two frames absorbs widgets rendered every other frame or hidden
// for a single frame by conditional visibility.
const DefaultGraceWindow = 2

// StatePool is a type-safe store for widget state that survives across
// frames. State is created on first lookup of an identity and reused on every
// later frame; entries that stay untouched past the grace window are purged.
//
// The current frame index is an explicit parameter on every touching
// operation rather than ambient package state, so the eviction policy can be
// exercised with synthetic frame numbers.
//
// Usage:
//
//	var sections = uikit.NewStatePool[SectionState]()
//
//	func drawSection(f *uikit.Frame, label string) {
//	    id := f.IDs.IDFromString(label)
//	    state := sections.GetOrCreate(id, f.Index(), func() SectionState {
//	        return SectionState{Open: true}
//	    })
//	    // state is *SectionState - modify directly
//	}
//
// A StatePool is confined to the frame-building goroutine; there is no
// internal locking.
type StatePool[T any] struct {
	entries map[ID]*poolEntry[T]
	grace   uint64
}

// PoolOption configures a StatePool.
type PoolOption func(*poolConfig)

type poolConfig struct {
	grace uint64
}

// WithGraceWindow overrides the number of untouched frames an entry survives
// before CollectGarbage removes it.
func WithGraceWindow(frames uint64) PoolOption {
	return func(c *poolConfig) { c.grace = frames }
}

// NewStatePool creates an empty pool.
func NewStatePool[T any](opts ...PoolOption) *StatePool[T] {
	cfg := poolConfig{grace: DefaultGraceWindow}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &StatePool[T]{
		entries: make(map[ID]*poolEntry[T]),
		grace:   cfg.grace,
	}
}

// GetOrCreate returns the state stored for id, refreshing its frame stamp.
// If id has never been seen, the factory constructs the initial value and it
// is inserted stamped with frame. The returned pointer is valid until the
// entry is evicted or deleted.
func (p *StatePool[T]) GetOrCreate(id ID, frame uint64, factory func() T) *T {
	if entry, ok := p.entries[id]; ok {
		entry.stamp = frame
		return &entry.value
	}
	entry := &poolEntry[T]{value: factory(), stamp: frame}
	p.entries[id] = entry
	return &entry.value
}

// Lookup returns the state stored for id, or false if id has never been
// inserted in this pool's lifetime. The frame stamp is not refreshed, so a
// Lookup alone does not keep an entry alive.
func (p *StatePool[T]) Lookup(id ID) (*T, bool) {
	entry, ok := p.entries[id]
	if !ok {
		return nil, false
	}
	return &entry.value, true
}

// Set stores value for id, creating or overwriting the entry and stamping it
// with frame.
func (p *StatePool[T]) Set(id ID, frame uint64, value T) {
	if entry, ok := p.entries[id]; ok {
		entry.value = value
		entry.stamp = frame
		return
	}
	p.entries[id] = &poolEntry[T]{value: value, stamp: frame}
}

// Delete force-evicts the entry for id. Use this when a widget is explicitly
// destroyed, such as a closed window.
func (p *StatePool[T]) Delete(id ID) {
	delete(p.entries, id)
}

// CollectGarbage removes every entry whose stamp is more than the grace
// window behind frame. Call it once per frame, strictly after all lookups for
// that frame. An entry stamped at frame F with the default window is still
// present at F+2 and gone after collection at F+3.
func (p *StatePool[T]) CollectGarbage(frame uint64) {
	if frame < p.grace {
		return
	}
	threshold := frame - p.grace
	for id, entry := range p.entries {
		if entry.stamp < threshold {
			delete(p.entries, id)
		}
	}
}

// Len returns the number of live entries. Useful for tests and monitoring.
func (p *StatePool[T]) Len() int {
	return len(p.entries)
}

// Clear removes all entries immediately, such as when switching scenes.
func (p *StatePool[T]) Clear() {
	clear(p.entries)
}
