package resource

import "strings"

// Phase describes a load state machine: Idle until the first load begins,
// then Loading, then Loaded or LoadError. LoadError is recoverable by
// loading again.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseLoadError
)

// MutationKind enumerates the local reconciliation operations applied
// after a server-confirmed mutation.
type MutationKind int

const (
	MutationInsert MutationKind = iota
	MutationReplace
	MutationRemove
	MutationRemoveMany
)

// Mutation is a server-confirmed change to reconcile into the collection.
type Mutation[T any] struct {
	Kind   MutationKind
	Record T
	IDs    []ID
}

// Insert appends a newly created record.
func Insert[T any](rec T) Mutation[T] {
	return Mutation[T]{Kind: MutationInsert, Record: rec}
}

// Replace swaps the record with the same identifier wholesale.
func Replace[T any](rec T) Mutation[T] {
	return Mutation[T]{Kind: MutationReplace, Record: rec}
}

// Remove evicts a single identifier.
func Remove[T any](id ID) Mutation[T] {
	return Mutation[T]{Kind: MutationRemove, IDs: []ID{id}}
}

// RemoveMany evicts a set of identifiers.
func RemoveMany[T any](ids []ID) Mutation[T] {
	return Mutation[T]{Kind: MutationRemoveMany, IDs: ids}
}

// Collection holds the fetched record list for one screen instance and a
// derived filtered view. It is the sole owner of the authoritative list;
// outside of Resolve, the list changes only through Apply.
type Collection[T any] struct {
	adapter   Adapter[T]
	phase     Phase
	items     []T
	filter    string
	predicate func(T) bool
	loadErr   error
	gen       uint64
	loaded    bool
}

// NewCollection builds an empty collection for the adapter's kind.
func NewCollection[T any](adapter Adapter[T]) *Collection[T] {
	return &Collection[T]{adapter: adapter}
}

// Phase reports the load state.
func (c *Collection[T]) Phase() Phase { return c.phase }

// Err returns the most recent load error, nil after a successful load.
func (c *Collection[T]) Err() error { return c.loadErr }

// HasData reports whether at least one load has succeeded. A later load
// failure keeps the previously fetched data visible.
func (c *Collection[T]) HasData() bool { return c.loaded }

// Begin marks a load in flight and returns its generation. Results of
// older generations are discarded by Resolve, so a rapid reload cannot be
// overwritten by a slower earlier request.
func (c *Collection[T]) Begin() uint64 {
	c.gen++
	c.phase = PhaseLoading
	return c.gen
}

// Resolve applies a load outcome. It reports whether the outcome was
// applied; a stale generation is ignored entirely.
func (c *Collection[T]) Resolve(gen uint64, items []T, err error) bool {
	if gen != c.gen {
		return false
	}
	if err != nil {
		c.loadErr = err
		c.phase = PhaseLoadError
		return true
	}
	c.items = cloneItems(items)
	c.loaded = true
	c.loadErr = nil
	c.phase = PhaseLoaded
	return true
}

// Filter returns the current filter term.
func (c *Collection[T]) Filter() string { return c.filter }

// SetFilter updates the substring filter. Filtering is client-side only
// and recomputed on demand; it never triggers a fetch.
func (c *Collection[T]) SetFilter(term string) { c.filter = term }

// SetPredicate installs an extra visibility predicate on top of the text
// filter (e.g. the contact unread/read toggle). A nil predicate admits
// everything.
func (c *Collection[T]) SetPredicate(p func(T) bool) { c.predicate = p }

// Len returns the size of the unfiltered collection.
func (c *Collection[T]) Len() int { return len(c.items) }

// Items returns a copy of the full unfiltered collection.
func (c *Collection[T]) Items() []T { return cloneItems(c.items) }

// Get finds a record by identifier in the unfiltered collection.
func (c *Collection[T]) Get(id ID) (T, bool) {
	for _, rec := range c.items {
		if c.adapter.ID(rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Visible returns the records admitted by the current filter term and
// predicate, preserving collection order.
func (c *Collection[T]) Visible() []T {
	term := strings.ToLower(trimmed(c.filter))
	var out []T
	for _, rec := range c.items {
		if c.predicate != nil && !c.predicate(rec) {
			continue
		}
		if term != "" && !c.matches(rec, term) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// VisibleIDs returns the identifiers of the visible records.
func (c *Collection[T]) VisibleIDs() []ID {
	visible := c.Visible()
	ids := make([]ID, 0, len(visible))
	for _, rec := range visible {
		ids = append(ids, c.adapter.ID(rec))
	}
	return ids
}

// Apply reconciles a server-confirmed mutation into the held list. This
// is the only path besides Resolve that changes the collection.
func (c *Collection[T]) Apply(m Mutation[T]) {
	switch m.Kind {
	case MutationInsert:
		c.items = append(c.items, m.Record)
	case MutationReplace:
		id := c.adapter.ID(m.Record)
		for i, rec := range c.items {
			if c.adapter.ID(rec) == id {
				c.items[i] = m.Record
				return
			}
		}
	case MutationRemove, MutationRemoveMany:
		evict := make(map[ID]struct{}, len(m.IDs))
		for _, id := range m.IDs {
			evict[id] = struct{}{}
		}
		kept := c.items[:0]
		for _, rec := range c.items {
			if _, gone := evict[c.adapter.ID(rec)]; !gone {
				kept = append(kept, rec)
			}
		}
		c.items = kept
	}
}

func (c *Collection[T]) matches(rec T, lowerTerm string) bool {
	for _, field := range c.adapter.SearchText(rec) {
		if strings.Contains(strings.ToLower(field), lowerTerm) {
			return true
		}
	}
	return false
}

func cloneItems[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}

func trimmed(s string) string { return strings.TrimSpace(s) }
