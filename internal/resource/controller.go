package resource

// Controller composes the per-screen pieces for one resource kind: the
// collection, the selection, the detail session, and the mutation
// executor. Every entry point that can change the visible set re-prunes
// the selection, so no identifier stays selected once it is filtered out
// or removed.
//
// A screen creates a fresh Controller each time it is visited; there is
// no cross-screen sharing and no cache beyond the screen's lifetime.
type Controller[T any] struct {
	adapter Adapter[T]

	List   *Collection[T]
	Sel    *Selection
	Detail *Detail[T]
	Exec   *Executor[T]
}

// NewController wires a controller for the adapter's kind.
func NewController[T any](adapter Adapter[T], backend Backend[T], rules Rules) *Controller[T] {
	return &Controller[T]{
		adapter: adapter,
		List:    NewCollection(adapter),
		Sel:     NewSelection(),
		Detail:  &Detail[T]{},
		Exec:    NewExecutor(backend, rules),
	}
}

// Kind returns the resource kind's path segment.
func (c *Controller[T]) Kind() string { return c.adapter.Kind() }

// BeginLoad starts a list fetch and returns its generation.
func (c *Controller[T]) BeginLoad() uint64 { return c.List.Begin() }

// ResolveLoad applies a list fetch outcome and intersects the selection
// with the new collection. Stale generations are discarded.
func (c *Controller[T]) ResolveLoad(gen uint64, items []T, err error) bool {
	applied := c.List.Resolve(gen, items, err)
	if applied {
		c.prune()
	}
	return applied
}

// SetFilter updates the text filter and drops newly hidden identifiers
// from the selection.
func (c *Controller[T]) SetFilter(term string) {
	c.List.SetFilter(term)
	c.prune()
}

// SetPredicate updates the extra visibility predicate and re-prunes.
func (c *Controller[T]) SetPredicate(p func(T) bool) {
	c.List.SetPredicate(p)
	c.prune()
}

// Toggle flips selection membership for a visible identifier.
func (c *Controller[T]) Toggle(id ID) {
	c.Sel.Toggle(id)
	c.prune()
}

// ToggleAll selects the full visible set, or clears the selection when
// the visible set is already fully selected.
func (c *Controller[T]) ToggleAll() {
	c.Sel.ToggleAll(c.List.VisibleIDs())
}

// ApplyInsert reconciles a confirmed create.
func (c *Controller[T]) ApplyInsert(rec T) {
	c.List.Apply(Insert(rec))
	c.prune()
}

// ApplyReplace reconciles a confirmed update.
func (c *Controller[T]) ApplyReplace(rec T) {
	c.List.Apply(Replace(rec))
	c.prune()
}

// ApplyRemove reconciles a confirmed single delete and drops the
// identifier from the selection.
func (c *Controller[T]) ApplyRemove(id ID) {
	c.List.Apply(Remove[T](id))
	c.Sel.Remove(id)
	c.prune()
}

// ApplyRemoveMany reconciles a confirmed bulk delete and clears the
// removed identifiers from the selection.
func (c *Controller[T]) ApplyRemoveMany(ids []ID) {
	c.List.Apply(RemoveMany[T](ids))
	c.Sel.Remove(ids...)
	c.prune()
}

func (c *Controller[T]) prune() {
	c.Sel.Prune(c.List.VisibleIDs())
}
