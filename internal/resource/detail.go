package resource

// Detail fetches and holds one record's full row for a view modal. The
// held record is an independently-owned copy: it is discarded on Close
// and never written back into the collection.
type Detail[T any] struct {
	phase  Phase
	id     ID
	record T
	err    error
	token  uint64
}

// Phase reports the modal session's load state.
func (d *Detail[T]) Phase() Phase { return d.phase }

// ID returns the identifier of the record the session is for.
func (d *Detail[T]) ID() ID { return d.id }

// Record returns the loaded record. Meaningful only in PhaseLoaded.
func (d *Detail[T]) Record() T { return d.record }

// Err returns the load error, if the session is in PhaseLoadError.
func (d *Detail[T]) Err() error { return d.err }

// Open starts a fetch session for id and returns its token. Opening
// supersedes any previous session, so an older fetch can no longer land.
func (d *Detail[T]) Open(id ID) uint64 {
	d.token++
	d.phase = PhaseLoading
	d.id = id
	var zero T
	d.record = zero
	d.err = nil
	return d.token
}

// Resolve applies a fetch outcome. Outcomes carrying a stale token, or
// arriving after Close, are discarded; Resolve reports whether the
// outcome was applied.
func (d *Detail[T]) Resolve(token uint64, rec T, err error) bool {
	if token != d.token || d.phase != PhaseLoading {
		return false
	}
	if err != nil {
		d.err = err
		d.phase = PhaseLoadError
		return true
	}
	d.record = rec
	d.phase = PhaseLoaded
	return true
}

// Close discards the session and returns to Idle. Legal in any phase,
// including mid-fetch: the token bump guarantees the in-flight result is
// dropped when it eventually arrives.
func (d *Detail[T]) Close() {
	d.token++
	d.phase = PhaseIdle
	d.id = 0
	var zero T
	d.record = zero
	d.err = nil
}
