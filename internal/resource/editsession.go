package resource

// FormPhase describes the create-or-edit form lifecycle.
type FormPhase int

const (
	// FormNew: creating, fields start empty.
	FormNew FormPhase = iota
	// FormLoading: editing, current field values being fetched.
	FormLoading
	// FormLoadError: the edit prefetch failed; retryable.
	FormLoadError
	// FormPopulated: editing, fields pre-filled and editable.
	FormPopulated
	// FormSubmitting: a save is in flight; the submit control is disabled.
	FormSubmitting
	// FormSubmitError: the save failed; fields are retained and the form
	// may be resubmitted.
	FormSubmitError
	// FormDone: the save succeeded; the caller navigates away.
	FormDone
)

// EditSession tracks one pass through a create-or-edit form: optional
// pre-population, submission, and the outcome. Field contents live in the
// form widgets; the session owns only the lifecycle.
type EditSession[T any] struct {
	phase   FormPhase
	id      ID
	editing bool
	record  T
	err     error
	token   uint64
}

// NewCreateSession opens a session for a new record.
func NewCreateSession[T any]() *EditSession[T] {
	return &EditSession[T]{phase: FormNew}
}

// NewEditSession opens a session for an existing record. The caller must
// fetch the current field values and deliver them via ResolvePopulate
// with the session token.
func NewEditSession[T any](id ID) *EditSession[T] {
	return &EditSession[T]{phase: FormLoading, id: id, editing: true, token: 1}
}

// Phase reports the form lifecycle state.
func (s *EditSession[T]) Phase() FormPhase { return s.phase }

// Editing reports whether the session updates an existing record.
func (s *EditSession[T]) Editing() bool { return s.editing }

// ID returns the record under edit; zero for a create session.
func (s *EditSession[T]) ID() ID { return s.id }

// Record returns the pre-population record once FormPopulated.
func (s *EditSession[T]) Record() T { return s.record }

// Err returns the load or submit error for the error phases.
func (s *EditSession[T]) Err() error { return s.err }

// Token identifies the current populate fetch.
func (s *EditSession[T]) Token() uint64 { return s.token }

// RetryPopulate restarts the prefetch after FormLoadError and returns the
// new token.
func (s *EditSession[T]) RetryPopulate() uint64 {
	if !s.editing || s.phase != FormLoadError {
		return 0
	}
	s.token++
	s.phase = FormLoading
	s.err = nil
	return s.token
}

// ResolvePopulate applies the prefetch outcome. Outcomes with a stale
// token (an abandoned form) are discarded.
func (s *EditSession[T]) ResolvePopulate(token uint64, rec T, err error) bool {
	if !s.editing || token != s.token || s.phase != FormLoading {
		return false
	}
	if err != nil {
		s.err = err
		s.phase = FormLoadError
		return true
	}
	s.record = rec
	s.phase = FormPopulated
	return true
}

// BeginSubmit moves the form into FormSubmitting. It reports false when a
// submit is already in flight or the form is not ready, which is what
// keeps double-submission out.
func (s *EditSession[T]) BeginSubmit() bool {
	switch s.phase {
	case FormNew, FormPopulated, FormSubmitError:
		s.phase = FormSubmitting
		s.err = nil
		return true
	default:
		return false
	}
}

// ResolveSubmit applies the save outcome. On failure the fields stay as
// the user left them and the form may be resubmitted.
func (s *EditSession[T]) ResolveSubmit(err error) {
	if s.phase != FormSubmitting {
		return
	}
	if err != nil {
		s.err = err
		s.phase = FormSubmitError
		return
	}
	s.phase = FormDone
}
