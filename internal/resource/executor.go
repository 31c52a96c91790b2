package resource

import (
	"context"
	"fmt"
)

// Rules describe per-kind form validation applied before any request is
// issued.
type Rules struct {
	// Required lists text fields that must be non-empty.
	Required []string
	// AssetField names the binary asset field, empty for kinds without
	// one. The asset is mandatory on create and optional on update.
	AssetField string
}

// ValidationError reports a draft rejected before reaching the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (r Rules) validate(draft Draft, creating bool) error {
	for _, field := range r.Required {
		if draft.Field(field) == "" {
			return &ValidationError{Field: field, Reason: "is required"}
		}
	}
	if creating && r.AssetField != "" && draft.Attachment == nil {
		return &ValidationError{Field: r.AssetField, Reason: "a file is required"}
	}
	return nil
}

// Executor performs create, update, delete, and bulk delete for one
// resource kind. It owns validation; reconciliation of successful
// mutations into the collection is the Controller's job, driven by the
// caller once the outcome is known. Nothing is retried automatically.
type Executor[T any] struct {
	backend Backend[T]
	rules   Rules
}

// NewExecutor builds an executor over the backend with the kind's rules.
func NewExecutor[T any](backend Backend[T], rules Rules) *Executor[T] {
	return &Executor[T]{backend: backend, rules: rules}
}

// Rules returns the executor's validation rules.
func (e *Executor[T]) Rules() Rules { return e.rules }

// Create validates the draft and issues the create request. A validation
// failure rejects the draft without any network call.
func (e *Executor[T]) Create(ctx context.Context, draft Draft) (T, error) {
	if err := e.rules.validate(draft, true); err != nil {
		var zero T
		return zero, err
	}
	return e.backend.Create(ctx, draft)
}

// Update validates the draft and issues the update request. A draft
// without an attachment preserves the stored asset server-side.
func (e *Executor[T]) Update(ctx context.Context, id ID, draft Draft) (T, error) {
	if err := e.rules.validate(draft, false); err != nil {
		var zero T
		return zero, err
	}
	return e.backend.Update(ctx, id, draft)
}

// DeleteOne issues a single delete. Callers must have passed the
// confirmation gate before invoking it.
func (e *Executor[T]) DeleteOne(ctx context.Context, id ID) error {
	return e.backend.Delete(ctx, id)
}

// DeleteMany issues one batched delete for the identifier set. The batch
// is treated as atomic: on failure the caller applies nothing locally.
func (e *Executor[T]) DeleteMany(ctx context.Context, ids []ID) error {
	if len(ids) == 0 {
		return fmt.Errorf("nothing selected")
	}
	return e.backend.DeleteMany(ctx, ids)
}

// PendingDelete is a destructive action awaiting user confirmation. The
// executor is only invoked once the confirmation step resolves; declining
// is the sole pre-issue cancellation point.
type PendingDelete struct {
	IDs []ID
}

// Bulk reports whether the pending delete targets more than one record.
func (p PendingDelete) Bulk() bool { return len(p.IDs) > 1 }
