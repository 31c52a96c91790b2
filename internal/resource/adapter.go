package resource

import "context"

// ID is a server-assigned record identifier, immutable after creation.
type ID int64

// Adapter describes one resource kind to the generic controller.
type Adapter[T any] interface {
	// Kind returns the URL path segment for the resource, e.g. "photos".
	Kind() string
	// ID extracts the record identifier.
	ID(rec T) ID
	// SearchText returns the text fields the client-side filter matches
	// against, e.g. title and description.
	SearchText(rec T) []string
}

// Backend performs the HTTP operations for one resource kind. The api
// package provides implementations; tests substitute fakes.
type Backend[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id ID) (T, error)
	Create(ctx context.Context, draft Draft) (T, error)
	Update(ctx context.Context, id ID, draft Draft) (T, error)
	Delete(ctx context.Context, id ID) error
	DeleteMany(ctx context.Context, ids []ID) error
}

// Draft carries the user-entered fields of a create or update, plus an
// optional binary attachment.
type Draft struct {
	Fields     map[string]string
	Attachment *Attachment
}

// Attachment is a file submitted alongside the text fields. Data is read
// fully before submission; the payloads involved are form uploads, not
// streams.
type Attachment struct {
	Field string
	Name  string
	Data  []byte
}

// Field returns a trimmed draft field value.
func (d Draft) Field(name string) string {
	return trimmed(d.Fields[name])
}
