package resource

import (
	"context"
	"fmt"
)

// note is the record type used across the package tests.
type note struct {
	ID    ID
	Name  string
	Email string
}

type noteAdapter struct{}

func (noteAdapter) Kind() string               { return "notes" }
func (noteAdapter) ID(n note) ID               { return n.ID }
func (noteAdapter) SearchText(n note) []string { return []string{n.Name, n.Email} }

// fakeBackend records calls and serves canned outcomes.
type fakeBackend struct {
	listItems []note
	listErr   error
	getRec    note
	getErr    error
	saveErr   error
	deleteErr error

	calls        []string
	lastDraft    Draft
	lastIDs      []ID
	requestsSent int
}

func (f *fakeBackend) List(ctx context.Context) ([]note, error) {
	f.calls = append(f.calls, "list")
	f.requestsSent++
	return f.listItems, f.listErr
}

func (f *fakeBackend) Get(ctx context.Context, id ID) (note, error) {
	f.calls = append(f.calls, fmt.Sprintf("get:%d", id))
	f.requestsSent++
	return f.getRec, f.getErr
}

func (f *fakeBackend) Create(ctx context.Context, draft Draft) (note, error) {
	f.calls = append(f.calls, "create")
	f.requestsSent++
	f.lastDraft = draft
	if f.saveErr != nil {
		return note{}, f.saveErr
	}
	return note{ID: 100, Name: draft.Field("name")}, nil
}

func (f *fakeBackend) Update(ctx context.Context, id ID, draft Draft) (note, error) {
	f.calls = append(f.calls, fmt.Sprintf("update:%d", id))
	f.requestsSent++
	f.lastDraft = draft
	if f.saveErr != nil {
		return note{}, f.saveErr
	}
	return note{ID: id, Name: draft.Field("name")}, nil
}

func (f *fakeBackend) Delete(ctx context.Context, id ID) error {
	f.calls = append(f.calls, fmt.Sprintf("delete:%d", id))
	f.requestsSent++
	return f.deleteErr
}

func (f *fakeBackend) DeleteMany(ctx context.Context, ids []ID) error {
	f.calls = append(f.calls, "delete-many")
	f.requestsSent++
	f.lastIDs = ids
	return f.deleteErr
}

func sampleNotes() []note {
	return []note{
		{ID: 1, Name: "A", Email: "a@example.com"},
		{ID: 2, Name: "B", Email: "b@example.com"},
	}
}
