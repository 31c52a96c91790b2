package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferro/curator/internal/api"
	"github.com/aferro/curator/internal/resource"
)

// fakePhotoBackend is an in-memory stand-in for the photos collection.
type fakePhotoBackend struct {
	mu sync.Mutex

	photos  []api.Photo
	listErr error
	getErr  error

	created []resource.Draft
	updated map[resource.ID]resource.Draft
	deleted []resource.ID
	bulk    [][]resource.ID
	nextID  int64
}

func newFakePhotoBackend(photos ...api.Photo) *fakePhotoBackend {
	return &fakePhotoBackend{
		photos:  photos,
		updated: make(map[resource.ID]resource.Draft),
		nextID:  100,
	}
}

func (f *fakePhotoBackend) List(context.Context) ([]api.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]api.Photo, len(f.photos))
	copy(out, f.photos)
	return out, nil
}

func (f *fakePhotoBackend) Get(_ context.Context, id resource.ID) (api.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return api.Photo{}, f.getErr
	}
	for _, p := range f.photos {
		if resource.ID(p.ID) == id {
			return p, nil
		}
	}
	return api.Photo{}, errors.New("not found")
}

func (f *fakePhotoBackend) Create(_ context.Context, draft resource.Draft) (api.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, draft)
	f.nextID++
	return api.Photo{
		ID:          f.nextID,
		Title:       draft.Field("title"),
		Description: draft.Field("description"),
	}, nil
}

func (f *fakePhotoBackend) Update(_ context.Context, id resource.ID, draft resource.Draft) (api.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated[id] = draft
	return api.Photo{
		ID:          int64(id),
		Title:       draft.Field("title"),
		Description: draft.Field("description"),
	}, nil
}

func (f *fakePhotoBackend) Delete(_ context.Context, id resource.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePhotoBackend) DeleteMany(_ context.Context, ids []resource.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bulk = append(f.bulk, ids)
	return nil
}

func samplePhotos() []api.Photo {
	return []api.Photo{
		{ID: 1, Title: "Harbor at dawn", Description: "north pier"},
		{ID: 2, Title: "Timber yard", Description: "stacked spruce"},
		{ID: 3, Title: "Winter road", Description: "plowed access road"},
	}
}

func testShell() *shell {
	return &shell{
		ctx:    context.Background(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func photoBrowseConfig(backend *fakePhotoBackend) browseConfig[api.Photo] {
	return browseConfig[api.Photo]{
		kind:    "photos",
		title:   "Images",
		adapter: api.PhotoAdapter{},
		backend: backend,
		rules:   resource.Rules{Required: []string{"title"}},
		columns: []column{
			{title: "ID", width: 5},
			{title: "Title", width: 24},
		},
		row: func(p api.Photo) []string {
			return []string{fmt.Sprintf("%d", p.ID), p.Title}
		},
		detail: func(p api.Photo) []string {
			return []string{p.Title, p.Description}
		},
		form: &formConfig[api.Photo]{
			assetLabel: "Image file",
			fields: []formField[api.Photo]{
				{name: "title", label: "Title", fromRecord: func(p api.Photo) string { return p.Title }},
				{name: "description", label: "Description", fromRecord: func(p api.Photo) string { return p.Description }},
			},
		},
	}
}

// loadedBrowse builds a browse screen and resolves its initial load.
func loadedBrowse(t *testing.T, backend *fakePhotoBackend) *browseModel[api.Photo] {
	t.Helper()
	b := newBrowse(testShell(), photoBrowseConfig(backend))
	cmd := b.init()
	require.NotNil(t, cmd)
	b.update(cmd())
	require.Equal(t, resource.PhaseLoaded, b.ctrl.List.Phase())
	return b
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseLoadsOnInit(t *testing.T) {
	b := loadedBrowse(t, newFakePhotoBackend(samplePhotos()...))

	assert.Len(t, b.ctrl.List.Visible(), 3)
	assert.False(t, b.capturesInput())
}

func TestBrowseLoadErrorThenRetry(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	backend.listErr = errors.New("connection refused")

	b := newBrowse(testShell(), photoBrowseConfig(backend))
	b.update(b.init()())
	assert.Equal(t, resource.PhaseLoadError, b.ctrl.List.Phase())
	assert.False(t, b.ctrl.List.HasData())

	backend.mu.Lock()
	backend.listErr = nil
	backend.mu.Unlock()

	cmd := b.update(keyRunes("r"))
	require.NotNil(t, cmd)
	b.update(cmd())
	assert.Equal(t, resource.PhaseLoaded, b.ctrl.List.Phase())
	assert.Len(t, b.ctrl.List.Visible(), 3)
}

func TestBrowseStaleLoadDropped(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	b := newBrowse(testShell(), photoBrowseConfig(backend))

	first := b.init()
	second := b.update(keyRunes("r"))
	require.NotNil(t, second)

	firstMsg := first()

	backend.mu.Lock()
	backend.photos = backend.photos[:1]
	backend.mu.Unlock()
	secondMsg := second()

	// The newer fetch lands first; the older one must not clobber it.
	b.update(secondMsg)
	b.update(firstMsg)
	assert.Len(t, b.ctrl.List.Visible(), 1)
}

func TestBrowseSearchPrunesSelection(t *testing.T) {
	b := loadedBrowse(t, newFakePhotoBackend(samplePhotos()...))

	b.update(keyRunes(" "))
	require.Equal(t, 1, b.ctrl.Sel.Count())

	b.update(keyRunes("/"))
	assert.True(t, b.capturesInput())
	b.update(keyRunes("timber"))

	assert.Len(t, b.ctrl.List.Visible(), 1)
	assert.Equal(t, 0, b.ctrl.Sel.Count())

	// Esc clears the search and leaves search mode.
	b.update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, b.capturesInput())
	assert.Len(t, b.ctrl.List.Visible(), 3)
}

func TestBrowseToggleAll(t *testing.T) {
	b := loadedBrowse(t, newFakePhotoBackend(samplePhotos()...))

	b.update(keyRunes("a"))
	assert.Equal(t, 3, b.ctrl.Sel.Count())
	b.update(keyRunes("a"))
	assert.Equal(t, 0, b.ctrl.Sel.Count())
}

func TestBrowseDeleteNeedsConfirmation(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	b := loadedBrowse(t, backend)

	b.update(keyRunes("d"))
	require.NotNil(t, b.confirm)
	assert.True(t, b.capturesInput())

	// Declining leaves the collection alone.
	b.update(keyRunes("n"))
	assert.Nil(t, b.confirm)
	assert.Empty(t, backend.deleted)
	assert.Len(t, b.ctrl.List.Visible(), 3)

	b.update(keyRunes("d"))
	cmd := b.update(keyRunes("y"))
	require.NotNil(t, cmd)
	assert.True(t, b.busy)

	b.update(cmd())
	assert.False(t, b.busy)
	assert.Equal(t, []resource.ID{1}, backend.deleted)
	assert.Len(t, b.ctrl.List.Visible(), 2)
}

func TestBrowseBulkDelete(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	b := loadedBrowse(t, backend)

	b.update(keyRunes(" "))
	b.update(keyRunes("j"))
	b.update(keyRunes(" "))

	cmd := b.update(keyRunes("D"))
	assert.Nil(t, cmd)
	require.NotNil(t, b.confirm)
	assert.True(t, b.confirm.Bulk())

	cmd = b.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	b.update(cmd())

	require.Len(t, backend.bulk, 1)
	assert.Equal(t, []resource.ID{1, 2}, backend.bulk[0])
	assert.Len(t, b.ctrl.List.Visible(), 1)
	assert.Equal(t, 0, b.ctrl.Sel.Count())
}

func TestBrowseDetailModal(t *testing.T) {
	b := loadedBrowse(t, newFakePhotoBackend(samplePhotos()...))

	cmd := b.update(keyRunes("v"))
	require.NotNil(t, cmd)
	assert.Equal(t, resource.PhaseLoading, b.ctrl.Detail.Phase())
	assert.True(t, b.capturesInput())

	b.update(cmd())
	assert.Equal(t, resource.PhaseLoaded, b.ctrl.Detail.Phase())
	assert.Equal(t, "Harbor at dawn", b.ctrl.Detail.Record().Title)

	b.update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, resource.PhaseIdle, b.ctrl.Detail.Phase())
	assert.False(t, b.capturesInput())
}

func TestBrowseDetailClosedBeforeResponse(t *testing.T) {
	b := loadedBrowse(t, newFakePhotoBackend(samplePhotos()...))

	cmd := b.update(keyRunes("v"))
	require.NotNil(t, cmd)
	msg := cmd()

	b.update(tea.KeyMsg{Type: tea.KeyEsc})
	b.update(msg)
	assert.Equal(t, resource.PhaseIdle, b.ctrl.Detail.Phase())
}

func TestBrowseDetailLoadedHook(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	cfg := photoBrowseConfig(backend)
	cfg.onDetailLoaded = func(sh *shell, rec api.Photo) tea.Cmd {
		return func() tea.Msg {
			rec.Title = "seen: " + rec.Title
			return recordReplacedMsg[api.Photo]{kind: "photos", rec: rec}
		}
	}

	b := newBrowse(testShell(), cfg)
	b.update(b.init()())

	cmd := b.update(keyRunes("v"))
	hook := b.update(cmd())
	require.NotNil(t, hook)
	b.update(hook())

	assert.Equal(t, "seen: Harbor at dawn", b.ctrl.List.Visible()[0].Title)
}

func TestBrowseStatusFilterCycles(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	cfg := photoBrowseConfig(backend)
	cfg.statusOptions = []string{"", "north pier", "stacked spruce"}
	cfg.statusOf = func(p api.Photo) string { return p.Description }

	b := newBrowse(testShell(), cfg)
	b.update(b.init()())

	b.update(keyRunes("f"))
	assert.Len(t, b.ctrl.List.Visible(), 1)
	assert.Equal(t, "Harbor at dawn", b.ctrl.List.Visible()[0].Title)

	b.update(keyRunes("f"))
	assert.Equal(t, "Timber yard", b.ctrl.List.Visible()[0].Title)

	b.update(keyRunes("f"))
	assert.Len(t, b.ctrl.List.Visible(), 3)
}

func TestBrowseViewRenders(t *testing.T) {
	b := loadedBrowse(t, newFakePhotoBackend(samplePhotos()...))

	out := b.view(100, 30, GetTheme(""))
	assert.Contains(t, out, "Harbor at dawn")
	assert.Contains(t, out, "3 of 3 photos")
}
