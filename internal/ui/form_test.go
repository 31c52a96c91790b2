package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferro/curator/internal/api"
	"github.com/aferro/curator/internal/resource"
)

func TestFormCreateInsertsIntoList(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	b := loadedBrowse(t, backend)

	b.update(keyRunes("n"))
	require.NotNil(t, b.form)
	assert.True(t, b.capturesInput())

	b.update(keyRunes("Quarry blast"))
	cmd := b.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, resource.FormSubmitting, b.form.sess.Phase())

	b.update(cmd())
	assert.Nil(t, b.form)

	require.Len(t, backend.created, 1)
	assert.Equal(t, "Quarry blast", backend.created[0].Field("title"))
	assert.Len(t, b.ctrl.List.Visible(), 4)
}

func TestFormValidationKeepsFormOpen(t *testing.T) {
	backend := newFakePhotoBackend()
	b := loadedBrowse(t, backend)

	b.update(keyRunes("n"))
	cmd := b.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	// The title is required; the save must fail before any request.
	b.update(cmd())
	require.NotNil(t, b.form)
	assert.Equal(t, resource.FormSubmitError, b.form.sess.Phase())

	var verr *resource.ValidationError
	require.ErrorAs(t, b.form.sess.Err(), &verr)
	assert.Empty(t, backend.created)
}

func TestFormMissingAssetRejectedOnCreate(t *testing.T) {
	backend := newFakePhotoBackend()
	cfg := photoBrowseConfig(backend)
	cfg.rules = api.PhotoRules()

	b := newBrowse(testShell(), cfg)
	b.update(b.init()())

	b.update(keyRunes("n"))
	b.update(keyRunes("No file attached"))
	cmd := b.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	b.update(cmd())
	require.NotNil(t, b.form)
	assert.Equal(t, resource.FormSubmitError, b.form.sess.Phase())
	assert.Empty(t, backend.created)
}

func TestFormCreateWithAttachment(t *testing.T) {
	backend := newFakePhotoBackend()
	cfg := photoBrowseConfig(backend)
	cfg.rules = api.PhotoRules()

	path := filepath.Join(t.TempDir(), "pier.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpegdata"), 0o644))

	b := newBrowse(testShell(), cfg)
	b.update(b.init()())

	b.update(keyRunes("n"))
	b.update(keyRunes("North pier"))

	// Tab past the description to the file path field.
	b.update(tea.KeyMsg{Type: tea.KeyTab})
	b.update(tea.KeyMsg{Type: tea.KeyTab})
	b.update(keyRunes(path))

	cmd := b.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	b.update(cmd())
	assert.Nil(t, b.form)

	require.Len(t, backend.created, 1)
	att := backend.created[0].Attachment
	require.NotNil(t, att)
	assert.Equal(t, "photo", att.Field)
	assert.Equal(t, "pier.jpg", att.Name)
	assert.Equal(t, []byte("jpegdata"), att.Data)
}

func TestFormEditPopulatesAndReplaces(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	b := loadedBrowse(t, backend)

	cmd := b.update(keyRunes("e"))
	require.NotNil(t, cmd)
	require.NotNil(t, b.form)
	assert.Equal(t, resource.FormLoading, b.form.sess.Phase())

	b.update(cmd())
	assert.Equal(t, resource.FormPopulated, b.form.sess.Phase())
	assert.Equal(t, "Harbor at dawn", b.form.inputs[0].Value())
	assert.Equal(t, "north pier", b.form.inputs[1].Value())

	b.form.inputs[0].SetValue("Harbor at dusk")
	cmd = b.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	b.update(cmd())
	assert.Nil(t, b.form)

	require.Contains(t, backend.updated, resource.ID(1))
	assert.Equal(t, "Harbor at dusk", b.ctrl.List.Visible()[0].Title)
}

func TestFormEditPrefetchErrorRetries(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	b := loadedBrowse(t, backend)

	backend.mu.Lock()
	backend.getErr = errors.New("boom")
	backend.mu.Unlock()

	cmd := b.update(keyRunes("e"))
	b.update(cmd())
	assert.Equal(t, resource.FormLoadError, b.form.sess.Phase())

	backend.mu.Lock()
	backend.getErr = nil
	backend.mu.Unlock()

	cmd = b.update(keyRunes("r"))
	require.NotNil(t, cmd)
	b.update(cmd())
	assert.Equal(t, resource.FormPopulated, b.form.sess.Phase())
}

func TestFormEscCancels(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	b := loadedBrowse(t, backend)

	b.update(keyRunes("n"))
	require.NotNil(t, b.form)

	b.update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, b.form)
	assert.Empty(t, backend.created)
}

func TestFormChoiceFieldCycles(t *testing.T) {
	backend := newFakePhotoBackend()
	cfg := photoBrowseConfig(backend)
	cfg.form = &formConfig[api.Photo]{
		fields: []formField[api.Photo]{
			{name: "title", label: "Title"},
			{name: "status", label: "Status", options: []string{"active", "inactive"}},
		},
	}

	b := newBrowse(testShell(), cfg)
	b.update(b.init()())
	b.update(keyRunes("n"))
	b.update(keyRunes("Crane rental"))

	b.update(tea.KeyMsg{Type: tea.KeyTab})
	b.update(tea.KeyMsg{Type: tea.KeyRight})
	cmd := b.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	b.update(cmd())

	require.Len(t, backend.created, 1)
	assert.Equal(t, "inactive", backend.created[0].Field("status"))
}

func TestFormStaleSubmitIgnoredAfterCancel(t *testing.T) {
	backend := newFakePhotoBackend(samplePhotos()...)
	b := loadedBrowse(t, backend)

	b.update(keyRunes("n"))
	b.update(keyRunes("Late arrival"))
	cmd := b.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()

	// The form cannot be cancelled mid-submit; esc is a no-op.
	b.update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, b.form)

	b.update(msg)
	assert.Nil(t, b.form)
	assert.Len(t, b.ctrl.List.Visible(), 4)
}
