package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noteRules = Rules{Required: []string{"name"}, AssetField: "photo"}

func TestExecutorCreateRequiresAssetBeforeNetwork(t *testing.T) {
	backend := &fakeBackend{}
	exec := NewExecutor[note](backend, noteRules)

	_, err := exec.Create(context.Background(), Draft{
		Fields: map[string]string{"name": "X"},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "photo", verr.Field)
	assert.Equal(t, 0, backend.requestsSent, "validation failure must not issue a request")
}

func TestExecutorCreateRequiresTextFields(t *testing.T) {
	backend := &fakeBackend{}
	exec := NewExecutor[note](backend, noteRules)

	_, err := exec.Create(context.Background(), Draft{
		Fields:     map[string]string{"name": "   "},
		Attachment: &Attachment{Field: "photo", Name: "x.jpg", Data: []byte{1}},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, 0, backend.requestsSent)
}

func TestExecutorCreateSubmitsValidDraft(t *testing.T) {
	backend := &fakeBackend{}
	exec := NewExecutor[note](backend, noteRules)

	rec, err := exec.Create(context.Background(), Draft{
		Fields:     map[string]string{"name": "X"},
		Attachment: &Attachment{Field: "photo", Name: "x.jpg", Data: []byte{1}},
	})
	require.NoError(t, err)
	assert.Equal(t, ID(100), rec.ID)
	assert.Equal(t, []string{"create"}, backend.calls)
}

func TestExecutorUpdateAssetOptional(t *testing.T) {
	backend := &fakeBackend{}
	exec := NewExecutor[note](backend, noteRules)

	// No attachment on update preserves the stored asset.
	rec, err := exec.Update(context.Background(), 4, Draft{
		Fields: map[string]string{"name": "Y"},
	})
	require.NoError(t, err)
	assert.Equal(t, ID(4), rec.ID)
	assert.Nil(t, backend.lastDraft.Attachment)
}

func TestExecutorDeleteManyRejectsEmptySet(t *testing.T) {
	backend := &fakeBackend{}
	exec := NewExecutor[note](backend, noteRules)

	err := exec.DeleteMany(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 0, backend.requestsSent)
}

func TestExecutorPropagatesBackendErrors(t *testing.T) {
	backend := &fakeBackend{saveErr: errors.New("status 500"), deleteErr: errors.New("status 502")}
	exec := NewExecutor[note](backend, Rules{})

	_, err := exec.Create(context.Background(), Draft{})
	assert.EqualError(t, err, "status 500")

	_, err = exec.Update(context.Background(), 1, Draft{})
	assert.EqualError(t, err, "status 500")

	assert.EqualError(t, exec.DeleteOne(context.Background(), 1), "status 502")
	assert.EqualError(t, exec.DeleteMany(context.Background(), []ID{1, 2}), "status 502")
}

func TestPendingDeleteBulk(t *testing.T) {
	assert.False(t, PendingDelete{IDs: []ID{1}}.Bulk())
	assert.True(t, PendingDelete{IDs: []ID{1, 2}}.Bulk())
}
