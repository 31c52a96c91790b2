package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedController(t *testing.T, backend *fakeBackend) *Controller[note] {
	t.Helper()
	ctrl := NewController[note](noteAdapter{}, backend, noteRules)
	gen := ctrl.BeginLoad()
	require.True(t, ctrl.ResolveLoad(gen, sampleNotes(), nil))
	return ctrl
}

func TestControllerSelectionFollowsFilter(t *testing.T) {
	ctrl := loadedController(t, &fakeBackend{})

	ctrl.Toggle(1)
	ctrl.Toggle(2)
	require.Equal(t, 2, ctrl.Sel.Count())

	// visible shrinks to {1}; selection must follow.
	ctrl.SetFilter("a@example")
	assert.Equal(t, []ID{1}, ctrl.List.VisibleIDs())
	assert.Equal(t, []ID{1}, ctrl.Sel.IDs())

	ctrl.SetFilter("")
	assert.Equal(t, []ID{1}, ctrl.Sel.IDs(), "clearing the filter does not resurrect dropped selections")
}

func TestControllerSelectionIntersectedOnReload(t *testing.T) {
	ctrl := loadedController(t, &fakeBackend{})
	ctrl.Toggle(1)
	ctrl.Toggle(2)

	gen := ctrl.BeginLoad()
	require.True(t, ctrl.ResolveLoad(gen, []note{{ID: 2, Name: "B"}}, nil))
	assert.Equal(t, []ID{2}, ctrl.Sel.IDs())
}

func TestControllerDeleteOneReconciliation(t *testing.T) {
	backend := &fakeBackend{}
	ctrl := loadedController(t, backend)
	ctrl.Toggle(1)

	require.NoError(t, ctrl.Exec.DeleteOne(context.Background(), 1))
	ctrl.ApplyRemove(1)

	_, ok := ctrl.List.Get(1)
	assert.False(t, ok)
	assert.False(t, ctrl.Sel.Has(1))
}

func TestControllerDeleteManyFailureLeavesStateUntouched(t *testing.T) {
	backend := &fakeBackend{deleteErr: errors.New("status 500")}
	ctrl := loadedController(t, backend)
	ctrl.Toggle(1)
	ctrl.Toggle(2)

	err := ctrl.Exec.DeleteMany(context.Background(), ctrl.Sel.IDs())
	require.Error(t, err)

	// Nothing applied: collection and selection unchanged.
	assert.Equal(t, 2, ctrl.List.Len())
	assert.Equal(t, []ID{1, 2}, ctrl.Sel.IDs())
}

func TestControllerDeleteManyReconciliation(t *testing.T) {
	backend := &fakeBackend{}
	ctrl := loadedController(t, backend)
	ctrl.ToggleAll()
	ids := ctrl.Sel.IDs()

	require.NoError(t, ctrl.Exec.DeleteMany(context.Background(), ids))
	ctrl.ApplyRemoveMany(ids)

	assert.Equal(t, 0, ctrl.List.Len())
	assert.Equal(t, 0, ctrl.Sel.Count())
	assert.Equal(t, []ID{1, 2}, backend.lastIDs)
}

func TestControllerToggleAllHonorsFilter(t *testing.T) {
	ctrl := loadedController(t, &fakeBackend{})
	ctrl.SetFilter("a@example")

	ctrl.ToggleAll()
	assert.Equal(t, []ID{1}, ctrl.Sel.IDs(), "select-all acts on the visible set only")

	ctrl.ToggleAll()
	assert.Equal(t, 0, ctrl.Sel.Count())
}

func TestControllerInsertAndReplace(t *testing.T) {
	ctrl := loadedController(t, &fakeBackend{})

	ctrl.ApplyInsert(note{ID: 3, Name: "C"})
	assert.Equal(t, 3, ctrl.List.Len())

	ctrl.ApplyReplace(note{ID: 3, Name: "C2"})
	rec, ok := ctrl.List.Get(3)
	require.True(t, ok)
	assert.Equal(t, "C2", rec.Name)
}

func TestControllerPredicatePrunesSelection(t *testing.T) {
	ctrl := loadedController(t, &fakeBackend{})
	ctrl.Toggle(1)
	ctrl.Toggle(2)

	ctrl.SetPredicate(func(n note) bool { return n.ID == 2 })
	assert.Equal(t, []ID{2}, ctrl.Sel.IDs())
}
