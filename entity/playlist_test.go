package entity

import (
	"context"
	"testing"

	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestPlaylistAddBackChainOrder(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	playlists := NewPlaylistTable(sc)

	first, err := playlists.AddBack(ctx, 0, "First")
	require.NoError(t, err)
	second, err := playlists.AddBack(ctx, 0, "Second")
	require.NoError(t, err)

	got, ok, err := playlists.Get(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, second.ID, got.NextListID)
}

func TestPlaylistRenameAndRemove(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	playlists := NewPlaylistTable(sc)

	p, err := playlists.AddBack(ctx, 0, "Original")
	require.NoError(t, err)
	require.NoError(t, playlists.Rename(ctx, p.ID, "Renamed"))

	got, ok, err := playlists.Get(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Renamed", got.Title)

	require.NoError(t, playlists.Remove(ctx, p.ID))
	_, ok, err = playlists.Get(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPlaylistReparentRejectsCycle(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	playlists := NewPlaylistTable(sc)

	parent, err := playlists.AddBack(ctx, 0, "Parent")
	require.NoError(t, err)
	child, err := playlists.AddBack(ctx, parent.ID, "Child")
	require.NoError(t, err)

	err = playlists.Reparent(ctx, parent.ID, child.ID)
	require.Error(t, err)

	err = playlists.Reparent(ctx, parent.ID, parent.ID)
	require.Error(t, err)
}

func TestPlaylistChildren(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	playlists := NewPlaylistTable(sc)

	parent, err := playlists.AddBack(ctx, 0, "Parent")
	require.NoError(t, err)
	childA, err := playlists.AddBack(ctx, parent.ID, "A")
	require.NoError(t, err)
	childB, err := playlists.AddBack(ctx, parent.ID, "B")
	require.NoError(t, err)

	children, err := playlists.Children(ctx, parent.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{childA.ID, childB.ID}, children)
}

func TestPlaylistAncestorsAndDescendants(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	playlists := NewPlaylistTable(sc)

	grandparent, err := playlists.AddBack(ctx, 0, "Grandparent")
	require.NoError(t, err)
	parent, err := playlists.AddBack(ctx, grandparent.ID, "Parent")
	require.NoError(t, err)
	child, err := playlists.AddBack(ctx, parent.ID, "Child")
	require.NoError(t, err)

	descendants, err := playlists.Descendants(ctx, grandparent.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{parent.ID, child.ID}, descendants)

	ancestors, err := playlists.Ancestors(ctx, child.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{parent.ID, grandparent.ID}, ancestors)
}

func TestPlaylistSetPersistedPropagates(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	playlists := NewPlaylistTable(sc)

	parent, err := playlists.AddBack(ctx, 0, "Parent")
	require.NoError(t, err)
	child, err := playlists.AddBack(ctx, parent.ID, "Child")
	require.NoError(t, err)

	require.NoError(t, playlists.SetPersisted(ctx, child.ID, true))

	gotParent, ok, err := playlists.Get(ctx, parent.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, gotParent.IsPersisted)
}
