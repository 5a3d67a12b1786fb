package entity

import (
	"context"
	"testing"

	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestCrateAddRenameRemove(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()
	crates := NewCrateTable(sc)

	c, err := crates.Add(ctx, "House")
	require.NoError(t, err)
	require.Equal(t, "House", c.Title)
	require.Equal(t, "House;", c.Path)

	require.NoError(t, crates.Rename(ctx, c.ID, "Techno"))
	got, ok, err := crates.Get(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Techno", got.Title)
	require.Equal(t, "Techno;", got.Path)

	require.NoError(t, crates.Remove(ctx, c.ID))
	_, ok, err = crates.Get(ctx, c.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCrateNameValidation(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()
	crates := NewCrateTable(sc)

	_, err := crates.Add(ctx, "")
	require.Error(t, err)
	_, err = crates.Add(ctx, "bad;name")
	require.Error(t, err)
}

func TestCrateHierarchyAndCycleRejection(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()
	crates := NewCrateTable(sc)

	parent, err := crates.Add(ctx, "Parent")
	require.NoError(t, err)
	child, err := crates.Add(ctx, "Child")
	require.NoError(t, err)

	require.NoError(t, crates.Reparent(ctx, child.ID, parent.ID))
	children, err := crates.Children(ctx, parent.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{child.ID}, children)

	// parent cannot become a child of its own child
	err = crates.Reparent(ctx, parent.ID, child.ID)
	require.Error(t, err)
}

func TestCrateTracks(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()
	crates := NewCrateTable(sc)
	tracks := NewTrackTable(sc)

	c, err := crates.Add(ctx, "Favorites")
	require.NoError(t, err)
	tr, err := tracks.Add(ctx, Track{Path: "/a.mp3", Filename: "a.mp3"})
	require.NoError(t, err)

	require.NoError(t, crates.AddTrack(ctx, c.ID, tr.ID))
	ids, err := crates.Tracks(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{tr.ID}, ids)

	require.NoError(t, crates.RemoveTrack(ctx, c.ID, tr.ID))
	ids, err = crates.Tracks(ctx, c.ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}
