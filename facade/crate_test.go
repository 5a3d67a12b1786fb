package facade

import (
	"context"
	"testing"

	"engineprime/entity"
	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestCrateLifecycleOnV1(t *testing.T) {
	db := newTempDatabase(t, schema.V1_17_0)
	ctx := context.Background()

	c, err := db.AddCrate(ctx, "House")
	require.NoError(t, err)
	require.Equal(t, "House", c.Title)

	snap, err := db.AddTrack(ctx, entity.Track{Path: "/h.mp3"})
	require.NoError(t, err)

	require.NoError(t, db.AddTrackToCrate(ctx, c.ID, snap.ID))
	ids, err := db.CrateTracks(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{snap.ID}, ids)

	require.NoError(t, db.RemoveTrackFromCrate(ctx, c.ID, snap.ID))
	ids, err = db.CrateTracks(ctx, c.ID)
	require.NoError(t, err)
	require.Empty(t, ids)

	require.NoError(t, db.RenameCrate(ctx, c.ID, "Techno"))
	got, ok, err := db.Crate(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Techno", got.Title)

	require.NoError(t, db.RemoveCrate(ctx, c.ID))
	_, ok, err = db.Crate(ctx, c.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCrateUnsupportedOnV3(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	_, err := db.AddCrate(ctx, "Nope")
	require.Error(t, err)
}

func TestCrateHierarchy(t *testing.T) {
	db := newTempDatabase(t, schema.V1_17_0)
	ctx := context.Background()

	parent, err := db.AddCrate(ctx, "Parent")
	require.NoError(t, err)
	child, err := db.AddCrate(ctx, "Child")
	require.NoError(t, err)

	require.NoError(t, db.ReparentCrate(ctx, child.ID, parent.ID))
	children, err := db.CrateChildren(ctx, parent.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{child.ID}, children)
}
