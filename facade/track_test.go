package facade

import (
	"context"
	"testing"

	"engineprime/entity"
	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestAddTrackAndSnapshot(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	snap, err := db.AddTrack(ctx, entity.Track{Path: "/a.mp3", Title: "A", Artist: "Artist"})
	require.NoError(t, err)
	require.NotZero(t, snap.ID)
	require.Equal(t, "A", snap.Title)
	require.Zero(t, snap.Performance.ThirdPartySourceID)

	got, ok, err := db.Track(ctx, snap.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Artist", got.Artist)
}

func TestUpdateTrackInvalidatesPathCache(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	snap, err := db.AddTrack(ctx, entity.Track{Path: "/old.mp3"})
	require.NoError(t, err)

	_, ok, err := db.TrackByPath(ctx, "/old.mp3")
	require.NoError(t, err)
	require.True(t, ok)

	updated := snap.Track
	updated.Path = "/new.mp3"
	require.NoError(t, db.UpdateTrack(ctx, updated))

	_, ok, err = db.TrackByPath(ctx, "/old.mp3")
	require.NoError(t, err)
	require.False(t, ok)

	got, ok, err := db.TrackByPath(ctx, "/new.mp3")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, snap.ID, got.ID)
}

func TestTrackByPathCachesNegativeLookup(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	_, ok, err := db.TrackByPath(ctx, "/missing.mp3")
	require.NoError(t, err)
	require.False(t, ok)

	// Second lookup is served from the negative cache entry, not a
	// fresh query; confirm it remains a clean not-found outcome.
	_, ok, err = db.TrackByPath(ctx, "/missing.mp3")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRemoveTrack(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	snap, err := db.AddTrack(ctx, entity.Track{Path: "/gone.mp3"})
	require.NoError(t, err)

	require.NoError(t, db.RemoveTrack(ctx, snap.ID))
	_, ok, err := db.Track(ctx, snap.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllTrackIDs(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	s1, err := db.AddTrack(ctx, entity.Track{Path: "/1.mp3"})
	require.NoError(t, err)
	s2, err := db.AddTrack(ctx, entity.Track{Path: "/2.mp3"})
	require.NoError(t, err)

	ids, err := db.AllTrackIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{s1.ID, s2.ID}, ids)
}
