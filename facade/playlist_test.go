package facade

import (
	"context"
	"testing"

	"engineprime/entity"
	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

const testDatabaseUUID = "11111111-1111-1111-1111-111111111111"

func TestPlaylistLifecycleOnV3(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	pl, err := db.AddPlaylist(ctx, 0, "Set")
	require.NoError(t, err)

	t1, err := db.AddTrack(ctx, entity.Track{Path: "/1.mp3"})
	require.NoError(t, err)
	t2, err := db.AddTrack(ctx, entity.Track{Path: "/2.mp3"})
	require.NoError(t, err)

	_, err = db.AddTrackToPlaylist(ctx, pl.ID, t1.ID, testDatabaseUUID)
	require.NoError(t, err)
	_, err = db.AddTrackToPlaylist(ctx, pl.ID, t2.ID, testDatabaseUUID)
	require.NoError(t, err)

	ids, err := db.PlaylistTracks(ctx, pl.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{t1.ID, t2.ID}, ids)

	require.NoError(t, db.RenamePlaylist(ctx, pl.ID, "Renamed"))
	got, ok, err := db.Playlist(ctx, pl.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Renamed", got.Title)

	require.NoError(t, db.RemovePlaylist(ctx, pl.ID))
	_, ok, err = db.Playlist(ctx, pl.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPlaylistAncestorsDescendantsAndPersisted(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	parent, err := db.AddPlaylist(ctx, 0, "Parent")
	require.NoError(t, err)
	child, err := db.AddPlaylist(ctx, parent.ID, "Child")
	require.NoError(t, err)

	descendants, err := db.PlaylistDescendants(ctx, parent.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{child.ID}, descendants)

	ancestors, err := db.PlaylistAncestors(ctx, child.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{parent.ID}, ancestors)

	require.NoError(t, db.SetPlaylistPersisted(ctx, child.ID, true))
	got, ok, err := db.Playlist(ctx, parent.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, got.IsPersisted)
}

func TestPlaylistUnsupportedOnV1(t *testing.T) {
	db := newTempDatabase(t, schema.V1_17_0)
	ctx := context.Background()

	_, err := db.AddPlaylist(ctx, 0, "Nope")
	require.Error(t, err)
}

func TestSmartlistLifecycle(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	sl, err := db.AddSmartlist(ctx, "Fast", `{"op":"gt","field":"bpm","value":140}`)
	require.NoError(t, err)

	got, ok, err := db.Smartlist(ctx, sl.ListUUID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Fast", got.Title)

	ids, err := db.AllSmartlistUUIDs(ctx)
	require.NoError(t, err)
	require.Contains(t, ids, sl.ListUUID)

	require.NoError(t, db.RemoveSmartlist(ctx, sl.ListUUID))
	_, ok, err = db.Smartlist(ctx, sl.ListUUID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPackLifecycle(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	p, err := db.AddPack(ctx, "pack-1", testDatabaseUUID)
	require.NoError(t, err)
	require.NoError(t, db.TouchPack(ctx, p.ID))
}
