package entity

import (
	"context"
	"testing"

	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestPlaylistEntityAddBackAndTracks(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	playlists := NewPlaylistTable(sc)
	tracks := NewTrackTable(sc)
	entities := NewPlaylistEntityTable(sc)

	pl, err := playlists.AddBack(ctx, 0, "Set")
	require.NoError(t, err)

	t1, err := tracks.Add(ctx, Track{Path: "/a.mp3"})
	require.NoError(t, err)
	t2, err := tracks.Add(ctx, Track{Path: "/b.mp3"})
	require.NoError(t, err)
	t3, err := tracks.Add(ctx, Track{Path: "/c.mp3"})
	require.NoError(t, err)

	const dbUUID = "11111111-1111-1111-1111-111111111111"

	e1, err := entities.AddBack(ctx, pl.ID, t1.ID, dbUUID)
	require.NoError(t, err)
	e2, err := entities.AddBack(ctx, pl.ID, t2.ID, dbUUID)
	require.NoError(t, err)
	e3, err := entities.AddBack(ctx, pl.ID, t3.ID, dbUUID)
	require.NoError(t, err)

	got1, ok, err := entities.Get(ctx, e1.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, e2.ID, got1.NextEntityID)

	got2, ok, err := entities.Get(ctx, e2.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, e3.ID, got2.NextEntityID)

	ids, err := entities.Tracks(ctx, pl.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{t1.ID, t2.ID, t3.ID}, ids)
}

func TestPlaylistEntityRemoveRepointsPredecessor(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	playlists := NewPlaylistTable(sc)
	tracks := NewTrackTable(sc)
	entities := NewPlaylistEntityTable(sc)

	pl, err := playlists.AddBack(ctx, 0, "Set")
	require.NoError(t, err)

	t1, err := tracks.Add(ctx, Track{Path: "/a.mp3"})
	require.NoError(t, err)
	t2, err := tracks.Add(ctx, Track{Path: "/b.mp3"})
	require.NoError(t, err)
	t3, err := tracks.Add(ctx, Track{Path: "/c.mp3"})
	require.NoError(t, err)

	const dbUUID = "11111111-1111-1111-1111-111111111111"

	e1, err := entities.AddBack(ctx, pl.ID, t1.ID, dbUUID)
	require.NoError(t, err)
	e2, err := entities.AddBack(ctx, pl.ID, t2.ID, dbUUID)
	require.NoError(t, err)
	e3, err := entities.AddBack(ctx, pl.ID, t3.ID, dbUUID)
	require.NoError(t, err)

	require.NoError(t, entities.Remove(ctx, e2.ID))

	got1, ok, err := entities.Get(ctx, e1.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, e3.ID, got1.NextEntityID)

	ids, err := entities.Tracks(ctx, pl.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{t1.ID, t3.ID}, ids)
}
