package entity

import (
	"context"
	"testing"

	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestAlbumArtAddGetUpdateRemove(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	art := NewAlbumArtTable(sc)

	id, err := art.Add(ctx, AlbumArt{Hash: "abc123", Art: []byte{1, 2, 3}})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, ok, err := art.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc123", got.Hash)

	got.Hash = "def456"
	require.NoError(t, art.Update(ctx, got))

	reread, ok, err := art.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "def456", reread.Hash)

	require.NoError(t, art.Remove(ctx, id))
	_, ok, err = art.Get(ctx, id)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAlbumArtAddRejectsExplicitID(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	art := NewAlbumArtTable(sc)

	_, err := art.Add(ctx, AlbumArt{ID: 9, Hash: "x"})
	require.Error(t, err)
}

func TestAlbumArtRemoveRestrictedByTrack(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	art := NewAlbumArtTable(sc)
	tracks := NewTrackTable(sc)

	id, err := art.Add(ctx, AlbumArt{Hash: "referenced"})
	require.NoError(t, err)

	_, err = tracks.Add(ctx, Track{Path: "/a.mp3", AlbumArtID: id})
	require.NoError(t, err)

	err = art.Remove(ctx, id)
	require.Error(t, err)
}

func TestAlbumArtAllIDs(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	art := NewAlbumArtTable(sc)

	id1, err := art.Add(ctx, AlbumArt{Hash: "a"})
	require.NoError(t, err)
	id2, err := art.Add(ctx, AlbumArt{Hash: "b"})
	require.NoError(t, err)

	// id 1 is the default album-art row every new library is seeded with.
	ids, err := art.AllIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{1, id1, id2}, ids)
}
