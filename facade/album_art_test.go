package facade

import (
	"context"
	"testing"

	"engineprime/entity"
	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestAlbumArtLifecycle(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	id, err := db.AddAlbumArt(ctx, entity.AlbumArt{Hash: "h1", Art: []byte{1, 2}})
	require.NoError(t, err)

	got, ok, err := db.AlbumArt(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "h1", got.Hash)

	got.Hash = "h2"
	require.NoError(t, db.UpdateAlbumArt(ctx, got))

	reread, ok, err := db.AlbumArt(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "h2", reread.Hash)

	require.NoError(t, db.RemoveAlbumArt(ctx, id))
	_, ok, err = db.AlbumArt(ctx, id)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllAlbumArtIDs(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	id1, err := db.AddAlbumArt(ctx, entity.AlbumArt{Hash: "a"})
	require.NoError(t, err)
	id2, err := db.AddAlbumArt(ctx, entity.AlbumArt{Hash: "b"})
	require.NoError(t, err)

	// id 1 is the default album-art row every new library is seeded with.
	ids, err := db.AllAlbumArtIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{1, id1, id2}, ids)
}
