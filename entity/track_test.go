package entity

import (
	"context"
	"testing"

	"engineprime/schema"
	"engineprime/session"

	"github.com/stretchr/testify/require"
)

func newTempSession(t *testing.T, v schema.Variant) *session.Context {
	t.Helper()
	ctx := context.Background()
	sc, err := session.CreateTemporary(ctx, v)
	require.NoError(t, err)
	t.Cleanup(func() { sc.Close() })
	return sc
}

func TestTrackAddGetV2(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	tracks := NewTrackTable(sc)

	added, err := tracks.Add(ctx, Track{
		Path: "/music/track.mp3", Filename: "track.mp3",
		Title: "Test Title", Artist: "Test Artist", BPM: 128,
	})
	require.NoError(t, err)
	require.NotZero(t, added.ID)
	require.Equal(t, "Test Title", added.Title)

	got, ok, err := tracks.Get(ctx, added.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Test Artist", got.Artist)
	require.EqualValues(t, 128, got.BPM)
}

func TestTrackAddRejectsExplicitID(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	tracks := NewTrackTable(sc)

	_, err := tracks.Add(ctx, Track{ID: 5, Path: "/x.mp3"})
	require.Error(t, err)
}

func TestTrackFindIDByPath(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	tracks := NewTrackTable(sc)

	added, err := tracks.Add(ctx, Track{Path: "/music/a.mp3", Filename: "a.mp3"})
	require.NoError(t, err)

	id, ok, err := tracks.FindIDByPath(ctx, "/music/a.mp3")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, added.ID, id)

	_, ok, err = tracks.FindIDByPath(ctx, "/music/missing.mp3")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTrackV1OnlyCoreColumns(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()
	tracks := NewTrackTable(sc)

	added, err := tracks.Add(ctx, Track{Path: "/music/b.mp3", Filename: "b.mp3", Bitrate: 320, Length: 200})
	require.NoError(t, err)

	_, err = tracks.GetTitle(ctx, added.ID)
	require.Error(t, err)

	got, ok, err := tracks.Get(ctx, added.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 320, got.Bitrate)
}

func TestTrackRemove(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	tracks := NewTrackTable(sc)

	added, err := tracks.Add(ctx, Track{Path: "/music/c.mp3"})
	require.NoError(t, err)
	require.NoError(t, tracks.Remove(ctx, added.ID))

	_, ok, err := tracks.Get(ctx, added.ID)
	require.NoError(t, err)
	require.False(t, ok)
}
