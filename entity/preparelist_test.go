package entity

import (
	"context"
	"testing"

	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestPreparelistV1AddRemove(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()
	tracks := NewTrackTable(sc)
	prep := NewPreparelistTable(sc)

	tr1, err := tracks.Add(ctx, Track{Path: "/a.mp3"})
	require.NoError(t, err)
	tr2, err := tracks.Add(ctx, Track{Path: "/b.mp3"})
	require.NoError(t, err)

	require.NoError(t, prep.Add(ctx, tr1.ID, 1))
	require.NoError(t, prep.Add(ctx, tr2.ID, 2))

	ids, err := prep.AllTrackIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{tr1.ID, tr2.ID}, ids)

	require.NoError(t, prep.Remove(ctx, tr1.ID))
	ids, err = prep.AllTrackIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{tr2.ID}, ids)
}

func TestPreparelistEntityV3AddRemove(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	tracks := NewTrackTable(sc)
	prep := NewPreparelistEntityTable(sc)

	tr1, err := tracks.Add(ctx, Track{Path: "/a.mp3"})
	require.NoError(t, err)
	tr2, err := tracks.Add(ctx, Track{Path: "/b.mp3"})
	require.NoError(t, err)

	require.NoError(t, prep.Add(ctx, tr1.ID, 1))
	require.NoError(t, prep.Add(ctx, tr2.ID, 2))

	ids, err := prep.AllTrackIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{tr1.ID, tr2.ID}, ids)

	require.NoError(t, prep.Remove(ctx, tr2.ID))
	ids, err = prep.AllTrackIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{tr1.ID}, ids)
}
