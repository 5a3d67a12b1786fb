package entity

import (
	"context"
	"testing"

	"engineprime/codec"
	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestPerformanceDataV1GetUpdate(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()
	tracks := NewTrackTable(sc)
	perf := NewPerformanceDataTable(sc)

	tr, err := tracks.Add(ctx, Track{Path: "/a.mp3"})
	require.NoError(t, err)

	got, ok, err := perf.Get(ctx, tr.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, tr.ID, got.TrackID)

	got.IsAnalyzed = true
	got.TrackData = codec.TrackData{SampleRate: 44100, SampleCount: 9000, IsAnalyzed: true}
	require.NoError(t, perf.Update(ctx, got))

	reread, ok, err := perf.Get(ctx, tr.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, reread.IsAnalyzed)
	require.Equal(t, 44100.0, reread.TrackData.SampleRate)
}

func TestPerformanceDataV3GetUpdateClear(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	tracks := NewTrackTable(sc)
	perf := NewPerformanceDataTable(sc)

	tr, err := tracks.Add(ctx, Track{Path: "/b.mp3"})
	require.NoError(t, err)

	got, ok, err := perf.Get(ctx, tr.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got.ThirdPartySourceID = 7
	got.ActiveOnLoadLoops = 1
	got.BeatData = codec.BeatData{}
	require.NoError(t, perf.Update(ctx, got))

	reread, ok, err := perf.Get(ctx, tr.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 7, reread.ThirdPartySourceID)
	require.EqualValues(t, 1, reread.ActiveOnLoadLoops)

	require.NoError(t, perf.Clear(ctx, tr.ID))
	cleared, ok, err := perf.Get(ctx, tr.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Zero(t, cleared.ThirdPartySourceID)
}

func TestPerformanceDataUpdateRejectsZeroTrackID(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	perf := NewPerformanceDataTable(sc)

	err := perf.Update(ctx, PerformanceData{})
	require.Error(t, err)
}
