package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackDataRoundTrip(t *testing.T) {
	td := TrackData{SampleRate: 44100, SampleCount: 12345, IsAnalyzed: true, AverageLoudnessLow: 0.1, AverageLoudnessMid: 0.2, AverageLoudnessHigh: 0.3}
	decoded, err := DecodeTrackData(td.Encode())
	require.NoError(t, err)
	require.Equal(t, td, decoded)
}

func TestTrackDataEmptyBlob(t *testing.T) {
	decoded, err := DecodeTrackData(nil)
	require.NoError(t, err)
	require.Equal(t, TrackData{}, decoded)
}

func TestBeatDataRoundTrip(t *testing.T) {
	bd := BeatData{
		SampleRate:  44100,
		SampleCount: 9999,
		IsAdjusted:  true,
		Default:     []BeatMarker{{SampleOffset: 0, BeatNumber: 1, BeatsUntilNext: 4}},
		Adjusted:    []BeatMarker{{SampleOffset: 10, BeatNumber: 1, BeatsUntilNext: 4}, {SampleOffset: 20, BeatNumber: 2, BeatsUntilNext: 4}},
	}
	decoded, err := DecodeBeatData(bd.Encode())
	require.NoError(t, err)
	require.Equal(t, bd, decoded)
}

func TestQuickCuesRoundTrip(t *testing.T) {
	var q QuickCues
	q.Cues[0] = QuickCue{Present: true, Label: "Intro", SampleOffset: 123.5, Color: Color{Red: 255}}
	q.MainCueSampleOffset = 42
	q.IsMainCueAdjusted = true
	q.AdjustedMainCueSampleOffset = 99

	decoded, err := DecodeQuickCues(q.Encode())
	require.NoError(t, err)
	require.Equal(t, q, decoded)
}

func TestLoopsRoundTrip(t *testing.T) {
	var l Loops
	l.Loops[3] = Loop{Present: true, Label: "Drop", StartSampleOffset: 1, EndSampleOffset: 2, Color: Color{Green: 255, Alpha: 255}}

	decoded, err := DecodeLoops(l.Encode())
	require.NoError(t, err)
	require.Equal(t, l, decoded)
}
