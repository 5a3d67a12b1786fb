package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverviewWaveformExtents(t *testing.T) {
	cases := []struct {
		sampleCount int64
		sampleRate  float64
		entries     int64
		perEntry    int64
	}{
		{0, 44100, 0, 0},
		{456 * 1024, 48000, 1024, 456},
		{100, 44100, 100, 1},
	}
	for _, c := range cases {
		ext := OverviewWaveformExtents(c.sampleCount, c.sampleRate)
		require.Equal(t, c.entries, ext.Entries)
		require.Equal(t, c.perEntry, ext.SamplesPerEntry)
	}
}

func TestHighResolutionWaveformExtents(t *testing.T) {
	ext := HighResolutionWaveformExtents(1825, 48000)
	require.Equal(t, int64(5), ext.Entries)
	require.Equal(t, int64(456), ext.SamplesPerEntry)

	zero := HighResolutionWaveformExtents(0, 44100)
	require.Equal(t, int64(0), zero.Entries)
}

func TestWaveformRoundTrip(t *testing.T) {
	w := OverviewWaveform{Entries: []WaveformEntry{
		{Low: 10, Mid: 20, High: 30},
		{Low: 200, Mid: 150, High: 90, HasOpacity: true, LowOpacity: 5, MidOpacity: 6, HighOpacity: 7},
	}}
	decoded, err := DecodeOverviewWaveform(w.Encode())
	require.NoError(t, err)
	require.Equal(t, w.Entries, decoded.Entries)
}
