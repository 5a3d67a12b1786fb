package entity

import (
	"context"
	"testing"

	"engineprime/enginerr"
	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestQualify(t *testing.T) {
	require.Equal(t, "Track", qualify("", "Track"))
	require.Equal(t, "music.Track", qualify("music", "Track"))
}

func TestHasColumn(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()

	ok, err := hasColumn(ctx, sc.DB, sc.MusicSchema(), "Track", "title")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = hasColumn(ctx, sc.DB, sc.MusicSchema(), "Track", "notAColumn")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHasColumnV1MissingTitle(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()

	ok, err := hasColumn(ctx, sc.DB, sc.MusicSchema(), "Track", "title")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRequireColumn(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()

	err := requireColumn(ctx, sc.DB, sc.MusicSchema(), "Track", "title", "entity.Track.GetTitle")
	require.Error(t, err)
	require.True(t, enginerr.Is(err, enginerr.KindUnsupportedOperation))

	err = requireColumn(ctx, sc.DB, sc.MusicSchema(), "Track", "path", "entity.Track.GetPath")
	require.NoError(t, err)
}
