package entity

import (
	"context"
	"testing"

	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestInformationGetV3(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	info := NewInformationTable(sc)

	got, err := info.Get(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, got.UUID)
	require.Equal(t, 3, got.SchemaVersionMajor)
	require.Equal(t, 1, got.SchemaVersionMinor)
	require.Equal(t, 0, got.SchemaVersionPatch)
}

func TestInformationGetV1(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()
	info := NewInformationTable(sc)

	got, err := info.Get(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, got.UUID)
	require.Equal(t, 1, got.SchemaVersionMajor)
	require.Equal(t, 17, got.SchemaVersionMinor)
}

func TestInformationTouch(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	info := NewInformationTable(sc)

	require.NoError(t, info.Touch(ctx, 42))
	got, err := info.Get(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 42, got.CurrentPlayedIndicator)
}
