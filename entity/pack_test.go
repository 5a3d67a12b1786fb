package entity

import (
	"context"
	"testing"

	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestPackAddGetRemove(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	packs := NewPackTable(sc)

	p, err := packs.Add(ctx, "pack-1", "22222222-2222-2222-2222-222222222222")
	require.NoError(t, err)
	require.Equal(t, "pack-1", p.PackID)
	require.Equal(t, p.ID, p.ChangeLogID)

	got, ok, err := packs.Get(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, p.PackID, got.PackID)

	require.NoError(t, packs.Remove(ctx, p.ID))
	_, ok, err = packs.Get(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPackTouchOnV3(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	packs := NewPackTable(sc)

	p, err := packs.Add(ctx, "pack-2", "33333333-3333-3333-3333-333333333333")
	require.NoError(t, err)
	require.NoError(t, packs.Touch(ctx, p.ID))
}

func TestPackTouchNoopOnV1(t *testing.T) {
	sc := newTempSession(t, schema.V1_17_0)
	ctx := context.Background()
	packs := NewPackTable(sc)

	p, err := packs.Add(ctx, "pack-3", "44444444-4444-4444-4444-444444444444")
	require.NoError(t, err)
	require.NoError(t, packs.Touch(ctx, p.ID))
}

func TestPackAllIDs(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	packs := NewPackTable(sc)

	p1, err := packs.Add(ctx, "pack-a", "55555555-5555-5555-5555-555555555555")
	require.NoError(t, err)
	p2, err := packs.Add(ctx, "pack-b", "66666666-6666-6666-6666-666666666666")
	require.NoError(t, err)

	ids, err := packs.AllIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{p1.ID, p2.ID}, ids)
}
