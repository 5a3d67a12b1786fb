package entity

import (
	"context"
	"testing"

	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func TestSmartlistAddGetRemove(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	smartlists := NewSmartlistTable(sc)

	sl, err := smartlists.Add(ctx, "High Energy", `{"op":"gt","field":"bpm","value":140}`)
	require.NoError(t, err)
	require.NotEmpty(t, sl.ListUUID)
	require.Equal(t, "High Energy", sl.Title)

	got, ok, err := smartlists.Get(ctx, sl.ListUUID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, sl.Rules, got.Rules)

	require.NoError(t, smartlists.Remove(ctx, sl.ListUUID))
	_, ok, err = smartlists.Get(ctx, sl.ListUUID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSmartlistAllUUIDs(t *testing.T) {
	sc := newTempSession(t, schema.V3_1_0)
	ctx := context.Background()
	smartlists := NewSmartlistTable(sc)

	a, err := smartlists.Add(ctx, "A", "")
	require.NoError(t, err)
	b, err := smartlists.Add(ctx, "B", "")
	require.NoError(t, err)

	ids, err := smartlists.AllUUIDs(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{a.ListUUID, b.ListUUID}, ids)
}
