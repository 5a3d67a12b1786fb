package facade

import (
	"context"
	"testing"

	"engineprime/directory"
	"engineprime/schema"

	"github.com/stretchr/testify/require"
)

func newTempDatabase(t *testing.T, v schema.Variant) *Database {
	t.Helper()
	ctx := context.Background()
	db, err := CreateTemporary(ctx, v)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateTemporaryReportsLayoutAndVariant(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	require.Equal(t, directory.LayoutV2, db.Layout())
	require.Equal(t, schema.V3_1_0, db.Variant())
	require.Equal(t, ":memory:", db.Directory())
}

func TestInformationAndVerify(t *testing.T) {
	db := newTempDatabase(t, schema.V3_1_0)
	ctx := context.Background()

	info, err := db.Information(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, info.UUID)

	require.NoError(t, db.Verify(ctx))
}
