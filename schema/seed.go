package schema

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/binary"
)

// currentPlayedIndicatorFakeValue is the fixed literal every v1 and
// v2.x variant seeds into Information.currentPlayedIndiciator (typo
// preserved from the source, schema_1_6_0.cpp/schema_2_18_0.cpp): "Not
// yet sure how the 'currentPlayedIndiciator' value is formed."
const currentPlayedIndicatorFakeValue = 5100658837829259927

// randomPlayedIndicator is what 3.x variants seed instead
// (schema_3_1_0.cpp uses generate_random_int64()).
func randomPlayedIndicator() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	n := int64(binary.BigEndian.Uint64(buf[:]))
	if n < 0 {
		n = -n
	}
	return n, nil
}

// seedV1 inserts both the music and perfdata Information rows plus the
// default AlbumArt/Historylist/Preparelist rows every v1 variant seeds
// (schema_1_6_0.cpp's create_music_schema tail).
func seedV1(ctx context.Context, tx *sql.Tx, v Variant, libraryUUID string) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO music.Information (uuid, schemaVersionMajor, schemaVersionMinor, schemaVersionPatch, currentPlayedIndiciator) VALUES (?, ?, ?, ?, ?)`,
		libraryUUID, v.Major, v.Minor, v.Patch, currentPlayedIndicatorFakeValue); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO perfdata.Information (uuid, schemaVersionMajor, schemaVersionMinor, schemaVersionPatch, currentPlayedIndiciator) VALUES (?, ?, ?, ?, ?)`,
		libraryUUID, v.Major, v.Minor, v.Patch, currentPlayedIndicatorFakeValue); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO music.AlbumArt (id, hash, albumArt) VALUES (1, '', NULL)`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO music.Historylist (id, title) VALUES (1, 'History 1')`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO music.Preparelist (id, title) VALUES (1, 'Prepare')`); err != nil {
		return err
	}
	return nil
}

// seedV1List is seedV1 for the List-based era (1.9.1+), where
// Historylist/Preparelist are views whose INSTEAD OF INSERT triggers
// take only (id, title).
func seedV1List(ctx context.Context, tx *sql.Tx, v Variant, libraryUUID string) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO music.Information (uuid, schemaVersionMajor, schemaVersionMinor, schemaVersionPatch, currentPlayedIndiciator) VALUES (?, ?, ?, ?, ?)`,
		libraryUUID, v.Major, v.Minor, v.Patch, currentPlayedIndicatorFakeValue); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO perfdata.Information (uuid, schemaVersionMajor, schemaVersionMinor, schemaVersionPatch, currentPlayedIndiciator) VALUES (?, ?, ?, ?, ?)`,
		libraryUUID, v.Major, v.Minor, v.Patch, currentPlayedIndicatorFakeValue); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO music.AlbumArt (id, hash, albumArt) VALUES (1, '', NULL)`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO music.Historylist (id, title) VALUES (1, 'History 1')`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO music.Preparelist (id, title) VALUES (1, 'Prepare')`); err != nil {
		return err
	}
	return nil
}

// seedV2 seeds the unified single-schema layout's Information row and
// default AlbumArt row (schema_2_18_0.cpp / schema_3_1_0.cpp tails).
func seedV2(ctx context.Context, tx *sql.Tx, v Variant, libraryUUID string) error {
	indicator := int64(currentPlayedIndicatorFakeValue)
	if v.Major >= 3 {
		r, err := randomPlayedIndicator()
		if err != nil {
			return err
		}
		indicator = r
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO Information (uuid, schemaVersionMajor, schemaVersionMinor, schemaVersionPatch, currentPlayedIndiciator) VALUES (?, ?, ?, ?, ?)`,
		libraryUUID, v.Major, v.Minor, v.Patch, indicator); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO AlbumArt (id, hash, albumArt) VALUES (1, '', NULL)`); err != nil {
		return err
	}
	return nil
}
