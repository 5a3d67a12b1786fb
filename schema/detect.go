package schema

import (
	"context"
	"database/sql"

	"engineprime/enginerr"
)

// Detect identifies which Variant an already-open database implements,
// by reading its Information row's version triple and, for the one
// ambiguous triple (1.18.0), probing Track.isExternalTrack's declared
// column type. infoSchema lets the v1 two-file layout point
// the query at "music.Information" while v2/v3 uses the bare table.
func Detect(ctx context.Context, db *sql.DB, infoSchema string) (Variant, error) {
	const op = "schema.Detect"

	table := qualify(infoSchema, "Information")
	rows, err := db.QueryContext(ctx, "SELECT schemaVersionMajor, schemaVersionMinor, schemaVersionPatch FROM "+table)
	if err != nil {
		return Variant{}, enginerr.Inconsistency(op, "reading %s: %v", table, err)
	}
	defer rows.Close()

	var major, minor, patch int
	count := 0
	for rows.Next() {
		if err := rows.Scan(&major, &minor, &patch); err != nil {
			return Variant{}, enginerr.Inconsistency(op, "scanning %s: %v", table, err)
		}
		count++
	}
	if count != 1 {
		return Variant{}, enginerr.Inconsistency(op, "%s must contain exactly one row, found %d", table, count)
	}

	if major == 1 && minor == 18 && patch == 0 {
		suffix, err := detect1180Suffix(ctx, db, infoSchema)
		if err != nil {
			return Variant{}, err
		}
		return LookupSuffixed(major, minor, patch, suffix)
	}

	v, err := Lookup(major, minor, patch)
	if err != nil {
		return Variant{}, enginerr.UnsupportedDatabase(op, "unsupported schema version %d.%d.%d", major, minor, patch)
	}
	return v, nil
}

// detect1180Suffix disambiguates the desktop and os variants of
// 1.18.0, which share a version triple but declare Track.isExternalTrack
// with different affinities (NUMERIC on desktop, BOOLEAN on the
// on-player build).
func detect1180Suffix(ctx context.Context, db *sql.DB, infoSchema string) (string, error) {
	const op = "schema.detect1180Suffix"
	pragma := "PRAGMA " + qualify(infoSchema, "table_info") + "(Track)"
	rows, err := db.QueryContext(ctx, pragma)
	if err != nil {
		return "", enginerr.Inconsistency(op, "table_info(Track): %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull int
		var dflt sql.NullString
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return "", enginerr.Inconsistency(op, "scanning table_info(Track): %v", err)
		}
		if name == "isExternalTrack" {
			if ctype == "BOOLEAN" {
				return "os", nil
			}
			return "desktop", nil
		}
	}
	return "", enginerr.Inconsistency(op, "Track.isExternalTrack column not found")
}
