// Package entity implements typed row-level CRUD over the Engine
// library's core tables (Track, PerformanceData, Playlist,
// PlaylistEntity, Information, AlbumArt, plus the v1-only Crate views
// and the v2/v3 Pack/Smartlist supplements), routed through a
// session.Context.
package entity

import (
	"context"
	"database/sql"

	"engineprime/enginerr"
)

// hasColumn reports whether table (optionally schema-qualified)
// declares column in the live database — used by field-level
// getters/setters to raise unsupported_operation for columns the
// current schema variant doesn't carry, per spec.md §4.7.
func hasColumn(ctx context.Context, db *sql.DB, schema, table, column string) (bool, error) {
	pragma := "table_info"
	if schema != "" {
		pragma = schema + ".table_info"
	}
	rows, err := db.QueryContext(ctx, "PRAGMA "+pragma+"("+table+")")
	if err != nil {
		return false, enginerr.Inconsistency("entity.hasColumn", "table_info(%s): %v", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull int
		var dflt sql.NullString
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return false, enginerr.Inconsistency("entity.hasColumn", "scanning table_info(%s): %v", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, nil
}

func qualify(schema, name string) string {
	if schema == "" {
		return name
	}
	return schema + "." + name
}

func requireColumn(ctx context.Context, db *sql.DB, schema, table, column, op string) error {
	ok, err := hasColumn(ctx, db, schema, table, column)
	if err != nil {
		return err
	}
	if !ok {
		return enginerr.UnsupportedOperation(op, "%s.%s is not present in this schema variant", table, column)
	}
	return nil
}
