package schema

import (
	"context"
	"database/sql"
	"sort"

	"engineprime/enginerr"
)

// Column mirrors one row of `PRAGMA table_info`. Type is the raw
// declared type string and may be empty — schema 1.13.1 declares
// List.ordering and List.trackCount with no type at all, and the
// verifier must accept that rather than "upgrade" it to INTEGER.
type Column struct {
	Name    string
	Type    string
	NotNull bool
	Default string // textual default as SQLite reports it, e.g. "[0]"
	PKSeq   int    // 0 = not part of the primary key, else 1-based position
}

// Index mirrors one row of `PRAGMA index_list`, plus its column list
// from `PRAGMA index_info`.
type Index struct {
	Name    string
	Unique  bool
	Partial bool
	Columns []string
}

// Kind distinguishes a table from a view in sqlite_master.
type Kind string

const (
	KindTable Kind = "table"
	KindView  Kind = "view"
)

// Table is one catalogue entry: a table or a view, its columns (views
// report columns too, via PRAGMA table_info), and its indexes.
type Table struct {
	Schema  string // "music" or "perfdata" for the v1 two-file layout; "" for v2/v3
	Name    string
	Kind    Kind
	DDL     string // the literal CREATE statement(s) emitted by Create
	Columns []Column
	Indexes []Index
}

// Catalogue is the full set of tables/views a schema variant declares.
// Verify checks that an opened database's sqlite_master (and each
// table's PRAGMA output) matches exactly — no more, no fewer entries,
// same columns, same indexes.
type Catalogue struct {
	Tables []Table
}

func qualify(schema, name string) string {
	if schema == "" {
		return name
	}
	return schema + "." + name
}

// Verify compares the catalogue against the live database reachable
// through db, failing with database_inconsistency on any mismatch.
func (c Catalogue) Verify(ctx context.Context, db *sql.DB) error {
	const op = "schema.Catalogue.Verify"

	schemas := map[string]bool{"": true}
	for _, t := range c.Tables {
		schemas[t.Schema] = true
	}

	var actualEntries []masterEntry
	for sch := range schemas {
		master := "sqlite_master"
		if sch != "" {
			master = sch + ".sqlite_master"
		}
		rows, err := db.QueryContext(ctx, "SELECT type, name FROM "+master+
			" WHERE name NOT LIKE 'sqlite_%' AND type IN ('table','view')")
		if err != nil {
			return enginerr.Inconsistency(op, "reading %s: %v", master, err)
		}
		for rows.Next() {
			var e masterEntry
			if err := rows.Scan(&e.kind, &e.name); err != nil {
				rows.Close()
				return enginerr.Inconsistency(op, "scanning %s: %v", master, err)
			}
			e.schema = sch
			actualEntries = append(actualEntries, e)
		}
		rows.Close()
	}

	var expectEntries []masterEntry
	for _, t := range c.Tables {
		expectEntries = append(expectEntries, masterEntry{schema: t.Schema, kind: string(t.Kind), name: t.Name})
	}

	sort.Slice(actualEntries, func(i, j int) bool { return actualEntries[i].name < actualEntries[j].name })
	sort.Slice(expectEntries, func(i, j int) bool { return expectEntries[i].name < expectEntries[j].name })

	if len(actualEntries) != len(expectEntries) {
		return enginerr.Inconsistency(op, "expected %d tables/views, found %d", len(expectEntries), len(actualEntries))
	}
	for i := range expectEntries {
		a, e := actualEntries[i], expectEntries[i]
		if a.name != e.name || a.kind != e.kind || a.schema != e.schema {
			return enginerr.Inconsistency(op, "catalogue mismatch at position %d: expected %s %s.%s, found %s %s.%s",
				i, e.kind, e.schema, e.name, a.kind, a.schema, a.name)
		}
	}

	for _, t := range c.Tables {
		if err := t.verifyColumns(ctx, db); err != nil {
			return err
		}
		if err := t.verifyIndexes(ctx, db); err != nil {
			return err
		}
	}
	return nil
}

type masterEntry struct {
	schema, kind, name string
}

func (t Table) verifyColumns(ctx context.Context, db *sql.DB) error {
	const op = "schema.Table.verifyColumns"
	pragma := "table_info"
	rows, err := db.QueryContext(ctx, "PRAGMA "+qualify(t.Schema, pragma)+"("+t.Name+")")
	if err != nil {
		return enginerr.Inconsistency(op, "table_info(%s): %v", t.Name, err)
	}
	defer rows.Close()

	var actual []Column
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull int
		var dflt sql.NullString
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return enginerr.Inconsistency(op, "scanning table_info(%s): %v", t.Name, err)
		}
		actual = append(actual, Column{Name: name, Type: ctype, NotNull: notnull != 0, Default: dflt.String, PKSeq: pk})
	}

	expect := append([]Column(nil), t.Columns...)
	sort.Slice(expect, func(i, j int) bool { return expect[i].Name < expect[j].Name })
	sort.Slice(actual, func(i, j int) bool { return actual[i].Name < actual[j].Name })

	if len(expect) != len(actual) {
		return enginerr.Inconsistency(op, "%s: expected %d columns, found %d", t.Name, len(expect), len(actual))
	}
	for i := range expect {
		e, a := expect[i], actual[i]
		if e.Name != a.Name || e.Type != a.Type || e.NotNull != a.NotNull || e.Default != a.Default || e.PKSeq != a.PKSeq {
			return enginerr.Inconsistency(op, "%s: column %q mismatch: expected (%s, notnull=%v, default=%q, pkseq=%d), found (%s, notnull=%v, default=%q, pkseq=%d)",
				t.Name, e.Name, e.Type, e.NotNull, e.Default, e.PKSeq, a.Type, a.NotNull, a.Default, a.PKSeq)
		}
	}
	return nil
}

func (t Table) verifyIndexes(ctx context.Context, db *sql.DB) error {
	const op = "schema.Table.verifyIndexes"
	rows, err := db.QueryContext(ctx, "PRAGMA "+qualify(t.Schema, "index_list")+"("+t.Name+")")
	if err != nil {
		return enginerr.Inconsistency(op, "index_list(%s): %v", t.Name, err)
	}
	var actual []Index
	for rows.Next() {
		var seq int
		var name string
		var unique int
		var origin string
		var partial int
		if err := rows.Scan(&seq, &name, &unique, &origin, &partial); err != nil {
			rows.Close()
			return enginerr.Inconsistency(op, "scanning index_list(%s): %v", t.Name, err)
		}
		idx := Index{Name: name, Unique: unique != 0, Partial: partial != 0}
		actual = append(actual, idx)
	}
	rows.Close()

	for i, idx := range actual {
		cols, err := t.indexColumns(ctx, db, idx.Name)
		if err != nil {
			return err
		}
		actual[i].Columns = cols
	}

	expect := append([]Index(nil), t.Indexes...)
	sort.Slice(expect, func(i, j int) bool { return expect[i].Name < expect[j].Name })
	sort.Slice(actual, func(i, j int) bool { return actual[i].Name < actual[j].Name })

	if len(expect) != len(actual) {
		return enginerr.Inconsistency(op, "%s: expected %d indexes, found %d", t.Name, len(expect), len(actual))
	}
	for i := range expect {
		e, a := expect[i], actual[i]
		if e.Name != a.Name || e.Unique != a.Unique {
			return enginerr.Inconsistency(op, "%s: index %q mismatch", t.Name, e.Name)
		}
		if len(e.Columns) != len(a.Columns) {
			return enginerr.Inconsistency(op, "%s: index %q expected %d columns, found %d", t.Name, e.Name, len(e.Columns), len(a.Columns))
		}
		for j := range e.Columns {
			if e.Columns[j] != a.Columns[j] {
				return enginerr.Inconsistency(op, "%s: index %q column %d mismatch: expected %q, found %q",
					t.Name, e.Name, j, e.Columns[j], a.Columns[j])
			}
		}
	}
	return nil
}

func (t Table) indexColumns(ctx context.Context, db *sql.DB, indexName string) ([]string, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA "+qualify(t.Schema, "index_info")+"("+indexName+")")
	if err != nil {
		return nil, enginerr.Inconsistency("schema.Table.indexColumns", "index_info(%s): %v", indexName, err)
	}
	defer rows.Close()
	type ordered struct {
		seqno int
		name  string
	}
	var cols []ordered
	for rows.Next() {
		var seqno, cid int
		var name sql.NullString
		if err := rows.Scan(&seqno, &cid, &name); err != nil {
			return nil, enginerr.Inconsistency("schema.Table.indexColumns", "scanning index_info(%s): %v", indexName, err)
		}
		cols = append(cols, ordered{seqno, name.String})
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].seqno < cols[j].seqno })
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.name
	}
	return out, nil
}
