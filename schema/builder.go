package schema

// This file holds small constructors used by the per-variant table
// files to keep the literal catalogues in v1_tables.go/v2v3_tables.go
// readable. They build Column/Index/Table values; they don't touch
// the database.

func col(name, typ string) Column { return Column{Name: name, Type: typ} }

func colNN(name, typ string) Column { return Column{Name: name, Type: typ, NotNull: true} }

func colPK(name, typ string, seq int) Column { return Column{Name: name, Type: typ, NotNull: true, PKSeq: seq} }

func colDef(name, typ, def string) Column { return Column{Name: name, Type: typ, Default: def} }

func idx(name string, unique bool, cols ...string) Index {
	return Index{Name: name, Unique: unique, Columns: cols}
}

func table(schema, name string, ddl string, cols []Column, idxs ...Index) Table {
	return Table{Schema: schema, Name: name, Kind: KindTable, DDL: ddl, Columns: cols, Indexes: idxs}
}

func view(schema, name string, ddl string, cols []Column) Table {
	return Table{Schema: schema, Name: name, Kind: KindView, DDL: ddl, Columns: cols}
}

// cloneTables returns a deep-enough copy of a table slice so a variant
// builder can append/replace entries without mutating its parent's.
func cloneTables(src []Table) []Table {
	out := make([]Table, len(src))
	copy(out, src)
	return out
}

// replace swaps the table named `name` for replacement, or appends it
// if not present. Used to express "later variant overrides exactly
// these tables" in the same terms the C++ override lists do.
func replace(tables []Table, replacement Table) []Table {
	for i, t := range tables {
		if t.Schema == replacement.Schema && t.Name == replacement.Name {
			tables[i] = replacement
			return tables
		}
	}
	return append(tables, replacement)
}

// remove drops the table named `name` in the given schema, used when a
// later variant collapses a table into a view of the same name (the
// replace call handles the Kind change) or drops it outright.
func remove(tables []Table, schema, name string) []Table {
	out := tables[:0]
	for _, t := range tables {
		if t.Schema == schema && t.Name == name {
			continue
		}
		out = append(out, t)
	}
	return out
}

func statements(tables []Table) []string {
	var out []string
	for _, t := range tables {
		if t.DDL != "" {
			out = append(out, t.DDL)
		}
	}
	return out
}
