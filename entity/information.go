package entity

import (
	"context"

	"engineprime/enginerr"
	"engineprime/session"
)

// Information is the per-library singleton row: UUID, schema version
// triple, and the opaque currentPlayedIndiciator counter (spelling
// preserved from the vendor schema).
type Information struct {
	ID                     int64
	UUID                   string
	SchemaVersionMajor     int
	SchemaVersionMinor     int
	SchemaVersionPatch     int
	CurrentPlayedIndicator int64
}

// InformationTable is the Information singleton accessor, scoped to
// the music schema (the one entity tables treat as authoritative for
// the library's own UUID and version triple).
type InformationTable struct {
	ctx *session.Context
}

func NewInformationTable(ctx *session.Context) *InformationTable { return &InformationTable{ctx: ctx} }

// Get returns the library's singleton Information row. More or fewer
// than one row is a database_inconsistency, not a caller error.
func (t *InformationTable) Get(ctx context.Context) (Information, error) {
	const op = "entity.Information.Get"
	table := qualify(t.ctx.MusicSchema(), "Information")
	rows, err := t.ctx.DB.QueryContext(ctx, "SELECT id, uuid, schemaVersionMajor, schemaVersionMinor, schemaVersionPatch, currentPlayedIndiciator FROM "+table)
	if err != nil {
		return Information{}, enginerr.Inconsistency(op, "reading %s: %v", table, err)
	}
	defer rows.Close()

	var info Information
	count := 0
	for rows.Next() {
		if err := rows.Scan(&info.ID, &info.UUID, &info.SchemaVersionMajor, &info.SchemaVersionMinor, &info.SchemaVersionPatch, &info.CurrentPlayedIndicator); err != nil {
			return Information{}, enginerr.Inconsistency(op, "scanning %s: %v", table, err)
		}
		count++
	}
	if count != 1 {
		return Information{}, enginerr.Inconsistency(op, "%s must contain exactly one row, found %d", table, count)
	}
	return info, nil
}

// Touch bumps currentPlayedIndiciator to a caller-supplied value —
// the only mutation the Information row legitimately supports outside
// schema creation.
func (t *InformationTable) Touch(ctx context.Context, indicator int64) error {
	const op = "entity.Information.Touch"
	table := qualify(t.ctx.MusicSchema(), "Information")
	if _, err := t.ctx.DB.ExecContext(ctx, "UPDATE "+table+" SET currentPlayedIndiciator = ?", indicator); err != nil {
		return enginerr.Inconsistency(op, "updating %s: %v", table, err)
	}
	return nil
}
