package entity

import (
	"context"
	"database/sql"

	"engineprime/enginerr"
	"engineprime/session"
)

// Pack is a sync-unit marker row (v1 from 1.17.0, and 2.x/3.x). From schema 3.1.0,
// lastPackTime and changeLogId are auto-populated by
// trigger_after_insert_Pack_timestamp/..._changeLogId on insert, so Add
// leaves those fields to the trigger rather than writing them
// directly (grounded on schema_3_1_0.cpp:88-94).
type Pack struct {
	ID                    int64
	PackID                string
	ChangeLogDatabaseUUID string
	ChangeLogID           int64
}

type PackTable struct {
	ctx *session.Context
}

func NewPackTable(ctx *session.Context) *PackTable { return &PackTable{ctx: ctx} }

func (t *PackTable) table() string { return qualify(t.ctx.MusicSchema(), "Pack") }

func (t *PackTable) Add(ctx context.Context, packID, changeLogDatabaseUUID string) (Pack, error) {
	const op = "entity.Pack.Add"
	res, err := t.ctx.DB.ExecContext(ctx,
		"INSERT INTO "+t.table()+" (packId, changeLogDatabaseUuid) VALUES (?, ?)", packID, changeLogDatabaseUUID)
	if err != nil {
		return Pack{}, enginerr.Inconsistency(op, "inserting pack %q: %v", packID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Pack{}, enginerr.Inconsistency(op, "reading new pack id: %v", err)
	}
	got, ok, err := t.Get(ctx, id)
	if err != nil {
		return Pack{}, err
	}
	if !ok {
		return Pack{}, enginerr.Inconsistency(op, "pack %d vanished immediately after insert", id)
	}
	return got, nil
}

func (t *PackTable) Get(ctx context.Context, id int64) (Pack, bool, error) {
	const op = "entity.Pack.Get"
	var p Pack
	var changeLogID sql.NullInt64
	err := t.ctx.DB.QueryRowContext(ctx,
		"SELECT id, packId, changeLogDatabaseUuid, changeLogId FROM "+t.table()+" WHERE id = ?", id).
		Scan(&p.ID, &p.PackID, &p.ChangeLogDatabaseUUID, &changeLogID)
	if err == sql.ErrNoRows {
		return Pack{}, false, nil
	}
	if err != nil {
		return Pack{}, false, enginerr.Inconsistency(op, "reading pack %d: %v", id, err)
	}
	p.ChangeLogID = changeLogID.Int64
	return p, true, nil
}

// Touch resets lastPackTime to now, mirroring what the 3.1.0 insert
// trigger does once at creation time but which a re-sync needs to
// repeat explicitly. No-op (but not an error) on variants before
// 3.1.0, since they carry no lastPackTime column.
func (t *PackTable) Touch(ctx context.Context, id int64) error {
	const op = "entity.Pack.Touch"
	hasCol, err := hasColumn(ctx, t.ctx.DB, t.ctx.MusicSchema(), "Pack", "lastPackTime")
	if err != nil {
		return err
	}
	if !hasCol {
		return nil
	}
	if _, err := t.ctx.DB.ExecContext(ctx, "UPDATE "+t.table()+" SET lastPackTime = CURRENT_TIMESTAMP WHERE id = ?", id); err != nil {
		return enginerr.Inconsistency(op, "touching pack %d: %v", id, err)
	}
	return nil
}

func (t *PackTable) Remove(ctx context.Context, id int64) error {
	const op = "entity.Pack.Remove"
	if _, err := t.ctx.DB.ExecContext(ctx, "DELETE FROM "+t.table()+" WHERE id = ?", id); err != nil {
		return enginerr.Inconsistency(op, "removing pack %d: %v", id, err)
	}
	return nil
}

func (t *PackTable) AllIDs(ctx context.Context) ([]int64, error) {
	const op = "entity.Pack.AllIDs"
	rows, err := t.ctx.DB.QueryContext(ctx, "SELECT id FROM "+t.table()+" ORDER BY id")
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing packs: %v", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning pack id: %v", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
