package entity

import (
	"context"

	"engineprime/enginerr"
	"engineprime/session"
)

// preparelistListType is List.type's discriminator value for
// preparelists (schema_1_9_1.cpp's polymorphic List table: 1=playlist,
// 2=historylist, 3=preparelist, 4=crate).
const preparelistListType = 3

// PreparelistTable manages the v1 list-era "tracks queued to prepare"
// list. On the v2/v3 generation the equivalent concept is a real
// table, PreparelistEntity, keyed directly on trackId (see
// tablesV2_18_0) rather than routed through the polymorphic List
// machinery.
type PreparelistTable struct {
	ctx *session.Context
}

func NewPreparelistTable(ctx *session.Context) *PreparelistTable { return &PreparelistTable{ctx: ctx} }

func (t *PreparelistTable) schema() string { return t.ctx.MusicSchema() }

// ensureList returns the id of the single Preparelist row, creating it
// (via the Preparelist view's INSTEAD OF INSERT trigger) the first
// time it's needed — there is exactly one preparelist per library.
func (t *PreparelistTable) ensureList(ctx context.Context) (int64, error) {
	const op = "entity.Preparelist.ensureList"
	var id int64
	err := t.ctx.DB.QueryRowContext(ctx, "SELECT id FROM "+qualify(t.schema(), "Preparelist")).Scan(&id)
	if err == nil {
		return id, nil
	}
	var nextID int64
	if err := t.ctx.DB.QueryRowContext(ctx, "SELECT IFNULL(MAX(id),0)+1 FROM "+qualify(t.schema(), "List")).Scan(&nextID); err != nil {
		return 0, enginerr.Inconsistency(op, "allocating preparelist id: %v", err)
	}
	if _, err := t.ctx.DB.ExecContext(ctx,
		"INSERT INTO "+qualify(t.schema(), "Preparelist")+" (id, title) VALUES (?, ?)", nextID, "Preparelist"); err != nil {
		return 0, enginerr.Inconsistency(op, "creating preparelist: %v", err)
	}
	return nextID, nil
}

// Add appends trackID to the preparelist at the given trackNumber.
func (t *PreparelistTable) Add(ctx context.Context, trackID int64, trackNumber int64) error {
	const op = "entity.Preparelist.Add"
	listID, err := t.ensureList(ctx)
	if err != nil {
		return err
	}
	_, err = t.ctx.DB.ExecContext(ctx,
		"INSERT INTO "+qualify(t.schema(), "ListTrackList")+" (listId, listType, trackId, trackNumber) VALUES (?, ?, ?, ?)",
		listID, preparelistListType, trackID, trackNumber)
	if err != nil {
		return enginerr.Inconsistency(op, "adding track %d to preparelist: %v", trackID, err)
	}
	return nil
}

// Remove drops trackID from the preparelist.
func (t *PreparelistTable) Remove(ctx context.Context, trackID int64) error {
	const op = "entity.Preparelist.Remove"
	_, err := t.ctx.DB.ExecContext(ctx,
		"DELETE FROM "+qualify(t.schema(), "ListTrackList")+" WHERE listType = ? AND trackId = ?", preparelistListType, trackID)
	if err != nil {
		return enginerr.Inconsistency(op, "removing track %d from preparelist: %v", trackID, err)
	}
	return nil
}

// AllTrackIDs returns the preparelist's member track ids in
// trackNumber order.
func (t *PreparelistTable) AllTrackIDs(ctx context.Context) ([]int64, error) {
	const op = "entity.Preparelist.AllTrackIDs"
	rows, err := t.ctx.DB.QueryContext(ctx,
		"SELECT trackId FROM "+qualify(t.schema(), "ListTrackList")+" WHERE listType = ? ORDER BY trackNumber", preparelistListType)
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing preparelist tracks: %v", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning preparelist track id: %v", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PreparelistEntityTable manages the v2/v3 generation's dedicated
// PreparelistEntity table (tablesV2_18_0): trackId keyed directly,
// with no polymorphic List indirection.
type PreparelistEntityTable struct {
	ctx *session.Context
}

func NewPreparelistEntityTable(ctx *session.Context) *PreparelistEntityTable {
	return &PreparelistEntityTable{ctx: ctx}
}

func (t *PreparelistEntityTable) table() string { return qualify(t.ctx.MusicSchema(), "PreparelistEntity") }

func (t *PreparelistEntityTable) Add(ctx context.Context, trackID, trackNumber int64) error {
	const op = "entity.PreparelistEntity.Add"
	_, err := t.ctx.DB.ExecContext(ctx, "INSERT INTO "+t.table()+" (trackId, trackNumber) VALUES (?, ?)", trackID, trackNumber)
	if err != nil {
		return enginerr.Inconsistency(op, "adding track %d to preparelist: %v", trackID, err)
	}
	return nil
}

func (t *PreparelistEntityTable) Remove(ctx context.Context, trackID int64) error {
	const op = "entity.PreparelistEntity.Remove"
	if _, err := t.ctx.DB.ExecContext(ctx, "DELETE FROM "+t.table()+" WHERE trackId = ?", trackID); err != nil {
		return enginerr.Inconsistency(op, "removing track %d from preparelist: %v", trackID, err)
	}
	return nil
}

func (t *PreparelistEntityTable) AllTrackIDs(ctx context.Context) ([]int64, error) {
	const op = "entity.PreparelistEntity.AllTrackIDs"
	rows, err := t.ctx.DB.QueryContext(ctx, "SELECT trackId FROM "+t.table()+" ORDER BY trackNumber")
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing preparelist tracks: %v", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning preparelist track id: %v", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
