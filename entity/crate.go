package entity

import (
	"context"
	"database/sql"
	"strings"

	"engineprime/enginerr"
	"engineprime/session"
)

// crateListType is List.type's discriminator value for crates — the
// polymorphic List table introduced at schema 1.9.1 also carries
// playlists (1), historylists (2) and preparelists (3), all of which
// entity.Crate ignores.
const crateListType = 4

// Crate is a v1-only collection, stored in the polymorphic List table
// and exposed through the Crate/ListTrackList/ListHierarchy/
// ListParentList views and tables introduced at schema 1.9.1. Crate
// has no equivalent on the v2/v3 generation — Engine folds crates into
// the Playlist/PlaylistEntity hierarchy there (see entity.Playlist).
type Crate struct {
	ID    int64
	Title string
	Path  string
}

type CrateTable struct {
	ctx *session.Context
}

func NewCrateTable(ctx *session.Context) *CrateTable { return &CrateTable{ctx: ctx} }

func (t *CrateTable) schema() string { return t.ctx.MusicSchema() }

// Add creates a new top-level crate named title. Path is derived as
// "title;", matching trigger_insert_Crate's own convention for
// top-level entries (schema_1_9_1.cpp's INSTEAD OF INSERT body).
func (t *CrateTable) Add(ctx context.Context, title string) (Crate, error) {
	const op = "entity.Crate.Add"
	if err := validateCrateName(op, title); err != nil {
		return Crate{}, err
	}
	res, err := t.ctx.DB.ExecContext(ctx,
		"INSERT INTO "+qualify(t.schema(), "Crate")+" (id, title, path) VALUES ((SELECT IFNULL(MAX(id),0)+1 FROM "+qualify(t.schema(), "List")+"), ?, ?)",
		title, title+";")
	if err != nil {
		return Crate{}, enginerr.Inconsistency(op, "inserting crate %q: %v", title, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Crate{}, enginerr.Inconsistency(op, "reading new crate id: %v", err)
	}
	got, ok, err := t.Get(ctx, id)
	if err != nil {
		return Crate{}, err
	}
	if !ok {
		return Crate{}, enginerr.Inconsistency(op, "crate %d vanished immediately after insert", id)
	}
	return got, nil
}

func validateCrateName(op, title string) error {
	if strings.TrimSpace(title) == "" {
		return enginerr.InvalidName(op, "crate", "crate name must not be empty")
	}
	if strings.Contains(title, ";") {
		return enginerr.InvalidName(op, "crate", "crate name %q must not contain ';'", title)
	}
	return nil
}

func (t *CrateTable) Get(ctx context.Context, id int64) (Crate, bool, error) {
	const op = "entity.Crate.Get"
	var c Crate
	err := t.ctx.DB.QueryRowContext(ctx, "SELECT id, title, path FROM "+qualify(t.schema(), "Crate")+" WHERE id = ?", id).
		Scan(&c.ID, &c.Title, &c.Path)
	if err == sql.ErrNoRows {
		return Crate{}, false, nil
	}
	if err != nil {
		return Crate{}, false, enginerr.Inconsistency(op, "reading crate %d: %v", id, err)
	}
	return c, true, nil
}

// Rename updates a crate's title in place, keeping its path's leaf
// segment in sync (trigger_update_Crate rewrites path wholesale, so
// callers that need to relocate a crate in the hierarchy should use
// Reparent rather than editing Path directly here).
func (t *CrateTable) Rename(ctx context.Context, id int64, title string) error {
	const op = "entity.Crate.Rename"
	if err := validateCrateName(op, title); err != nil {
		return err
	}
	c, ok, err := t.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return enginerr.RowID(op, "crate", "no row with id %d", id)
	}
	newPath := title + ";"
	if idx := strings.LastIndex(strings.TrimSuffix(c.Path, ";"), ";"); idx >= 0 {
		newPath = c.Path[:idx+1] + title + ";"
	}
	res, err := t.ctx.DB.ExecContext(ctx, "UPDATE "+qualify(t.schema(), "Crate")+" SET title = ?, path = ? WHERE id = ?", title, newPath, id)
	if err != nil {
		return enginerr.Inconsistency(op, "renaming crate %d: %v", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return enginerr.RowID(op, "crate", "no row with id %d", id)
	}
	return nil
}

// Remove deletes a crate; trigger_delete_Crate cascades onto
// ListTrackList/ListHierarchy/ListParentList via List's own
// ON DELETE CASCADE foreign keys.
func (t *CrateTable) Remove(ctx context.Context, id int64) error {
	const op = "entity.Crate.Remove"
	if _, err := t.ctx.DB.ExecContext(ctx, "DELETE FROM "+qualify(t.schema(), "Crate")+" WHERE id = ?", id); err != nil {
		return enginerr.Inconsistency(op, "removing crate %d: %v", id, err)
	}
	return nil
}

// AllIDs enumerates every crate's id.
func (t *CrateTable) AllIDs(ctx context.Context) ([]int64, error) {
	const op = "entity.Crate.AllIDs"
	rows, err := t.ctx.DB.QueryContext(ctx, "SELECT id FROM "+qualify(t.schema(), "Crate")+" ORDER BY id")
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing crates: %v", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning crate id: %v", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Children returns the ids of id's immediate sub-crates, via
// ListHierarchy filtered to the crate discriminator.
func (t *CrateTable) Children(ctx context.Context, id int64) ([]int64, error) {
	const op = "entity.Crate.Children"
	rows, err := t.ctx.DB.QueryContext(ctx,
		"SELECT listIdChild FROM "+qualify(t.schema(), "ListHierarchy")+" WHERE listId = ? AND listType = ? AND listTypeChild = ?",
		id, crateListType, crateListType)
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing children of crate %d: %v", id, err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var childID int64
		if err := rows.Scan(&childID); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning child crate id: %v", err)
		}
		ids = append(ids, childID)
	}
	return ids, nil
}

// Reparent makes childID a sub-crate of parentID by inserting into
// ListHierarchy/ListParentList directly — there being no dedicated
// view for this mutation in the retrieved source, unlike
// Playlist/PlaylistEntity's trigger-driven reparenting on the v2/v3
// side. Rejects a cycle (parentID already a descendant of childID) as
// crate_invalid_parent.
func (t *CrateTable) Reparent(ctx context.Context, childID, parentID int64) error {
	const op = "entity.Crate.Reparent"
	if childID == parentID {
		return enginerr.InvalidParent(op, "crate", "crate %d cannot be its own parent", childID)
	}
	descendants, err := t.allDescendants(ctx, childID)
	if err != nil {
		return err
	}
	for _, d := range descendants {
		if d == parentID {
			return enginerr.InvalidParent(op, "crate", "crate %d is already a descendant of %d", parentID, childID)
		}
	}

	tx, err := t.ctx.DB.BeginTx(ctx, nil)
	if err != nil {
		return enginerr.Inconsistency(op, "starting transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM "+qualify(t.schema(), "ListHierarchy")+" WHERE listIdChild = ? AND listTypeChild = ?", childID, crateListType); err != nil {
		return enginerr.Inconsistency(op, "clearing old hierarchy row for crate %d: %v", childID, err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM "+qualify(t.schema(), "ListParentList")+" WHERE listOriginId = ? AND listOriginType = ?", childID, crateListType); err != nil {
		return enginerr.Inconsistency(op, "clearing old parent-list row for crate %d: %v", childID, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO "+qualify(t.schema(), "ListHierarchy")+" (listId, listType, listIdChild, listTypeChild) VALUES (?,?,?,?)",
		parentID, crateListType, childID, crateListType); err != nil {
		return enginerr.Inconsistency(op, "inserting hierarchy row: %v", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO "+qualify(t.schema(), "ListParentList")+" (listOriginId, listOriginType, listParentId, listParentType) VALUES (?,?,?,?)",
		childID, crateListType, parentID, crateListType); err != nil {
		return enginerr.Inconsistency(op, "inserting parent-list row: %v", err)
	}
	if err := tx.Commit(); err != nil {
		return enginerr.Inconsistency(op, "committing: %v", err)
	}
	return nil
}

func (t *CrateTable) allDescendants(ctx context.Context, id int64) ([]int64, error) {
	const op = "entity.Crate.allDescendants"
	seen := map[int64]bool{}
	queue := []int64{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		kids, err := t.Children(ctx, cur)
		if err != nil {
			return nil, enginerr.Inconsistency(op, "walking hierarchy from %d: %v", cur, err)
		}
		for _, k := range kids {
			if !seen[k] {
				seen[k] = true
				queue = append(queue, k)
			}
		}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	return ids, nil
}

// AddTrack appends trackID to crate id's track list.
func (t *CrateTable) AddTrack(ctx context.Context, id, trackID int64) error {
	const op = "entity.Crate.AddTrack"
	_, err := t.ctx.DB.ExecContext(ctx,
		"INSERT INTO "+qualify(t.schema(), "ListTrackList")+" (listId, listType, trackId) VALUES (?, ?, ?)",
		id, crateListType, trackID)
	if err != nil {
		return enginerr.Inconsistency(op, "adding track %d to crate %d: %v", trackID, id, err)
	}
	return nil
}

// RemoveTrack removes trackID from crate id's track list.
func (t *CrateTable) RemoveTrack(ctx context.Context, id, trackID int64) error {
	const op = "entity.Crate.RemoveTrack"
	_, err := t.ctx.DB.ExecContext(ctx,
		"DELETE FROM "+qualify(t.schema(), "ListTrackList")+" WHERE listId = ? AND listType = ? AND trackId = ?",
		id, crateListType, trackID)
	if err != nil {
		return enginerr.Inconsistency(op, "removing track %d from crate %d: %v", trackID, id, err)
	}
	return nil
}

// Tracks returns crate id's member track ids, in insertion order.
func (t *CrateTable) Tracks(ctx context.Context, id int64) ([]int64, error) {
	const op = "entity.Crate.Tracks"
	rows, err := t.ctx.DB.QueryContext(ctx,
		"SELECT trackId FROM "+qualify(t.schema(), "ListTrackList")+" WHERE listId = ? AND listType = ? ORDER BY id",
		id, crateListType)
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing tracks for crate %d: %v", id, err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var trackID int64
		if err := rows.Scan(&trackID); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning track id: %v", err)
		}
		ids = append(ids, trackID)
	}
	return ids, nil
}
