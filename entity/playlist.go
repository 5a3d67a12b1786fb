package entity

import (
	"context"
	"database/sql"
	"strings"

	"engineprime/enginerr"
	"engineprime/session"
)

// Playlist is a v2/v3 list: a singly-linked sibling chain (ordered via
// nextListId, terminated by 0) nested under an optional parentListId,
// maintained automatically by the schema's own
// trigger_before_insert_List/trigger_after_insert_List/
// trigger_after_delete_List trigger trio (schema_2_18_0.cpp lines
// 505-528). Go code only ever needs to choose the right nextListId on
// insert; the database repoints the sibling that used to point there.
type Playlist struct {
	ID                   int64
	Title                string
	ParentListID         int64
	IsPersisted          bool
	NextListID           int64
	IsExplicitlyExported bool
}

type PlaylistTable struct {
	ctx *session.Context
}

func NewPlaylistTable(ctx *session.Context) *PlaylistTable { return &PlaylistTable{ctx: ctx} }

func (t *PlaylistTable) schema() string { return t.ctx.MusicSchema() }

func (t *PlaylistTable) table() string { return qualify(t.schema(), "Playlist") }

func validatePlaylistName(op, title string) error {
	if strings.TrimSpace(title) == "" {
		return enginerr.InvalidName(op, "playlist", "playlist name must not be empty")
	}
	if strings.Contains(title, ";") {
		return enginerr.InvalidName(op, "playlist", "playlist name %q must not contain ';'", title)
	}
	return nil
}

// AddBack creates a new playlist as the last child of parentID (0 for
// top-level), relying on the insert trigger pair to repoint whichever
// sibling previously held nextListId = 0.
func (t *PlaylistTable) AddBack(ctx context.Context, parentID int64, title string) (Playlist, error) {
	return t.insert(ctx, parentID, title, 0)
}

// InsertBefore creates a new playlist that becomes beforeID's
// immediate predecessor in the sibling chain.
func (t *PlaylistTable) InsertBefore(ctx context.Context, parentID int64, title string, beforeID int64) (Playlist, error) {
	return t.insert(ctx, parentID, title, beforeID)
}

func (t *PlaylistTable) insert(ctx context.Context, parentID int64, title string, nextListID int64) (Playlist, error) {
	const op = "entity.Playlist.insert"
	if err := validatePlaylistName(op, title); err != nil {
		return Playlist{}, err
	}
	if parentID != 0 {
		if _, ok, err := t.Get(ctx, parentID); err != nil {
			return Playlist{}, err
		} else if !ok {
			return Playlist{}, enginerr.InvalidParent(op, "playlist", "parent playlist %d does not exist", parentID)
		}
	}
	res, err := t.ctx.DB.ExecContext(ctx,
		"INSERT INTO "+t.table()+" (title, parentListId, isPersisted, nextListId, isExplicitlyExported) VALUES (?, ?, ?, ?, ?)",
		title, parentID, false, nextListID, false)
	if err != nil {
		return Playlist{}, enginerr.Inconsistency(op, "inserting playlist %q: %v", title, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Playlist{}, enginerr.Inconsistency(op, "reading new playlist id: %v", err)
	}
	got, ok, err := t.Get(ctx, id)
	if err != nil {
		return Playlist{}, err
	}
	if !ok {
		return Playlist{}, enginerr.Inconsistency(op, "playlist %d vanished immediately after insert", id)
	}
	return got, nil
}

func (t *PlaylistTable) Get(ctx context.Context, id int64) (Playlist, bool, error) {
	const op = "entity.Playlist.Get"
	var p Playlist
	err := t.ctx.DB.QueryRowContext(ctx,
		"SELECT id, title, parentListId, isPersisted, nextListId, isExplicitlyExported FROM "+t.table()+" WHERE id = ?", id).
		Scan(&p.ID, &p.Title, &p.ParentListID, &p.IsPersisted, &p.NextListID, &p.IsExplicitlyExported)
	if err == sql.ErrNoRows {
		return Playlist{}, false, nil
	}
	if err != nil {
		return Playlist{}, false, enginerr.Inconsistency(op, "reading playlist %d: %v", id, err)
	}
	return p, true, nil
}

func (t *PlaylistTable) Rename(ctx context.Context, id int64, title string) error {
	const op = "entity.Playlist.Rename"
	if err := validatePlaylistName(op, title); err != nil {
		return err
	}
	res, err := t.ctx.DB.ExecContext(ctx, "UPDATE "+t.table()+" SET title = ? WHERE id = ?", title, id)
	if err != nil {
		return enginerr.Inconsistency(op, "renaming playlist %d: %v", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return enginerr.RowID(op, "playlist", "no row with id %d", id)
	}
	return nil
}

// Reparent moves id to a new parent, rejecting a cycle as
// playlist_invalid_parent. isPersisted propagation up/down the new
// hierarchy is handled by trigger_after_update_isPersistParent/
// trigger_after_update_isPersistChild once the UPDATE lands.
func (t *PlaylistTable) Reparent(ctx context.Context, id, newParentID int64) error {
	const op = "entity.Playlist.Reparent"
	if id == newParentID {
		return enginerr.InvalidParent(op, "playlist", "playlist %d cannot be its own parent", id)
	}
	if newParentID != 0 {
		descendants, err := t.descendants(ctx, id)
		if err != nil {
			return err
		}
		for _, d := range descendants {
			if d == newParentID {
				return enginerr.InvalidParent(op, "playlist", "playlist %d is already a descendant of %d", newParentID, id)
			}
		}
	}
	res, err := t.ctx.DB.ExecContext(ctx, "UPDATE "+t.table()+" SET parentListId = ?, nextListId = 0 WHERE id = ?", newParentID, id)
	if err != nil {
		return enginerr.Inconsistency(op, "reparenting playlist %d: %v", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return enginerr.RowID(op, "playlist", "no row with id %d", id)
	}
	return nil
}

func (t *PlaylistTable) descendants(ctx context.Context, id int64) ([]int64, error) {
	const op = "entity.Playlist.descendants"
	rows, err := t.ctx.DB.QueryContext(ctx, "SELECT childListId FROM "+qualify(t.schema(), "PlaylistAllChildren")+" WHERE id = ?", id)
	if err != nil {
		return nil, enginerr.Inconsistency(op, "walking descendants of playlist %d: %v", id, err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var childID int64
		if err := rows.Scan(&childID); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning descendant id: %v", err)
		}
		ids = append(ids, childID)
	}
	return ids, nil
}

// Descendants returns every playlist transitively nested under id, via
// the PlaylistAllChildren recursive view (schema_2_18_0.cpp/
// schema_3_1_0.cpp), not just id's immediate Children.
func (t *PlaylistTable) Descendants(ctx context.Context, id int64) ([]int64, error) {
	return t.descendants(ctx, id)
}

// Ancestors returns every playlist id transitively above id, nearest
// first, via the PlaylistAllParent recursive view.
func (t *PlaylistTable) Ancestors(ctx context.Context, id int64) ([]int64, error) {
	const op = "entity.Playlist.Ancestors"
	rows, err := t.ctx.DB.QueryContext(ctx, "SELECT parentListId FROM "+qualify(t.schema(), "PlaylistAllParent")+" WHERE id = ?", id)
	if err != nil {
		return nil, enginerr.Inconsistency(op, "walking ancestors of playlist %d: %v", id, err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var parentID int64
		if err := rows.Scan(&parentID); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning ancestor id: %v", err)
		}
		if parentID != 0 {
			ids = append(ids, parentID)
		}
	}
	return ids, nil
}

// SetPersisted flips id's isPersisted flag; trigger_after_update_isPersistParent/
// trigger_after_update_isPersistChild then propagate the new value up
// or down the tree.
func (t *PlaylistTable) SetPersisted(ctx context.Context, id int64, persisted bool) error {
	const op = "entity.Playlist.SetPersisted"
	res, err := t.ctx.DB.ExecContext(ctx, "UPDATE "+t.table()+" SET isPersisted = ? WHERE id = ?", persisted, id)
	if err != nil {
		return enginerr.Inconsistency(op, "setting isPersisted on playlist %d: %v", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return enginerr.RowID(op, "playlist", "no row with id %d", id)
	}
	return nil
}

// Remove deletes playlist id; trigger_after_delete_List repoints
// whichever sibling pointed to it and cascades the delete onto its
// own children.
func (t *PlaylistTable) Remove(ctx context.Context, id int64) error {
	const op = "entity.Playlist.Remove"
	if _, err := t.ctx.DB.ExecContext(ctx, "DELETE FROM "+t.table()+" WHERE id = ?", id); err != nil {
		return enginerr.Inconsistency(op, "removing playlist %d: %v", id, err)
	}
	return nil
}

// Children returns id's immediate sub-playlists ordered by the value of
// their nextListId column. This is not the sibling-chain order: the
// tail (nextListId 0) comes first and the others follow in order of
// their successor's id.
func (t *PlaylistTable) Children(ctx context.Context, id int64) ([]int64, error) {
	const op = "entity.Playlist.Children"
	rows, err := t.ctx.DB.QueryContext(ctx, "SELECT id FROM "+t.table()+" WHERE parentListId = ? ORDER BY nextListId", id)
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing children of playlist %d: %v", id, err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var childID int64
		if err := rows.Scan(&childID); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning child playlist id: %v", err)
		}
		ids = append(ids, childID)
	}
	return ids, nil
}
