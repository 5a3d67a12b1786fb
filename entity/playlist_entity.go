package entity

import (
	"context"
	"database/sql"

	"engineprime/enginerr"
	"engineprime/session"
)

// PlaylistEntity is one track membership row within a playlist's own
// singly-linked chain (ordered via nextEntityId, terminated by 0).
// Unlike Playlist's own nextListId chain, the schema has no insert-time
// trigger pair for PlaylistEntity — only
// trigger_before_delete_PlaylistEntity repoints a predecessor on
// delete (schema_2_18_0.cpp:551) — so PlaylistEntityTable maintains the
// forward pointer itself inside a transaction on insert, mirroring what
// the delete trigger already does for removal.
type PlaylistEntity struct {
	ID                  int64
	ListID              int64
	TrackID             int64
	DatabaseUUID        string
	NextEntityID        int64
	MembershipReference int64
}

type PlaylistEntityTable struct {
	ctx *session.Context
}

func NewPlaylistEntityTable(ctx *session.Context) *PlaylistEntityTable {
	return &PlaylistEntityTable{ctx: ctx}
}

func (t *PlaylistEntityTable) table() string { return qualify(t.ctx.MusicSchema(), "PlaylistEntity") }

// AddBack appends trackID to the end of listID's track chain.
func (t *PlaylistEntityTable) AddBack(ctx context.Context, listID, trackID int64, databaseUUID string) (PlaylistEntity, error) {
	const op = "entity.PlaylistEntity.AddBack"

	tx, err := t.ctx.DB.BeginTx(ctx, nil)
	if err != nil {
		return PlaylistEntity{}, enginerr.Inconsistency(op, "starting transaction: %v", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO "+t.table()+" (listId, trackId, databaseUuid, nextEntityId, membershipReference) VALUES (?, ?, ?, 0, 0)",
		listID, trackID, databaseUUID)
	if err != nil {
		return PlaylistEntity{}, enginerr.Inconsistency(op, "inserting playlist entity for list %d: %v", listID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return PlaylistEntity{}, enginerr.Inconsistency(op, "reading new playlist entity id: %v", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE "+t.table()+" SET nextEntityId = ? WHERE listId = ? AND nextEntityId = 0 AND id <> ?",
		id, listID, id); err != nil {
		return PlaylistEntity{}, enginerr.Inconsistency(op, "repointing previous tail of list %d: %v", listID, err)
	}

	if err := tx.Commit(); err != nil {
		return PlaylistEntity{}, enginerr.Inconsistency(op, "committing: %v", err)
	}

	got, ok, err := t.Get(ctx, id)
	if err != nil {
		return PlaylistEntity{}, err
	}
	if !ok {
		return PlaylistEntity{}, enginerr.Inconsistency(op, "playlist entity %d vanished immediately after insert", id)
	}
	return got, nil
}

func (t *PlaylistEntityTable) Get(ctx context.Context, id int64) (PlaylistEntity, bool, error) {
	const op = "entity.PlaylistEntity.Get"
	var e PlaylistEntity
	err := t.ctx.DB.QueryRowContext(ctx,
		"SELECT id, listId, trackId, databaseUuid, nextEntityId, membershipReference FROM "+t.table()+" WHERE id = ?", id).
		Scan(&e.ID, &e.ListID, &e.TrackID, &e.DatabaseUUID, &e.NextEntityID, &e.MembershipReference)
	if err == sql.ErrNoRows {
		return PlaylistEntity{}, false, nil
	}
	if err != nil {
		return PlaylistEntity{}, false, enginerr.Inconsistency(op, "reading playlist entity %d: %v", id, err)
	}
	return e, true, nil
}

// Remove deletes entity id; trigger_before_delete_PlaylistEntity
// repoints whichever entity pointed to it onto its own nextEntityId.
func (t *PlaylistEntityTable) Remove(ctx context.Context, id int64) error {
	const op = "entity.PlaylistEntity.Remove"
	if _, err := t.ctx.DB.ExecContext(ctx, "DELETE FROM "+t.table()+" WHERE id = ?", id); err != nil {
		return enginerr.Inconsistency(op, "removing playlist entity %d: %v", id, err)
	}
	return nil
}

// Tracks returns listID's member track ids in chain order, starting
// from the entity no other entity's nextEntityId points to (the head)
// and walking forward via nextEntityId to the 0-terminated tail.
func (t *PlaylistEntityTable) Tracks(ctx context.Context, listID int64) ([]int64, error) {
	const op = "entity.PlaylistEntity.Tracks"
	rows, err := t.ctx.DB.QueryContext(ctx,
		"SELECT id, trackId, nextEntityId FROM "+t.table()+" WHERE listId = ?", listID)
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing entities for list %d: %v", listID, err)
	}
	defer rows.Close()

	type node struct {
		trackID, nextID int64
	}
	byID := map[int64]node{}
	referenced := map[int64]bool{}
	for rows.Next() {
		var id, trackID, nextID int64
		if err := rows.Scan(&id, &trackID, &nextID); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning playlist entity row: %v", err)
		}
		byID[id] = node{trackID: trackID, nextID: nextID}
		if nextID != 0 {
			referenced[nextID] = true
		}
	}
	if len(byID) == 0 {
		return nil, nil
	}

	var head int64
	for id := range byID {
		if !referenced[id] {
			head = id
			break
		}
	}

	var tracks []int64
	cur := head
	visited := map[int64]bool{}
	for {
		n, ok := byID[cur]
		if !ok || visited[cur] {
			break
		}
		visited[cur] = true
		tracks = append(tracks, n.trackID)
		if n.nextID == 0 {
			break
		}
		cur = n.nextID
	}
	return tracks, nil
}
