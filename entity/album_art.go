package entity

import (
	"context"
	"database/sql"

	"engineprime/enginerr"
	"engineprime/session"
)

// AlbumArt is one cover-art row: a content hash and the raw image
// bytes. Track references AlbumArt with ON DELETE RESTRICT.
type AlbumArt struct {
	ID   int64
	Hash string
	Art  []byte
}

type AlbumArtTable struct {
	ctx *session.Context
}

func NewAlbumArtTable(ctx *session.Context) *AlbumArtTable { return &AlbumArtTable{ctx: ctx} }

func (t *AlbumArtTable) table() string { return qualify(t.ctx.MusicSchema(), "AlbumArt") }

// Add inserts row with ID == 0 and returns the assigned id. A
// pre-assigned ID fails with album_art_row_id_error.
func (t *AlbumArtTable) Add(ctx context.Context, row AlbumArt) (int64, error) {
	const op = "entity.AlbumArt.Add"
	if row.ID != 0 {
		return 0, enginerr.RowID(op, "album_art", "Add called with a pre-assigned id %d", row.ID)
	}
	res, err := t.ctx.DB.ExecContext(ctx, "INSERT INTO "+t.table()+" (hash, albumArt) VALUES (?, ?)", row.Hash, row.Art)
	if err != nil {
		return 0, enginerr.Inconsistency(op, "inserting album art: %v", err)
	}
	return res.LastInsertId()
}

// Get returns the row for id, or (AlbumArt{}, false, nil) if absent.
func (t *AlbumArtTable) Get(ctx context.Context, id int64) (AlbumArt, bool, error) {
	const op = "entity.AlbumArt.Get"
	var row AlbumArt
	err := t.ctx.DB.QueryRowContext(ctx, "SELECT id, hash, albumArt FROM "+t.table()+" WHERE id = ?", id).
		Scan(&row.ID, &row.Hash, &row.Art)
	if err == sql.ErrNoRows {
		return AlbumArt{}, false, nil
	}
	if err != nil {
		return AlbumArt{}, false, enginerr.Inconsistency(op, "reading album art %d: %v", id, err)
	}
	return row, true, nil
}

// Update overwrites row by ID.
func (t *AlbumArtTable) Update(ctx context.Context, row AlbumArt) error {
	const op = "entity.AlbumArt.Update"
	if row.ID == 0 {
		return enginerr.RowID(op, "album_art", "Update called with no id")
	}
	res, err := t.ctx.DB.ExecContext(ctx, "UPDATE "+t.table()+" SET hash = ?, albumArt = ? WHERE id = ?", row.Hash, row.Art, row.ID)
	if err != nil {
		return enginerr.Inconsistency(op, "updating album art %d: %v", row.ID, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return enginerr.RowID(op, "album_art", "no row with id %d", row.ID)
	}
	return nil
}

// Remove deletes the row for id. Tracks referencing it via
// albumArtId block on ON DELETE RESTRICT.
func (t *AlbumArtTable) Remove(ctx context.Context, id int64) error {
	const op = "entity.AlbumArt.Remove"
	if _, err := t.ctx.DB.ExecContext(ctx, "DELETE FROM "+t.table()+" WHERE id = ?", id); err != nil {
		return enginerr.Inconsistency(op, "removing album art %d: %v", id, err)
	}
	return nil
}

// AllIDs enumerates every AlbumArt row's id.
func (t *AlbumArtTable) AllIDs(ctx context.Context) ([]int64, error) {
	const op = "entity.AlbumArt.AllIDs"
	rows, err := t.ctx.DB.QueryContext(ctx, "SELECT id FROM "+t.table()+" ORDER BY id")
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing album art: %v", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning album art id: %v", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
