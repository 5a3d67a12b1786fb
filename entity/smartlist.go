package entity

import (
	"context"
	"database/sql"

	"engineprime/enginerr"
	"engineprime/session"

	"github.com/google/uuid"
)

// Smartlist is a rule-based auto-playlist, introduced at schema
// 2.21.0 (verify_smartlist first appears in schema_2_21_0.hpp). Unlike
// Playlist, it is keyed on a UUID rather than an autoincrement id, and
// its sibling ordering is path-based (parentPlaylistPath/
// nextPlaylistPath/nextListUuid) rather than an integer pointer chain.
// Rules are stored as an opaque TEXT blob whose grammar the retrieved
// source does not define; callers pass it through uninterpreted.
type Smartlist struct {
	ListUUID           string
	Title              string
	ParentPlaylistPath string
	NextPlaylistPath   string
	NextListUUID       string
	Rules              string
}

type SmartlistTable struct {
	ctx *session.Context
}

func NewSmartlistTable(ctx *session.Context) *SmartlistTable { return &SmartlistTable{ctx: ctx} }

func (t *SmartlistTable) table() string { return qualify(t.ctx.MusicSchema(), "Smartlist") }

// Add creates a new top-level smartlist, generating its UUID.
func (t *SmartlistTable) Add(ctx context.Context, title, rules string) (Smartlist, error) {
	const op = "entity.Smartlist.Add"
	sl := Smartlist{
		ListUUID:           uuid.NewString(),
		Title:              title,
		ParentPlaylistPath: "",
		NextPlaylistPath:   "",
		NextListUUID:       "",
		Rules:              rules,
	}
	_, err := t.ctx.DB.ExecContext(ctx,
		"INSERT INTO "+t.table()+" (listUuid, title, parentPlaylistPath, nextPlaylistPath, nextListUuid, rules) VALUES (?, ?, ?, ?, ?, ?)",
		sl.ListUUID, sl.Title, sl.ParentPlaylistPath, sl.NextPlaylistPath, sl.NextListUUID, sl.Rules)
	if err != nil {
		return Smartlist{}, enginerr.Inconsistency(op, "inserting smartlist %q: %v", title, err)
	}
	return sl, nil
}

func (t *SmartlistTable) Get(ctx context.Context, listUUID string) (Smartlist, bool, error) {
	const op = "entity.Smartlist.Get"
	var sl Smartlist
	err := t.ctx.DB.QueryRowContext(ctx,
		"SELECT listUuid, title, parentPlaylistPath, nextPlaylistPath, nextListUuid, rules FROM "+t.table()+" WHERE listUuid = ?", listUUID).
		Scan(&sl.ListUUID, &sl.Title, &sl.ParentPlaylistPath, &sl.NextPlaylistPath, &sl.NextListUUID, &sl.Rules)
	if err == sql.ErrNoRows {
		return Smartlist{}, false, nil
	}
	if err != nil {
		return Smartlist{}, false, enginerr.Inconsistency(op, "reading smartlist %s: %v", listUUID, err)
	}
	return sl, true, nil
}

func (t *SmartlistTable) Remove(ctx context.Context, listUUID string) error {
	const op = "entity.Smartlist.Remove"
	if _, err := t.ctx.DB.ExecContext(ctx, "DELETE FROM "+t.table()+" WHERE listUuid = ?", listUUID); err != nil {
		return enginerr.Inconsistency(op, "removing smartlist %s: %v", listUUID, err)
	}
	return nil
}

func (t *SmartlistTable) AllUUIDs(ctx context.Context) ([]string, error) {
	const op = "entity.Smartlist.AllUUIDs"
	rows, err := t.ctx.DB.QueryContext(ctx, "SELECT listUuid FROM "+t.table()+" ORDER BY listUuid")
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing smartlists: %v", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning smartlist uuid: %v", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
