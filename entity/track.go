package entity

import (
	"context"
	"database/sql"
	"time"

	"engineprime/directory"
	"engineprime/enginerr"
	"engineprime/session"
)

// Track is one row per track. Field coverage matches the v2/v3
// generation's flat Track table, which carries every conceptual field
// spec.md §3 names. Under the v1 legacy layout, only the fields that
// are real Track columns there (Path, Filename, Bitrate, Length, BPM,
// Year, AlbumArtID, BPMAnalyzed) are backed directly; the rest
// (Title/Artist/Album/...) live in v1's MetaData key-value table,
// whose type-id mapping is out of scope here — field-level access to
// them under v1 raises unsupported_operation, same as any column
// genuinely absent from a variant's catalogue.
type Track struct {
	ID                 int64
	Path               string
	Filename           string
	Length             int64
	Bitrate            int64
	BPM                int64
	BPMAnalyzed        float64
	Year               int64
	Title              string
	Artist             string
	Album              string
	Genre              string
	Comment            string
	Label              string
	Composer           string
	Remixer            string
	Key                int64
	Rating             int64
	TimeLastPlayed     time.Time
	DateCreated        time.Time
	DateAdded          time.Time
	IsPlayed           bool
	IsAnalyzed         bool
	IsAvailable        bool
	PlayedIndicator    int64
	OriginDatabaseUUID string
	OriginTrackID      int64
	AlbumArtID         int64
}

type TrackTable struct {
	ctx *session.Context
}

func NewTrackTable(ctx *session.Context) *TrackTable { return &TrackTable{ctx: ctx} }

func (t *TrackTable) table() string { return qualify(t.ctx.MusicSchema(), "Track") }

func (t *TrackTable) isV1() bool { return t.ctx.Layout == directory.LayoutV1 }

// Add inserts row with ID == 0 and returns the assigned id. If
// OriginDatabaseUUID is empty or OriginTrackID is 0, the schema's
// origin-backfill trigger fills them from the library UUID and the
// new row's id; Add re-reads the row so the caller's copy reflects
// that (spec.md §4.7).
func (t *TrackTable) Add(ctx context.Context, row Track) (Track, error) {
	const op = "entity.Track.Add"
	if row.ID != 0 {
		return Track{}, enginerr.RowID(op, "track", "Add called with a pre-assigned id %d", row.ID)
	}

	var id int64
	var err error
	if t.isV1() {
		id, err = t.addV1(ctx, row)
	} else {
		id, err = t.addV2(ctx, row)
	}
	if err != nil {
		return Track{}, err
	}

	got, ok, err := t.Get(ctx, id)
	if err != nil {
		return Track{}, err
	}
	if !ok {
		return Track{}, enginerr.Inconsistency(op, "track %d vanished immediately after insert", id)
	}
	return got, nil
}

func (t *TrackTable) addV2(ctx context.Context, row Track) (int64, error) {
	const op = "entity.Track.addV2"
	res, err := t.ctx.DB.ExecContext(ctx,
		"INSERT INTO "+t.table()+" (path, filename, length, bitrate, bpm, bpmAnalyzed, year, title, artist, album, genre, comment, label, composer, remixer, key, rating, isPlayed, isAnalyzed, isAvailable, playedIndicator, originDatabaseUuid, originTrackId, albumArtId, dateCreated, dateAdded) "+
			"VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)",
		row.Path, row.Filename, row.Length, row.Bitrate, row.BPM, row.BPMAnalyzed, row.Year,
		row.Title, row.Artist, row.Album, row.Genre, row.Comment, row.Label, row.Composer, row.Remixer,
		row.Key, row.Rating, row.IsPlayed, row.IsAnalyzed, row.IsAvailable, row.PlayedIndicator,
		nullableString(row.OriginDatabaseUUID), row.OriginTrackID, nullableID(row.AlbumArtID), row.DateCreated, row.DateAdded)
	if err != nil {
		return 0, enginerr.Inconsistency(op, "inserting track: %v", err)
	}
	return res.LastInsertId()
}

func (t *TrackTable) addV1(ctx context.Context, row Track) (int64, error) {
	const op = "entity.Track.addV1"
	res, err := t.ctx.DB.ExecContext(ctx,
		"INSERT INTO "+t.table()+" (path, filename, length, bitrate, bpm, bpmAnalyzed, year, idAlbumArt) VALUES (?,?,?,?,?,?,?,?)",
		row.Path, row.Filename, row.Length, row.Bitrate, row.BPM, row.BPMAnalyzed, row.Year, nullableID(row.AlbumArtID))
	if err != nil {
		return 0, enginerr.Inconsistency(op, "inserting v1 track: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, enginerr.Inconsistency(op, "reading new v1 track id: %v", err)
	}
	// Unlike 3.x, the two-file layout has no insert trigger to create
	// the sibling perfdata.PerformanceData row, since cross-schema
	// triggers aren't available here; do it directly at the same id.
	if _, err := t.ctx.DB.ExecContext(ctx,
		"INSERT INTO "+qualify(t.ctx.PerfdataSchema(), "PerformanceData")+" (id) VALUES (?)", id); err != nil {
		return 0, enginerr.Inconsistency(op, "creating v1 performance data row for track %d: %v", id, err)
	}
	return id, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}

// Get returns the row or (Track{}, false, nil) if absent.
func (t *TrackTable) Get(ctx context.Context, id int64) (Track, bool, error) {
	if t.isV1() {
		return t.getV1(ctx, id)
	}
	return t.getV2(ctx, id)
}

func (t *TrackTable) getV2(ctx context.Context, id int64) (Track, bool, error) {
	const op = "entity.Track.Get"
	var row Track
	var origin sql.NullString
	var albumArtID sql.NullInt64
	err := t.ctx.DB.QueryRowContext(ctx,
		"SELECT id, path, filename, length, bitrate, bpm, bpmAnalyzed, year, title, artist, album, genre, comment, label, composer, remixer, key, rating, isPlayed, isAnalyzed, isAvailable, playedIndicator, originDatabaseUuid, originTrackId, albumArtId, dateCreated, dateAdded FROM "+t.table()+" WHERE id = ?", id).
		Scan(&row.ID, &row.Path, &row.Filename, &row.Length, &row.Bitrate, &row.BPM, &row.BPMAnalyzed, &row.Year,
			&row.Title, &row.Artist, &row.Album, &row.Genre, &row.Comment, &row.Label, &row.Composer, &row.Remixer,
			&row.Key, &row.Rating, &row.IsPlayed, &row.IsAnalyzed, &row.IsAvailable, &row.PlayedIndicator,
			&origin, &row.OriginTrackID, &albumArtID, &row.DateCreated, &row.DateAdded)
	if err == sql.ErrNoRows {
		return Track{}, false, nil
	}
	if err != nil {
		return Track{}, false, enginerr.Inconsistency(op, "reading track %d: %v", id, err)
	}
	row.OriginDatabaseUUID = origin.String
	row.AlbumArtID = albumArtID.Int64
	return row, true, nil
}

func (t *TrackTable) getV1(ctx context.Context, id int64) (Track, bool, error) {
	const op = "entity.Track.Get"
	var row Track
	var albumArtID sql.NullInt64
	err := t.ctx.DB.QueryRowContext(ctx,
		"SELECT id, path, filename, length, bitrate, bpm, bpmAnalyzed, year, idAlbumArt FROM "+t.table()+" WHERE id = ?", id).
		Scan(&row.ID, &row.Path, &row.Filename, &row.Length, &row.Bitrate, &row.BPM, &row.BPMAnalyzed, &row.Year, &albumArtID)
	if err == sql.ErrNoRows {
		return Track{}, false, nil
	}
	if err != nil {
		return Track{}, false, enginerr.Inconsistency(op, "reading v1 track %d: %v", id, err)
	}
	row.AlbumArtID = albumArtID.Int64
	return row, true, nil
}

// Update is a full-row update keyed by ID.
func (t *TrackTable) Update(ctx context.Context, row Track) error {
	const op = "entity.Track.Update"
	if row.ID == 0 {
		return enginerr.RowID(op, "track", "Update called with no id")
	}
	var res sql.Result
	var err error
	if t.isV1() {
		res, err = t.ctx.DB.ExecContext(ctx,
			"UPDATE "+t.table()+" SET path=?, filename=?, length=?, bitrate=?, bpm=?, bpmAnalyzed=?, year=?, idAlbumArt=? WHERE id=?",
			row.Path, row.Filename, row.Length, row.Bitrate, row.BPM, row.BPMAnalyzed, row.Year, nullableID(row.AlbumArtID), row.ID)
	} else {
		res, err = t.ctx.DB.ExecContext(ctx,
			"UPDATE "+t.table()+" SET path=?, filename=?, length=?, bitrate=?, bpm=?, bpmAnalyzed=?, year=?, title=?, artist=?, album=?, genre=?, comment=?, label=?, composer=?, remixer=?, key=?, rating=?, isPlayed=?, isAnalyzed=?, isAvailable=?, playedIndicator=?, albumArtId=? WHERE id=?",
			row.Path, row.Filename, row.Length, row.Bitrate, row.BPM, row.BPMAnalyzed, row.Year,
			row.Title, row.Artist, row.Album, row.Genre, row.Comment, row.Label, row.Composer, row.Remixer,
			row.Key, row.Rating, row.IsPlayed, row.IsAnalyzed, row.IsAvailable, row.PlayedIndicator, nullableID(row.AlbumArtID), row.ID)
	}
	if err != nil {
		return enginerr.Inconsistency(op, "updating track %d: %v", row.ID, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return enginerr.RowID(op, "track", "no row with id %d", row.ID)
	}
	return nil
}

// Remove deletes by id. In 3.x this cascades to PerformanceData via
// its foreign key; in 2.x, PerformanceData is a view over Track's own
// columns so there is nothing further to cascade; in v1 the sibling
// perfdata.PerformanceData row is removed explicitly, mirroring the
// manual insert addV1 does in the absence of a cross-schema trigger.
func (t *TrackTable) Remove(ctx context.Context, id int64) error {
	const op = "entity.Track.Remove"
	if t.isV1() {
		if _, err := t.ctx.DB.ExecContext(ctx,
			"DELETE FROM "+qualify(t.ctx.PerfdataSchema(), "PerformanceData")+" WHERE id = ?", id); err != nil {
			return enginerr.Inconsistency(op, "removing v1 performance data for track %d: %v", id, err)
		}
	}
	if _, err := t.ctx.DB.ExecContext(ctx, "DELETE FROM "+t.table()+" WHERE id = ?", id); err != nil {
		return enginerr.Inconsistency(op, "removing track %d: %v", id, err)
	}
	return nil
}

// AllIDs enumerates every Track id.
func (t *TrackTable) AllIDs(ctx context.Context) ([]int64, error) {
	const op = "entity.Track.AllIDs"
	rows, err := t.ctx.DB.QueryContext(ctx, "SELECT id FROM "+t.table()+" ORDER BY id")
	if err != nil {
		return nil, enginerr.Inconsistency(op, "listing tracks: %v", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, enginerr.Inconsistency(op, "scanning track id: %v", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FindIDByPath returns the id whose path exactly matches path, or
// (0, false, nil) if none.
func (t *TrackTable) FindIDByPath(ctx context.Context, path string) (int64, bool, error) {
	const op = "entity.Track.FindIDByPath"
	var id int64
	err := t.ctx.DB.QueryRowContext(ctx, "SELECT id FROM "+t.table()+" WHERE path = ?", path).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, enginerr.Inconsistency(op, "looking up path %q: %v", path, err)
	}
	return id, true, nil
}

// TracksByRelativePath is FindIDByPath projected as a (possibly
// singleton) sequence, for façade convenience (spec.md §4.7).
func (t *TrackTable) TracksByRelativePath(ctx context.Context, path string) ([]int64, error) {
	id, ok, err := t.FindIDByPath(ctx, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return []int64{id}, nil
}

// SetBPMAnalyzed is a representative hot-column setter: update a
// single field without a full-row round trip.
func (t *TrackTable) SetBPMAnalyzed(ctx context.Context, id int64, bpm float64) error {
	const op = "entity.Track.SetBPMAnalyzed"
	res, err := t.ctx.DB.ExecContext(ctx, "UPDATE "+t.table()+" SET bpmAnalyzed = ? WHERE id = ?", bpm, id)
	if err != nil {
		return enginerr.Inconsistency(op, "updating track %d: %v", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return enginerr.RowID(op, "track", "no row with id %d", id)
	}
	return nil
}

// GetTitle is a representative hot-column getter guarded by
// hasColumn, since Title is not a real column under the v1 layout.
func (t *TrackTable) GetTitle(ctx context.Context, id int64) (string, error) {
	const op = "entity.Track.GetTitle"
	if err := requireColumn(ctx, t.ctx.DB, t.ctx.MusicSchema(), "Track", "title", op); err != nil {
		return "", err
	}
	var title string
	err := t.ctx.DB.QueryRowContext(ctx, "SELECT title FROM "+t.table()+" WHERE id = ?", id).Scan(&title)
	if err == sql.ErrNoRows {
		return "", enginerr.RowID(op, "track", "no row with id %d", id)
	}
	if err != nil {
		return "", enginerr.Inconsistency(op, "reading title for track %d: %v", id, err)
	}
	return title, nil
}

// SetTitle is GetTitle's setter counterpart.
func (t *TrackTable) SetTitle(ctx context.Context, id int64, title string) error {
	const op = "entity.Track.SetTitle"
	if err := requireColumn(ctx, t.ctx.DB, t.ctx.MusicSchema(), "Track", "title", op); err != nil {
		return err
	}
	res, err := t.ctx.DB.ExecContext(ctx, "UPDATE "+t.table()+" SET title = ? WHERE id = ?", title, id)
	if err != nil {
		return enginerr.Inconsistency(op, "updating track %d: %v", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return enginerr.RowID(op, "track", "no row with id %d", id)
	}
	return nil
}
