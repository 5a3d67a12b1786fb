package entity

import (
	"context"
	"database/sql"

	"engineprime/codec"
	"engineprime/directory"
	"engineprime/enginerr"
	"engineprime/session"
)

// PerformanceData is the decoded analysis payload for one track. Field
// coverage is the union across generations: v1 additionally carries a
// HighResolutionWaveform and isRendered/hasSeratoValues/
// hasRekordboxValues flags that 2.x/3.x never introduced, while
// ThirdPartySourceID/ActiveOnLoadLoops are 2.x/3.x-only. Under v1 this
// is backed by perfdata.PerformanceData keyed on id (shared with
// music.Track's id, not a foreign key, per the two-file layout); under
// 2.x it is a view over Track's own columns; under 3.x it is a real
// 1:1 child table via ON DELETE CASCADE.
type PerformanceData struct {
	TrackID                int64
	IsAnalyzed             bool
	IsRendered             bool
	TrackData              codec.TrackData
	OverviewWaveform       codec.OverviewWaveform
	HighResolutionWaveform codec.HighResolutionWaveform
	BeatData               codec.BeatData
	QuickCues              codec.QuickCues
	Loops                  codec.Loops
	HasSeratoValues        bool
	HasRekordboxValues     bool
	ThirdPartySourceID     int64
	ActiveOnLoadLoops      int64
}

type PerformanceDataTable struct {
	ctx *session.Context
}

func NewPerformanceDataTable(ctx *session.Context) *PerformanceDataTable {
	return &PerformanceDataTable{ctx: ctx}
}

func (t *PerformanceDataTable) isV1() bool { return t.ctx.Layout == directory.LayoutV1 }

func (t *PerformanceDataTable) schema() string {
	if t.isV1() {
		return t.ctx.PerfdataSchema()
	}
	return t.ctx.MusicSchema()
}

func (t *PerformanceDataTable) table() string { return qualify(t.schema(), "PerformanceData") }

// Get decodes the PerformanceData row for trackId, or (false, nil) if
// none exists.
func (t *PerformanceDataTable) Get(ctx context.Context, trackID int64) (PerformanceData, bool, error) {
	if t.isV1() {
		return t.getV1(ctx, trackID)
	}
	return t.getV2(ctx, trackID)
}

func (t *PerformanceDataTable) getV1(ctx context.Context, trackID int64) (PerformanceData, bool, error) {
	const op = "entity.PerformanceData.Get"
	var pd PerformanceData
	var isAnalyzed, isRendered, hasSerato, hasRekordbox sql.NullBool
	var trackData, highRes, overview, beat, quick, loops []byte
	err := t.ctx.DB.QueryRowContext(ctx,
		"SELECT id, isAnalyzed, isRendered, trackData, highResolutionWaveFormData, overviewWaveFormData, beatData, quickCues, loops, hasSeratoValues, hasRekordboxValues FROM "+t.table()+" WHERE id = ?", trackID).
		Scan(&pd.TrackID, &isAnalyzed, &isRendered, &trackData, &highRes, &overview, &beat, &quick, &loops, &hasSerato, &hasRekordbox)
	if err == sql.ErrNoRows {
		return PerformanceData{}, false, nil
	}
	if err != nil {
		return PerformanceData{}, false, enginerr.Inconsistency(op, "reading v1 performance data for track %d: %v", trackID, err)
	}
	pd.IsAnalyzed, pd.IsRendered = isAnalyzed.Bool, isRendered.Bool
	pd.HasSeratoValues, pd.HasRekordboxValues = hasSerato.Bool, hasRekordbox.Bool
	return t.decodeBlobs(op, pd, trackID, trackData, overview, highRes, beat, quick, loops)
}

func (t *PerformanceDataTable) getV2(ctx context.Context, trackID int64) (PerformanceData, bool, error) {
	const op = "entity.PerformanceData.Get"

	hasIsAnalyzed, err := hasColumn(ctx, t.ctx.DB, t.schema(), "PerformanceData", "isAnalyzed")
	if err != nil {
		return PerformanceData{}, false, err
	}
	hasActiveOnLoadLoops, err := hasColumn(ctx, t.ctx.DB, t.schema(), "PerformanceData", "activeOnLoadLoops")
	if err != nil {
		return PerformanceData{}, false, err
	}

	cols := "trackId, trackData, overviewWaveFormData, beatData, quickCues, loops, thirdPartySourceId"
	if hasIsAnalyzed {
		cols = "trackId, isAnalyzed, trackData, overviewWaveFormData, beatData, quickCues, loops, thirdPartySourceId"
	}
	if hasActiveOnLoadLoops {
		cols += ", activeOnLoadLoops"
	}

	row := t.ctx.DB.QueryRowContext(ctx, "SELECT "+cols+" FROM "+t.table()+" WHERE trackId = ?", trackID)

	var pd PerformanceData
	var isAnalyzed sql.NullBool
	var trackData, overview, beat, quick, loops []byte
	var thirdParty sql.NullInt64
	var activeOnLoadLoops sql.NullInt64

	scanArgs := []interface{}{&pd.TrackID}
	if hasIsAnalyzed {
		scanArgs = append(scanArgs, &isAnalyzed)
	}
	scanArgs = append(scanArgs, &trackData, &overview, &beat, &quick, &loops, &thirdParty)
	if hasActiveOnLoadLoops {
		scanArgs = append(scanArgs, &activeOnLoadLoops)
	}

	if err := row.Scan(scanArgs...); err == sql.ErrNoRows {
		return PerformanceData{}, false, nil
	} else if err != nil {
		return PerformanceData{}, false, enginerr.Inconsistency(op, "reading performance data for track %d: %v", trackID, err)
	}

	pd.IsAnalyzed = isAnalyzed.Bool
	pd.ThirdPartySourceID = thirdParty.Int64
	pd.ActiveOnLoadLoops = activeOnLoadLoops.Int64

	return t.decodeBlobs(op, pd, trackID, trackData, overview, nil, beat, quick, loops)
}

func (t *PerformanceDataTable) decodeBlobs(op string, pd PerformanceData, trackID int64, trackData, overview, highRes, beat, quick, loops []byte) (PerformanceData, bool, error) {
	var err error
	if pd.TrackData, err = codec.DecodeTrackData(trackData); err != nil {
		return PerformanceData{}, false, enginerr.Inconsistency(op, "decoding trackData for track %d: %v", trackID, err)
	}
	if pd.OverviewWaveform, err = codec.DecodeOverviewWaveform(overview); err != nil {
		return PerformanceData{}, false, enginerr.Inconsistency(op, "decoding overviewWaveFormData for track %d: %v", trackID, err)
	}
	if pd.HighResolutionWaveform, err = codec.DecodeHighResolutionWaveform(highRes); err != nil {
		return PerformanceData{}, false, enginerr.Inconsistency(op, "decoding highResolutionWaveFormData for track %d: %v", trackID, err)
	}
	if pd.BeatData, err = codec.DecodeBeatData(beat); err != nil {
		return PerformanceData{}, false, enginerr.Inconsistency(op, "decoding beatData for track %d: %v", trackID, err)
	}
	if pd.QuickCues, err = codec.DecodeQuickCues(quick); err != nil {
		return PerformanceData{}, false, enginerr.Inconsistency(op, "decoding quickCues for track %d: %v", trackID, err)
	}
	if pd.Loops, err = codec.DecodeLoops(loops); err != nil {
		return PerformanceData{}, false, enginerr.Inconsistency(op, "decoding loops for track %d: %v", trackID, err)
	}
	return pd, true, nil
}

// Update writes pd's encoded blobs back. Under v1/2.x this is a direct
// UPDATE (v1's row is created once at schema creation time per track
// insert — see entity.Track's addV1; 2.x routes through the view's
// INSTEAD OF UPDATE triggers onto Track); under 3.x it updates the
// real 1:1 child row created by
// trigger_after_insert_Track_insert_performance_data.
func (t *PerformanceDataTable) Update(ctx context.Context, pd PerformanceData) error {
	const op = "entity.PerformanceData.Update"
	if pd.TrackID == 0 {
		return enginerr.RowID(op, "performance_data", "Update called with no trackId")
	}
	if t.isV1() {
		return t.updateV1(ctx, pd)
	}
	return t.updateV2(ctx, pd)
}

func (t *PerformanceDataTable) updateV1(ctx context.Context, pd PerformanceData) error {
	const op = "entity.PerformanceData.Update"
	res, err := t.ctx.DB.ExecContext(ctx,
		"UPDATE "+t.table()+" SET isAnalyzed=?, isRendered=?, trackData=?, highResolutionWaveFormData=?, overviewWaveFormData=?, beatData=?, quickCues=?, loops=?, hasSeratoValues=?, hasRekordboxValues=? WHERE id=?",
		pd.IsAnalyzed, pd.IsRendered, pd.TrackData.Encode(), pd.HighResolutionWaveform.Encode(), pd.OverviewWaveform.Encode(),
		pd.BeatData.Encode(), pd.QuickCues.Encode(), pd.Loops.Encode(), pd.HasSeratoValues, pd.HasRekordboxValues, pd.TrackID)
	if err != nil {
		return enginerr.Inconsistency(op, "updating v1 performance data for track %d: %v", pd.TrackID, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return enginerr.RowID(op, "performance_data", "no row for id %d", pd.TrackID)
	}
	return nil
}

func (t *PerformanceDataTable) updateV2(ctx context.Context, pd PerformanceData) error {
	const op = "entity.PerformanceData.Update"
	hasIsAnalyzed, err := hasColumn(ctx, t.ctx.DB, t.schema(), "PerformanceData", "isAnalyzed")
	if err != nil {
		return err
	}
	hasActiveOnLoadLoops, err := hasColumn(ctx, t.ctx.DB, t.schema(), "PerformanceData", "activeOnLoadLoops")
	if err != nil {
		return err
	}

	set := "trackData = ?, overviewWaveFormData = ?, beatData = ?, quickCues = ?, loops = ?, thirdPartySourceId = ?"
	args := []interface{}{pd.TrackData.Encode(), pd.OverviewWaveform.Encode(), pd.BeatData.Encode(), pd.QuickCues.Encode(), pd.Loops.Encode(), pd.ThirdPartySourceID}
	if hasIsAnalyzed {
		set = "isAnalyzed = ?, " + set
		args = append([]interface{}{pd.IsAnalyzed}, args...)
	}
	if hasActiveOnLoadLoops {
		set += ", activeOnLoadLoops = ?"
		args = append(args, pd.ActiveOnLoadLoops)
	}
	args = append(args, pd.TrackID)

	res, err := t.ctx.DB.ExecContext(ctx, "UPDATE "+t.table()+" SET "+set+" WHERE trackId = ?", args...)
	if err != nil {
		return enginerr.Inconsistency(op, "updating performance data for track %d: %v", pd.TrackID, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return enginerr.RowID(op, "performance_data", "no row for trackId %d", pd.TrackID)
	}
	return nil
}

// Clear resets trackID's performance data without deleting the row. It
// calls Update with a zero-valued PerformanceData, so every blob column
// receives its codec's encoding of the empty value and the flag and
// scalar columns become false/0. On every generation the blob columns
// are overwritten, not set to NULL.
func (t *PerformanceDataTable) Clear(ctx context.Context, trackID int64) error {
	zero := PerformanceData{TrackID: trackID}
	return t.Update(ctx, zero)
}
