package facade

import (
	"context"

	"engineprime/codec"
	"engineprime/entity"

	"github.com/patrickmn/go-cache"
)

// TrackSnapshot bundles a Track row together with its decoded
// PerformanceData, the value object callers actually want when
// browsing a library (spec.md §4.8) rather than two separate round
// trips through entity.TrackTable/entity.PerformanceDataTable.
type TrackSnapshot struct {
	entity.Track
	Performance entity.PerformanceData
}

// AddTrack inserts a new track and returns its snapshot. It needs no
// separate PerformanceData step: under 2.x the blob columns live on the
// Track row itself, under 3.x the child row is created by
// trigger_after_insert_Track_insert_performance_data, and under v1
// TrackTable.Add inserts the perfdata PerformanceData row itself.
func (d *Database) AddTrack(ctx context.Context, row entity.Track) (TrackSnapshot, error) {
	track, err := d.tracks.Add(ctx, row)
	if err != nil {
		return TrackSnapshot{}, err
	}
	d.invalidatePathCache(track.Path)
	return d.snapshotFor(ctx, track)
}

// Track returns the full snapshot for id, or (false, nil) if absent.
func (d *Database) Track(ctx context.Context, id int64) (TrackSnapshot, bool, error) {
	track, ok, err := d.tracks.Get(ctx, id)
	if err != nil || !ok {
		return TrackSnapshot{}, ok, err
	}
	snap, err := d.snapshotFor(ctx, track)
	return snap, true, err
}

func (d *Database) snapshotFor(ctx context.Context, track entity.Track) (TrackSnapshot, error) {
	pd, _, err := d.performanceData.Get(ctx, track.ID)
	if err != nil {
		return TrackSnapshot{}, err
	}
	return TrackSnapshot{Track: track, Performance: pd}, nil
}

// UpdateTrack overwrites a track's fields (not its performance data —
// see UpdatePerformanceData).
func (d *Database) UpdateTrack(ctx context.Context, row entity.Track) error {
	old, ok, err := d.tracks.Get(ctx, row.ID)
	if err != nil {
		return err
	}
	if err := d.tracks.Update(ctx, row); err != nil {
		return err
	}
	if ok && old.Path != row.Path {
		d.invalidatePathCache(old.Path)
	}
	d.invalidatePathCache(row.Path)
	return nil
}

// UpdatePerformanceData writes a track's decoded analysis payload.
func (d *Database) UpdatePerformanceData(ctx context.Context, pd entity.PerformanceData) error {
	return d.performanceData.Update(ctx, pd)
}

// RemoveTrack deletes a track by id.
func (d *Database) RemoveTrack(ctx context.Context, id int64) error {
	track, ok, err := d.tracks.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := d.tracks.Remove(ctx, id); err != nil {
		return err
	}
	if ok {
		d.invalidatePathCache(track.Path)
	}
	return nil
}

// AllTrackIDs enumerates every track's id.
func (d *Database) AllTrackIDs(ctx context.Context) ([]int64, error) { return d.tracks.AllIDs(ctx) }

// TrackByPath resolves a track by its exact on-disk path, caching
// positive and negative lookups in memory for pathCacheExpiration
// (grounded on itunes.CacheManager's memCache pattern — the wrap
// around github.com/patrickmn/go-cache, without that package's
// additional file-backed persistence, which a library's own on-disk
// database already gives a durable source of truth).
func (d *Database) TrackByPath(ctx context.Context, path string) (TrackSnapshot, bool, error) {
	if cached, found := d.pathCache.Get(path); found {
		entry := cached.(pathCacheEntry)
		if !entry.found {
			return TrackSnapshot{}, false, nil
		}
		return d.Track(ctx, entry.trackID)
	}

	id, ok, err := d.tracks.FindIDByPath(ctx, path)
	if err != nil {
		return TrackSnapshot{}, false, err
	}
	d.pathCache.Set(path, pathCacheEntry{trackID: id, found: ok}, cache.DefaultExpiration)
	if !ok {
		return TrackSnapshot{}, false, nil
	}
	return d.Track(ctx, id)
}

type pathCacheEntry struct {
	trackID int64
	found   bool
}

func (d *Database) invalidatePathCache(path string) {
	if path != "" {
		d.pathCache.Delete(path)
	}
}

// TrackData is a convenience accessor for the raw sample-rate/loudness
// blob, decoded via the codec package.
func (d *Database) TrackData(ctx context.Context, trackID int64) (codec.TrackData, error) {
	pd, _, err := d.performanceData.Get(ctx, trackID)
	if err != nil {
		return codec.TrackData{}, err
	}
	return pd.TrackData, nil
}
