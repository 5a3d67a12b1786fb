package facade

import (
	"context"

	"engineprime/directory"
	"engineprime/entity"
	"engineprime/enginerr"
)

// AddCrate creates a top-level crate. v1-only — see entity.Crate.
func (d *Database) AddCrate(ctx context.Context, title string) (entity.Crate, error) {
	if err := d.requireCrateSupport("facade.AddCrate"); err != nil {
		return entity.Crate{}, err
	}
	return d.crates.Add(ctx, title)
}

func (d *Database) Crate(ctx context.Context, id int64) (entity.Crate, bool, error) {
	return d.crates.Get(ctx, id)
}

func (d *Database) RenameCrate(ctx context.Context, id int64, title string) error {
	return d.crates.Rename(ctx, id, title)
}

func (d *Database) ReparentCrate(ctx context.Context, childID, parentID int64) error {
	return d.crates.Reparent(ctx, childID, parentID)
}

func (d *Database) RemoveCrate(ctx context.Context, id int64) error { return d.crates.Remove(ctx, id) }

func (d *Database) AllCrateIDs(ctx context.Context) ([]int64, error) { return d.crates.AllIDs(ctx) }

func (d *Database) CrateChildren(ctx context.Context, id int64) ([]int64, error) {
	return d.crates.Children(ctx, id)
}

func (d *Database) AddTrackToCrate(ctx context.Context, crateID, trackID int64) error {
	return d.crates.AddTrack(ctx, crateID, trackID)
}

func (d *Database) RemoveTrackFromCrate(ctx context.Context, crateID, trackID int64) error {
	return d.crates.RemoveTrack(ctx, crateID, trackID)
}

func (d *Database) CrateTracks(ctx context.Context, crateID int64) ([]int64, error) {
	return d.crates.Tracks(ctx, crateID)
}

// requireCrateSupport guards crate operations on a v2/v3 library,
// which has no Crate entity at all — only v1's polymorphic List table
// carries one.
func (d *Database) requireCrateSupport(op string) error {
	if d.ctx.Layout != directory.LayoutV1 {
		return enginerr.UnsupportedOperation(op, "crates are not supported on this schema generation")
	}
	return nil
}
