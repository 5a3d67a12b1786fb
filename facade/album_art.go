package facade

import (
	"context"

	"engineprime/entity"
)

func (d *Database) AddAlbumArt(ctx context.Context, row entity.AlbumArt) (int64, error) {
	return d.albumArt.Add(ctx, row)
}

func (d *Database) AlbumArt(ctx context.Context, id int64) (entity.AlbumArt, bool, error) {
	return d.albumArt.Get(ctx, id)
}

func (d *Database) UpdateAlbumArt(ctx context.Context, row entity.AlbumArt) error {
	return d.albumArt.Update(ctx, row)
}

func (d *Database) RemoveAlbumArt(ctx context.Context, id int64) error {
	return d.albumArt.Remove(ctx, id)
}

func (d *Database) AllAlbumArtIDs(ctx context.Context) ([]int64, error) {
	return d.albumArt.AllIDs(ctx)
}
