package facade

import (
	"context"

	"engineprime/directory"
	"engineprime/entity"
	"engineprime/enginerr"
)

// requirePlaylistSupport guards playlist operations on a v1 library,
// which models collections through Crate/List instead.
func (d *Database) requirePlaylistSupport(op string) error {
	if d.ctx.Layout == directory.LayoutV1 {
		return enginerr.UnsupportedOperation(op, "playlists are not supported on this schema generation")
	}
	return nil
}

func (d *Database) AddPlaylist(ctx context.Context, parentID int64, title string) (entity.Playlist, error) {
	if err := d.requirePlaylistSupport("facade.AddPlaylist"); err != nil {
		return entity.Playlist{}, err
	}
	return d.playlists.AddBack(ctx, parentID, title)
}

func (d *Database) Playlist(ctx context.Context, id int64) (entity.Playlist, bool, error) {
	return d.playlists.Get(ctx, id)
}

func (d *Database) RenamePlaylist(ctx context.Context, id int64, title string) error {
	return d.playlists.Rename(ctx, id, title)
}

func (d *Database) ReparentPlaylist(ctx context.Context, id, newParentID int64) error {
	return d.playlists.Reparent(ctx, id, newParentID)
}

func (d *Database) RemovePlaylist(ctx context.Context, id int64) error {
	return d.playlists.Remove(ctx, id)
}

func (d *Database) PlaylistChildren(ctx context.Context, id int64) ([]int64, error) {
	return d.playlists.Children(ctx, id)
}

// PlaylistDescendants returns every playlist transitively nested under
// id, not just its immediate children.
func (d *Database) PlaylistDescendants(ctx context.Context, id int64) ([]int64, error) {
	return d.playlists.Descendants(ctx, id)
}

// PlaylistAncestors returns every playlist transitively above id.
func (d *Database) PlaylistAncestors(ctx context.Context, id int64) ([]int64, error) {
	return d.playlists.Ancestors(ctx, id)
}

// SetPlaylistPersisted flips id's isPersisted flag.
func (d *Database) SetPlaylistPersisted(ctx context.Context, id int64, persisted bool) error {
	return d.playlists.SetPersisted(ctx, id, persisted)
}

// AddTrackToPlaylist appends trackID to playlistID's track chain.
func (d *Database) AddTrackToPlaylist(ctx context.Context, playlistID, trackID int64, databaseUUID string) (entity.PlaylistEntity, error) {
	if err := d.requirePlaylistSupport("facade.AddTrackToPlaylist"); err != nil {
		return entity.PlaylistEntity{}, err
	}
	return d.playlistEntities.AddBack(ctx, playlistID, trackID, databaseUUID)
}

func (d *Database) RemovePlaylistEntity(ctx context.Context, entityID int64) error {
	return d.playlistEntities.Remove(ctx, entityID)
}

// PlaylistTracks returns playlistID's member track ids in order.
func (d *Database) PlaylistTracks(ctx context.Context, playlistID int64) ([]int64, error) {
	return d.playlistEntities.Tracks(ctx, playlistID)
}

// AddSmartlist creates a new rule-based auto-playlist (2.21.0+ only).
func (d *Database) AddSmartlist(ctx context.Context, title, rules string) (entity.Smartlist, error) {
	return d.smartlists.Add(ctx, title, rules)
}

func (d *Database) Smartlist(ctx context.Context, listUUID string) (entity.Smartlist, bool, error) {
	return d.smartlists.Get(ctx, listUUID)
}

func (d *Database) RemoveSmartlist(ctx context.Context, listUUID string) error {
	return d.smartlists.Remove(ctx, listUUID)
}

func (d *Database) AllSmartlistUUIDs(ctx context.Context) ([]string, error) {
	return d.smartlists.AllUUIDs(ctx)
}

// AddPack creates a new sync-unit marker row (v1 from 1.17.0, and 2.x/3.x).
func (d *Database) AddPack(ctx context.Context, packID, changeLogDatabaseUUID string) (entity.Pack, error) {
	return d.packs.Add(ctx, packID, changeLogDatabaseUUID)
}

func (d *Database) TouchPack(ctx context.Context, id int64) error { return d.packs.Touch(ctx, id) }
