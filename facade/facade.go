// Package facade is the high-level entry point: a Database handle that
// opens or creates an Engine library directory and exposes Track/
// Crate/Playlist/AlbumArt operations without callers needing to touch
// session.Context or the entity package's table-level types directly.
package facade

import (
	"context"
	"time"

	"engineprime/directory"
	"engineprime/entity"
	"engineprime/schema"
	"engineprime/session"

	"github.com/patrickmn/go-cache"
)

const (
	pathCacheExpiration = 10 * time.Minute
	pathCacheCleanup    = 20 * time.Minute
)

// Database is the façade's root object — one per open or created
// library directory.
type Database struct {
	ctx *session.Context

	tracks           *entity.TrackTable
	performanceData  *entity.PerformanceDataTable
	albumArt         *entity.AlbumArtTable
	information      *entity.InformationTable
	crates           *entity.CrateTable
	playlists        *entity.PlaylistTable
	playlistEntities *entity.PlaylistEntityTable
	packs            *entity.PackTable
	smartlists       *entity.SmartlistTable

	pathCache *cache.Cache
}

func wrap(ctx *session.Context) *Database {
	return &Database{
		ctx:              ctx,
		tracks:           entity.NewTrackTable(ctx),
		performanceData:  entity.NewPerformanceDataTable(ctx),
		albumArt:         entity.NewAlbumArtTable(ctx),
		information:      entity.NewInformationTable(ctx),
		crates:           entity.NewCrateTable(ctx),
		playlists:        entity.NewPlaylistTable(ctx),
		playlistEntities: entity.NewPlaylistEntityTable(ctx),
		packs:            entity.NewPackTable(ctx),
		smartlists:       entity.NewSmartlistTable(ctx),
		pathCache:        cache.New(pathCacheExpiration, pathCacheCleanup),
	}
}

// Open opens an existing library at dir, auto-detecting its on-disk
// layout and schema variant.
func Open(ctx context.Context, dir string) (*Database, error) {
	sc, err := session.Open(ctx, dir)
	if err != nil {
		return nil, err
	}
	return wrap(sc), nil
}

// Create creates a brand-new library at dir for the given schema
// variant.
func Create(ctx context.Context, dir string, v schema.Variant) (*Database, error) {
	sc, err := session.Create(ctx, dir, v)
	if err != nil {
		return nil, err
	}
	return wrap(sc), nil
}

// CreateTemporary creates an in-memory library, for tests and
// scratch use.
func CreateTemporary(ctx context.Context, v schema.Variant) (*Database, error) {
	sc, err := session.CreateTemporary(ctx, v)
	if err != nil {
		return nil, err
	}
	return wrap(sc), nil
}

func (d *Database) Close() error { return d.ctx.Close() }

// Directory returns the library's root directory.
func (d *Database) Directory() string { return d.ctx.Dir }

// Layout returns the library's on-disk generation.
func (d *Database) Layout() directory.Layout { return d.ctx.Layout }

// Variant returns the library's detected or chosen schema variant.
func (d *Database) Variant() schema.Variant { return d.ctx.Variant }

// Information returns the library's singleton Information row.
func (d *Database) Information(ctx context.Context) (entity.Information, error) {
	return d.information.Get(ctx)
}

// Verify re-checks the live database's catalogue against its variant.
func (d *Database) Verify(ctx context.Context) error { return d.ctx.Verify(ctx) }
