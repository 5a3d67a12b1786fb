// Package directory locates and opens the SQLite file(s) that make up
// an Engine library on disk, and distinguishes the two on-disk layouts
// (legacy two-file music/perfdata, vs the unified Database2/m.db file).
package directory

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"engineprime/enginerr"
)

// Layout selects which on-disk generation a library uses.
type Layout int

const (
	// LayoutV1 is the legacy two-file layout: m.db/p.db directly under
	// the library directory, attached as the music/perfdata schemas.
	LayoutV1 Layout = iota
	// LayoutV2 is the unified layout: a single m.db under Database2/.
	LayoutV2
)

func (l Layout) String() string {
	if l == LayoutV1 {
		return "v1"
	}
	return "v2"
}

const (
	musicFile    = "m.db"
	perfdataFile = "p.db"
	v2Subdir     = "Database2"
)

func v1MusicPath(dir string) string    { return filepath.Join(dir, musicFile) }
func v1PerfdataPath(dir string) string { return filepath.Join(dir, perfdataFile) }
func v2Path(dir string) string         { return filepath.Join(dir, v2Subdir, musicFile) }

// Exists reports whether a known library lives at dir — in practice,
// whether the unified layout's Database2/m.db file is present.
func Exists(dir string) bool {
	_, err := os.Stat(v2Path(dir))
	return err == nil
}

// Detect returns which layout is present at dir. Exactly one of the
// two candidate files must exist; both present or neither present is
// an ambiguous, unrecoverable state.
func Detect(dir string) (Layout, error) {
	const op = "directory.Detect"
	_, v1Err := os.Stat(v1MusicPath(dir))
	hasV1 := v1Err == nil
	_, v2Err := os.Stat(v2Path(dir))
	hasV2 := v2Err == nil

	switch {
	case hasV1 && hasV2:
		return 0, enginerr.NotFound(op, "both legacy and unified database files present under %s; not supposed to happen", dir)
	case hasV1:
		return LayoutV1, nil
	case hasV2:
		return LayoutV2, nil
	default:
		return 0, enginerr.NotFound(op, "no known library layout found under %s", dir)
	}
}

// Handle is the live connection plus the directory and layout it was
// opened from.
type Handle struct {
	Dir    string
	Layout Layout
	DB     *sql.DB
}

// Create creates directories as needed and opens a fresh connection
// for layout at dir. For v1, it opens an in-memory database and
// attaches m.db/p.db as the music/perfdata schemas. For v2, it opens
// Database2/m.db directly. Fails with database_inconsistency if the
// target file(s) already exist.
func Create(ctx context.Context, dir string, layout Layout) (*Handle, error) {
	const op = "directory.Create"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, enginerr.Inconsistency(op, "creating library directory %s: %v", dir, err)
	}

	switch layout {
	case LayoutV1:
		musicPath, perfPath := v1MusicPath(dir), v1PerfdataPath(dir)
		if fileExists(musicPath) || fileExists(perfPath) {
			return nil, enginerr.Inconsistency(op, "database files already exist under %s", dir)
		}
		db, err := sql.Open("sqlite", ":memory:")
		if err != nil {
			return nil, enginerr.Inconsistency(op, "opening in-memory database: %v", err)
		}
		// ATTACH is per-connection state; database/sql's pool can open
		// more than one underlying connection to the same *sql.DB, and
		// any connection besides the one ATTACH ran on wouldn't see the
		// music/perfdata schemas. Pin the pool to a single connection.
		db.SetMaxOpenConns(1)
		if err := attachV1(ctx, db, musicPath, perfPath); err != nil {
			db.Close()
			return nil, err
		}
		if err := enableForeignKeys(ctx, db); err != nil {
			db.Close()
			return nil, enginerr.Inconsistency(op, "enabling foreign keys: %v", err)
		}
		return &Handle{Dir: dir, Layout: layout, DB: db}, nil

	case LayoutV2:
		path := v2Path(dir)
		if fileExists(path) {
			return nil, enginerr.Inconsistency(op, "database file already exists at %s", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, enginerr.Inconsistency(op, "creating %s: %v", v2Subdir, err)
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, enginerr.Inconsistency(op, "opening %s: %v", path, err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, enginerr.Inconsistency(op, "pinging %s: %v", path, err)
		}
		if err := enableForeignKeys(ctx, db); err != nil {
			db.Close()
			return nil, enginerr.Inconsistency(op, "enabling foreign keys: %v", err)
		}
		return &Handle{Dir: dir, Layout: layout, DB: db}, nil

	default:
		return nil, enginerr.Inconsistency(op, "unknown layout %v", layout)
	}
}

// Load opens an existing library at dir under the given layout, or
// fails with database_not_found if the required file is missing.
func Load(ctx context.Context, dir string, layout Layout) (*Handle, error) {
	const op = "directory.Load"

	switch layout {
	case LayoutV1:
		musicPath, perfPath := v1MusicPath(dir), v1PerfdataPath(dir)
		if !fileExists(musicPath) || !fileExists(perfPath) {
			return nil, enginerr.NotFound(op, "missing m.db/p.db under %s", dir)
		}
		db, err := sql.Open("sqlite", ":memory:")
		if err != nil {
			return nil, enginerr.Inconsistency(op, "opening in-memory database: %v", err)
		}
		db.SetMaxOpenConns(1)
		if err := attachV1(ctx, db, musicPath, perfPath); err != nil {
			db.Close()
			return nil, err
		}
		if err := enableForeignKeys(ctx, db); err != nil {
			db.Close()
			return nil, enginerr.Inconsistency(op, "enabling foreign keys: %v", err)
		}
		return &Handle{Dir: dir, Layout: layout, DB: db}, nil

	case LayoutV2:
		path := v2Path(dir)
		if !fileExists(path) {
			return nil, enginerr.NotFound(op, "missing %s", path)
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, enginerr.Inconsistency(op, "opening %s: %v", path, err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, enginerr.NotFound(op, "pinging %s: %v", path, err)
		}
		if err := enableForeignKeys(ctx, db); err != nil {
			db.Close()
			return nil, enginerr.Inconsistency(op, "enabling foreign keys: %v", err)
		}
		return &Handle{Dir: dir, Layout: layout, DB: db}, nil

	default:
		return nil, enginerr.Inconsistency(op, "unknown layout %v", layout)
	}
}

// CreateTemporary returns an in-memory connection for tests under the
// given layout. The reported directory is the literal string
// ":memory:", matching the spec's test-support contract.
func CreateTemporary(ctx context.Context, layout Layout) (*Handle, error) {
	const op = "directory.CreateTemporary"
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, enginerr.Inconsistency(op, "opening in-memory database: %v", err)
	}
	// A private, non-shared-cache :memory: database only exists on the
	// connection that created it; pin the pool to one connection so a
	// second pooled connection doesn't see an empty database.
	db.SetMaxOpenConns(1)
	if layout == LayoutV1 {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("ATTACH DATABASE ':memory:' AS %s", musicSchema)); err != nil {
			db.Close()
			return nil, enginerr.Inconsistency(op, "attaching music schema: %v", err)
		}
		if _, err := db.ExecContext(ctx, fmt.Sprintf("ATTACH DATABASE ':memory:' AS %s", perfdataSchema)); err != nil {
			db.Close()
			return nil, enginerr.Inconsistency(op, "attaching perfdata schema: %v", err)
		}
	}
	if err := enableForeignKeys(ctx, db); err != nil {
		db.Close()
		return nil, enginerr.Inconsistency(op, "enabling foreign keys: %v", err)
	}
	return &Handle{Dir: ":memory:", Layout: layout, DB: db}, nil
}

const (
	musicSchema    = "music"
	perfdataSchema = "perfdata"
)

// attachV1 opens db (expected to already be the in-memory base
// connection) and attaches musicPath/perfPath as the music/perfdata
// schemas, matching the vendor's own in-memory-plus-ATTACH layout.
func attachV1(ctx context.Context, db *sql.DB, musicPath, perfPath string) error {
	const op = "directory.attachV1"
	if _, err := db.ExecContext(ctx, fmt.Sprintf("ATTACH DATABASE '%s' AS %s", musicPath, musicSchema)); err != nil {
		return enginerr.Inconsistency(op, "attaching %s as music: %v", musicPath, err)
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("ATTACH DATABASE '%s' AS %s", perfPath, perfdataSchema)); err != nil {
		return enginerr.Inconsistency(op, "attaching %s as perfdata: %v", perfPath, err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// enableForeignKeys turns on FK enforcement, off by default per
// connection in SQLite. Entity tables rely on ON DELETE CASCADE for
// ListHierarchy/ListParentList/ListTrackList and the 3.x
// PerformanceData child table, so every opened connection needs this.
// The pool is pinned to one connection, so the connection that ran the
// PRAGMA is the only one db uses.
func enableForeignKeys(ctx context.Context, db *sql.DB) error {
	db.SetMaxOpenConns(1)
	_, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON")
	return err
}

// Close releases the underlying connection.
func (h *Handle) Close() error { return h.DB.Close() }
