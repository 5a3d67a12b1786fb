// Package session holds the Library Context: the value shared by
// reference across every entity table, binding together the library
// directory, its on-disk layout, the detected or chosen schema
// variant, and the live SQLite handle.
package session

import (
	"context"
	"database/sql"

	"engineprime/directory"
	"engineprime/enginerr"
	"engineprime/schema"
)

// Context is owned by the top-level library object returned from
// Open/Create; its lifetime equals the session's. Entity tables hold
// a non-owning reference to it.
type Context struct {
	Dir     string
	Layout  directory.Layout
	Variant schema.Variant
	DB      *sql.DB

	registry *schema.Registry
}

// infoSchema returns the schema name the Information table lives
// under for this context's layout: "music" for v1, "" (default) for
// v2/v3.
func (c *Context) infoSchema() string {
	if c.Layout == directory.LayoutV1 {
		return "music"
	}
	return ""
}

// Open loads an existing library at dir, auto-detecting its layout
// and schema variant.
func Open(ctx context.Context, dir string) (*Context, error) {
	const op = "session.Open"

	layout, err := directory.Detect(dir)
	if err != nil {
		return nil, err
	}
	h, err := directory.Load(ctx, dir, layout)
	if err != nil {
		return nil, err
	}

	infoSchema := ""
	if layout == directory.LayoutV1 {
		infoSchema = "music"
	}
	v, err := schema.Detect(ctx, h.DB, infoSchema)
	if err != nil {
		h.Close()
		return nil, err
	}

	reg := schema.NewRegistry()
	cv, err := reg.Get(v)
	if err != nil {
		h.Close()
		return nil, err
	}
	if err := cv.Verify(ctx, h.DB); err != nil {
		h.Close()
		return nil, enginerr.Inconsistency(op, "opened database at %s does not match detected variant %s: %v", dir, v, err)
	}

	return &Context{Dir: dir, Layout: layout, Variant: v, DB: h.DB, registry: reg}, nil
}

// Create creates a brand-new library at dir for the given variant.
func Create(ctx context.Context, dir string, v schema.Variant) (*Context, error) {
	const op = "session.Create"

	reg := schema.NewRegistry()
	cv, err := reg.Get(v)
	if err != nil {
		return nil, err
	}

	layout := directory.LayoutV2
	if v.Generation() == schema.GenerationV1 {
		layout = directory.LayoutV1
	}

	h, err := directory.Create(ctx, dir, layout)
	if err != nil {
		return nil, err
	}
	if err := cv.Create(ctx, h.DB); err != nil {
		h.Close()
		return nil, enginerr.Inconsistency(op, "creating schema %s at %s: %v", v, dir, err)
	}

	return &Context{Dir: dir, Layout: layout, Variant: v, DB: h.DB, registry: reg}, nil
}

// CreateTemporary creates an in-memory library for the given variant,
// for tests.
func CreateTemporary(ctx context.Context, v schema.Variant) (*Context, error) {
	const op = "session.CreateTemporary"

	reg := schema.NewRegistry()
	cv, err := reg.Get(v)
	if err != nil {
		return nil, err
	}

	layout := directory.LayoutV2
	if v.Generation() == schema.GenerationV1 {
		layout = directory.LayoutV1
	}

	h, err := directory.CreateTemporary(ctx, layout)
	if err != nil {
		return nil, err
	}
	if err := cv.Create(ctx, h.DB); err != nil {
		h.Close()
		return nil, enginerr.Inconsistency(op, "creating temporary schema %s: %v", v, err)
	}

	return &Context{Dir: h.Dir, Layout: layout, Variant: v, DB: h.DB, registry: reg}, nil
}

// Verify re-checks the live database's catalogue against the
// context's variant.
func (c *Context) Verify(ctx context.Context) error {
	cv, err := c.registry.Get(c.Variant)
	if err != nil {
		return err
	}
	return cv.Verify(ctx, c.DB)
}

// Close releases the underlying connection.
func (c *Context) Close() error { return c.DB.Close() }

// MusicSchema returns the schema name that music-generation tables
// (Track, Information, etc.) live under: "music" for v1, "" for v2/v3.
func (c *Context) MusicSchema() string { return c.infoSchema() }

// PerfdataSchema returns the schema name performance-data tables live
// under: "perfdata" for v1, "" for v2/v3.
func (c *Context) PerfdataSchema() string {
	if c.Layout == directory.LayoutV1 {
		return "perfdata"
	}
	return ""
}
