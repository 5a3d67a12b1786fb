package schema

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"engineprime/enginerr"
)

// seedFunc inserts a variant's required singleton/default rows (the
// Information row with a fresh UUID and version triple, plus default
// AlbumArt/Historylist/Preparelist rows) inside the same transaction
// that ran the DDL.
type seedFunc func(ctx context.Context, tx *sql.Tx, v Variant, libraryUUID string) error

// CreatorValidator emits the DDL for one schema variant and verifies
// an opened database against that variant's catalogue. Per spec.md's
// design rationale, variants are a refinement lattice: a later variant
// is built by cloning an earlier one's table set and patching only the
// tables whose declared schema changed, rather than restating every
// CREATE statement from scratch.
type CreatorValidator struct {
	variant    Variant
	statements []string
	catalogue  Catalogue
	seed       seedFunc
}

func (cv CreatorValidator) Variant() Variant     { return cv.variant }
func (cv CreatorValidator) Catalogue() Catalogue { return cv.catalogue }

// Create executes every DDL statement and seed insert in order inside
// a single transaction.
func (cv CreatorValidator) Create(ctx context.Context, db *sql.DB) error {
	const op = "schema.CreatorValidator.Create"
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return enginerr.Inconsistency(op, "beginning transaction: %v", err)
	}
	for _, stmt := range cv.statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return enginerr.Inconsistency(op, "executing DDL for %s: %v\n%s", cv.variant, err, stmt)
		}
	}
	if cv.seed != nil {
		if err := cv.seed(ctx, tx, cv.variant, uuid.NewString()); err != nil {
			tx.Rollback()
			return enginerr.Inconsistency(op, "seeding %s: %v", cv.variant, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return enginerr.Inconsistency(op, "committing schema creation for %s: %v", cv.variant, err)
	}
	return nil
}

// Verify checks an already-open database's catalogue against the
// variant's expected tables/views/columns/indexes.
func (cv CreatorValidator) Verify(ctx context.Context, db *sql.DB) error {
	if err := cv.catalogue.Verify(ctx, db); err != nil {
		return err
	}
	return nil
}
