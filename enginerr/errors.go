// Package enginerr defines the error taxonomy shared by every layer of
// an Engine DJ library: schema management, directory layout, and the
// entity tables built on top of them.
package enginerr

import (
	"errors"
	"fmt"
)

// Kind classifies what went wrong, independent of which entity or
// schema variant was involved.
type Kind int

const (
	// KindDatabaseNotFound means the library directory or one of its
	// required files does not exist, or the on-disk layout is
	// ambiguous (both or neither of the known layouts present).
	KindDatabaseNotFound Kind = iota
	// KindDatabaseInconsistency means an opened library's catalogue
	// does not match any known schema variant, a required singleton
	// row is missing or duplicated, or creation was attempted against
	// an already-populated target.
	KindDatabaseInconsistency
	// KindUnsupportedDatabase means the version triple belongs to a
	// recognised generation but not to a supported patch level.
	KindUnsupportedDatabase
	// KindUnsupportedOperation means the caller asked for a field or
	// operation that the library's schema variant does not carry.
	KindUnsupportedOperation
	// KindRowIDError means an entity operation was attempted with an
	// id that is absent where one is required, or present where NONE
	// is required (insert of an already-assigned id).
	KindRowIDError
	// KindInvalidName means a crate/playlist name was empty or
	// contained a semicolon.
	KindInvalidName
	// KindInvalidParent means a crate/playlist re-parent operation
	// would self-parent the node or introduce a cycle.
	KindInvalidParent
	// KindTrackInconsistency carries a track id alongside a message
	// describing a violated per-track invariant.
	KindTrackInconsistency
)

func (k Kind) String() string {
	switch k {
	case KindDatabaseNotFound:
		return "database_not_found"
	case KindDatabaseInconsistency:
		return "database_inconsistency"
	case KindUnsupportedDatabase:
		return "unsupported_database"
	case KindUnsupportedOperation:
		return "unsupported_operation"
	case KindRowIDError:
		return "row_id_error"
	case KindInvalidName:
		return "invalid_name"
	case KindInvalidParent:
		return "invalid_parent"
	case KindTrackInconsistency:
		return "track_database_inconsistency"
	default:
		return "unknown"
	}
}

// Error is the library's single error type. Op names the operation
// that failed (e.g. "schema.Verify", "entity.Track.Add"); Entity
// optionally names the entity a *_row_id_error/invalid_name/
// invalid_parent error belongs to, so callers can reconstruct the
// spec's per-entity error names (e.g. "track_row_id_error") without a
// type per entity.
type Error struct {
	Op      string
	Kind    Kind
	Entity  string
	TrackID int64
	Err     error
}

func (e *Error) Error() string {
	name := e.Kind.String()
	if e.Entity != "" {
		switch e.Kind {
		case KindRowIDError:
			name = e.Entity + "_row_id_error"
		case KindInvalidName:
			name = e.Entity + "_invalid_name"
		case KindInvalidParent:
			name = e.Entity + "_invalid_parent"
		}
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, name, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, name)
}

func (e *Error) Unwrap() error { return e.Err }

func newf(op string, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// NotFound builds a database_not_found error.
func NotFound(op, format string, args ...interface{}) *Error {
	return newf(op, KindDatabaseNotFound, format, args...)
}

// Inconsistency builds a database_inconsistency error.
func Inconsistency(op, format string, args ...interface{}) *Error {
	return newf(op, KindDatabaseInconsistency, format, args...)
}

// UnsupportedDatabase builds an unsupported_database error.
func UnsupportedDatabase(op, format string, args ...interface{}) *Error {
	return newf(op, KindUnsupportedDatabase, format, args...)
}

// UnsupportedOperation builds an unsupported_operation error.
func UnsupportedOperation(op, format string, args ...interface{}) *Error {
	return newf(op, KindUnsupportedOperation, format, args...)
}

// RowID builds a <entity>_row_id_error.
func RowID(op, entity, format string, args ...interface{}) *Error {
	e := newf(op, KindRowIDError, format, args...)
	e.Entity = entity
	return e
}

// InvalidName builds a <entity>_invalid_name error.
func InvalidName(op, entity, format string, args ...interface{}) *Error {
	e := newf(op, KindInvalidName, format, args...)
	e.Entity = entity
	return e
}

// InvalidParent builds a <entity>_invalid_parent error.
func InvalidParent(op, entity, format string, args ...interface{}) *Error {
	e := newf(op, KindInvalidParent, format, args...)
	e.Entity = entity
	return e
}

// TrackInconsistency builds a track_database_inconsistency error
// carrying the offending track id.
func TrackInconsistency(op string, trackID int64, format string, args ...interface{}) *Error {
	e := newf(op, KindTrackInconsistency, format, args...)
	e.TrackID = trackID
	return e
}

// Is reports whether err is (or wraps) an *Error of the given kind, so
// callers can write `enginerr.Is(err, enginerr.KindRowIDError)` instead
// of a type assertion.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
