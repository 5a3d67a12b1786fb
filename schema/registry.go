package schema

import "engineprime/enginerr"

// Registry maps every supported Variant to the CreatorValidator that
// can create and verify its catalogue. Built once and reused; the
// underlying maps hold no per-database state.
type Registry struct {
	byVariant map[Variant]CreatorValidator
}

// NewRegistry builds the registry covering every variant in All().
func NewRegistry() *Registry {
	reg := map[Variant]CreatorValidator{}
	for v, cv := range v1Registry() {
		reg[v] = cv
	}
	for v, cv := range v2v3Registry() {
		reg[v] = cv
	}
	return &Registry{byVariant: reg}
}

// Get returns the CreatorValidator for v, or an unsupported_operation
// error if v isn't in the closed set this registry knows how to build
// (spec.md §4.1: attempting to create an unsupported schema version is
// an error, not a best-effort approximation).
func (r *Registry) Get(v Variant) (CreatorValidator, error) {
	cv, ok := r.byVariant[v]
	if !ok {
		return CreatorValidator{}, enginerr.UnsupportedOperation("schema.Registry.Get",
			"no creator/validator registered for schema variant %s", v)
	}
	return cv, nil
}
