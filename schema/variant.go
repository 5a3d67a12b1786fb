// Package schema models the closed set of Engine DJ on-disk schema
// variants: their table/view/index catalogues, the DDL that creates
// them, and the verification that checks an opened database against
// the catalogue it claims to be.
package schema

import (
	"strconv"

	"engineprime/enginerr"
)

// Generation selects the on-disk layout a variant belongs to: legacy
// two-file (music.db/m.db + perfdata.db/p.db, attached under the
// music/perfdata schema names) for major version 1, or the unified
// single m.db file for major version 2 or 3.
type Generation int

const (
	GenerationV1 Generation = iota
	GenerationV2
)

// Variant identifies one schema revision by its version triple plus an
// optional suffix, used only to disambiguate the two (1,18,0) layouts
// that share a version triple but differ in column affinity.
type Variant struct {
	Major, Minor, Patch int
	Suffix              string // "", "desktop", or "os" — only 1.18.0 uses this
}

func (v Variant) Generation() Generation {
	if v.Major == 1 {
		return GenerationV1
	}
	return GenerationV2
}

func (v Variant) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	if v.Suffix != "" {
		s += "-" + v.Suffix
	}
	return s
}

// The closed enumeration of supported variants, spec.md §4.1.
var (
	V1_6_0        = Variant{1, 6, 0, ""}
	V1_7_1        = Variant{1, 7, 1, ""}
	V1_9_1        = Variant{1, 9, 1, ""}
	V1_11_1       = Variant{1, 11, 1, ""}
	V1_13_0       = Variant{1, 13, 0, ""}
	V1_13_1       = Variant{1, 13, 1, ""}
	V1_13_2       = Variant{1, 13, 2, ""}
	V1_15_0       = Variant{1, 15, 0, ""}
	V1_17_0       = Variant{1, 17, 0, ""}
	V1_18_0Desktop = Variant{1, 18, 0, "desktop"}
	V1_18_0OS      = Variant{1, 18, 0, "os"}
	V2_18_0       = Variant{2, 18, 0, ""}
	V2_20_1       = Variant{2, 20, 1, ""}
	V2_20_2       = Variant{2, 20, 2, ""}
	V2_20_3       = Variant{2, 20, 3, ""}
	V2_21_0       = Variant{2, 21, 0, ""}
	V2_21_1       = Variant{2, 21, 1, ""}
	V2_21_2       = Variant{2, 21, 2, ""}
	V3_0_0        = Variant{3, 0, 0, ""}
	V3_0_1        = Variant{3, 0, 1, ""}
	V3_1_0        = Variant{3, 1, 0, ""}
)

// All lists every supported variant in ascending release order.
func All() []Variant {
	return []Variant{
		V1_6_0, V1_7_1, V1_9_1, V1_11_1, V1_13_0, V1_13_1, V1_13_2, V1_15_0,
		V1_17_0, V1_18_0Desktop, V1_18_0OS,
		V2_18_0, V2_20_1, V2_20_2, V2_20_3, V2_21_0, V2_21_1, V2_21_2,
		V3_0_0, V3_0_1, V3_1_0,
	}
}

// Lookup finds the variant matching a (major, minor, patch) triple.
// For (1, 18, 0), which is ambiguous from the triple alone, it returns
// the desktop variant; callers that need the split must disambiguate
// via the detector's probe and call LookupSuffixed instead.
func Lookup(major, minor, patch int) (Variant, error) {
	for _, v := range All() {
		if v.Major == major && v.Minor == minor && v.Patch == patch {
			return v, nil
		}
	}
	return Variant{}, enginerr.UnsupportedDatabase("schema.Lookup",
		"no known schema variant for version %d.%d.%d", major, minor, patch)
}

// LookupSuffixed finds the (1,18,0) variant matching the given suffix,
// or falls back to plain Lookup for every other triple.
func LookupSuffixed(major, minor, patch int, suffix string) (Variant, error) {
	if major == 1 && minor == 18 && patch == 0 {
		if suffix == "os" {
			return V1_18_0OS, nil
		}
		return V1_18_0Desktop, nil
	}
	return Lookup(major, minor, patch)
}
