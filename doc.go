/*
Package colormath provides small, allocation free color science routines: RGB <-> HSV,
CIE xy <-> XYZ, correlated color temperature and tint from chromaticity (Robertson's
method) and back, and Bradford chromatic adaptation between white points.

All functions operate on single values and have no side effects, so they are safe to
call concurrently. Degenerate inputs (zero denominators, chromaticities outside the
isotherm table) are not rejected, they produce non-finite or extrapolated values. Use the
Validate* helpers when that matters to the caller.
*/
package colormath

import "fmt"

type LibraryVersion struct {
	Major, Minor, Patch uint
}

func (v LibraryVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v LibraryVersion) Equal(o LibraryVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v LibraryVersion) After(o LibraryVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v LibraryVersion) Before(o LibraryVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = LibraryVersion{1, 0, 0}
