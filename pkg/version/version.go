// Package version provides the application version value used in the
// settext document preamble.
//
// Every document starts with an mse_version block declaring the version
// of the application that wrote it. Readers compare it against the
// running application's version to detect files from the future.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an application version number.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a dotted version string such as "2.0.1".
//
// Short forms ("2", "2.0") are accepted; missing components are zero.
// Returns an error if any present component is not a non-negative
// integer.
func Parse(s string) (Version, error) {
	var v Version
	parts := strings.SplitN(strings.TrimSpace(s), ".", 4)
	dst := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		if i >= len(dst) {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q", s)
		}
		*dst[i] = n
	}
	return v, nil
}

// String returns the dotted form, always with three components.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 depending on whether v is older than,
// equal to, or newer than other.
func (v Version) Compare(other Version) int {
	pairs := [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// Less reports whether v is older than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// IsZero reports whether v is the zero version.
func (v Version) IsZero() bool {
	return v == Version{}
}
