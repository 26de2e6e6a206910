// Package version provides the tastehub release string and recipe catalog
// format version parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Release is the tastehub release. Overridden at build time with
// -ldflags "-X github.com/tastehub/tastehub-go/pkg/version.Release=v1.2.0".
var Release = "dev"

// CatalogFormat is the recipe catalog format written and read by this build.
const CatalogFormat = "1.0"

// FormatVersion represents a parsed "major.minor" format version.
type FormatVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (FormatVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return FormatVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return FormatVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v FormatVersion) Compatible(other FormatVersion) bool {
	return v.Major == other.Major
}

// CheckCatalog returns an error unless s names a catalog format this build
// can read. An empty string is treated as CatalogFormat.
func CheckCatalog(s string) error {
	if s == "" {
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	current, _ := Parse(CatalogFormat)
	if !current.Compatible(v) {
		return fmt.Errorf("unsupported catalog format %s (this build reads %d.x)", v, current.Major)
	}
	return nil
}
