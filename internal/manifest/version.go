package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// WrittenByNewerTool returns true if the manifest's tool version is newer
// than the running binary's version. Dev builds ("dev", "unknown") are not
// valid semver and surface as an error the caller may ignore.
func WrittenByNewerTool(manifestVersion, currentVersion string) (bool, error) {
	cmp, err := CompareVersions(manifestVersion, currentVersion)
	if err != nil {
		return false, err
	}
	return cmp == 1, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
