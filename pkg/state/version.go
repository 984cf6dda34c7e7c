package state

import (
	"fmt"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// StateVersionOf derives the persisted-data compatibility marker from a
// semantic version: its major component.
func StateVersionOf(version string) (string, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return "", fmt.Errorf("state: parse version %q: %w", version, err)
	}
	return strconv.FormatUint(v.Major(), 10), nil
}
