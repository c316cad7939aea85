package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
)

// CheckScheduleCompatibility checks whether a schedule config written against
// one library version can be loaded by another. Returns nil if compatible.
//
// Compatibility rules:
//   - If either version is "main" (development build) or empty, the check is
//     skipped
//   - Major versions must match exactly
//   - Minor versions must match exactly
//   - Patch versions can differ (e.g., a 1.2.0 schedule loads on 1.2.5)
func CheckScheduleCompatibility(libraryVersion, scheduleVersion string) error {
	libraryVersion = strings.TrimPrefix(libraryVersion, "v")
	scheduleVersion = strings.TrimPrefix(scheduleVersion, "v")

	if libraryVersion == "main" || libraryVersion == "" ||
		scheduleVersion == "main" || scheduleVersion == "" {
		return nil
	}

	librarySemver, err := semver.NewVersion(libraryVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err,
			"invalid library version %q", libraryVersion)
	}

	scheduleSemver, err := semver.NewVersion(scheduleVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err,
			"invalid schedule version %q", scheduleVersion)
	}

	if librarySemver.Major() != scheduleSemver.Major() {
		return errors.Newf(errors.ErrCodeInvalidConfiguration,
			"major version mismatch: library is %d.x.x but schedule targets %d.x.x",
			librarySemver.Major(), scheduleSemver.Major())
	}

	if librarySemver.Minor() != scheduleSemver.Minor() {
		return errors.Newf(errors.ErrCodeInvalidConfiguration,
			"minor version mismatch: library is %d.%d.x but schedule targets %d.%d.x",
			librarySemver.Major(), librarySemver.Minor(),
			scheduleSemver.Major(), scheduleSemver.Minor())
	}

	return nil
}
