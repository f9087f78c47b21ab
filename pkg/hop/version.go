package hop

import (
	"strconv"
	"strings"
)

// UnknownVersion is the sentinel reported when the broker version could not
// be established. It is treated as compatible with every capability.
const UnknownVersion = "0.0.0"

// Capability is a named feature gated on a minimum broker version.
type Capability struct {
	Name       string
	MinVersion string
}

// Capabilities negotiated against the reported broker version.
var (
	// CapabilityTopicPermissions covers the topic-permissions endpoints.
	CapabilityTopicPermissions = Capability{Name: "topic-permissions", MinVersion: "3.7.0"}
	// CapabilityVhostMetadata covers description/tags on vhost updates.
	CapabilityVhostMetadata = Capability{Name: "vhost-metadata", MinVersion: "3.8.0"}
	// CapabilityUserConnections covers per-user connection listing.
	CapabilityUserConnections = Capability{Name: "user-connections", MinVersion: "3.10.0"}
)

// CompareVersions compares two dotted version strings component-wise as
// integers, returning -1, 0, or 1. The first component containing a
// pre-release separator ("-" or "+") is truncated at the separator. When
// one version is a strict dotted prefix of the other, the longer one is
// greater.
func CompareVersions(a, b string) (int, error) {
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")

	limit := len(aParts)
	if len(bParts) < limit {
		limit = len(bParts)
	}

	for i := 0; i < limit; i++ {
		aNum, aDone, err := parseVersionPart(aParts[i])
		if err != nil {
			return 0, err
		}

		bNum, bDone, err := parseVersionPart(bParts[i])
		if err != nil {
			return 0, err
		}

		if aNum != bNum {
			if aNum < bNum {
				return -1, nil
			}

			return 1, nil
		}

		// A pre-release suffix on either side ends the comparable
		// portion; equal so far means equal.
		if aDone || bDone {
			return 0, nil
		}
	}

	switch {
	case len(aParts) < len(bParts):
		return -1, nil
	case len(aParts) > len(bParts):
		return 1, nil
	default:
		return 0, nil
	}
}

// parseVersionPart parses one dotted component, truncating it at the first
// pre-release separator. done reports whether a separator was found.
func parseVersionPart(part string) (num int, done bool, err error) {
	if idx := strings.IndexAny(part, "-+"); idx >= 0 {
		part = part[:idx]
		done = true
	}

	num, err = strconv.Atoi(part)
	if err != nil {
		return 0, false, err
	}

	return num, done, nil
}

// AtLeastVersion reports whether current satisfies minimum. The
// UnknownVersion sentinel is always compatible. An unparseable current
// version yields false rather than an error; the caller then skips the
// gated call or field.
func AtLeastVersion(current, minimum string) bool {
	if current == UnknownVersion {
		return true
	}

	cmp, err := CompareVersions(current, minimum)
	if err != nil {
		return false
	}

	return cmp >= 0
}

// SupportsCapability reports whether a broker at the given version supports
// the capability.
func SupportsCapability(version string, capability Capability) bool {
	return AtLeastVersion(version, capability.MinVersion)
}
