package lwjgl

import "strings"

// LWJGL major versions with incompatible file layouts.
const (
	Version2 = 2
	Version3 = 3
)

// DiscoverVersion decides which LWJGL major version a Minecraft version
// string requires. Snapshot 17w43b is the first to use LWJGL 3; for releases
// the cutover is 1.13. Unparseable strings (e.g. "Legacy Minecraft") have an
// empty number sequence and resolve to LWJGL 2.
func DiscoverVersion(versionString string) int {
	parsed := extractInts(versionString)

	if strings.Contains(versionString, "w") {
		if atLeast(parsed, 17, 43) {
			return Version3
		}
		return Version2
	}
	if atLeast(parsed, 1, 13) {
		return Version3
	}
	return Version2
}

// extractInts returns every maximal run of decimal digits as an integer, in
// order of appearance.
func extractInts(s string) []int {
	var parsed []int
	current := 0
	inRun := false
	for _, char := range s {
		if char >= '0' && char <= '9' {
			current = current*10 + int(char-'0')
			inRun = true
		} else if inRun {
			parsed = append(parsed, current)
			current = 0
			inRun = false
		}
	}
	if inRun {
		parsed = append(parsed, current)
	}
	return parsed
}

// atLeast reports whether parsed compares lexicographically >= (hi, lo).
func atLeast(parsed []int, hi, lo int) bool {
	if len(parsed) == 0 {
		return false
	}
	if parsed[0] != hi {
		return parsed[0] > hi
	}
	if len(parsed) == 1 {
		return false
	}
	return parsed[1] >= lo
}
