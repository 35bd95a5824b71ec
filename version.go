// Package mischief is a notepad that misbehaves on purpose. The document
// model lives in buffer, the mutations in chaos, the timers in schedule, the
// floating bubbles in artifact and the Bubble Tea component in editor.
package mischief

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Release: major.minor.patch, optional pre-release and build metadata.
var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the release version without a leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner is the one-line program identification printed by the host.
func Banner() string {
	v := Version()
	if !IsRelease(v) {
		return "mischief (dev)"
	}
	return "mischief v" + v
}

// IsRelease reports whether v is a SemVer 2.0.0 release string.
func IsRelease(v string) bool {
	return releaseRE.MatchString(strings.TrimSpace(v))
}
