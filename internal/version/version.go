// Package version carries build metadata stamped via -ldflags.
package version

import "strings"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns compact human-readable version info for startup logs.
func String() string {
	parts := make([]string, 0, 3)
	if v := strings.TrimSpace(Version); v != "" {
		parts = append(parts, v)
	}
	if c := strings.TrimSpace(Commit); c != "" {
		parts = append(parts, "commit="+c)
	}
	if d := strings.TrimSpace(Date); d != "" {
		parts = append(parts, "date="+d)
	}
	return strings.Join(parts, " ")
}
