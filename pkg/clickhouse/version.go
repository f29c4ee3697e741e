package clickhouse

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Matches 25.7, 25.7.1 and 25.7.1.3 at the start of a version string.
var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?(?:\.\d+)?$`)

// VersionInfo is a parsed ClickHouse version.
type VersionInfo struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 depending on whether v is older than, equal to
// or newer than other. Raw is ignored.
func (v VersionInfo) Compare(other VersionInfo) int {
	for _, d := range [...]int{v.Major - other.Major, v.Minor - other.Minor, v.Patch - other.Patch} {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
	}
	return 0
}

// IsAtLeast reports whether v is major.minor or newer.
func (v VersionInfo) IsAtLeast(major, minor int) bool {
	return v.Compare(VersionInfo{Major: major, Minor: minor}) >= 0
}

// GetVersion asks the server for its version.
func (c *Client) GetVersion(ctx context.Context) (*VersionInfo, error) {
	var raw string
	if err := c.conn.QueryRow(ctx, "SELECT version()").Scan(&raw); err != nil {
		return nil, errors.Wrap(err, "failed to query ClickHouse version")
	}

	return ParseVersion(raw)
}

// ParseVersion parses strings such as "25.7.1.3", "22.8.2.11-testing" or
// "21.10.3.9 (official build)".
func ParseVersion(raw string) (*VersionInfo, error) {
	cleaned := strings.TrimSpace(raw)
	if i := strings.IndexAny(cleaned, " -"); i != -1 {
		cleaned = cleaned[:i]
	}

	matches := versionRegex.FindStringSubmatch(cleaned)
	if matches == nil {
		return nil, errors.Errorf("invalid ClickHouse version: %q", raw)
	}

	// The regex only admits digits; overflow is the only possible failure.
	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid major version in %q", raw)
	}
	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid minor version in %q", raw)
	}
	patch := 0
	if matches[3] != "" {
		if patch, err = strconv.Atoi(matches[3]); err != nil {
			return nil, errors.Wrapf(err, "invalid patch version in %q", raw)
		}
	}

	return &VersionInfo{Major: major, Minor: minor, Patch: patch, Raw: raw}, nil
}
