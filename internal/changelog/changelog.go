// Package changelog parses the release notes embedded in the binary and
// picks the entries a user has not seen yet.
package changelog

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

//go:embed CHANGELOG.md
var Content string

// Entry is one release's notes.
type Entry struct {
	Version string
	Date    string
	Changes []string
}

// versionRegex matches headers like "## v0.3.0 (2026-02-09)" or "## 0.3.0"
var versionRegex = regexp.MustCompile(`^##\s+v?(\d+\.\d+\.\d+)(?:\s+\(([^)]+)\))?`)

// Parse extracts entries from markdown, newest first as written.
func Parse(content string) []Entry {
	var entries []Entry
	var current *Entry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if matches := versionRegex.FindStringSubmatch(line); matches != nil {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Entry{
				Version: matches[1],
				Date:    matches[2],
				Changes: []string{},
			}
			continue
		}

		if current != nil && strings.HasPrefix(line, "- ") {
			current.Changes = append(current.Changes, strings.TrimPrefix(line, "- "))
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// Since returns the entries newer than lastSeen, keeping their order.
// An empty lastSeen returns everything.
func Since(lastSeen string, entries []Entry) []Entry {
	if lastSeen == "" {
		return entries
	}

	var result []Entry
	for _, entry := range entries {
		if CompareVersions(entry.Version, lastSeen) > 0 {
			result = append(result, entry)
		}
	}
	return result
}

// Between returns the entries newer than lastSeen and no newer than current.
func Between(lastSeen, current string, entries []Entry) []Entry {
	var result []Entry
	for _, entry := range Since(lastSeen, entries) {
		if CompareVersions(entry.Version, current) <= 0 {
			result = append(result, entry)
		}
	}
	return result
}

// CompareVersions compares two semantic versions, ignoring pre-release and
// build suffixes. Returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareVersions(a, b string) int {
	aParts := parseVersion(a)
	bParts := parseVersion(b)

	for i := range 3 {
		if aParts[i] < bParts[i] {
			return -1
		}
		if aParts[i] > bParts[i] {
			return 1
		}
	}
	return 0
}

// parseVersion extracts [major, minor, patch]. Unparseable parts count as 0.
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}

	var result [3]int
	for i, part := range strings.SplitN(v, ".", 3) {
		result[i], _ = strconv.Atoi(part)
	}
	return result
}
