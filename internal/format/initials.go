// Package format provides small display helpers shared by the views:
// name initials for avatars, relative timestamps, status colors, and
// width-aware truncation.
package format

import (
	"strings"

	"github.com/rivo/uniseg"
)

// MaxInitials is the maximum number of characters Initials returns.
const MaxInitials = 2

// Initials returns the upper-cased first character of the first two words of
// fullName, e.g. "John Middle Doe" -> "JM". Blank input yields "".
func Initials(fullName string) string {
	tokens := strings.Fields(fullName)
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, tok := range tokens[:min(len(tokens), MaxInitials)] {
		sb.WriteString(firstGrapheme(tok))
	}
	return capGraphemes(strings.ToUpper(sb.String()), MaxInitials)
}

func firstGrapheme(s string) string {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster
}

// capGraphemes truncates s to at most n user-perceived characters.
func capGraphemes(s string, n int) string {
	var sb strings.Builder
	state := -1
	for i := 0; i < n && s != ""; i++ {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		sb.WriteString(cluster)
	}
	return sb.String()
}
