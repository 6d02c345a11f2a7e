// internal/nodeid/path.go
package nodeid

import (
	"regexp"
	"strings"
)

// bracketSuffix matches array-like suffixes such as `[cyt]` in a segment.
var bracketSuffix = regexp.MustCompile(`\[(\w+)\]`)

// Join builds the path of an entity with the given local id under parent.
// The root parent is the empty string, so Join(Root, "cell") is "/cell".
func Join(parent Path, id string) Path {
	return Path(string(parent) + Separator + id)
}

// Base returns the last segment of the path, or "" for the root.
func (p Path) Base() string {
	s := string(p)
	return s[strings.LastIndex(s, Separator)+1:]
}

// Parent returns the path with its last segment removed.
func (p Path) Parent() Path {
	s := string(p)
	i := strings.LastIndex(s, Separator)
	if i <= 0 {
		return Root
	}
	return Path(s[:i])
}

// Label derives the display label of the path: its last segment, with every
// bracketed suffix moved onto its own line. Labels never take part in identity.
func (p Path) Label() string {
	return bracketSuffix.ReplaceAllString(p.Base(), "\n$1")
}
