// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"strings"
)

// isValidSegmentName checks for undesirable but technically valid names.
func isValidSegmentName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return true
}

// Parse validates the canonical string form of a path and returns it.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return Root, fmt.Errorf("path cannot be empty")
	}
	if !strings.HasPrefix(raw, Separator) {
		return Root, fmt.Errorf("path %q must start with %q", raw, Separator)
	}

	for _, segment := range strings.Split(raw[1:], Separator) {
		if segment == "" {
			return Root, fmt.Errorf("path %q contains an empty segment", raw)
		}
		if !isValidSegmentName(segment) {
			return Root, fmt.Errorf("invalid segment name: %q", segment)
		}
	}

	return Path(raw), nil
}
