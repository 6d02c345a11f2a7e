// internal/nodeid/types.go
package nodeid

// Separator delimits path segments.
const Separator = "/"

// Root is the parent path of every top-level compartment.
const Root Path = ""

// Path is the canonical, slash-separated identifier of a model entity.
// Two entities are the same node if and only if their paths are equal.
type Path string

// String returns the path in its canonical string form.
func (p Path) String() string {
	return string(p)
}

// IsRoot reports whether p is the empty root path.
func (p Path) IsRoot() bool {
	return p == Root
}
