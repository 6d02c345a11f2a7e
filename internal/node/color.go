package node

import "fmt"

// RGBA is an 8-bit-per-channel color with alpha.
type RGBA struct {
	R, G, B, A uint8
}

// Hex formats the color as a `#rrggbbaa` string understood by Graphviz.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
