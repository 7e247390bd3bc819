// Package export renders layout snapshots — scope frames and element boxes,
// with the focused element highlighted — as SVG or PNG. Snapshots go into
// design docs and bug reports; nothing in the engine depends on them.
package export

import (
	"github.com/Dicklesworthstone/navkit/pkg/focus"
	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

// Scale is how many output pixels one layout unit maps to.
const Scale = 12

// Padding is the margin around the drawn layout, in pixels.
const Padding = 24

// frame converts the engine's north-positive coordinates into the y-down
// pixel space both backends draw in.
type frame struct {
	min    geom.Point
	max    geom.Point
	width  int
	height int
}

func newFrame(g *focus.Graph) frame {
	bounds, ok := g.Bounds(g.Root())
	if !ok {
		return frame{width: 2 * Padding, height: 2 * Padding}
	}
	f := frame{min: bounds.Min(), max: bounds.Max()}
	f.width = int((f.max.X-f.min.X)*Scale) + 2*Padding
	f.height = int((f.max.Y-f.min.Y)*Scale) + 2*Padding
	return f
}

// rect converts an engine rect into pixel-space x, y, w, h with y flipped.
func (f frame) rect(r geom.Rect) (x, y, w, h float64) {
	x = (r.Min().X-f.min.X)*Scale + Padding
	y = (f.max.Y-r.Max().Y)*Scale + Padding
	w = r.Size.W * Scale
	h = r.Size.H * Scale
	return x, y, w, h
}

// scopeRects returns every scope with drawable bounds, root first.
func scopeRects(g *focus.Graph) []struct {
	Scope focus.ScopeID
	Rect  geom.Rect
} {
	var out []struct {
		Scope focus.ScopeID
		Rect  geom.Rect
	}
	for _, s := range g.ScopeIDs() {
		if r, ok := g.Bounds(s); ok {
			out = append(out, struct {
				Scope focus.ScopeID
				Rect  geom.Rect
			}{s, r})
		}
	}
	return out
}
