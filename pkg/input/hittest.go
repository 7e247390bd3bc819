package input

import (
	"github.com/Dicklesworthstone/navkit/pkg/focus"
	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

// ElementAt returns the topmost focusable element whose bounding box
// contains pt: among all containing elements, the one with the highest
// stacking depth wins, ties keeping the first registered. It is the
// hit-test utility the mouse adapter feeds from; it reads the graph and
// never mutates focus.
func ElementAt(g *focus.Graph, pt geom.Point) (focus.ElemID, bool) {
	best := focus.NoElem
	var bestDepth float64
	for _, e := range g.ElementIDs() {
		if !g.Rect(e).Contains(pt) {
			continue
		}
		if best == focus.NoElem || g.Depth(e) > bestDepth {
			best, bestDepth = e, g.Depth(e)
		}
	}
	return best, best != focus.NoElem
}
