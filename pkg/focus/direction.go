package focus

import "github.com/Dicklesworthstone/navkit/pkg/geom"

// quadrant maps a compass direction onto the cone test in pkg/geom.
func (d Direction) quadrant() geom.Quadrant {
	switch d {
	case North:
		return geom.QuadNorth
	case South:
		return geom.QuadSouth
	case East:
		return geom.QuadEast
	}
	return geom.QuadWest
}

// pickDirectional selects the best candidate in dir as seen from origin:
// eligible when its displacement falls inside the ±45° cone around dir,
// preferred when nearest by Euclidean distance. Ties keep the first
// encountered candidate, so the result is deterministic for a fixed
// candidate order.
func pickDirectional(origin geom.Point, dir Direction, candidates []geom.Point) (int, bool) {
	cone := dir.quadrant()
	best := -1
	var bestDist float64
	for i, pos := range candidates {
		disp := pos.Sub(origin)
		if geom.QuadrantOf(disp) != cone {
			continue
		}
		dist := disp.LenSq()
		if best == -1 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best, best != -1
}

// siblingInDirection runs the direction resolver over the siblings of from
// inside its own scope. Elements of other scopes are never candidates; that
// isolation is what the scope boundary exists to enforce.
func (g *Graph) siblingInDirection(from ElemID, dir Direction) (ElemID, bool) {
	members := g.scopes[g.elems[from].scope].members
	ids := make([]ElemID, 0, len(members))
	positions := make([]geom.Point, 0, len(members))
	for _, e := range members {
		if e == from {
			continue
		}
		ids = append(ids, e)
		positions = append(positions, g.elems[e].pos)
	}
	i, ok := pickDirectional(g.elems[from].pos, dir, positions)
	if !ok {
		return NoElem, false
	}
	return ids[i], true
}

// siblingScopeInDirection runs the direction resolver one structural level
// up: the siblings of scope under its parent become the candidates, each
// positioned at the center of its subtree bounding box. Scopes with no
// elements anywhere beneath them cannot receive focus and are skipped.
func (g *Graph) siblingScopeInDirection(origin geom.Point, scope ScopeID, dir Direction) (ScopeID, bool) {
	parent := g.scopes[scope].parent
	if parent == noScope {
		return noScope, false
	}
	ids := make([]ScopeID, 0, len(g.scopes[parent].children))
	positions := make([]geom.Point, 0, len(g.scopes[parent].children))
	for _, sib := range g.scopes[parent].children {
		if sib == scope {
			continue
		}
		bounds, ok := g.Bounds(sib)
		if !ok {
			continue
		}
		ids = append(ids, sib)
		positions = append(positions, bounds.Center)
	}
	i, ok := pickDirectional(origin, dir, positions)
	if !ok {
		return noScope, false
	}
	return ids[i], true
}
