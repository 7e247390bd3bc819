// Package focus implements the focus-navigation resolution engine: a forest
// of focusable elements partitioned into nested navigation scopes, and the
// algorithm that resolves one navigation request into at most one focus
// change plus the event explaining it.
//
// The graph is an arena: scopes and elements are addressed by small integer
// handles, and parent/child and element/scope relations are stored as index
// links in both directions. Ancestor and sibling lookups are O(1) in the
// number of links followed, independent of total graph size.
//
// The engine itself is stateless between calls. Current focus is passed into
// and returned from Resolve; the only mutable state the graph carries across
// passes is the per-scope focus history.
package focus

import "github.com/Dicklesworthstone/navkit/pkg/geom"

// ElemID identifies a focusable element within its graph.
type ElemID int

// ScopeID identifies a navigation scope within its graph.
type ScopeID int

// NoElem is the "no element" sentinel, used for empty focus and empty
// history slots.
const NoElem ElemID = -1

const noScope ScopeID = -1

type elemNode struct {
	scope ScopeID
	pos   geom.Point
	size  geom.Size
	depth float64
	name  string
}

type scopeNode struct {
	parent   ScopeID // noScope for the root
	children []ScopeID
	members  []ElemID
	history  ElemID
}

// Graph is the structural model: scopes, elements, and the per-scope focus
// history. Build one with a Builder; a zero Graph is not usable.
//
// The graph is not safe for concurrent mutation. Per the engine's
// single-writer discipline, resolution passes and maintenance calls must be
// serialized by the host; readers may inspect the graph between passes.
type Graph struct {
	scopes []scopeNode
	elems  []elemNode
	names  map[string]ElemID
	root   ScopeID
}

// Root returns the root scope.
func (g *Graph) Root() ScopeID {
	return g.root
}

// ElementIDs returns all element handles in registration order.
func (g *Graph) ElementIDs() []ElemID {
	ids := make([]ElemID, len(g.elems))
	for i := range g.elems {
		ids[i] = ElemID(i)
	}
	return ids
}

// ScopeIDs returns all scope handles in registration order.
func (g *Graph) ScopeIDs() []ScopeID {
	ids := make([]ScopeID, len(g.scopes))
	for i := range g.scopes {
		ids[i] = ScopeID(i)
	}
	return ids
}

// ValidElem reports whether e names an element of this graph.
func (g *Graph) ValidElem(e ElemID) bool {
	return e >= 0 && int(e) < len(g.elems)
}

// ValidScope reports whether s names a scope of this graph.
func (g *Graph) ValidScope(s ScopeID) bool {
	return s >= 0 && int(s) < len(g.scopes)
}

// ScopeOf returns the enclosing scope of e.
func (g *Graph) ScopeOf(e ElemID) ScopeID {
	return g.elems[e].scope
}

// ParentOf returns the parent of s, or false for the root scope.
func (g *Graph) ParentOf(s ScopeID) (ScopeID, bool) {
	p := g.scopes[s].parent
	return p, p != noScope
}

// ChildrenOf returns the direct child scopes of s in registration order.
// The slice is shared with the graph; callers must not mutate it.
func (g *Graph) ChildrenOf(s ScopeID) []ScopeID {
	return g.scopes[s].children
}

// MembersOf returns the direct member elements of s in registration order.
// The slice is shared with the graph; callers must not mutate it.
func (g *Graph) MembersOf(s ScopeID) []ElemID {
	return g.scopes[s].members
}

// Position returns the 2D center of e.
func (g *Graph) Position(e ElemID) geom.Point {
	return g.elems[e].pos
}

// Size returns the extent of e.
func (g *Graph) Size(e ElemID) geom.Size {
	return g.elems[e].size
}

// Depth returns the stacking depth of e, used by hit-testing (highest wins).
func (g *Graph) Depth(e ElemID) float64 {
	return g.elems[e].depth
}

// Name returns the host-assigned name of e, or "" if it was registered
// anonymously.
func (g *Graph) Name(e ElemID) string {
	return g.elems[e].name
}

// Lookup resolves a registered element name to its handle.
func (g *Graph) Lookup(name string) (ElemID, bool) {
	e, ok := g.names[name]
	return e, ok
}

// Rect returns the bounding box of e.
func (g *Graph) Rect(e ElemID) geom.Rect {
	return geom.Rect{Center: g.elems[e].pos, Size: g.elems[e].size}
}

// SetPosition updates the center of e. Positions are layout facts owned by
// the host; the engine only reads them.
func (g *Graph) SetPosition(e ElemID, pos geom.Point) {
	g.elems[e].pos = pos
}

// SetDepth updates the stacking depth of e.
func (g *Graph) SetDepth(e ElemID, depth float64) {
	g.elems[e].depth = depth
}

// History returns the remembered last-focused element of s, if any.
func (g *Graph) History(s ScopeID) (ElemID, bool) {
	h := g.scopes[s].history
	return h, h != NoElem
}

// ResetHistory clears every scope's focus history.
func (g *Graph) ResetHistory() {
	for i := range g.scopes {
		g.scopes[i].history = NoElem
	}
}

// Clone returns a deep copy of the graph, history included. Useful for
// what-if resolution that must not disturb live state.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		scopes: make([]scopeNode, len(g.scopes)),
		elems:  make([]elemNode, len(g.elems)),
		names:  make(map[string]ElemID, len(g.names)),
		root:   g.root,
	}
	copy(c.elems, g.elems)
	for i, s := range g.scopes {
		cs := s
		cs.children = append([]ScopeID(nil), s.children...)
		cs.members = append([]ElemID(nil), s.members...)
		c.scopes[i] = cs
	}
	for name, e := range g.names {
		c.names[name] = e
	}
	return c
}

// DefaultMember returns the element focus lands on when s is entered with no
// history: the first direct member in registration order, or failing that the
// default member of the first child scope that has one.
func (g *Graph) DefaultMember(s ScopeID) (ElemID, bool) {
	return g.entryTarget(s, noScope, false)
}

// entryTarget picks the element focus should land on when entering s.
// History is preferred over the default member unless useHistory is false.
// A non-negative exclude prunes that scope's entire subtree, so cancel
// cannot bounce back into the scope it is unwinding from.
func (g *Graph) entryTarget(s, exclude ScopeID, useHistory bool) (ElemID, bool) {
	if useHistory {
		if h := g.scopes[s].history; h != NoElem {
			if exclude == noScope || !g.inSubtree(g.elems[h].scope, exclude) {
				return h, true
			}
		}
	}
	if len(g.scopes[s].members) > 0 {
		return g.scopes[s].members[0], true
	}
	for _, child := range g.scopes[s].children {
		if child == exclude {
			continue
		}
		if e, ok := g.entryTarget(child, exclude, useHistory); ok {
			return e, ok
		}
	}
	return NoElem, false
}

// inSubtree reports whether s is root or a descendant of root.
func (g *Graph) inSubtree(s, root ScopeID) bool {
	for cur := s; cur != noScope; cur = g.scopes[cur].parent {
		if cur == root {
			return true
		}
	}
	return false
}

// Bounds returns the bounding box of every element in the subtree of s.
// A scope with no elements anywhere beneath it has zero bounds and ok false.
func (g *Graph) Bounds(s ScopeID) (geom.Rect, bool) {
	var bounds geom.Rect
	found := false
	for _, e := range g.scopes[s].members {
		r := g.Rect(e)
		if !found {
			bounds, found = r, true
			continue
		}
		bounds = bounds.Union(r)
	}
	for _, child := range g.scopes[s].children {
		if r, ok := g.Bounds(child); ok {
			if !found {
				bounds, found = r, true
				continue
			}
			bounds = bounds.Union(r)
		}
	}
	return bounds, found
}

// recordHistory applies the history write rule for one committed focus
// change: every scope on from's ancestor chain strictly below the lowest
// common ancestor with to remembers from, and every scope on to's chain
// strictly below the same ancestor remembers to. The one rule serves moves,
// cancels, scope cycles, and explicit jumps alike.
func (g *Graph) recordHistory(from, to ElemID) {
	if to == NoElem || from == to {
		return
	}
	toSet := make(map[ScopeID]bool)
	for cur := g.elems[to].scope; cur != noScope; cur = g.scopes[cur].parent {
		toSet[cur] = true
	}
	fromSet := make(map[ScopeID]bool)
	if from != NoElem {
		for cur := g.elems[from].scope; cur != noScope; cur = g.scopes[cur].parent {
			fromSet[cur] = true
		}
		for cur := g.elems[from].scope; cur != noScope && !toSet[cur]; cur = g.scopes[cur].parent {
			g.scopes[cur].history = from
		}
	}
	for cur := g.elems[to].scope; cur != noScope && !fromSet[cur]; cur = g.scopes[cur].parent {
		g.scopes[cur].history = to
	}
}
