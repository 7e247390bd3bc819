// Package analysis provides static checks over built focus graphs. Layout
// authors use it to find elements a player can never reach with directional
// navigation alone, before anyone files that as a bug.
package analysis

import (
	"sort"

	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
)

// Result reports what directional navigation can reach from a start element.
type Result struct {
	// Start is the element the walk began from.
	Start focus.ElemID
	// Reachable holds every element reachable from Start, Start included.
	Reachable []focus.ElemID
	// Unreachable holds every element no Move sequence reaches from Start.
	// Deliberately walled-off regions show up here; that is the point of
	// running the check, to confirm the walls are where the author thinks.
	Unreachable []focus.ElemID
}

// Reachability builds the directed move graph of g — one edge per committed
// single-Move transition, boundary escalation included — and walks it from
// start. Histories are cleared before each probe so every edge reflects
// default entry targets, not whatever order the probes ran in.
//
// The input graph is cloned; live focus state is never disturbed.
func Reachability(g *focus.Graph, start focus.ElemID) Result {
	probe := g.Clone()
	dirs := []focus.Direction{focus.North, focus.South, focus.East, focus.West}

	dg := simple.NewDirectedGraph()
	for _, e := range probe.ElementIDs() {
		dg.AddNode(simple.Node(int64(e)))
	}
	for _, e := range probe.ElementIDs() {
		for _, dir := range dirs {
			probe.ResetHistory()
			to, ev := probe.Resolve(e, focus.Move(dir))
			if ev.Kind != focus.FocusChanged || to == e {
				continue
			}
			dg.SetEdge(dg.NewEdge(simple.Node(int64(e)), simple.Node(int64(to))))
		}
	}

	seen := make(map[focus.ElemID]bool)
	bf := traverse.BreadthFirst{
		Visit: func(n gograph.Node) {
			seen[focus.ElemID(n.ID())] = true
		},
	}
	bf.Walk(dg, simple.Node(int64(start)), nil)

	res := Result{Start: start}
	for _, e := range probe.ElementIDs() {
		if seen[e] {
			res.Reachable = append(res.Reachable, e)
		} else {
			res.Unreachable = append(res.Unreachable, e)
		}
	}
	sort.Slice(res.Reachable, func(i, j int) bool { return res.Reachable[i] < res.Reachable[j] })
	sort.Slice(res.Unreachable, func(i, j int) bool { return res.Unreachable[i] < res.Unreachable[j] })
	return res
}
