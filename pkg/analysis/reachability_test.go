package analysis

import (
	"testing"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

func TestReachabilityAllConnected(t *testing.T) {
	b := focus.NewBuilder()
	root := b.Root()
	left := b.Scope(root)
	right := b.Scope(root)
	a := b.Element(left, "a", geom.Point{X: 0, Y: 0}, geom.Size{W: 2, H: 1}, 0)
	b.Element(left, "b", geom.Point{X: 0, Y: -2}, geom.Size{W: 2, H: 1}, 0)
	b.Element(right, "c", geom.Point{X: 10, Y: 0}, geom.Size{W: 2, H: 1}, 0)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := Reachability(g, a)
	if len(res.Reachable) != 3 {
		t.Errorf("reachable = %v, want all 3 elements", res.Reachable)
	}
	if len(res.Unreachable) != 0 {
		t.Errorf("unreachable = %v, want none", res.Unreachable)
	}
}

func TestReachabilityFindsWalledOffScope(t *testing.T) {
	b := focus.NewBuilder()
	root := b.Root()
	main := b.Scope(root)
	vault := b.Scope(root)
	a := b.Element(main, "a", geom.Point{X: 0, Y: 0}, geom.Size{W: 2, H: 1}, 0)
	// Exactly diagonal from a: inside no directional cone, so no Move
	// sequence ever enters the vault.
	hidden := b.Element(vault, "hidden", geom.Point{X: 20, Y: 20}, geom.Size{W: 2, H: 1}, 0)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := Reachability(g, a)
	if len(res.Reachable) != 1 || res.Reachable[0] != a {
		t.Errorf("reachable = %v, want only the start", res.Reachable)
	}
	if len(res.Unreachable) != 1 || res.Unreachable[0] != hidden {
		t.Errorf("unreachable = %v, want the walled-off element", res.Unreachable)
	}
}

func TestReachabilityDoesNotDisturbLiveState(t *testing.T) {
	b := focus.NewBuilder()
	root := b.Root()
	left := b.Scope(root)
	right := b.Scope(root)
	a := b.Element(left, "a", geom.Point{X: 0, Y: 0}, geom.Size{W: 2, H: 1}, 0)
	b.Element(right, "b", geom.Point{X: 10, Y: 0}, geom.Size{W: 2, H: 1}, 0)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Establish live history, then analyze.
	g.Resolve(a, focus.Move(focus.East))
	before, _ := g.History(left)

	Reachability(g, a)

	after, ok := g.History(left)
	if !ok || after != before {
		t.Errorf("analysis disturbed history: before %v, after %v", before, after)
	}
}
