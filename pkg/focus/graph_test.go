package focus

import (
	"testing"

	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

func TestDefaultMemberRecursesIntoChildren(t *testing.T) {
	b := NewBuilder()
	root := b.Root()
	empty := b.Scope(root)
	inner := b.Scope(empty)
	want := b.Element(inner, "deep", geom.Point{}, geom.Size{W: 2, H: 1}, 0)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got, ok := g.DefaultMember(root)
	if !ok || got != want {
		t.Errorf("DefaultMember(root) = %v, %v; want %v, true", got, ok, want)
	}
}

func TestBoundsCoversSubtree(t *testing.T) {
	b := NewBuilder()
	root := b.Root()
	s := b.Scope(root)
	b.Element(s, "a", geom.Point{X: 0, Y: 0}, geom.Size{W: 2, H: 2}, 0)
	child := b.Scope(s)
	b.Element(child, "b", geom.Point{X: 10, Y: -6}, geom.Size{W: 2, H: 2}, 0)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	bounds, ok := g.Bounds(s)
	if !ok {
		t.Fatal("Bounds should cover the subtree")
	}
	if got, want := bounds.Min(), (geom.Point{X: -1, Y: -7}); got != want {
		t.Errorf("bounds min = %v, want %v", got, want)
	}
	if got, want := bounds.Max(), (geom.Point{X: 11, Y: 1}); got != want {
		t.Errorf("bounds max = %v, want %v", got, want)
	}

	if _, ok := g.Bounds(child); !ok {
		t.Error("child bounds should exist")
	}
}

func TestHistoryWriteOnBoundaryCross(t *testing.T) {
	g := threeColumns(t)
	l1 := elem(t, g, "l1")
	left := g.ScopeOf(l1)
	middle := g.ScopeOf(elem(t, g, "m0"))

	if _, ok := g.History(left); ok {
		t.Fatal("fresh graph should have no history")
	}

	g.Resolve(l1, Move(East))

	if h, ok := g.History(left); !ok || h != l1 {
		t.Errorf("left history = %v, %v; want %v (the departed element)", h, ok, l1)
	}
	if h, ok := g.History(middle); !ok || h != elem(t, g, "m0") {
		t.Errorf("middle history = %v, %v; want entry element", h, ok)
	}
}

func TestResetHistory(t *testing.T) {
	g := threeColumns(t)
	g.Resolve(elem(t, g, "l1"), Move(East))
	g.ResetHistory()
	for _, s := range g.ScopeIDs() {
		if _, ok := g.History(s); ok {
			t.Errorf("scope %v still has history after reset", s)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := threeColumns(t)
	l1 := elem(t, g, "l1")
	left := g.ScopeOf(l1)

	c := g.Clone()
	c.Resolve(l1, Move(East))

	if _, ok := g.History(left); ok {
		t.Error("resolving on the clone disturbed the original's history")
	}
	if h, ok := c.History(left); !ok || h != l1 {
		t.Errorf("clone history = %v, %v; want %v", h, ok, l1)
	}

	c.SetPosition(l1, geom.Point{X: 99, Y: 99})
	if g.Position(l1).X == 99 {
		t.Error("clone position write leaked into the original")
	}
}
