package focus

import (
	"testing"

	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

func TestBuildRequiresRoot(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error building graph without a root scope")
	}
}

func TestBuildRequiresElements(t *testing.T) {
	b := NewBuilder()
	b.Root()
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error building graph without elements")
	}
}

func TestBuildRejectsDuplicateNames(t *testing.T) {
	b := NewBuilder()
	root := b.Root()
	b.Element(root, "ok", geom.Point{}, geom.Size{W: 1, H: 1}, 0)
	b.Element(root, "ok", geom.Point{X: 5}, geom.Size{W: 1, H: 1}, 0)
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for duplicate element name")
	}
}

func TestBuildRejectsUnknownScope(t *testing.T) {
	b := NewBuilder()
	b.Root()
	b.Element(ScopeID(42), "stray", geom.Point{}, geom.Size{W: 1, H: 1}, 0)
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for element in unknown scope")
	}
}

func TestBuildRejectsUnknownParent(t *testing.T) {
	b := NewBuilder()
	root := b.Root()
	b.Scope(ScopeID(42))
	b.Element(root, "a", geom.Point{}, geom.Size{W: 1, H: 1}, 0)
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for scope with unknown parent")
	}
}

func TestRootIsIdempotent(t *testing.T) {
	b := NewBuilder()
	if b.Root() != b.Root() {
		t.Fatal("Root should return the same scope on every call")
	}
}

func TestLookupByName(t *testing.T) {
	b := NewBuilder()
	root := b.Root()
	want := b.Element(root, "play", geom.Point{}, geom.Size{W: 2, H: 1}, 0)
	b.Element(root, "", geom.Point{X: 5}, geom.Size{W: 2, H: 1}, 0)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got, ok := g.Lookup("play")
	if !ok || got != want {
		t.Errorf("Lookup(play) = %v, %v; want %v, true", got, ok, want)
	}
	if _, ok := g.Lookup("missing"); ok {
		t.Error("Lookup of unknown name should report false")
	}
}
