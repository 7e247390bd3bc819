package layout

import (
	"strings"
	"testing"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

const sampleLayout = `
scopes:
  - id: menu
    root: true
  - id: left
    parent: menu
  - id: right
    parent: menu

elements:
  - { id: play, scope: left, x: 2, y: 1, w: 8, h: 1 }
  - { id: load, scope: left, x: 2, y: 3, w: 8, h: 1 }
  - { id: quit, scope: right, x: 14, y: 1, w: 8, h: 1, depth: 2 }
`

func TestParseBuildsGraph(t *testing.T) {
	l, err := Parse([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g := l.Graph

	if len(g.ElementIDs()) != 3 {
		t.Fatalf("got %d elements, want 3", len(g.ElementIDs()))
	}

	play, ok := g.Lookup("play")
	if !ok {
		t.Fatal("play not in graph")
	}
	load, _ := g.Lookup("load")
	quit, _ := g.Lookup("quit")

	if g.ScopeOf(play) != g.ScopeOf(load) {
		t.Error("play and load should share a scope")
	}
	if g.ScopeOf(play) == g.ScopeOf(quit) {
		t.Error("play and quit should be in different scopes")
	}
	if g.Depth(quit) != 2 {
		t.Errorf("quit depth = %v, want 2", g.Depth(quit))
	}

	left, ok := l.ScopeByID["left"]
	if !ok || g.ScopeOf(play) != left {
		t.Error("scope name table does not match the graph")
	}
	if l.ScopeNames[left] != "left" {
		t.Errorf("ScopeNames[%v] = %q, want left", left, l.ScopeNames[left])
	}
}

func TestParseFlipsRowAxis(t *testing.T) {
	l, err := Parse([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g := l.Graph
	play, _ := g.Lookup("play")
	load, _ := g.Lookup("load")

	// The file puts load below play (larger y). In the engine's
	// north-positive space, below means a smaller Y.
	if !(g.Position(load).Y < g.Position(play).Y) {
		t.Errorf("load Y %v should be below play Y %v", g.Position(load).Y, g.Position(play).Y)
	}

	// And a southward move goes from play to load.
	got, _ := g.Resolve(play, focus.Move(focus.South))
	if got != load {
		t.Errorf("south from play = %v, want load %v", got, load)
	}

	if got, want := g.Position(play), (geom.Point{X: 2, Y: -1}); got != want {
		t.Errorf("play position = %v, want %v", got, want)
	}
}

func TestParseForwardParentReference(t *testing.T) {
	// The child scope is declared before its parent.
	src := `
scopes:
  - id: inner
    parent: outer
  - id: menu
    root: true
  - id: outer
    parent: menu
elements:
  - { id: a, scope: inner, x: 0, y: 0, w: 1, h: 1 }
`
	if _, err := Parse([]byte(src)); err != nil {
		t.Fatalf("forward parent reference should parse, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			"no root",
			"scopes:\n  - id: a\n    parent: b\nelements: []\n",
			"no root",
		},
		{
			"two roots",
			"scopes:\n  - {id: a, root: true}\n  - {id: b, root: true}\nelements: []\n",
			"root scopes",
		},
		{
			"root with parent",
			"scopes:\n  - {id: a, root: true, parent: b}\nelements: []\n",
			"must not declare a parent",
		},
		{
			"unknown parent",
			"scopes:\n  - {id: a, root: true}\n  - {id: b, parent: nope}\nelements: []\n",
			"unknown parent",
		},
		{
			"orphan scope",
			"scopes:\n  - {id: a, root: true}\n  - {id: b}\nelements: []\n",
			"no parent",
		},
		{
			"duplicate scope",
			"scopes:\n  - {id: a, root: true}\n  - {id: a, parent: a}\nelements: []\n",
			"duplicate scope",
		},
		{
			"unknown element scope",
			"scopes:\n  - {id: a, root: true}\nelements:\n  - {id: e, scope: nope, x: 0, y: 0, w: 1, h: 1}\n",
			"unknown scope",
		},
		{
			"non-positive size",
			"scopes:\n  - {id: a, root: true}\nelements:\n  - {id: e, scope: a, x: 0, y: 0, w: 0, h: 1}\n",
			"non-positive size",
		},
		{
			"not yaml",
			"{{{{",
			"parse layout",
		},
	}

	for _, tc := range cases {
		_, err := Parse([]byte(tc.src))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}
