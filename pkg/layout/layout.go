// Package layout loads declarative menu layouts and builds focus graphs
// from them. A layout file names the scopes, their nesting, and every
// focusable element with its position and extent; the loader validates the
// structure and hands back a ready focus.Graph plus the name tables the
// host needs to talk about elements and scopes.
//
// Layout files use the row convention (y grows downward, like the terminal
// cells they usually describe); the loader converts to the engine's
// north-positive axis, so positions read back from the graph have y negated
// relative to the file.
package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

// ScopeDef is one scope entry in a layout file.
type ScopeDef struct {
	ID     string `yaml:"id"`
	Parent string `yaml:"parent,omitempty"`
	Root   bool   `yaml:"root,omitempty"`
}

// ElementDef is one focusable element entry in a layout file.
type ElementDef struct {
	ID    string  `yaml:"id"`
	Scope string  `yaml:"scope"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Depth float64 `yaml:"depth,omitempty"`
}

// File is the on-disk layout schema.
type File struct {
	Scopes   []ScopeDef   `yaml:"scopes"`
	Elements []ElementDef `yaml:"elements"`
}

// Layout is a loaded layout: the built graph and the name tables for it.
type Layout struct {
	Graph      *focus.Graph
	ScopeNames map[focus.ScopeID]string
	ScopeByID  map[string]focus.ScopeID
}

// Parse builds a layout from raw YAML.
func Parse(data []byte) (*Layout, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return build(&f)
}

// Load reads and builds a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

func build(f *File) (*Layout, error) {
	if len(f.Scopes) == 0 {
		return nil, fmt.Errorf("layout has no scopes")
	}

	b := focus.NewBuilder()
	byID := make(map[string]focus.ScopeID, len(f.Scopes))
	names := make(map[focus.ScopeID]string, len(f.Scopes))

	rootCount := 0
	for _, s := range f.Scopes {
		if s.Root {
			rootCount++
		}
	}
	if rootCount == 0 {
		return nil, fmt.Errorf("layout has no root scope (mark exactly one scope root: true)")
	}
	if rootCount > 1 {
		return nil, fmt.Errorf("layout has %d root scopes, want exactly one", rootCount)
	}

	// Scopes may reference parents declared later in the file, so register
	// in dependency order: repeatedly admit every scope whose parent is
	// already placed.
	pending := append([]ScopeDef(nil), f.Scopes...)
	for len(pending) > 0 {
		progressed := false
		rest := pending[:0]
		for _, s := range pending {
			if s.ID == "" {
				return nil, fmt.Errorf("scope with empty id")
			}
			if _, dup := byID[s.ID]; dup {
				return nil, fmt.Errorf("duplicate scope id %q", s.ID)
			}
			switch {
			case s.Root:
				if s.Parent != "" {
					return nil, fmt.Errorf("root scope %q must not declare a parent", s.ID)
				}
				byID[s.ID] = b.Root()
			case s.Parent == "":
				return nil, fmt.Errorf("scope %q has no parent and is not the root", s.ID)
			default:
				parent, ok := byID[s.Parent]
				if !ok {
					rest = append(rest, s)
					continue
				}
				byID[s.ID] = b.Scope(parent)
			}
			names[byID[s.ID]] = s.ID
			progressed = true
		}
		if !progressed {
			return nil, fmt.Errorf("scope %q references unknown parent %q", rest[0].ID, rest[0].Parent)
		}
		pending = append([]ScopeDef(nil), rest...)
	}

	for _, e := range f.Elements {
		if e.ID == "" {
			return nil, fmt.Errorf("element with empty id")
		}
		scope, ok := byID[e.Scope]
		if !ok {
			return nil, fmt.Errorf("element %q references unknown scope %q", e.ID, e.Scope)
		}
		if e.W <= 0 || e.H <= 0 {
			return nil, fmt.Errorf("element %q has non-positive size %vx%v", e.ID, e.W, e.H)
		}
		// Row convention to north-positive axis.
		b.Element(scope, e.ID, geom.Point{X: e.X, Y: -e.Y}, geom.Size{W: e.W, H: e.H}, e.Depth)
	}

	g, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &Layout{Graph: g, ScopeNames: names, ScopeByID: byID}, nil
}
