package focus

import (
	"fmt"

	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

// Builder assembles a Graph. Scopes and elements are registered in the order
// the host creates them; that order is what the scope cycler and all
// tie-breaking rules key on, so it must be deterministic on the host side.
//
// Structural rules the API cannot express are checked by Build: a graph must
// have a root scope and at least one element. Rules the API does express
// (every element in exactly one scope, every scope chain ending at the root)
// hold by construction.
type Builder struct {
	scopes []scopeNode
	elems  []elemNode
	names  map[string]ElemID
	root   ScopeID
	err    error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		names: make(map[string]ElemID),
		root:  noScope,
	}
}

// Root creates the root scope on first call and returns it thereafter.
func (b *Builder) Root() ScopeID {
	if b.root == noScope {
		b.root = b.addScope(noScope)
	}
	return b.root
}

// Scope registers a new scope under parent and returns its handle.
func (b *Builder) Scope(parent ScopeID) ScopeID {
	if parent < 0 || int(parent) >= len(b.scopes) {
		b.fail(fmt.Errorf("scope parent %d does not exist", int(parent)))
		return noScope
	}
	return b.addScope(parent)
}

// Element registers a focusable element as a member of scope. The name may
// be empty, in which case the element cannot be looked up by name. Depth is
// the stacking order used by hit-testing.
func (b *Builder) Element(scope ScopeID, name string, pos geom.Point, size geom.Size, depth float64) ElemID {
	if scope < 0 || int(scope) >= len(b.scopes) {
		b.fail(fmt.Errorf("element %q: scope %d does not exist", name, int(scope)))
		return NoElem
	}
	if name != "" {
		if prev, dup := b.names[name]; dup {
			b.fail(fmt.Errorf("element name %q already used by element %d", name, int(prev)))
			return NoElem
		}
	}
	id := ElemID(len(b.elems))
	b.elems = append(b.elems, elemNode{scope: scope, pos: pos, size: size, depth: depth, name: name})
	b.scopes[scope].members = append(b.scopes[scope].members, id)
	if name != "" {
		b.names[name] = id
	}
	return id
}

// Build validates the assembled structure and returns the graph. The Builder
// must not be reused afterwards.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.root == noScope {
		return nil, fmt.Errorf("graph has no root scope")
	}
	if len(b.elems) == 0 {
		return nil, fmt.Errorf("graph has no focusable elements")
	}
	return &Graph{
		scopes: b.scopes,
		elems:  b.elems,
		names:  b.names,
		root:   b.root,
	}, nil
}

func (b *Builder) addScope(parent ScopeID) ScopeID {
	id := ScopeID(len(b.scopes))
	b.scopes = append(b.scopes, scopeNode{parent: parent, history: NoElem})
	if parent != noScope {
		b.scopes[parent].children = append(b.scopes[parent].children, id)
	}
	return id
}

// fail records the first construction error; Build reports it.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
