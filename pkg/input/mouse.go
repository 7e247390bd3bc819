package input

import (
	"github.com/Dicklesworthstone/navkit/pkg/focus"
	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

// MouseState is one poll's snapshot of the pointer: position in the same
// coordinate space as the graph's element positions, and whether the action
// button (or touch) was released since the last poll.
type MouseState struct {
	Pos      geom.Point
	Released bool
}

// Mouse turns pointer snapshots into navigation requests: hovering a
// different, not-already-focused element emits FocusOn for the topmost
// element under the cursor, and releasing over the focused element emits
// Action. A stationary cursor with no release emits nothing, so the
// hit-test only runs when something changed.
type Mouse struct {
	last    geom.Point
	started bool
}

// NewMouse returns a mouse adapter.
func NewMouse() *Mouse {
	return &Mouse{}
}

// Poll emits the requests implied by the snapshot, resolving hover targets
// against g. The currently focused element is needed to distinguish "hover
// something new" from "release over what is focused".
func (m *Mouse) Poll(g *focus.Graph, focused focus.ElemID, st MouseState) []focus.Request {
	moved := !m.started || st.Pos != m.last
	if !moved && !st.Released {
		return nil
	}
	m.last = st.Pos
	m.started = true

	hoveringFocused := g.ValidElem(focused) && g.Rect(focused).Contains(st.Pos)
	if !hoveringFocused {
		target, ok := ElementAt(g, st.Pos)
		if !ok || target == focused {
			return nil
		}
		return []focus.Request{focus.FocusOn(target)}
	}
	if st.Released {
		return []focus.Request{focus.Action()}
	}
	return nil
}
