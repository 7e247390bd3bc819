package input

import (
	"github.com/Dicklesworthstone/navkit/pkg/focus"
	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

// GamepadState is one poll's snapshot of a pad: left stick and dpad as unit
// axes (north and east positive) and the set of held buttons. A disconnected
// pad is the zero value with Connected false.
type GamepadState struct {
	Connected bool
	StickX    float64
	StickY    float64
	DpadX     float64
	DpadY     float64
	Buttons   map[Button]bool
}

// Gamepad turns pad snapshots into navigation requests. Directions are
// edge-triggered against the deadzone: one Move fires when the deflection
// first exceeds it, and the adapter re-arms only after the stick returns
// below it, so holding a direction cannot flood the queue. The dpad wins
// over the stick whenever its deflection is larger.
type Gamepad struct {
	mapping Mapping
	held    bool
	prev    [buttonCount]bool
}

// NewGamepad returns a gamepad adapter with the given bindings.
func NewGamepad(m Mapping) *Gamepad {
	return &Gamepad{mapping: m}
}

// Poll emits the requests implied by the snapshot: at most one directional
// move plus an edge-triggered request per command button.
func (g *Gamepad) Poll(st GamepadState) []focus.Request {
	if !st.Connected {
		g.held = false
		g.prev = [buttonCount]bool{}
		return nil
	}

	var reqs []focus.Request

	stick := geom.Point{X: st.StickX, Y: st.StickY}
	dpad := geom.Point{X: st.DpadX, Y: st.DpadY}
	delta := stick
	if dpad.LenSq() > stick.LenSq() {
		delta = dpad
	}
	switch {
	case delta.Len() > g.mapping.Deadzone && !g.held:
		if dir, ok := stickDirection(delta); ok {
			reqs = append(reqs, focus.Move(dir))
			g.held = true
		}
	case delta.Len() <= g.mapping.Deadzone:
		g.held = false
	}

	commands := []struct {
		button Button
		req    focus.Request
	}{
		{g.mapping.ActionButton, focus.Action()},
		{g.mapping.CancelButton, focus.Cancel()},
		{g.mapping.NextButton, focus.ScopeMove(focus.Next)},
		{g.mapping.PreviousButton, focus.ScopeMove(focus.Previous)},
	}
	var now [buttonCount]bool
	for b, down := range st.Buttons {
		if b >= 0 && b < buttonCount && down {
			now[b] = true
		}
	}
	for _, c := range commands {
		if c.button < 0 || c.button >= buttonCount {
			continue
		}
		if now[c.button] && !g.prev[c.button] {
			reqs = append(reqs, c.req)
		}
	}
	g.prev = now
	return reqs
}

// stickDirection maps a deflection to the compass direction of its cone.
// Exact diagonals belong to no cone and fire nothing.
func stickDirection(delta geom.Point) (focus.Direction, bool) {
	switch geom.QuadrantOf(delta) {
	case geom.QuadNorth:
		return focus.North, true
	case geom.QuadSouth:
		return focus.South, true
	case geom.QuadEast:
		return focus.East, true
	case geom.QuadWest:
		return focus.West, true
	}
	return focus.North, false
}
