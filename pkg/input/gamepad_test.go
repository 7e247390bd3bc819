package input

import (
	"testing"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
)

func TestGamepadDeadzoneEdgeTrigger(t *testing.T) {
	g := NewGamepad(DefaultMapping())

	// Below the deadzone: nothing.
	if reqs := g.Poll(GamepadState{Connected: true, StickX: 0.2}); len(reqs) != 0 {
		t.Errorf("inside deadzone emitted %v", reqs)
	}

	// Crossing it: exactly one move.
	reqs := g.Poll(GamepadState{Connected: true, StickX: 0.9})
	if len(reqs) != 1 || reqs[0] != focus.Move(focus.East) {
		t.Fatalf("crossing deadzone = %v, want one move(east)", reqs)
	}

	// Held deflected: still armed against repeats.
	if reqs := g.Poll(GamepadState{Connected: true, StickX: 1.0}); len(reqs) != 0 {
		t.Errorf("held deflection emitted %v", reqs)
	}

	// Re-arms only after returning below the deadzone.
	g.Poll(GamepadState{Connected: true, StickX: 0.1})
	if reqs := g.Poll(GamepadState{Connected: true, StickX: -0.9}); len(reqs) != 1 || reqs[0] != focus.Move(focus.West) {
		t.Errorf("re-armed poll = %v, want one move(west)", reqs)
	}
}

func TestGamepadDiagonalFiresNothing(t *testing.T) {
	g := NewGamepad(DefaultMapping())
	if reqs := g.Poll(GamepadState{Connected: true, StickX: 0.8, StickY: 0.8}); len(reqs) != 0 {
		t.Errorf("exact diagonal emitted %v", reqs)
	}
}

func TestGamepadDpadWinsOverStick(t *testing.T) {
	g := NewGamepad(DefaultMapping())
	reqs := g.Poll(GamepadState{Connected: true, StickX: 0.5, DpadY: 1})
	if len(reqs) != 1 || reqs[0] != focus.Move(focus.North) {
		t.Errorf("dpad over stick = %v, want one move(north)", reqs)
	}
}

func TestGamepadButtonsEdgeTriggered(t *testing.T) {
	g := NewGamepad(DefaultMapping())

	down := GamepadState{Connected: true, Buttons: map[Button]bool{ButtonSouth: true}}
	reqs := g.Poll(down)
	if len(reqs) != 1 || reqs[0] != focus.Action() {
		t.Fatalf("button press = %v, want one action", reqs)
	}
	if reqs := g.Poll(down); len(reqs) != 0 {
		t.Errorf("held button emitted %v", reqs)
	}

	both := GamepadState{Connected: true, Buttons: map[Button]bool{
		ButtonSouth:        true,
		ButtonRightTrigger: true,
	}}
	reqs = g.Poll(both)
	if len(reqs) != 1 || reqs[0] != focus.ScopeMove(focus.Next) {
		t.Errorf("new press alongside held = %v, want one scope-move(next)", reqs)
	}
}

func TestGamepadDisconnectResets(t *testing.T) {
	g := NewGamepad(DefaultMapping())
	g.Poll(GamepadState{Connected: true, StickX: 0.9})
	g.Poll(GamepadState{Connected: true, Buttons: map[Button]bool{ButtonEast: true}})

	if reqs := g.Poll(GamepadState{}); len(reqs) != 0 {
		t.Errorf("disconnected pad emitted %v", reqs)
	}

	// Reconnecting with the same state fires fresh edges.
	reqs := g.Poll(GamepadState{Connected: true, StickX: 0.9, Buttons: map[Button]bool{ButtonEast: true}})
	if len(reqs) != 2 {
		t.Errorf("reconnect = %v, want move plus cancel", reqs)
	}
}
