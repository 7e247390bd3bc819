package input

import (
	"testing"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
)

func TestKeyboardEdgeTriggered(t *testing.T) {
	k := NewKeyboard(DefaultMapping())

	reqs := k.Poll(map[Key]bool{"w": true})
	if len(reqs) != 1 || reqs[0] != focus.Move(focus.North) {
		t.Fatalf("first poll = %v, want one move(north)", reqs)
	}

	// Held across polls: nothing until released and pressed again.
	if reqs := k.Poll(map[Key]bool{"w": true}); len(reqs) != 0 {
		t.Errorf("held key emitted %v", reqs)
	}
	if reqs := k.Poll(nil); len(reqs) != 0 {
		t.Errorf("release emitted %v", reqs)
	}
	if reqs := k.Poll(map[Key]bool{"w": true}); len(reqs) != 1 {
		t.Errorf("re-press emitted %v, want one request", reqs)
	}
}

func TestKeyboardPrimaryAndAlternateCountOnce(t *testing.T) {
	k := NewKeyboard(DefaultMapping())
	reqs := k.Poll(map[Key]bool{"w": true, "up": true})
	if len(reqs) != 1 || reqs[0] != focus.Move(focus.North) {
		t.Errorf("both bindings down = %v, want a single move(north)", reqs)
	}
}

func TestKeyboardSimultaneousOrder(t *testing.T) {
	k := NewKeyboard(DefaultMapping())
	reqs := k.Poll(map[Key]bool{"space": true, "s": true, "q": true})
	want := []focus.Request{
		focus.Move(focus.South),
		focus.Action(),
		focus.ScopeMove(focus.Previous),
	}
	if len(reqs) != len(want) {
		t.Fatalf("got %v, want %v", reqs, want)
	}
	for i := range want {
		if reqs[i] != want[i] {
			t.Errorf("request %d = %v, want %v (fixed emission order)", i, reqs[i], want[i])
		}
	}
}

func TestKeyboardTap(t *testing.T) {
	k := NewKeyboard(DefaultMapping())
	if reqs := k.Tap("backspace"); len(reqs) != 1 || reqs[0] != focus.Cancel() {
		t.Fatalf("tap = %v, want one cancel", reqs)
	}
	// The tap releases internally, so an immediate second tap fires again.
	if reqs := k.Tap("backspace"); len(reqs) != 1 {
		t.Errorf("second tap = %v, want one cancel", reqs)
	}
}

func TestKeyboardUnboundKey(t *testing.T) {
	k := NewKeyboard(DefaultMapping())
	if reqs := k.Tap("z"); len(reqs) != 0 {
		t.Errorf("unbound key emitted %v", reqs)
	}
}
