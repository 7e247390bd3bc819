package input

import "github.com/Dicklesworthstone/navkit/pkg/focus"

// Keyboard turns per-tick pressed-key sets into navigation requests. Only
// edges fire: a key held across polls emits one request when it goes down
// and nothing until it is released and pressed again.
type Keyboard struct {
	mapping Mapping
	prev    map[Key]bool
}

// NewKeyboard returns a keyboard adapter with the given bindings.
func NewKeyboard(m Mapping) *Keyboard {
	return &Keyboard{mapping: m, prev: map[Key]bool{}}
}

// Poll compares the current pressed set against the previous poll and emits
// a request for every binding whose key just went down. Emission order is
// fixed (directions, action, cancel, scope moves) so simultaneous presses
// resolve deterministically.
func (k *Keyboard) Poll(pressed map[Key]bool) []focus.Request {
	bindings := []struct {
		key Key
		req focus.Request
	}{
		{k.mapping.KeyUp, focus.Move(focus.North)},
		{k.mapping.KeyUpAlt, focus.Move(focus.North)},
		{k.mapping.KeyDown, focus.Move(focus.South)},
		{k.mapping.KeyDownAlt, focus.Move(focus.South)},
		{k.mapping.KeyLeft, focus.Move(focus.West)},
		{k.mapping.KeyLeftAlt, focus.Move(focus.West)},
		{k.mapping.KeyRight, focus.Move(focus.East)},
		{k.mapping.KeyRightAlt, focus.Move(focus.East)},
		{k.mapping.KeyAction, focus.Action()},
		{k.mapping.KeyCancel, focus.Cancel()},
		{k.mapping.KeyNext, focus.ScopeMove(focus.Next)},
		{k.mapping.KeyNextAlt, focus.ScopeMove(focus.Next)},
		{k.mapping.KeyPrevious, focus.ScopeMove(focus.Previous)},
	}

	var reqs []focus.Request
	emitted := map[focus.Request]bool{}
	for _, b := range bindings {
		if b.key == "" || !pressed[b.key] || k.prev[b.key] {
			continue
		}
		// Primary and alternate bindings down on the same poll count once.
		if emitted[b.req] {
			continue
		}
		emitted[b.req] = true
		reqs = append(reqs, b.req)
	}

	next := make(map[Key]bool, len(pressed))
	for key, down := range pressed {
		if down {
			next[key] = true
		}
	}
	k.prev = next
	return reqs
}

// Tap emits the requests for a single momentary key press. It is the
// message-driven entry point for hosts that receive key events rather than
// polling key state.
func (k *Keyboard) Tap(key Key) []focus.Request {
	reqs := k.Poll(map[Key]bool{key: true})
	k.Poll(nil)
	return reqs
}
