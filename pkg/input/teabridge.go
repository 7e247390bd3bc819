package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
	"github.com/Dicklesworthstone/navkit/pkg/geom"
)

// Bridge adapts bubbletea's message-driven input to the poll-driven
// adapters: every key message becomes a momentary key tap and every mouse
// message a pointer snapshot. Hosts that poll device state directly can use
// Keyboard and Mouse without it.
type Bridge struct {
	keyboard *Keyboard
	mouse    *Mouse
}

// NewBridge returns a bridge using the given bindings.
func NewBridge(m Mapping) *Bridge {
	return &Bridge{
		keyboard: NewKeyboard(m),
		mouse:    NewMouse(),
	}
}

// KeyRequests translates one key message into navigation requests.
func (b *Bridge) KeyRequests(msg tea.KeyMsg) []focus.Request {
	return b.keyboard.Tap(normalizeKey(msg))
}

// MouseRequests translates one mouse message into navigation requests. The
// position must already be in the graph's coordinate space; converting from
// cell coordinates is the caller's concern.
func (b *Bridge) MouseRequests(g *focus.Graph, focused focus.ElemID, pos geom.Point, released bool) []focus.Request {
	return b.mouse.Poll(g, focused, MouseState{Pos: pos, Released: released})
}

// normalizeKey maps a tea key message onto the names Mapping uses. The only
// special case is space, which bubbletea reports as a literal space rune.
func normalizeKey(msg tea.KeyMsg) Key {
	s := msg.String()
	if s == " " {
		return "space"
	}
	return Key(s)
}
