package focus

import "fmt"

// Direction is a compass direction for a directional move.
type Direction int

// Compass directions. North is positive Y (see pkg/geom).
const (
	North Direction = iota
	South
	East
	West
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ScopeDirection selects the sense of a scope-cycling request.
type ScopeDirection int

// Scope cycling directions.
const (
	Next ScopeDirection = iota
	Previous
)

// String returns the lowercase name of the scope direction.
func (d ScopeDirection) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	}
	return fmt.Sprintf("scope-direction(%d)", int(d))
}

// RequestKind tags a Request variant.
type RequestKind int

// Request variants. The set is closed: Resolve switches exhaustively over it.
const (
	KindMove RequestKind = iota
	KindAction
	KindCancel
	KindScopeMove
	KindFocusOn
)

// String returns the lowercase name of the request kind.
func (k RequestKind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindAction:
		return "action"
	case KindCancel:
		return "cancel"
	case KindScopeMove:
		return "scope-move"
	case KindFocusOn:
		return "focus-on"
	}
	return fmt.Sprintf("request(%d)", int(k))
}

// Request is one navigation directive, independent of the device that
// produced it. Only the field matching Kind is meaningful. Requests are
// created for a single resolution pass and never persisted.
type Request struct {
	Kind   RequestKind
	Dir    Direction      // KindMove
	Scope  ScopeDirection // KindScopeMove
	Target ElemID         // KindFocusOn
}

// Move builds a directional move request.
func Move(d Direction) Request {
	return Request{Kind: KindMove, Dir: d}
}

// Action builds an activation request for the focused element.
func Action() Request {
	return Request{Kind: KindAction}
}

// Cancel builds a request to unwind focus to the parent scope.
func Cancel() Request {
	return Request{Kind: KindCancel}
}

// ScopeMove builds a request to cycle between sibling scopes.
func ScopeMove(d ScopeDirection) Request {
	return Request{Kind: KindScopeMove, Scope: d}
}

// FocusOn builds a request to focus target directly. The caller guarantees
// target belongs to the graph; an unknown target resolves to NoChange.
func FocusOn(target ElemID) Request {
	return Request{Kind: KindFocusOn, Target: target}
}

// String renders the request for logs and status lines.
func (r Request) String() string {
	switch r.Kind {
	case KindMove:
		return fmt.Sprintf("move(%s)", r.Dir)
	case KindScopeMove:
		return fmt.Sprintf("scope-move(%s)", r.Scope)
	case KindFocusOn:
		return fmt.Sprintf("focus-on(%d)", int(r.Target))
	}
	return r.Kind.String()
}

// EventKind tags an Event variant.
type EventKind int

// Event variants.
const (
	// FocusChanged reports that focus moved from Event.From to Event.To.
	FocusChanged EventKind = iota
	// Activated reports an action on the focused element. The engine has no
	// opinion on what activating an element does; the host interprets it.
	Activated
	// NoChange reports that the request resolved to a no-op.
	NoChange
)

// String returns the lowercase name of the event kind.
func (k EventKind) String() string {
	switch k {
	case FocusChanged:
		return "focus-changed"
	case Activated:
		return "activated"
	case NoChange:
		return "no-change"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// MoveKind qualifies how a FocusChanged event crossed the scope structure.
type MoveKind int

// Focus transition kinds.
const (
	// MoveWithin is a move between siblings of the same scope.
	MoveWithin MoveKind = iota
	// MoveEnteredScope crossed a scope boundary into another scope.
	MoveEnteredScope
	// MoveLeftScope unwound to an enclosing scope (cancel).
	MoveLeftScope
	// MoveJump is an explicit focus-on, bypassing spatial navigation.
	MoveJump
)

// String returns the lowercase name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case MoveWithin:
		return "within-scope"
	case MoveEnteredScope:
		return "entered-scope"
	case MoveLeftScope:
		return "left-scope"
	case MoveJump:
		return "jump"
	}
	return fmt.Sprintf("move(%d)", int(k))
}

// Reason explains a NoChange event.
type Reason int

// NoChange reasons.
const (
	// ReasonNoCandidate means no element was eligible in the requested
	// direction, anywhere the request was allowed to look.
	ReasonNoCandidate Reason = iota
	// ReasonAtRoot means cancel was requested with focus already in the
	// root scope.
	ReasonAtRoot
	// ReasonNoSiblingScope means the active scope has no siblings to
	// cycle to.
	ReasonNoSiblingScope
)

// String returns the lowercase name of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNoCandidate:
		return "no-eligible-candidate"
	case ReasonAtRoot:
		return "at-root"
	case ReasonNoSiblingScope:
		return "no-sibling-scope"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Event is the result of one resolution pass. It is the only channel through
// which observers learn what the engine did.
type Event struct {
	Kind    EventKind
	From    ElemID   // previous focus (NoElem if none)
	To      ElemID   // new focus for FocusChanged, focused element for Activated
	Move    MoveKind // meaningful for FocusChanged
	Reason  Reason   // meaningful for NoChange
	Request Request  // the request that produced this event
}

// String renders the event for logs and status lines.
func (e Event) String() string {
	switch e.Kind {
	case FocusChanged:
		return fmt.Sprintf("focus-changed %d -> %d (%s)", int(e.From), int(e.To), e.Move)
	case Activated:
		return fmt.Sprintf("activated %d", int(e.To))
	}
	return fmt.Sprintf("no-change (%s)", e.Reason)
}

func changed(req Request, from, to ElemID, kind MoveKind) Event {
	return Event{Kind: FocusChanged, From: from, To: to, Move: kind, Request: req}
}

func noChange(req Request, from ElemID, reason Reason) Event {
	return Event{Kind: NoChange, From: from, To: from, Reason: reason, Request: req}
}
