package focus

// Resolve runs one resolution pass: given the current focus and a request,
// it returns the new focus and the event explaining the transition. It is a
// total function over (graph, focus, request); there is no error path. The
// only state it mutates is the per-scope focus history, and only when a
// focus change commits.
//
// A focused value of NoElem is accepted: directional, action, cancel and
// scope requests then resolve to NoChange, and FocusOn establishes the
// first focus.
func (g *Graph) Resolve(focused ElemID, req Request) (ElemID, Event) {
	switch req.Kind {
	case KindMove:
		return g.resolveMove(focused, req)
	case KindAction:
		if !g.ValidElem(focused) {
			return focused, noChange(req, focused, ReasonNoCandidate)
		}
		return focused, Event{Kind: Activated, From: focused, To: focused, Request: req}
	case KindCancel:
		return g.resolveCancel(focused, req)
	case KindScopeMove:
		return g.resolveScopeMove(focused, req)
	case KindFocusOn:
		if !g.ValidElem(req.Target) {
			// Documented policy for the caller-error case: treat an
			// unknown target as a no-op rather than guessing.
			return focused, noChange(req, focused, ReasonNoCandidate)
		}
		return g.commit(req, focused, req.Target, MoveJump)
	}
	return focused, noChange(req, focused, ReasonNoCandidate)
}

// resolveMove handles a directional request: first among the focused
// element's siblings, then escalating through ancestor scopes, treating each
// level's sibling scopes as candidates at their bounding centers. Escalation
// continues until a sibling scope is reachable in the requested direction or
// the root is reached; a scope with no escape route in that direction is
// deliberately walled off.
func (g *Graph) resolveMove(focused ElemID, req Request) (ElemID, Event) {
	if !g.ValidElem(focused) {
		return focused, noChange(req, focused, ReasonNoCandidate)
	}
	if to, ok := g.siblingInDirection(focused, req.Dir); ok {
		return g.commit(req, focused, to, MoveWithin)
	}
	origin := g.elems[focused].pos
	for scope := g.elems[focused].scope; scope != noScope; scope = g.scopes[scope].parent {
		target, ok := g.siblingScopeInDirection(origin, scope, req.Dir)
		if !ok {
			continue
		}
		entry, ok := g.entryTarget(target, noScope, true)
		if !ok {
			continue
		}
		return g.commit(req, focused, entry, MoveEnteredScope)
	}
	return focused, noChange(req, focused, ReasonNoCandidate)
}

// resolveCancel unwinds focus to the enclosing scope's remembered element,
// or its default member when nothing is remembered. The scope being left
// records its own focus first, so a later re-entry restores it. With focus
// already in the root scope there is nowhere to unwind to.
func (g *Graph) resolveCancel(focused ElemID, req Request) (ElemID, Event) {
	if !g.ValidElem(focused) {
		return focused, noChange(req, focused, ReasonNoCandidate)
	}
	scope := g.elems[focused].scope
	if scope == g.root {
		return focused, noChange(req, focused, ReasonAtRoot)
	}
	parent := g.scopes[scope].parent
	// The subtree being left is pruned from the search, so a remembered
	// element inside it cannot bounce the cancel straight back.
	to, ok := g.entryTarget(parent, scope, true)
	if !ok {
		return focused, noChange(req, focused, ReasonNoCandidate)
	}
	return g.commit(req, focused, to, MoveLeftScope)
}

// resolveScopeMove cycles among the active scope's siblings, skipping
// siblings that contain no elements, and lands on the target scope's
// remembered or default element.
func (g *Graph) resolveScopeMove(focused ElemID, req Request) (ElemID, Event) {
	if !g.ValidElem(focused) {
		return focused, noChange(req, focused, ReasonNoCandidate)
	}
	start := g.elems[focused].scope
	scope := start
	for {
		next, ok := g.cycleScope(scope, req.Scope)
		if !ok {
			return focused, noChange(req, focused, ReasonNoSiblingScope)
		}
		if next == start {
			// Came full circle without a focusable sibling.
			return focused, noChange(req, focused, ReasonNoCandidate)
		}
		if to, ok := g.entryTarget(next, noScope, true); ok {
			return g.commit(req, focused, to, MoveEnteredScope)
		}
		scope = next
	}
}

// commit records history for the transition and builds the event.
func (g *Graph) commit(req Request, from, to ElemID, kind MoveKind) (ElemID, Event) {
	g.recordHistory(from, to)
	return to, changed(req, from, to, kind)
}
