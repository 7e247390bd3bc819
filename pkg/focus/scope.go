package focus

// cycleScope advances or retreats circularly among the sibling scopes of s
// (scopes sharing its parent), in registration order. The root scope has no
// siblings; a scope that is an only child resolves to no change.
func (g *Graph) cycleScope(s ScopeID, dir ScopeDirection) (ScopeID, bool) {
	parent := g.scopes[s].parent
	if parent == noScope {
		return noScope, false
	}
	ring := g.scopes[parent].children
	if len(ring) < 2 {
		return noScope, false
	}
	at := -1
	for i, sib := range ring {
		if sib == s {
			at = i
			break
		}
	}
	if at == -1 {
		return noScope, false
	}
	if dir == Next {
		return ring[(at+1)%len(ring)], true
	}
	return ring[(at+len(ring)-1)%len(ring)], true
}
