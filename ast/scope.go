package ast

// scope is the build-time-only lexical binding stack: an ordered sequence
// of (source identifier → NodeID) entries, plus a parallel stack of
// frame-boundary indices. Lookup scans newest to oldest, so inner bindings
// shadow outer ones without needing a hashmap-per-scope (which would make
// the order of re-declarations within one scope ambiguous). Frames are
// pushed on entering a function body and popped on exit by truncating the
// entries slice, never by rewriting it.
type scope struct {
	entries []scopeEntry
	frames  []int
}

type scopeEntry struct {
	name string
	id   NodeID
}

// newFrame pushes a new lexical scope boundary.
func (s *scope) newFrame() {
	s.frames = append(s.frames, len(s.entries))
}

// closeFrame pops the most recently opened frame, discarding every binding
// introduced since it was opened. Returns ErrUnbalancedFrame if there is no
// open frame.
func (s *scope) closeFrame() error {
	if len(s.frames) == 0 {
		return &BuildError{Kind: UnbalancedFrame}
	}
	n := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	s.entries = s.entries[:n]
	return nil
}

// bind introduces a new binding in the current frame (or, at the root,
// before any frame has been pushed — root-level bindings persist for the
// whole program).
func (s *scope) bind(name string, id NodeID) {
	s.entries = append(s.entries, scopeEntry{name: name, id: id})
}

// lookup scans from newest to oldest so that inner bindings shadow outer
// ones, and repeated bindings of the same name within one frame shadow
// their predecessors.
func (s *scope) lookup(name string) (NodeID, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].name == name {
			return s.entries[i].id, true
		}
	}
	return NodeID(0), false
}
