package ast

import (
	"fmt"

	"github.com/hashedone/typed/internal/arena"
)

// Arena owns every Node and every Variable name hint belonging to one Ast.
// It is append-only: FreshVariable, DuplicateVariable, Create and Clone
// only ever grow it, and Set only
// ever overwrites an id the caller already owns. Nothing is ever deleted,
// so a NodeID or Variable handed out by one of these methods stays valid
// for the Arena's entire lifetime.
//
// The zero Arena is empty and ready to use.
type Arena struct {
	nodes     arena.Arena[Node]
	variables arena.Arena[string]
}

// FreshVariable allocates a brand new variable id with the given name hint
// (which may be empty). The id is distinct from every other variable ever
// allocated by this Arena, regardless of hint collisions.
func (a *Arena) FreshVariable(hint string) Variable {
	return a.variables.New(hint)
}

// DuplicateVariable allocates a new variable id whose name hint is derived
// from v's — the new id is always distinct from v, even though its hint
// may read the same.
func (a *Arena) DuplicateVariable(v Variable) Variable {
	return a.FreshVariable(a.hintOf(v))
}

func (a *Arena) hintOf(v Variable) string {
	return *v.In(&a.variables)
}

// VariableName returns v's stored name hint, or "_<id>" if it has none.
func (a *Arena) VariableName(v Variable) string {
	if hint := a.hintOf(v); hint != "" {
		return hint
	}
	return fmt.Sprintf("_%d", arena.Untyped(v))
}

// Create appends a new node and returns its id.
func (a *Arena) Create(n Node) NodeID {
	return a.nodes.New(n)
}

// Clone copies the record at id verbatim — same Kind and payload, including
// any child NodeIDs — into a freshly appended slot, and returns the new id.
// This is a shallow copy: children are shared with the original until the
// caller overwrites them (via further Clone calls written back with Set).
// Both Alpha and Beta rely on exactly this behavior.
func (a *Arena) Clone(id NodeID) NodeID {
	return a.Create(a.Get(id))
}

// Get reads the node at id by value.
func (a *Arena) Get(id NodeID) Node {
	return *id.In(&a.nodes)
}

// Set overwrites the node at id by value. This is the only mutation Arena
// exposes; it never invalidates any other id, since ids are never moved.
func (a *Arena) Set(id NodeID, n Node) {
	*id.In(&a.nodes) = n
}

// NodeCount returns how many nodes have been allocated.
func (a *Arena) NodeCount() int {
	return a.nodes.Len()
}

// Variables iterates every variable allocated by this Arena, in allocation
// order, yielding each id alongside its stored name hint. Used by the CLI's
// variable-table dump; stops early if yield returns false.
func (a *Arena) Variables(yield func(Variable, string) bool) {
	a.variables.All(func(ptr arena.Untyped, hint *string) bool {
		return yield(Variable(ptr), *hint)
	})
}
