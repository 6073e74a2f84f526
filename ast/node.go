package ast

import "github.com/hashedone/typed/internal/arena"

// NodeID addresses a single node in an Arena. It is a stable, append-only
// index: once created, it is never reused and always refers to the same
// record for the lifetime of the Arena.
type NodeID = arena.Pointer[Node]

// Variable is a globally unique variable id, paired in the Arena's side
// table with an optional human-readable name hint. Two variables with the
// same hint but different ids are distinct.
type Variable = arena.Pointer[string]

// Kind is the tag of a Node's sum type. There are exactly four variants;
// dispatch on Kind is a closed switch, never an open extension point.
type Kind int8

const (
	// KindLiteral marks a Node holding a Literal payload.
	KindLiteral Kind = iota + 1
	// KindVariable marks a Node holding a Variable reference.
	KindVariable
	// KindFnDecl marks a Node holding a single-argument λ-abstraction.
	KindFnDecl
	// KindFnAppl marks a Node holding a single-argument application.
	KindFnAppl
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindVariable:
		return "Variable"
	case KindFnDecl:
		return "FnDecl"
	case KindFnAppl:
		return "FnAppl"
	default:
		return "Kind(?)"
	}
}

// Literal is the payload of a KindLiteral node: either unit, or an unsigned
// 64-bit integer.
type Literal struct {
	Unit  bool
	Value uint64
}

// Node is one record in the reduced tree's Arena. Only the fields relevant
// to Kind are meaningful; the rest are zero. This mirrors spec's closed
// four-variant sum type without the allocation overhead of an interface or
// of per-kind pointer payloads:
//
//   - KindLiteral:  Literal
//   - KindVariable: Var
//   - KindFnDecl:   Param (the bound variable), Body
//   - KindFnAppl:   Func, Operand (the argument)
type Node struct {
	Kind Kind

	Literal Literal
	Var     Variable

	Param Variable
	Body  NodeID

	Func    NodeID
	Operand NodeID
}
