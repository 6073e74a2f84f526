// Package ast implements the semantic reduction core: desugaring a parsed
// syntax tree into curried lambda form (Build), α-normalizing bound
// variables (Alpha), and normal-order β-reducing every redex an arena-owned
// tree can reach without diverging (Beta).
package ast

// Ast is a fully built and reduced program: a Root node living in an Arena
// it owns. It is constructed once by BuildRoot and is immutable from the
// caller's perspective thereafter — Alpha and Beta only ever append to the
// Arena, never mutate a node the caller still holds a reference to, except
// through Arena.Set on ids the reduction pass itself just cloned.
type Ast struct {
	Arena *Arena
	Root  NodeID
}
