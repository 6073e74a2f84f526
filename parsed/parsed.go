// Package parsed defines the input contract the semantic core consumes.
//
// Values of these types are produced by a concrete-syntax parser, which is
// an external collaborator with a fixed contract (see spec §6.1) and is not
// part of the semantic core; internal/surface is a minimal one bundled for
// the CLI. The parser is contractually obligated to enforce
// that FnAppl.Args and FnDecl.Args are never empty and that identifiers are
// non-empty, non-whitespace strings; Build (package ast) trusts those
// invariants except where the contract explicitly calls out a failure mode
// (an empty FnDecl.Args list still reaches Build as NoArguments, since tests
// and other callers can construct trees directly without going through a
// parser).
package parsed

// Lit is a literal value: either unit or an unsigned 64-bit integer.
type Lit struct {
	Unit  bool
	Value uint64
}

// Expr is a parsed expression: Literal, Variable, *FnDecl or *FnAppl.
type Expr interface {
	isExpr()
}

// Literal is a literal expression.
type Literal struct {
	Lit Lit
}

func (Literal) isExpr() {}

// Variable is a reference to a bound identifier.
type Variable struct {
	Name string
}

func (Variable) isExpr() {}

// FnDecl is a multi-argument function declaration with its own inner
// bindings, e.g. `fn(a, b) { let c = ...; a }`.
type FnDecl struct {
	Args     []string
	Bindings []Binding
	Expr     Expr
}

func (*FnDecl) isExpr() {}

// FnAppl is a multi-argument function application, e.g. `f(x, y)`.
type FnAppl struct {
	Func Expr
	Args []Expr
}

func (*FnAppl) isExpr() {}

// Binding is a single `let name = expr;` declaration.
type Binding struct {
	Name string
	Expr Expr
}

// Root is a whole parsed program: a sequence of top-level bindings followed
// by a result expression.
type Root struct {
	Bindings []Binding
	Expr     Expr
}
