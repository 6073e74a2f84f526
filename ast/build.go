package ast

import (
	"fmt"

	"github.com/hashedone/typed/parsed"
)

// BuildRoot walks a parsed program, resolving identifiers against a lexical
// binding stack, desugaring multi-argument fn declarations into nested
// single-argument λ-abstractions and multi-argument application into
// left-associated unary applications, and returns the resulting Ast.
//
// Every top-level binding is built in order and bound in the root scope
// frame (no frame push at the root: root bindings persist for the whole
// program body, mirroring a top-level `let` sequence). The root expression
// is then built and becomes Ast.Root.
//
// Returns the first BuildError encountered; the partially built Arena is
// discarded along with it.
func BuildRoot(root parsed.Root) (*Ast, error) {
	a := &Arena{}
	var sc scope

	for _, binding := range root.Bindings {
		id, err := buildExpr(binding.Expr, a, &sc)
		if err != nil {
			return nil, err
		}
		sc.bind(binding.Name, id)
	}

	rootID, err := buildExpr(root.Expr, a, &sc)
	if err != nil {
		return nil, err
	}

	return &Ast{Arena: a, Root: rootID}, nil
}

func buildExpr(expr parsed.Expr, a *Arena, sc *scope) (NodeID, error) {
	switch e := expr.(type) {
	case parsed.Literal:
		return a.Create(Node{
			Kind:    KindLiteral,
			Literal: Literal{Unit: e.Lit.Unit, Value: e.Lit.Value},
		}), nil

	case parsed.Variable:
		id, ok := sc.lookup(e.Name)
		if !ok {
			return NodeID(0), &BuildError{Kind: UnboundVariable, Name: e.Name}
		}
		// Every variable reference is α-refreshed at the point of use, so
		// later β-reduction can never observe accidental sharing of a
		// bound name across two uses of the same binding.
		return a.Alpha(id), nil

	case *parsed.FnDecl:
		return buildFnDecl(e, a, sc)

	case *parsed.FnAppl:
		return buildFnAppl(e, a, sc)

	default:
		panic(fmt.Sprintf("ast: unknown parsed.Expr implementation %T", expr))
	}
}

func buildFnDecl(decl *parsed.FnDecl, a *Arena, sc *scope) (NodeID, error) {
	if len(decl.Args) == 0 {
		return NodeID(0), &BuildError{Kind: NoArguments}
	}

	sc.newFrame()

	for _, binding := range decl.Bindings {
		id, err := buildExpr(binding.Expr, a, sc)
		if err != nil {
			return NodeID(0), err
		}
		sc.bind(binding.Name, id)
	}

	vars := make([]Variable, len(decl.Args))
	for i, name := range decl.Args {
		v := a.FreshVariable(name)
		vid := a.Create(Node{Kind: KindVariable, Var: v})
		sc.bind(name, vid)
		vars[i] = v
	}

	bodyID, err := buildExpr(decl.Expr, a, sc)
	if err != nil {
		return NodeID(0), err
	}

	if err := sc.closeFrame(); err != nil {
		return NodeID(0), err
	}

	// Fold the formals right to left into nested FnDecl nodes, starting
	// from the body: λv1. λv2. … λvn. body.
	result := bodyID
	for i := len(vars) - 1; i >= 0; i-- {
		result = a.Create(Node{Kind: KindFnDecl, Param: vars[i], Body: result})
	}
	return result, nil
}

func buildFnAppl(appl *parsed.FnAppl, a *Arena, sc *scope) (NodeID, error) {
	running, err := buildExpr(appl.Func, a, sc)
	if err != nil {
		return NodeID(0), err
	}

	for _, argExpr := range appl.Args {
		argID, err := buildExpr(argExpr, a, sc)
		if err != nil {
			return NodeID(0), err
		}
		// Reduce each application as soon as it is formed, so the next
		// argument is applied to an already-reduced head.
		running = a.Beta(a.Create(Node{Kind: KindFnAppl, Func: running, Operand: argID}))
	}

	return running, nil
}
