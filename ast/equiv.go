package ast

import "golang.org/x/exp/slices"

// eqPair is one pending comparison in Equivalent's work stack.
type eqPair struct {
	l, r NodeID
}

// eqVarPair records that Equivalent has matched an l-side binder against
// an r-side binder, so free occurrences of either below that point compare
// equal to each other even though their ids differ.
type eqVarPair struct {
	l, r Variable
}

// Equivalent reports whether l and r are the same term up to renaming of
// bound variables (α-equivalence). It is used by Beta's recursion guard to
// detect the self-application pattern at application time; it is not a
// general normal-form equality test (it does not reduce either side first).
//
// Unlike Alpha and Beta, the accumulated variable-pair list is never
// truncated on backtrack: because every variable id is globally unique and
// never reused, a pair recorded under one subtree can never spuriously
// match an unrelated binder in a sibling subtree.
func Equivalent(a *Arena, l, r NodeID) bool {
	stack := []eqPair{{l: l, r: r}}
	var vars []eqVarPair

	for len(stack) > 0 {
		pair := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ln := a.Get(pair.l)
		rn := a.Get(pair.r)
		if ln.Kind != rn.Kind {
			return false
		}

		switch ln.Kind {
		case KindLiteral:
			if ln.Literal != rn.Literal {
				return false
			}

		case KindVariable:
			if ln.Var == rn.Var {
				continue
			}
			matched := slices.ContainsFunc(vars, func(vp eqVarPair) bool {
				return vp.l == ln.Var && vp.r == rn.Var
			})
			if !matched {
				return false
			}

		case KindFnDecl:
			if ln.Param != rn.Param {
				vars = append(vars, eqVarPair{l: ln.Param, r: rn.Param})
			}
			stack = append(stack, eqPair{l: ln.Body, r: rn.Body})

		case KindFnAppl:
			stack = append(stack, eqPair{l: ln.Func, r: rn.Func})
			stack = append(stack, eqPair{l: ln.Operand, r: rn.Operand})
		}
	}

	return true
}
