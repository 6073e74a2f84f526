package ast

import "golang.org/x/exp/slices"

// subst records that occurrences of `variable` should be replaced by a
// (shallow) copy of `value` — captured once, up front, as a Node value
// rather than a NodeID, so that every occurrence substituted from the same
// entry shares the replacement's children. This is the same kind of
// intentional sharing Beta's recursion guard introduces: the Arena is a DAG,
// not strictly a tree, and walkers must tolerate that.
type subst struct {
	variable Variable
	value    Node
}

// substFrame is one entry of Beta's inner substitution work stack.
type substFrame struct {
	id       NodeID
	savedLen int
}

// selfApplicationRisk reports whether fn — already known to be a FnDecl —
// has the shape the recursion guard exists for: a body that applies fn's
// own parameter to something, in function position (the canonical
// `λx. x x`). Equivalence of func and arg alone is not enough to justify
// refusing to reduce: substituting an ordinary value for x, even one
// equivalent to fn itself, normally makes progress (e.g. (λx.x)(λx.x)
// reduces to λx.x in one step). It is only when the body would re-invoke
// the substituted value as a function that repeating the substitution can
// regenerate an equivalent redex forever.
func selfApplicationRisk(a *Arena, fn Node) bool {
	body := a.Get(fn.Body)
	if body.Kind != KindFnAppl {
		return false
	}
	head := a.Get(body.Func)
	return head.Kind == KindVariable && head.Var == fn.Param
}

// Beta β-reduces e: if e is a redex `(λx.e1) e2` it rewrites it to
// `e1[x := e2]`, and keeps rewriting the redexes that substitution produces,
// until none remains or the recursion guard (selfApplicationRisk together
// with Equivalent) determines that reducing one would diverge. The argument
// of a redex taken from the worklist is substituted as-is: every occurrence
// of x becomes a copy of the argument's node, sharing its children. A nested
// redex met during the substitution walk is reduced in the same walk, after
// its argument has been Alpha-refreshed once.
//
// Beta does not search a term that is not itself a redex: if e is a FnDecl,
// or an application whose func is not a FnDecl, the result is an unchanged
// clone, so redexes under e's own binders are left alone. The substitution
// walk does descend under the binders of the body being substituted into and
// reduces the redexes it meets there. Only applications whose func position
// is directly a FnDecl are ever rewritten. It never mutates a node the caller
// still holds elsewhere: every id it writes to was created by a Clone call
// within this same call.
func (a *Arena) Beta(e NodeID) NodeID {
	result := a.Clone(e)
	applications := []NodeID{result}

	for len(applications) > 0 {
		root := applications[len(applications)-1]
		applications = applications[:len(applications)-1]

		appl := a.Get(root)
		if appl.Kind != KindFnAppl {
			continue
		}
		fn := a.Get(appl.Func)
		if fn.Kind != KindFnDecl {
			continue
		}

		if selfApplicationRisk(a, fn) && Equivalent(a, appl.Func, appl.Operand) {
			// (λx. x x)-shaped redex applied to an equivalent argument:
			// reducing it would only ever regenerate another copy of the
			// same shape. Alias the two sides instead of substituting, and
			// leave the redex in place.
			appl.Operand = appl.Func
			a.Set(root, appl)
			continue
		}

		// Start a fresh substitution: param -> a snapshot of the
		// argument's node. Overwrite root's slot with the lambda's body;
		// the original FnAppl record is no longer reachable from root.
		a.Set(root, a.Get(fn.Body))

		substs := []subst{{variable: fn.Param, value: a.Get(appl.Operand)}}
		stack := []substFrame{{id: root, savedLen: len(substs)}}

		for len(stack) > 0 {
			frame := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			substs = slices.Delete(substs, frame.savedLen, len(substs))

			node := a.Get(frame.id)
			switch node.Kind {
			case KindLiteral:
				// Nothing to substitute.

			case KindVariable:
				for i := len(substs) - 1; i >= 0; i-- {
					if substs[i].variable == node.Var {
						a.Set(frame.id, substs[i].value)
						break
					}
				}

			case KindFnDecl:
				node.Body = a.Clone(node.Body)
				a.Set(frame.id, node)
				stack = append(stack, substFrame{id: node.Body, savedLen: len(substs)})

			case KindFnAppl:
				innerFn := a.Get(node.Func)
				if innerFn.Kind == KindFnDecl && !(selfApplicationRisk(a, innerFn) && Equivalent(a, node.Func, node.Operand)) {
					// A nested redex surfaced by substitution: fold it
					// into the same substitution environment instead of
					// waiting for a later top-level pass to find it.
					argAlpha := a.Alpha(node.Operand)
					substs = append(substs, subst{variable: innerFn.Param, value: a.Get(argAlpha)})
					a.Set(frame.id, a.Get(innerFn.Body))
					stack = append(stack, substFrame{id: frame.id, savedLen: len(substs)})
				} else {
					node.Func = a.Clone(node.Func)
					node.Operand = a.Clone(node.Operand)
					a.Set(frame.id, node)
					stack = append(stack, substFrame{id: node.Func, savedLen: len(substs)})
					stack = append(stack, substFrame{id: node.Operand, savedLen: len(substs)})
					// Re-examine this node as a possible top-level redex
					// once its children have settled.
					applications = append(applications, frame.id)
				}
			}
		}
	}

	return result
}
