package ast

// varMapping records that one α-conversion pass has decided to rename
// `from` to `to`.
type varMapping struct {
	from, to Variable
}

// alphaFrame is one entry of Alpha's explicit work stack: the node to
// (re-)visit, and the mapping-list length to truncate back to before
// visiting it — this is how shadowing within a single α pass is handled:
// scanning newest-to-oldest finds the innermost rename in scope, and
// truncating on pop discards mappings that belong to a sibling subtree.
type alphaFrame struct {
	id       NodeID
	savedLen int
}

// Alpha clones e, renaming every λ-binder it contains to a freshly
// allocated variable id and rewriting every bound occurrence of that binder
// to match. Free variables of the result are identical to those of e. No
// node reachable from e is mutated; Alpha only ever writes to ids it just
// cloned itself.
//
// The output is always structurally equivalent to the input modulo
// renaming: Equivalent(a, e, a.Alpha(e)) is true for any e.
func (a *Arena) Alpha(e NodeID) NodeID {
	root := a.Clone(e)

	stack := []alphaFrame{{id: root, savedLen: 0}}
	var mapping []varMapping

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		mapping = mapping[:frame.savedLen]

		node := a.Get(frame.id)
		switch node.Kind {
		case KindLiteral:
			// Nothing to rename.

		case KindVariable:
			for i := len(mapping) - 1; i >= 0; i-- {
				if mapping[i].from == node.Var {
					node.Var = mapping[i].to
					a.Set(frame.id, node)
					break
				}
			}

		case KindFnDecl:
			fresh := a.DuplicateVariable(node.Param)
			mapping = append(mapping, varMapping{from: node.Param, to: fresh})
			node.Param = fresh
			node.Body = a.Clone(node.Body)
			a.Set(frame.id, node)
			stack = append(stack, alphaFrame{id: node.Body, savedLen: len(mapping)})

		case KindFnAppl:
			node.Func = a.Clone(node.Func)
			node.Operand = a.Clone(node.Operand)
			a.Set(frame.id, node)
			stack = append(stack, alphaFrame{id: node.Func, savedLen: len(mapping)})
			stack = append(stack, alphaFrame{id: node.Operand, savedLen: len(mapping)})
		}
	}

	return root
}
