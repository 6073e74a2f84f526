package ast

import (
	"strconv"
	"strings"
)

// Display renders id in λ-notation: a Variable prints as its name hint (or
// `_<id>` if it has none), a unit Literal prints as `()`, an unsigned
// Literal prints in decimal, an FnAppl prints as `(f a)`, and an FnDecl
// prints as `\x. b` with no outer parentheses — so a top-level FnDecl
// never grows a redundant parenthesis pair, but one nested inside an
// application always does, since FnAppl always parenthesizes both sides.
func (a *Arena) Display(id NodeID) string {
	var b strings.Builder
	a.display(&b, id)
	return b.String()
}

// String renders the program's root, equivalent to Arena.Display(Root).
func (t *Ast) String() string {
	return t.Arena.Display(t.Root)
}

func (a *Arena) display(b *strings.Builder, id NodeID) {
	node := a.Get(id)
	switch node.Kind {
	case KindLiteral:
		if node.Literal.Unit {
			b.WriteString("()")
		} else {
			b.WriteString(strconv.FormatUint(node.Literal.Value, 10))
		}

	case KindVariable:
		b.WriteString(a.VariableName(node.Var))

	case KindFnDecl:
		b.WriteByte('\\')
		b.WriteString(a.VariableName(node.Param))
		b.WriteString(". ")
		a.display(b, node.Body)

	case KindFnAppl:
		b.WriteByte('(')
		a.display(b, node.Func)
		b.WriteByte(' ')
		a.display(b, node.Operand)
		b.WriteByte(')')
	}
}
