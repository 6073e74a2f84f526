package parsed

import (
	"fmt"
	"io"
	"strings"
)

// DebugTree writes an indented, tree-shaped listing of the parsed program to
// w: one line per node, `LIT:`/`VAR:`/`FN:`/`APPL:` tagged, children indented
// two spaces deeper than their parent. It never touches the reduced arena;
// it is pure presentation over the external parsed-tree contract, useful for
// `typed reduce -d` to show what the parser produced before Build runs.
func (r Root) DebugTree(w io.Writer) error {
	for _, b := range r.Bindings {
		if _, err := fmt.Fprintf(w, "LET %s =\n", b.Name); err != nil {
			return err
		}
		if err := debugExpr(w, b.Expr, 1); err != nil {
			return err
		}
	}
	return debugExpr(w, r.Expr, 0)
}

func debugExpr(w io.Writer, expr Expr, indent int) error {
	pad := strings.Repeat("  ", indent)
	switch e := expr.(type) {
	case Literal:
		if e.Lit.Unit {
			_, err := fmt.Fprintf(w, "%sLIT: ()\n", pad)
			return err
		}
		_, err := fmt.Fprintf(w, "%sLIT: %d\n", pad, e.Lit.Value)
		return err
	case Variable:
		_, err := fmt.Fprintf(w, "%sVAR: %s\n", pad, e.Name)
		return err
	case *FnDecl:
		if _, err := fmt.Fprintf(w, "%sFN: (%s)\n", pad, strings.Join(e.Args, ", ")); err != nil {
			return err
		}
		for _, b := range e.Bindings {
			if _, err := fmt.Fprintf(w, "%s  LET %s =\n", pad, b.Name); err != nil {
				return err
			}
			if err := debugExpr(w, b.Expr, indent+2); err != nil {
				return err
			}
		}
		return debugExpr(w, e.Expr, indent+1)
	case *FnAppl:
		if _, err := fmt.Fprintf(w, "%sAPPL:\n", pad); err != nil {
			return err
		}
		if err := debugExpr(w, e.Func, indent+1); err != nil {
			return err
		}
		for _, a := range e.Args {
			if err := debugExpr(w, a, indent+1); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%s<unknown expr %T>\n", pad, expr)
		return err
	}
}
