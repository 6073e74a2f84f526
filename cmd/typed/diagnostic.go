package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"

	"github.com/hashedone/typed/ast"
	"github.com/hashedone/typed/reporter"
)

// renderDiagnostic prints err, wrapped as a reporter.Diagnostic, to w. When
// err unwraps to an *ast.BuildError naming an offending identifier, it
// looks up the identifier's first occurrence in src and underlines it —
// standing in for the Rust binary's ariadne report, minus span tracking
// the parsed-tree contract doesn't carry.
func renderDiagnostic(w io.Writer, colorMode string, src string, diag reporter.Diagnostic) {
	bold := color.New(color.FgRed, color.Bold)
	plain := color.New(color.Reset)
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	bold.Fprintf(w, "error in %s: ", diag.Phase())
	plain.Fprintln(w, diag.Unwrap())

	var buildErr *ast.BuildError
	if errors.As(diag, &buildErr) && buildErr.Kind == ast.UnboundVariable && buildErr.Name != "" {
		printUnderline(w, src, buildErr.Name)
	}
}

// printUnderline finds the first line of src containing name as a whole
// word and prints it followed by a caret underline aligned on grapheme
// clusters, so combining characters elsewhere on the line don't throw off
// the column math.
func printUnderline(w io.Writer, src, name string) {
	isIdent := func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }
	for _, line := range strings.Split(src, "\n") {
		for off := 0; ; {
			i := strings.Index(line[off:], name)
			if i < 0 {
				break
			}
			col := off + i
			before, _ := utf8.DecodeLastRuneInString(line[:col])
			after, _ := utf8.DecodeRuneInString(line[col+len(name):])
			if isIdent(before) || isIdent(after) {
				off = col + len(name)
				continue
			}
			fmt.Fprintln(w, line)
			fmt.Fprintln(w, strings.Repeat(" ", uniseg.GraphemeClusterCount(line[:col]))+
				strings.Repeat("^", uniseg.GraphemeClusterCount(name)))
			return
		}
	}
}
