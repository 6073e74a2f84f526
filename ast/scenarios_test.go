package ast_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/hashedone/typed/ast"
	"github.com/hashedone/typed/parsed"
)

// scenario is one end-to-end case from the testable-properties table:
// a parsed program and the Display string its reduction must produce.
type scenario struct {
	name string
	root parsed.Root
	want string
}

func scenarios() []scenario {
	return []scenario{
		{
			name: "unit literal",
			root: root(nil, unit()),
			want: "()",
		},
		{
			name: "identity applied to a literal",
			root: root(
				[]parsed.Binding{let("id", fn(v("x"), "x"))},
				call(v("id"), lit(42)),
			),
			want: "42",
		},
		{
			name: "const function, multiple arguments",
			root: root(
				[]parsed.Binding{let("k", fn(v("x"), "x", "y"))},
				call(v("k"), lit(1), lit(2)),
			),
			want: "1",
		},
		{
			name: "curried const function",
			root: root(
				[]parsed.Binding{let("a", fn(fn(v("x"), "y"), "x"))},
				call(call(v("a"), lit(7)), lit(9)),
			),
			want: "7",
		},
	}
}

// TestEndToEndScenarios walks the testable-properties scenario table
// (spec §8, rows 1-4 — rows 5 and 6 have implementation-defined variable
// ids and are covered separately in build_test.go). On mismatch it prints
// a unified diff via go-difflib so the failure is readable without a
// separate diff tool.
func TestEndToEndScenarios(t *testing.T) {
	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			result, err := ast.BuildRoot(sc.root)
			require.NoError(t, err)

			got := result.String()
			if diff := cmp.Diff(sc.want, got); diff != "" {
				unified, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(sc.want),
					B:        difflib.SplitLines(got),
					FromFile: "want",
					ToFile:   "got",
					Context:  2,
				})
				t.Fatalf("display mismatch (-want +got):\n%s\n%s", diff, unified)
			}
		})
	}
}

// TestBuildIsDeterministic checks that building the same source program
// twice produces the same Display output both times — Build, Alpha and
// Beta have no hidden global state that would make output depend on call
// order.
func TestBuildIsDeterministic(t *testing.T) {
	for _, sc := range scenarios() {
		first, err := ast.BuildRoot(sc.root)
		require.NoError(t, err)
		second, err := ast.BuildRoot(sc.root)
		require.NoError(t, err)

		if diff := cmp.Diff(first.String(), second.String()); diff != "" {
			t.Fatalf("%s: build is not deterministic (-first +second):\n%s", sc.name, diff)
		}
	}
}

func ExampleAst_String() {
	result, err := ast.BuildRoot(root(
		[]parsed.Binding{let("id", fn(v("x"), "x"))},
		call(v("id"), lit(42)),
	))
	if err != nil {
		panic(err)
	}
	fmt.Println(result.String())
	// Output: 42
}
