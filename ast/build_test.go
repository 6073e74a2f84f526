package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashedone/typed/ast"
	"github.com/hashedone/typed/parsed"
)

// lit builds a parsed.Literal for an unsigned value.
func lit(v uint64) parsed.Expr { return parsed.Literal{Lit: parsed.Lit{Value: v}} }

// unit builds a parsed.Literal for the unit value.
func unit() parsed.Expr { return parsed.Literal{Lit: parsed.Lit{Unit: true}} }

// v builds a parsed.Variable reference.
func v(name string) parsed.Expr { return parsed.Variable{Name: name} }

// fn builds a multi-argument fn declaration with no inner bindings.
func fn(body parsed.Expr, args ...string) parsed.Expr {
	return &parsed.FnDecl{Args: args, Expr: body}
}

// fnLet builds a multi-argument fn declaration with inner bindings.
func fnLet(bindings []parsed.Binding, body parsed.Expr, args ...string) parsed.Expr {
	return &parsed.FnDecl{Args: args, Bindings: bindings, Expr: body}
}

// call builds a multi-argument application.
func call(f parsed.Expr, args ...parsed.Expr) parsed.Expr {
	return &parsed.FnAppl{Func: f, Args: args}
}

// let builds a single top-level binding.
func let(name string, expr parsed.Expr) parsed.Binding {
	return parsed.Binding{Name: name, Expr: expr}
}

func root(bindings []parsed.Binding, expr parsed.Expr) parsed.Root {
	return parsed.Root{Bindings: bindings, Expr: expr}
}

func TestBuildScenarioUnit(t *testing.T) {
	result, err := ast.BuildRoot(root(nil, unit()))
	require.NoError(t, err)
	assert.Equal(t, "()", result.String())
}

func TestBuildScenarioIdentity(t *testing.T) {
	// let id = fn(x){ x }; id(42)
	program := root(
		[]parsed.Binding{let("id", fn(v("x"), "x"))},
		call(v("id"), lit(42)),
	)
	result, err := ast.BuildRoot(program)
	require.NoError(t, err)
	assert.Equal(t, "42", result.String())
}

func TestBuildScenarioConstFunctionMultiArg(t *testing.T) {
	// let k = fn(x,y){ x }; k(1,2)
	program := root(
		[]parsed.Binding{let("k", fn(v("x"), "x", "y"))},
		call(v("k"), lit(1), lit(2)),
	)
	result, err := ast.BuildRoot(program)
	require.NoError(t, err)
	assert.Equal(t, "1", result.String())
}

func TestBuildScenarioCurriedConst(t *testing.T) {
	// let a = fn(x){ fn(y){ x } }; a(7)(9)
	program := root(
		[]parsed.Binding{let("a", fn(fn(v("x"), "y"), "x"))},
		call(call(v("a"), lit(7)), lit(9)),
	)
	result, err := ast.BuildRoot(program)
	require.NoError(t, err)
	assert.Equal(t, "7", result.String())
}

func TestBuildScenarioSelfApplyIdentityViaParam(t *testing.T) {
	// fn(f){ f(f) }(fn(x){ x })
	program := root(nil, call(
		fn(call(v("f"), v("f")), "f"),
		fn(v("x"), "x"),
	))
	result, err := ast.BuildRoot(program)
	require.NoError(t, err)

	// The exact variable id is implementation-defined; the shape must be
	// α-equivalent to λx. x.
	again, err := ast.BuildRoot(root(nil, fn(v("x"), "x")))
	require.NoError(t, err)
	assert.True(t, ast.Equivalent(result.Arena, result.Root, again.Root),
		"got %s", result.String())
}

func TestBuildScenarioRecursionGuard(t *testing.T) {
	// (fn(x){ x(x) })(fn(x){ x(x) })
	selfAppl := fn(call(v("x"), v("x")), "x")
	program := root(nil, call(selfAppl, selfAppl))
	result, err := ast.BuildRoot(program)
	require.NoError(t, err)

	node := result.Arena.Get(result.Root)
	assert.Equal(t, ast.KindFnAppl, node.Kind)
	// The guard aliases both sides of the redex to the same node: the
	// reduction is left in place, pointing to itself, rather than expanded.
	assert.Equal(t, node.Func, node.Operand)
}

func TestBuildUnboundVariable(t *testing.T) {
	_, err := ast.BuildRoot(root(nil, v("nope")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ast.ErrUnboundVariable)

	var buildErr *ast.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "nope", buildErr.Name)
}

func TestBuildNoArguments(t *testing.T) {
	_, err := ast.BuildRoot(root(nil, &parsed.FnDecl{Args: nil, Expr: unit()}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ast.ErrNoArguments)
}

func TestBuildInnerBindingsShadowedByFormals(t *testing.T) {
	// fn(x){ let x = 99; x }(1) — the formal x shadows the inner binding
	// bound under the same name, per the build order in §4.2: inner
	// bindings are bound before the function's own formals.
	program := root(nil, call(
		fnLet([]parsed.Binding{let("x", lit(99))}, v("x"), "x"),
		lit(1),
	))
	result, err := ast.BuildRoot(program)
	require.NoError(t, err)
	assert.Equal(t, "1", result.String())
}
