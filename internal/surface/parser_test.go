package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashedone/typed/ast"
	"github.com/hashedone/typed/internal/surface"
)

func buildDisplay(t *testing.T, src string) string {
	t.Helper()
	root, err := surface.Parse(src)
	require.NoError(t, err)
	result, err := ast.BuildRoot(root)
	require.NoError(t, err)
	return result.String()
}

func TestSurfaceScenarios(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"()", "()"},
		{"let id = fn(x){ x }; id(42)", "42"},
		{"let k = fn(x,y){ x }; k(1,2)", "1"},
		{"let a = fn(x){ fn(y){ x } }; a(7)(9)", "7"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			assert.Equal(t, c.want, buildDisplay(t, c.src))
		})
	}
}

func TestSurfaceRejectsEmptyFnArgs(t *testing.T) {
	_, err := surface.Parse("fn(){ () }")
	assert.Error(t, err)
}

func TestSurfaceRejectsUnexpectedTrailingInput(t *testing.T) {
	_, err := surface.Parse("() ()")
	assert.Error(t, err)
}

func TestSurfaceRejectsEmptyCallArgs(t *testing.T) {
	_, err := surface.Parse("let f = fn(x){ x }; f()")
	assert.Error(t, err)
}
