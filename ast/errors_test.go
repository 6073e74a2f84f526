package ast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hashedone/typed/ast"
)

func TestBuildErrorIsMatchesOnKindOnly(t *testing.T) {
	a := &ast.BuildError{Kind: ast.UnboundVariable, Name: "foo"}
	b := &ast.BuildError{Kind: ast.UnboundVariable, Name: "bar"}

	assert.True(t, errors.Is(a, b))
	assert.True(t, errors.Is(a, ast.ErrUnboundVariable))
	assert.False(t, errors.Is(a, ast.ErrNoArguments))
}

func TestBuildErrorMessages(t *testing.T) {
	assert.Equal(t, `unbound variable "x"`, (&ast.BuildError{Kind: ast.UnboundVariable, Name: "x"}).Error())
	assert.Equal(t, "fn declaration has no arguments", (&ast.BuildError{Kind: ast.NoArguments}).Error())
	assert.Equal(t, "close_frame called with no matching new_frame", (&ast.BuildError{Kind: ast.UnbalancedFrame}).Error())
}
