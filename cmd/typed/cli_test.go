package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLIVersion(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestCLIReduceStdin(t *testing.T) {
	out, err := runCLI(t, "let id = fn(x){ x }; id(42)\n", "reduce")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestCLIReduceStdinUnboundVariable(t *testing.T) {
	_, err := runCLI(t, "nope\n", "reduce")
	assert.Error(t, err)
}

func TestCLIConfigDump(t *testing.T) {
	out, err := runCLI(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "log_level: info")
	assert.Contains(t, out, "color: auto")
}
