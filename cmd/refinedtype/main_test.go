package main

import (
	"bytes"
	"testing"

	"github.com/funvibe/refinedtype/internal/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "classify", ".nan", "[1, 2]", "!regexp /a/g", "~")
	require.NoError(t, err)
	assert.Equal(t, "NaN\tNaN\n[1, 2]\tarray\n/a/g\tregexp\nnull\tnull\n", out)
}

func TestClassifyCommandBadLiteral(t *testing.T) {
	_, err := execute(t, "classify", "!nope 1")
	assert.Error(t, err)
}

func TestClassifyCommandRegExpSyntax(t *testing.T) {
	out, err := execute(t, "classify", "!regexp /(?=a)b/", `!regexp /(a)\1/`)
	require.NoError(t, err)
	assert.Equal(t, "/(?=a)b/\tregexp\n/(a)\\1/\tregexp\n", out)
}

func TestCountCommand(t *testing.T) {
	out, err := execute(t, "count", "true", "~", "false", "true", "{}")
	require.NoError(t, err)
	assert.Equal(t, "{boolean=3 null=1 object=1}\nsame native type: false\nunique refined types: false\n", out)

	out, err = execute(t, "count")
	require.NoError(t, err)
	assert.Contains(t, out, "no values\n")
	assert.Contains(t, out, "same native type: true\n")
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS grouped counts\n")
	assert.NotContains(t, out, "FAIL")

	suite, err := harness.DefaultSuite()
	require.NoError(t, err)
	assert.Contains(t, out, "ok: ")
	assert.Contains(t, out, " 0 failed")
	assert.Greater(t, len(suite.Scenarios), 0)
}
