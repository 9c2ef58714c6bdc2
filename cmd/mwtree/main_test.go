package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"mwtree"}, args...))
	return out.String(), err
}

func TestSortCommands(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "-m", "2", "sort", "5", "1", "9", "3", "7", "5")
	assert.NoError(err)
	assert.Equal("1 3 5 7 9\n", out)

	out, err = runApp(t, "-m", "2", "reverse", "5", "1", "9", "3", "7")
	assert.NoError(err)
	assert.Equal("9 7 5 3 1\n", out)

	out, err = runApp(t, "-t", "float", "sort", "2.5", "0.5", "1")
	assert.NoError(err)
	assert.Equal("0.5 1 2.5\n", out)

	_, err = runApp(t, "sort")
	assert.Error(err)

	_, err = runApp(t, "sort", "1", "x")
	assert.Error(err)

	_, err = runApp(t, "-m", "0", "sort", "1")
	assert.Error(err)
}

func TestLevelsCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "-m", "2", "levels", "5", "1", "9", "3", "7")
	assert.NoError(err)
	assert.Equal("1 5 3 7 9\n", out)

	out, err = runApp(t, "-m", "1", "print", "2", "1")
	assert.NoError(err)
	assert.Contains(out, "tree root (max 1 per node)")
	assert.Contains(out, "node 1")
}

func TestFindCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "-m", "2", "find", "3", "5", "1", "9", "3", "7")
	assert.NoError(err)
	assert.Equal("found: 3\nprev: 1\nnext: 5\n", out)

	out, err = runApp(t, "find", "1", "1", "2")
	assert.NoError(err)
	assert.Equal("found: 1\nnext: 2\n", out)

	_, err = runApp(t, "find", "4", "1", "2")
	assert.ErrorIs(err, ErrNotFound)

	_, err = runApp(t, "find")
	assert.Error(err)
}

func TestCheckCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "-m", "2", "check", "5", "1", "9", "3", "7")
	assert.NoError(err)
	assert.Contains(out, "values: 5\n")
	assert.Contains(out, "nodes: 3\n")
	assert.Contains(out, "depth: 2\n")
	assert.Contains(out, "verified tree")
}

func TestFileFlag(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	ints := filepath.Join(dir, "ints.txt")
	require.NoError(t, os.WriteFile(ints, []byte("5 1\n# comment\n9\n"), 0644))
	out, err := runApp(t, "-f", ints, "sort", "3")
	assert.NoError(err)
	assert.Equal("1 3 5 9\n", out)

	names := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(names, []byte("San Francisco\nNew York\nBoston\n"), 0644))
	out, err = runApp(t, "-t", "string", "-f", names, "sort")
	assert.NoError(err)
	assert.Equal("Boston New York San Francisco\n", out)
}

func TestGenCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := runApp(t, "gen", "-n", "25", "--seed", "7")
	assert.NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(lines, 25)

	again, err := runApp(t, "gen", "-n", "25", "--seed", "7")
	assert.NoError(err)
	assert.Equal(out, again)

	out, err = runApp(t, "-t", "time", "gen", "-n", "3")
	assert.NoError(err)
	assert.Len(strings.Split(strings.TrimSpace(out), "\n"), 3)

	_, err = runApp(t, "-t", "complex", "gen")
	assert.Error(err)
}

func TestLogLevelFlag(t *testing.T) {
	assert := assert.New(t)

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run([]string{"mwtree", "--log-level", "DEBUG", "-m", "1", "sort", "2", "1"})
	assert.NoError(err)
	assert.Equal("1 2\n", out.String())
	assert.Contains(errOut.String(), `"msg":"allocated node"`)
	assert.Contains(errOut.String(), `"system":"mwtree"`)

	_, err = runApp(t, "--log-level", "loud", "sort", "1")
	assert.ErrorContains(err, "invalid --log-level")
}
