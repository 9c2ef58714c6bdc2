package valueio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestTokens(t *testing.T) {
	assert := assert.New(t)

	input := "1 2\t3\n# full line comment\n\n4 # trailing\n  5  \n"
	toks, err := Tokens(strings.NewReader(input), false)
	assert.NoError(err)
	assert.Equal([]Token{
		{Text: "1", Line: 1},
		{Text: "2", Line: 1},
		{Text: "3", Line: 1},
		{Text: "4", Line: 4},
		{Text: "5", Line: 5},
	}, toks)

	input = "New York\n  # comment\nSan Francisco  \n\n"
	toks, err = Tokens(strings.NewReader(input), true)
	assert.NoError(err)
	assert.Equal([]Token{
		{Text: "New York", Line: 1},
		{Text: "San Francisco", Line: 3},
	}, toks)
}

func TestRead(t *testing.T) {
	assert := assert.New(t)

	vals, err := Read(strings.NewReader("2024-01-02 10:00:00\n2023-06-30\n"), "dates", KindTime)
	assert.NoError(err)
	assert.Len(vals, 2)
	assert.True(Less(vals[1], vals[0]))

	_, err = Read(strings.NewReader("1 2\n3 x\n"), "nums", KindInt)
	assert.ErrorIs(err, ErrInvalidValue)
	assert.Contains(err.Error(), "nums:2:")
}

func TestReadLongLine(t *testing.T) {
	assert := assert.New(t)

	// well past bufio's default 64 KiB token limit
	vals, err := Read(strings.NewReader(strings.Repeat("123456 ", 20000)+"\n7\n"), "big", KindInt)
	require.NoError(t, err)
	assert.Len(vals, 20001)
	assert.Equal(Int(123456), vals[0])
	assert.Equal(Int(7), vals[20000])

	toks, err := Tokens(strings.NewReader(strings.Repeat("x", 100*1024)+"\n"), true)
	require.NoError(t, err)
	assert.Len(toks, 1)
	assert.Len(toks[0].Text, 100*1024)
}

func TestLoadFiles(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	paths := []string{
		writeFile(t, dir, "a.txt", "5 1\n9"),
		writeFile(t, dir, "b.txt", "# nothing here\n"),
		writeFile(t, dir, "c.txt", "3\n7\n"),
	}
	vals, err := LoadFiles(ctx, KindInt, paths)
	require.NoError(t, err)
	assert.Equal([]Value{Int(5), Int(1), Int(9), Int(3), Int(7)}, vals)

	vals, err = LoadFiles(ctx, KindInt, nil)
	assert.NoError(err)
	assert.Empty(vals)

	bad := writeFile(t, dir, "bad.txt", "1\n2\nthree\n")
	_, err = LoadFiles(ctx, KindInt, append(paths, bad))
	assert.ErrorIs(err, ErrInvalidValue)
	assert.Contains(err.Error(), "bad.txt:3:")

	_, err = LoadFiles(ctx, KindInt, []string{filepath.Join(dir, "missing.txt")})
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestLoadFilesCanceled(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadFiles(ctx, KindInt, []string{writeFile(t, dir, "a.txt", "1")})
	assert.ErrorIs(err, context.Canceled)
}
