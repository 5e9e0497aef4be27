package csslex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDriverRun(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.css", "a { color: red }")
	b := writeFixture(t, dir, "b.css", "#nav > li::before { content: \"*\" }")

	d := NewDriver()
	results, err := d.Run(a, b)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, a, results[0].Path)
	assert.Equal(t, b, results[1].Path)

	assert.Equal(t, TokenIdent, results[0].Lex.Kind(0))
	assert.Empty(t, results[0].Errors)

	assert.Equal(t, TokenHash, results[1].Lex.Kind(0))
	assert.True(t, results[1].Lex.HashIsID(0))
	assert.Empty(t, results[1].Errors)
}

func TestDriverCollectsParseErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, dir, "good.css", "a{}")
	bad := writeFixture(t, dir, "bad.css", "a { content: \"oops }")

	d := NewDriver(Recovery(false))
	results, err := d.Run(good, bad)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Empty(t, results[0].Errors)
	require.Len(t, results[1].Errors, 1)
	assert.Equal(t, ErrUnterminatedString, results[1].Errors[0].Kind)
}

func TestDriverMissingFile(t *testing.T) {
	d := NewDriver()
	_, err := d.Run(filepath.Join(t.TempDir(), "missing.css"))
	assert.Error(t, err)
}

func TestDriverInvalidOptions(t *testing.T) {
	d := NewDriver(Size(-1))

	dir := t.TempDir()
	path := writeFixture(t, dir, "a.css", "a{}")

	_, err := d.Run(path)
	assert.Error(t, err)
}
