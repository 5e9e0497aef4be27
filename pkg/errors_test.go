package csslex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexErrorMessage(t *testing.T) {
	_, err := TokenizeString("a { x: \"broken\nvalue; }", Recovery(false))
	require.Error(t, err)

	lerr, ok := err.(*LexError)
	require.True(t, ok)

	assert.Equal(t, ErrUnterminatedString, lerr.Kind)
	assert.Equal(t, Position{1, 15}, lerr.Pos)
	assert.Equal(t, "a { x: ", lerr.Context)
	assert.Equal(t, `"broken `, lerr.Offense) // the line feed renders as a space

	msg := err.Error()
	assert.Contains(t, msg, "parse error at 1:15: unterminated string")
	assert.Contains(t, msg, `a { x: "broken`)
	assert.Contains(t, msg, "https://www.w3.org/TR/css-syntax-3/#consume-string-token")
}

func TestLexErrorPointerAlignment(t *testing.T) {
	_, err := TokenizeString("ab \"x", Recovery(false))
	require.Error(t, err)

	lines := strings.Split(err.Error(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	// The caret line points at the first offending code point.
	snippet, caret := lines[1], lines[2]
	assert.Equal(t, "\tab \"x", snippet)
	assert.Equal(t, "\t   ^", caret)
}

func TestLexErrorSnippetBounds(t *testing.T) {
	long := strings.Repeat("a", 100)
	_, err := TokenizeString(long+" \""+long, Recovery(false))
	require.Error(t, err)

	lerr := err.(*LexError)
	assert.LessOrEqual(t, len([]rune(lerr.Context)), snippetMax)
	assert.LessOrEqual(t, len([]rune(lerr.Offense)), snippetMax)
}

func TestLexErrorLocationOnLaterLine(t *testing.T) {
	_, err := TokenizeString("a {\n  b: url(x'y);\n}", Recovery(false))
	require.Error(t, err)

	lerr := err.(*LexError)
	assert.Equal(t, ErrBadURL, lerr.Kind)
	assert.Equal(t, 2, lerr.Pos.Line)
}

func TestErrorKindRefs(t *testing.T) {
	kinds := []ErrorKind{
		ErrInvalidEscape,
		ErrUnterminatedString,
		ErrBadURL,
		ErrUnterminatedComment,
	}

	for _, k := range kinds {
		assert.True(t, strings.HasPrefix(k.Ref(), "https://www.w3.org/TR/css-syntax-3/"))
		assert.NotEqual(t, "unknown error", k.String())
	}
}

func TestRecoveredErrorsAccumulate(t *testing.T) {
	l := mustLex(t, "\"a\n\"b\nurl(c(d)")

	var kinds []ErrorKind
	for _, e := range l.Errors() {
		kinds = append(kinds, e.Kind)
	}

	assert.Equal(t, []ErrorKind{
		ErrUnterminatedString,
		ErrUnterminatedString,
		ErrBadURL,
	}, kinds)
}
