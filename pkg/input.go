package csslex

import (
	"bufio"
	"io"
	"os"
)

const bom = 0xFEFF

// WriteString decodes a UTF-8 chunk and feeds its code points into the
// tokenizer. A byte order mark at the very start of the stream is skipped.
func (l *Lexer) WriteString(s string) error {
	for _, c := range s {
		if c == bom && len(l.src) == 0 && !l.lastCR {
			continue
		}
		if err := l.push(c); err != nil {
			return err
		}
	}

	return nil
}

// TokenizeString tokenizes a complete source string. In strict mode the
// returned tokenizer holds the tokens emitted before the error.
func TokenizeString(src string, opts ...Option) (*Tokenizer, error) {
	t, err := NewTokenizer(opts...)
	if err != nil {
		return nil, err
	}

	if err := t.WriteString(src); err != nil {
		return t, err
	}
	if err := t.End(); err != nil {
		return t, err
	}

	return t, nil
}

// TokenizeReader tokenizes the UTF-8 stream read from r.
func TokenizeReader(r io.Reader, opts ...Option) (*Tokenizer, error) {
	t, err := NewTokenizer(opts...)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(r)
	first := true
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return t, err
		}

		if first && c == bom {
			first = false
			continue
		}
		first = false

		if err := t.push(c); err != nil {
			return t, err
		}
	}

	if err := t.End(); err != nil {
		return t, err
	}

	return t, nil
}

// TokenizeFile tokenizes the file at the provided path. The path might be
// relative or absolute.
func TokenizeFile(path string, opts ...Option) (*Tokenizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return TokenizeReader(f, opts...)
}
