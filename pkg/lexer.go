package csslex

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// EOF is handed to the current state exactly once, after the last code point
// of the stream has been consumed. It is never stored in the source buffer.
const EOF rune = -1

// DefaultSize is the default capacity hint, in code points, used when no Size
// option is given.
const DefaultSize = 65536

// DebugLexing is the only accepted value for the Debug option. When set, every
// emitted token is logged in tabular form.
const DebugLexing = "lexing"

// stateFn is a lexical state. A state receives one code point (or [EOF]) and
// returns the state that should receive the next one. States are bound methods
// of the tokenizer that owns them, so the transient lexing fields travel with
// the receiver rather than with the function value.
type stateFn func(c rune) stateFn

// Position records the origin of a code point inside the input stream. Lines
// and columns are 1-based and counted over the normalized stream, so a CR LF
// pair advances the line exactly once.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

type config struct {
	size    int
	recover bool
	debug   string
	legacy  bool
}

// Option configures a tokenizer at construction time.
type Option func(*config)

// Size declares the expected input length in code points. It is a capacity
// hint only; inputs larger than the hint grow the buffers by doubling.
func Size(n int) Option {
	return func(c *config) { c.size = n }
}

// Recovery selects the error policy. When on, parse errors accrete on the
// tokenizer and lexing continues in a well-defined recovery state; when off,
// the first parse error is fatal and the tokenizer refuses further input.
func Recovery(on bool) Option {
	return func(c *config) { c.recover = on }
}

// Debug enables a debugging mode. The only recognized mode is [DebugLexing].
func Debug(mode string) Option {
	return func(c *config) { c.debug = mode }
}

// Legacy enables the historical CSS token kinds (the match operators, column,
// and unicode-range). Without it the match operators and column decompose
// into delim tokens, and a unicode-range spelling lexes as ordinary ident,
// number and delim tokens.
func Legacy(on bool) Option {
	return func(c *config) { c.legacy = on }
}

// Lexer is the generic streaming core: it owns the normalized source buffer,
// the per-code-point positions, the token store, and the current state. It is
// push-driven and single-threaded; one producer owns one instance. Concrete
// tokenizers embed it and supply the states.
//
// The source buffer holds the stream after preprocessing: U+0000 becomes
// U+FFFD, form feed and carriage return become line feed, and a line feed
// directly following a carriage return is dropped. Indices into the buffer
// identify positions in the input, and tokens tile it without gaps.
type Lexer struct {
	src   []rune
	marks []Position
	store tokenStore

	// cursor is the index one past the code point currently being consumed.
	// It trails len(src) only while reconsumed code points are replayed.
	cursor int

	line, col int
	lastCR    bool
	eof       bool

	state   stateFn
	initial stateFn

	escaped bool // the token being accreted decoded at least one escape

	errs      []*LexError
	fatal     *LexError
	recovers  bool
	debugging bool
	log       *logrus.Logger
}

// newLexer builds the core with pre-sized buffers. The zero config carries the
// base policy: errors fatal, no debugging.
func newLexer(cfg config) Lexer {
	size := cfg.size
	if size <= 0 {
		size = DefaultSize
	}

	l := Lexer{
		src:      make([]rune, 0, size),
		marks:    make([]Position, 0, size),
		store:    newTokenStore(size),
		line:     1,
		col:      1,
		recovers: cfg.recover,
	}

	if cfg.debug == DebugLexing {
		l.debugging = true
		l.log = logrus.New()
		l.log.SetLevel(logrus.DebugLevel)
	}

	return l
}

// WriteRunes feeds a chunk of raw code points into the tokenizer. It returns
// the first fatal error raised while consuming the chunk; the remainder of the
// chunk is discarded in that case. Splitting the input into chunks at any
// boundary yields the same token sequence as a single chunk.
func (l *Lexer) WriteRunes(chunk []rune) error {
	for _, c := range chunk {
		if err := l.push(c); err != nil {
			return err
		}
	}

	return nil
}

// push normalizes one incoming code point, records it, and hands it to the
// current state.
func (l *Lexer) push(c rune) error {
	if l.fatal != nil {
		return l.fatal
	}

	if l.lastCR && c == '\n' {
		// The line feed of a CR LF pair; the CR was already stored as LF.
		l.lastCR = false
		return nil
	}
	l.lastCR = c == '\r'

	switch c {
	case 0x00:
		c = 0xFFFD
	case '\f', '\r':
		c = '\n'
	}

	l.src = append(l.src, c)
	l.marks = append(l.marks, Position{l.line, l.col})
	l.cursor = len(l.src)

	l.state = l.state(c)
	if l.fatal != nil {
		return l.fatal
	}

	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return nil
}

// End signals end-of-input. The current state either completes its token or
// raises a parse error; nothing happens implicitly. End is idempotent.
func (l *Lexer) End() error {
	if l.fatal != nil {
		return l.fatal
	}
	if l.eof {
		return nil
	}

	l.eof = true
	l.cursor = len(l.src)
	l.state = l.state(EOF)

	if l.fatal != nil {
		return l.fatal
	}

	return nil
}

// Ended reports whether end-of-input has been signalled.
func (l *Lexer) Ended() bool {
	return l.eof
}

// replay hands the last n stored code points back to next, in order. If
// end-of-input has already been signalled it is re-signalled afterwards, so a
// state reached through reconsumption still observes the end of the stream.
//
// Reconsumption is bounded in the grammar, but the source buffer already holds
// everything, so no separate pushback ring is needed: the cursor is moved back
// and the stored code points are fed again.
func (l *Lexer) replay(n int, next stateFn) stateFn {
	top := l.cursor
	st := next
	for i := top - n; i < top; i++ {
		if l.fatal != nil {
			return st
		}
		l.cursor = i + 1
		st = st(l.src[i])
	}
	l.cursor = top

	if n > 0 && l.eof && l.fatal == nil {
		st = st(EOF)
	}

	return st
}

// emit closes the current token at the cursor, minus back reconsumed code
// points, and replays those code points into the initial state. Emitted tokens
// are immutable: their store slots and any arena slice they reference are
// never touched again.
func (l *Lexer) emit(kind TokenType, back int, a, b int32) stateFn {
	end := l.cursor - back
	i := l.store.append(kind, int32(end), a, b, l.escaped)
	l.escaped = false

	if l.debugging {
		l.logToken(i)
	}

	return l.replay(back, l.initial)
}

// raise records a parse error evident at the current position. The offending
// region runs from the start of the in-progress token to the cursor. In strict
// mode the error is fatal and the state machine is abandoned.
func (l *Lexer) raise(kind ErrorKind) {
	e := l.newError(kind)
	l.errs = append(l.errs, e)
	if !l.recovers {
		l.fatal = e
	}
}

// Errors returns the parse errors accreted so far. In strict mode it holds at
// most one entry.
func (l *Lexer) Errors() []*LexError {
	return l.errs
}

// Err returns the fatal error, if any.
func (l *Lexer) Err() error {
	if l.fatal != nil {
		return l.fatal
	}

	return nil
}

func (l *Lexer) logToken(i int) {
	pos := l.Origin(i)
	l.log.WithFields(logrus.Fields{
		"index":  i,
		"kind":   l.Kind(i).String(),
		"line":   pos.Line,
		"column": pos.Col,
		"source": string(l.Source(i)),
	}).Debug("token")
}
