// Package lexer turns Zenith source text into positioned tokens.
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/zenith-lang/zenith/errors"
	"github.com/zenith-lang/zenith/token"
)

// Option configures a call to Tokenize.
type Option func(*config)

type config struct {
	logger                 zerolog.Logger
	filename               string
	keepTrailingWhitespace bool
	strictStrings          bool
}

// WithLogger sets the logger used for scan diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithFilename sets the filename reported in error locations.
func WithFilename(filename string) Option {
	return func(cfg *config) {
		cfg.filename = filename
	}
}

// WithKeepTrailingWhitespace keeps a final WHITESPACE token instead of
// dropping it.
func WithKeepTrailingWhitespace(keep bool) Option {
	return func(cfg *config) {
		cfg.keepTrailingWhitespace = keep
	}
}

// WithStrictStrings makes an unterminated string literal an error. By
// default the literal silently ends at the end of input.
func WithStrictStrings(strict bool) Option {
	return func(cfg *config) {
		cfg.strictStrings = strict
	}
}

type lexer struct {
	cur *Cursor
	cfg config
}

// Tokenize scans the whole input and returns one EnrichedToken per token,
// left to right, covering every character. A trailing WHITESPACE token is
// dropped unless WithKeepTrailingWhitespace is set. Scanning stops at the
// first error, which is always an *errors.LexError, and no tokens are
// returned with it.
func Tokenize(input string, opts ...Option) ([]token.EnrichedToken, error) {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	l := &lexer{cur: NewCursor(input), cfg: cfg}
	return l.run()
}

func (l *lexer) run() ([]token.EnrichedToken, error) {
	tokens := []token.EnrichedToken{}
	for {
		ch, ok := l.cur.Current()
		if !ok {
			break
		}
		start := l.cur.Position()
		tok, err := l.next(ch, start)
		if err != nil {
			l.cfg.logger.Debug().
				Err(err).
				Str("file", l.cfg.filename).
				Stringer("position", start).
				Int("tokens", len(tokens)).
				Msg("tokenize failed")
			return nil, err
		}
		// The scanners leave the cursor on the token's last character.
		tokens = append(tokens, token.EnrichedToken{
			Start: start,
			End:   l.cur.Position(),
			Token: tok,
		})
		l.cur.Advance()
	}

	if n := len(tokens); n > 0 && !l.cfg.keepTrailingWhitespace && tokens[n-1].Token.Type == token.WHITESPACE {
		tokens = tokens[:n-1]
	}

	l.cfg.logger.Debug().
		Str("file", l.cfg.filename).
		Int("runes", l.cur.Index()).
		Int("tokens", len(tokens)).
		Msg("tokenized")
	return tokens, nil
}

// next classifies the token starting at ch. First match wins, so comments
// must stay ahead of punctuation.
func (l *lexer) next(ch rune, start token.Position) (token.Token, error) {
	switch {
	case unicode.IsSpace(ch):
		return token.NewWhitespace(l.cur.SkipWhileNot(isNotSpace)), nil
	case isIdentStart(ch):
		ident := l.cur.CollectWhileNot(func(r rune) bool { return !isIdentContinue(r) })
		return token.LookupIdentifier(ident), nil
	case ch == '"':
		return l.readString(start)
	case ch == '/' && l.peekIs('/'):
		return l.readComment(), nil
	case isDigit(ch):
		return l.readNumber(start)
	case token.IsPunctuation(ch):
		return l.readPunctuation(ch, start)
	default:
		err := l.errorf(errors.E1001, start, string(ch), "unexpected character %q", ch)
		if hint := unexpectedCharHint(ch); hint != "" {
			err.WithHint(hint)
		}
		return token.Token{}, err
	}
}

func unexpectedCharHint(ch rune) string {
	switch {
	case ch == '\'' || ch == '`':
		return `strings are written with double quotes, as in "text"`
	case ch == '~':
		return "there is no bitwise complement operator"
	case ch > unicode.MaxASCII && unicode.IsLetter(ch):
		return "identifiers may only contain ASCII letters, digits and underscores"
	case ch > unicode.MaxASCII:
		return "non-ASCII characters are only allowed inside strings and comments"
	case unicode.IsControl(ch):
		return "control characters are not allowed outside strings"
	}
	return ""
}

func (l *lexer) peekIs(want rune) bool {
	next, ok := l.cur.PeekNext()
	return ok && next == want
}

// readString reads a double quoted literal. A backslash copies the following
// character verbatim, so \" embeds a quote and \n is the letter n.
func (l *lexer) readString(start token.Position) (token.Token, error) {
	l.cur.Advance()
	var sb strings.Builder
	for {
		ch, ok := l.cur.Current()
		if !ok {
			if l.cfg.strictStrings {
				return token.Token{}, l.errorf(errors.E1002, start, `"`, "unterminated string literal")
			}
			l.cur.Retreat()
			return token.NewString(sb.String()), nil
		}
		switch ch {
		case '\\':
			l.cur.Advance()
			escaped, ok := l.cur.Current()
			if !ok {
				continue
			}
			sb.WriteRune(escaped)
		case '"':
			return token.NewString(sb.String()), nil
		default:
			sb.WriteRune(ch)
		}
		l.cur.Advance()
	}
}

func (l *lexer) readComment() token.Token {
	l.cur.Advance()
	l.cur.Advance()
	text := l.cur.CollectWhileNot(func(r rune) bool { return r == '\n' })
	return token.NewComment(strings.TrimSpace(text))
}

// readNumber reads a run of digits and periods. Runs without a period that
// fit in an int64 are INT; everything else must parse as a float64. More
// than one period is rejected here rather than left for a later stage.
func (l *lexer) readNumber(start token.Position) (token.Token, error) {
	text := l.cur.CollectWhileNot(func(r rune) bool { return !isDigit(r) && r != '.' })
	if strings.Count(text, ".") > 1 {
		return token.Token{}, l.errorf(errors.E1008, start, text,
			"invalid number literal %q: more than one decimal point", text)
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return token.NewInt(v), nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, l.errorf(errors.E1008, start, text,
			"invalid number literal %q: out of range", text).WithCause(err)
	}
	return token.NewFloat(v), nil
}

func (l *lexer) readPunctuation(ch rune, start token.Position) (token.Token, error) {
	if next, ok := l.cur.PeekNext(); ok && token.IsPunctuation(next) {
		l.cur.Advance()
		if tok, ok := token.LookupPair(ch, next); ok {
			return tok, nil
		}
		l.cur.Retreat()
	}
	tok, ok := token.LookupPunctuation(ch)
	if !ok {
		return token.Token{}, l.errorf(errors.E9001, start, string(ch),
			"punctuation %q has no token mapping", ch)
	}
	return tok, nil
}

func (l *lexer) errorf(code errors.ErrorCode, pos token.Position, text, format string, args ...any) *errors.LexError {
	loc := errors.SourceLocation{
		Filename: l.cfg.filename,
		Line:     pos.Line,
		Column:   pos.Column,
	}
	return errors.NewLexError(code, loc, text, format, args...)
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

func isIdentStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
