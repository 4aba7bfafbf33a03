// Package errors defines lexical error types with source locations.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter (with colors, source context, etc).
type FormattableError interface {
	Error() string
	ToFormatted(source string) *FormattedError
}

// FatalError is an interface for errors that may or may not be fatal.
type FatalError interface {
	Error() string
	IsFatal() bool
}

// LexError reports a condition that stopped tokenization. The lexer does
// not recover, so every LexError is fatal.
type LexError struct {
	Code     ErrorCode
	Message  string
	Text     string // offending character or literal text
	Hint     string
	Location SourceLocation
	Cause    error
}

func (e *LexError) Error() string {
	if e.Location.IsZero() {
		return fmt.Sprintf("%s: %s", e.Code.Description(), e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code.Description(), e.Message, e.Location)
}

func (e *LexError) Unwrap() error {
	return e.Cause
}

func (e *LexError) IsFatal() bool {
	return true
}

// ToFormatted converts the error to a FormattedError, pulling the offending
// line out of source for context.
func (e *LexError) ToFormatted(source string) *FormattedError {
	fe := &FormattedError{
		Code:     e.Code,
		Kind:     "lex error",
		Message:  e.Message,
		Filename: e.Location.Filename,
		Line:     e.Location.Line,
		Column:   e.Location.Column,
		Hint:     e.Hint,
	}
	if n := len([]rune(e.Text)); n > 1 {
		fe.EndColumn = e.Location.Column + n - 1
	}
	if line, ok := sourceLine(source, e.Location.Line); ok {
		fe.SourceLines = []SourceLineEntry{{Number: e.Location.Line, Text: line, IsMain: true}}
	}
	if e.Code.Category() == "internal" {
		fe.Note = "this is a bug in the lexer, not in the input"
	}
	return fe
}

func sourceLine(source string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[line-1], "\r"), true
}

// NewLexError creates a LexError with a formatted message.
func NewLexError(code ErrorCode, loc SourceLocation, text string, format string, args ...any) *LexError {
	return &LexError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Text:     text,
		Location: loc,
	}
}

// WithCause attaches an underlying error and returns the receiver.
func (e *LexError) WithCause(err error) *LexError {
	e.Cause = err
	return e
}

// WithHint attaches a suggestion for fixing the input and returns the
// receiver.
func (e *LexError) WithHint(hint string) *LexError {
	e.Hint = hint
	return e
}

// AsLexError unwraps err into a *LexError if one is present in its chain.
func AsLexError(err error) (*LexError, bool) {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr, true
	}
	return nil, false
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	lexErr, ok := AsLexError(err)
	return ok && lexErr.Code == code
}
