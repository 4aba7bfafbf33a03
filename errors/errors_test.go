package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLocation_String(t *testing.T) {
	tests := []struct {
		name     string
		loc      SourceLocation
		expected string
	}{
		{
			name:     "with filename",
			loc:      SourceLocation{Filename: "main.zn", Line: 10, Column: 5},
			expected: "main.zn:10:5",
		},
		{
			name:     "without filename",
			loc:      SourceLocation{Line: 10, Column: 5},
			expected: "10:5",
		},
		{
			name:     "zero location",
			loc:      SourceLocation{},
			expected: "0:0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.loc.String())
		})
	}
}

func TestSourceLocation_IsZero(t *testing.T) {
	assert.True(t, SourceLocation{}.IsZero())
	assert.False(t, SourceLocation{Line: 1}.IsZero())
	assert.False(t, SourceLocation{Column: 1}.IsZero())
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "unexpected character", E1001.Description())
	assert.Equal(t, "lex", E1008.Category())
	assert.Equal(t, "internal", E9001.Category())
	assert.Equal(t, "unknown error", ErrorCode("E4242").Description())
	assert.Equal(t, "unknown", ErrorCode("X").Category())
}

func TestLexError(t *testing.T) {
	err := NewLexError(E1001, SourceLocation{Line: 3, Column: 7}, "~", "unexpected character %q", '~')
	assert.Equal(t, `unexpected character: unexpected character '~' (3:7)`, err.Error())
	assert.True(t, err.IsFatal())

	var fatal FatalError = err
	assert.True(t, fatal.IsFatal())

	noLoc := NewLexError(E9001, SourceLocation{}, "", "boom")
	assert.Equal(t, "internal lexer error: boom", noLoc.Error())
}

func TestLexErrorUnwrap(t *testing.T) {
	_, cause := strconv.ParseFloat("1.2.3", 64)
	err := NewLexError(E1008, SourceLocation{Line: 1, Column: 1}, "1.2.3", "bad").WithCause(cause)
	assert.True(t, stderrors.Is(err, cause))

	wrapped := fmt.Errorf("lexing main.zn: %w", err)
	lexErr, ok := AsLexError(wrapped)
	require.True(t, ok)
	assert.Equal(t, E1008, lexErr.Code)
	assert.True(t, HasCode(wrapped, E1008))
	assert.False(t, HasCode(wrapped, E1001))
	assert.False(t, HasCode(stderrors.New("plain"), E1001))
}

func TestToFormatted(t *testing.T) {
	source := "a := 1\nb := 1.2.3\n"
	err := NewLexError(E1008, SourceLocation{Filename: "main.zn", Line: 2, Column: 6}, "1.2.3", "invalid number literal %q", "1.2.3")
	fe := err.ToFormatted(source)
	assert.Equal(t, E1008, fe.Code)
	assert.Equal(t, "main.zn", fe.Filename)
	assert.Equal(t, 10, fe.EndColumn)
	require.Len(t, fe.SourceLines, 1)
	assert.Equal(t, "b := 1.2.3", fe.SourceLines[0].Text)
	assert.Empty(t, fe.Note)

	out := NewFormatter(false).Format(fe)
	expected := strings.Join([]string{
		`lex error[E1008]: invalid number literal "1.2.3"`,
		`  --> main.zn:2:6`,
		`   |`,
		` 2 | b := 1.2.3`,
		`   |      ^^^^^`,
		``,
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestToFormattedHint(t *testing.T) {
	err := NewLexError(E1001, SourceLocation{Line: 1, Column: 6}, "'", "unexpected character %q", '\'').
		WithHint("strings are written with double quotes")
	fe := err.ToFormatted("x := 'a'")
	assert.Equal(t, "strings are written with double quotes", fe.Hint)

	out := NewFormatter(false).Format(fe)
	expected := strings.Join([]string{
		`lex error[E1001]: unexpected character '\''`,
		`  --> 1:6`,
		`   |`,
		` 1 | x := 'a'`,
		`   |      ^`,
		`   |`,
		`   = hint: strings are written with double quotes`,
		``,
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestToFormattedInternal(t *testing.T) {
	err := NewLexError(E9001, SourceLocation{Line: 9, Column: 1}, "~", "no mapping")
	fe := err.ToFormatted("short")
	assert.Empty(t, fe.SourceLines)
	assert.NotEmpty(t, fe.Note)
	assert.Contains(t, NewFormatter(false).Format(fe), "note: this is a bug in the lexer")
}

func TestFormatMultiple(t *testing.T) {
	f := NewFormatter(false)
	assert.Equal(t, "", f.FormatMultiple(nil))

	one := &FormattedError{Message: "first", Line: 1, Column: 1}
	assert.Equal(t, f.Format(one), f.FormatMultiple([]*FormattedError{one}))

	two := &FormattedError{Kind: "lex error", Message: "second", Line: 2, Column: 1}
	out := f.FormatMultiple([]*FormattedError{one, two})
	assert.Contains(t, out, "error 1/2: first")
	assert.Contains(t, out, "lex error 2/2: second")
	assert.True(t, strings.HasSuffix(out, "found 2 errors\n"))
}
