package zenith

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenith-lang/zenith/errors"
	"github.com/zenith-lang/zenith/token"
)

func TestBasicUsage(t *testing.T) {
	tokens, err := Tokenize("a := 34")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	sig := Significant(tokens)
	require.Len(t, sig, 3)
	assert.Equal(t, token.NewIdent("a"), sig[0].Token)
	assert.Equal(t, token.New(token.ASSIGN), sig[1].Token)
	assert.Equal(t, token.NewInt(34), sig[2].Token)
	assert.Equal(t, Position{Line: 1, Column: 6}, sig[2].Start)
	assert.Equal(t, Position{Line: 1, Column: 7}, sig[2].End)
}

func TestWithFilename(t *testing.T) {
	_, err := Tokenize("x := 1\ny ~ 2", WithFilename("main.zn"))
	require.Error(t, err)
	assert.Equal(t, "unexpected character: unexpected character '~' (main.zn:2:3)", err.Error())
	assert.True(t, errors.HasCode(err, errors.E1001))
}

func TestWithKeepTrailingWhitespace(t *testing.T) {
	tokens, err := Tokenize("a\n")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)

	tokens, err = Tokenize("a\n", WithKeepTrailingWhitespace())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.NewWhitespace(1), tokens[1].Token)
}

func TestWithStrictStrings(t *testing.T) {
	tokens, err := Tokenize(`"open`)
	require.NoError(t, err)
	assert.Equal(t, token.NewString("open"), tokens[0].Token)

	_, err = Tokenize(`"open`, WithStrictStrings())
	assert.True(t, errors.HasCode(err, errors.E1002))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := Tokenize("a", WithLogger(logger), WithFilename("a.zn"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"file":"a.zn"`)
}

func TestNilOption(t *testing.T) {
	tokens, err := Tokenize("a", nil)
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestSignificantEmpty(t *testing.T) {
	assert.Empty(t, Significant(nil))
}
