package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenith-lang/zenith"
	"github.com/zenith-lang/zenith/errors"
	"github.com/zenith-lang/zenith/token"
)

func TestLexSources(t *testing.T) {
	sources := []source{
		{Name: "a.zn", Code: "a := 34"},
		{Name: "b.zn", Code: "b ~ 1"},
		{Name: "c.zn", Code: "mut res := []\n"},
	}
	results := lexSources(sources, zerolog.Nop())
	require.Len(t, results, 3)

	assert.Equal(t, sources[0], results[0].Source)
	require.NoError(t, results[0].Err)
	assert.Len(t, zenith.Significant(results[0].Tokens), 3)

	require.Error(t, results[1].Err)
	assert.True(t, errors.HasCode(results[1].Err, errors.E1001))
	assert.Contains(t, results[1].Err.Error(), "b.zn:1:3")

	require.NoError(t, results[2].Err)
	last := results[2].Tokens[len(results[2].Tokens)-1]
	assert.Equal(t, token.NewBuiltinType(token.ArrayType), last.Token)
}

func TestLexSourcesOptions(t *testing.T) {
	sources := []source{{Code: "a\n"}}
	results := lexSources(sources, zerolog.Nop(), zenith.WithKeepTrailingWhitespace())
	require.NoError(t, results[0].Err)
	assert.Len(t, results[0].Tokens, 2)

	results = lexSources([]source{{Code: `"open`}}, zerolog.Nop(), zenith.WithStrictStrings())
	assert.True(t, errors.HasCode(results[0].Err, errors.E1002))
}

func TestCollectErrors(t *testing.T) {
	assert.NoError(t, collectErrors(nil))

	results := lexSources([]source{
		{Name: "ok.zn", Code: "a"},
		{Name: "bad1.zn", Code: "~"},
		{Name: "bad2.zn", Code: "1.2.3"},
	}, zerolog.Nop())
	err := collectErrors(results)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, err.Error(), "bad1.zn:1:1")
	assert.Contains(t, err.Error(), "bad2.zn:1:1")
}

func TestWriteText(t *testing.T) {
	results := lexSources([]source{{Code: "a := 34"}}, zerolog.Nop())

	var buf bytes.Buffer
	writeText(&buf, results, outputOptions{})
	assert.Equal(t, strings.Join([]string{
		"   1:1-1:1    IDENT(a)",
		"   1:3-1:4    :=",
		"   1:6-1:7    INT(34)",
		"",
	}, "\n"), buf.String())

	buf.Reset()
	writeText(&buf, results, outputOptions{whitespace: true, timing: true})
	out := buf.String()
	assert.Contains(t, out, "WHITESPACE(1)")
	assert.Contains(t, out, "Lex time: ")
}

func TestWriteTextMultipleFiles(t *testing.T) {
	results := lexSources([]source{
		{Name: "a.zn", Code: "a"},
		{Name: "b.zn", Code: "b"},
	}, zerolog.Nop())

	var buf bytes.Buffer
	writeText(&buf, results, outputOptions{})
	out := buf.String()
	assert.Contains(t, out, "==> a.zn <==")
	assert.Contains(t, out, "==> b.zn <==")
	assert.Less(t, strings.Index(out, "a.zn"), strings.Index(out, "b.zn"))
}

func TestWriteJSON(t *testing.T) {
	results := lexSources([]source{{Name: "main.zn", Code: "x += 1"}}, zerolog.Nop())

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, results, outputOptions{}, false))

	var decoded struct {
		File   string `json:"file"`
		Tokens []struct {
			Start token.Position `json:"start"`
			End   token.Position `json:"end"`
			Token struct {
				Type  string `json:"type"`
				Value any    `json:"value"`
			} `json:"token"`
		} `json:"tokens"`
		LexTimeNs int64 `json:"lex_time_ns"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "main.zn", decoded.File)
	assert.Zero(t, decoded.LexTimeNs)
	require.Len(t, decoded.Tokens, 3)
	assert.Equal(t, "IDENT", decoded.Tokens[0].Token.Type)
	assert.Equal(t, "x", decoded.Tokens[0].Token.Value)
	assert.Equal(t, "+=", decoded.Tokens[1].Token.Type)
	assert.Equal(t, token.Position{Line: 1, Column: 3}, decoded.Tokens[1].Start)
	assert.Equal(t, token.Position{Line: 1, Column: 4}, decoded.Tokens[1].End)
	assert.Equal(t, float64(1), decoded.Tokens[2].Token.Value)
}

func TestWriteJSONMultiple(t *testing.T) {
	results := []lexResult{
		{Source: source{Name: "a.zn"}, Elapsed: time.Millisecond},
		{Source: source{Name: "b.zn"}, Elapsed: time.Millisecond},
	}
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, results, outputOptions{timing: true}, false))

	var decoded []jsonResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "b.zn", decoded[1].File)
	assert.Equal(t, int64(time.Millisecond), decoded[1].LexTimeNs)
}

func TestFormatErrors(t *testing.T) {
	results := lexSources([]source{
		{Name: "main.zn", Code: "a := 1\nb := 2 ~ 3\n"},
	}, zerolog.Nop())

	out := formatErrors(results, false)
	assert.Equal(t, strings.Join([]string{
		`lex error[E1001]: unexpected character '~'`,
		`  --> main.zn:2:8`,
		`   |`,
		` 2 | b := 2 ~ 3`,
		`   |        ^`,
		``,
	}, "\n"), out)
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "already formatted", errorText(&reportedError{text: "already formatted"}))
	assert.Contains(t, errorText(assert.AnError), assert.AnError.Error())
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	require.NoError(t, versionHandler(versionCmd, nil))

	var info map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, version, info["version"])
}
