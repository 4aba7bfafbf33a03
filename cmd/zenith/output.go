package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/zenith-lang/zenith"
	"github.com/zenith-lang/zenith/errors"
)

var outputFormatsCompletion = []string{"json", "text"}

var headerColor = color.New(color.FgCyan, color.Bold)

type outputOptions struct {
	whitespace bool
	timing     bool
}

func visibleTokens(tokens []zenith.Token, view outputOptions) []zenith.Token {
	if view.whitespace {
		return tokens
	}
	return zenith.Significant(tokens)
}

// writeText prints one line per token in "start-end token" form, followed
// by the lex time. Files get a header when there is more than one.
func writeText(w io.Writer, results []lexResult, view outputOptions) {
	multi := len(results) > 1
	for i, r := range results {
		if multi {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, headerColor.Sprintf("==> %s <==", r.Source.Name))
		}
		for _, tok := range visibleTokens(r.Tokens, view) {
			fmt.Fprintln(w, tok)
		}
		if view.timing {
			fmt.Fprintf(w, "Lex time: %v\n", r.Elapsed)
		}
	}
}

type jsonResult struct {
	File      string         `json:"file,omitempty"`
	Tokens    []zenith.Token `json:"tokens"`
	LexTimeNs int64          `json:"lex_time_ns,omitempty"`
}

func writeJSON(w io.Writer, results []lexResult, view outputOptions, colorize bool) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{
			File:   r.Source.Name,
			Tokens: visibleTokens(r.Tokens, view),
		}
		if view.timing {
			jr.LexTimeNs = r.Elapsed.Nanoseconds()
		}
		out = append(out, jr)
	}

	var v any = out
	if len(out) == 1 {
		v = out[0]
	}
	var data []byte
	var err error
	if colorize {
		data, err = prettyjson.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// formatErrors renders every failed result with source context.
func formatErrors(results []lexResult, useColor bool) string {
	var formatted []*errors.FormattedError
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if lexErr, ok := errors.AsLexError(r.Err); ok {
			formatted = append(formatted, lexErr.ToFormatted(r.Source.Code))
			continue
		}
		formatted = append(formatted, &errors.FormattedError{
			Message:  r.Err.Error(),
			Filename: r.Source.Name,
		})
	}
	return errors.NewFormatter(useColor).FormatMultiple(formatted)
}
