// Package zenith tokenizes source code written in the Zenith language.
//
//	tokens, err := zenith.Tokenize(source, zenith.WithFilename("main.zn"))
//	if err != nil {
//		// err is an *errors.LexError carrying the offending position
//	}
//	for _, tok := range tokens {
//		fmt.Println(tok)
//	}
package zenith

import (
	"github.com/zenith-lang/zenith/internal/lexer"
	"github.com/zenith-lang/zenith/token"
)

// Token is a token annotated with the positions of its first and last
// characters.
type Token = token.EnrichedToken

// Position is a 1-indexed line and column in the source.
type Position = token.Position

// Tokenize splits source into tokens. Each call is independent, so
// different sources may be tokenized concurrently.
func Tokenize(source string, opts ...Option) ([]Token, error) {
	o := collectOptions(opts...)
	return lexer.Tokenize(source, o.lexerOpts()...)
}

// Significant returns the tokens that are not whitespace.
func Significant(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Token.Type != token.WHITESPACE {
			out = append(out, tok)
		}
	}
	return out
}
