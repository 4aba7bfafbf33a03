package token

import "strings"

// The three tables below must change together: every rune in
// punctuationChars needs an entry in singles, and pairs may only combine
// runes from punctuationChars.

const punctuationChars = "!#$%&()*+,-./:;<=>?@[\\]^{|}"

var pairs = map[[2]rune]Token{
	{':', '='}: New(ASSIGN),
	{'=', '='}: New(EQ),
	{'!', '='}: New(NOT_EQ),
	{'>', '='}: New(GT_EQUALS),
	{'<', '='}: New(LT_EQUALS),
	{'[', ']'}: NewBuiltinType(ArrayType),
	{'-', '>'}: New(RETURN_TYPE),
	{'+', '='}: New(PLUS_EQUALS),
	{'-', '='}: New(MINUS_EQUALS),
	{'*', '='}: New(ASTERISK_EQUALS),
	{'/', '='}: New(SLASH_EQUALS),
}

var singles = map[rune]Type{
	'!':  BANG,
	'#':  HASH,
	'$':  DOLLAR,
	'%':  PERCENT,
	'&':  AMPERSAND,
	'(':  LPAREN,
	')':  RPAREN,
	'*':  ASTERISK,
	'+':  PLUS,
	',':  COMMA,
	'-':  MINUS,
	'.':  PERIOD,
	'/':  SLASH,
	':':  COLON,
	';':  SEMICOLON,
	'<':  LT,
	'=':  EQUALS,
	'>':  GT,
	'?':  QUESTION,
	'@':  AT,
	'[':  LBRACKET,
	'\\': BACKSLASH,
	']':  RBRACKET,
	'^':  CARET,
	'{':  LBRACE,
	'|':  PIPE,
	'}':  RBRACE,
}

// IsPunctuation reports whether r belongs to the punctuation set.
func IsPunctuation(r rune) bool {
	return strings.ContainsRune(punctuationChars, r)
}

// LookupPair returns the two-character operator spelled by a and b.
func LookupPair(a, b rune) (Token, bool) {
	tok, ok := pairs[[2]rune{a, b}]
	return tok, ok
}

// LookupPunctuation returns the single-character token for r.
func LookupPunctuation(r rune) (Token, bool) {
	t, ok := singles[r]
	if !ok {
		return Token{}, false
	}
	return New(t), true
}
