// Package token defines the Zenith token alphabet and source positions.
package token

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string. Both fields
// are 1-indexed.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// StartPosition is the position of the first character of any input.
var StartPosition = Position{Line: 1, Column: 1}

// Next returns the position that follows consuming r at p.
func (p Position) Next(r rune) Position {
	if r == '\n' {
		return Position{Line: p.Line + 1, Column: 1}
	}
	return Position{Line: p.Line, Column: p.Column + 1}
}

// IsValid returns true if both line and column are 1 or greater.
func (p Position) IsValid() bool {
	return p.Line >= 1 && p.Column >= 1
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token types
const (
	IDENT        Type = "IDENT"
	INT          Type = "INT"
	FLOAT        Type = "FLOAT"
	STRING       Type = "STRING"
	COMMENT      Type = "COMMENT"
	WHITESPACE   Type = "WHITESPACE"
	KEYWORD      Type = "KEYWORD"
	BUILTIN_TYPE Type = "BUILTIN_TYPE"

	ASSIGN          Type = ":="
	EQ              Type = "=="
	NOT_EQ          Type = "!="
	GT_EQUALS       Type = ">="
	LT_EQUALS       Type = "<="
	RETURN_TYPE     Type = "->"
	PLUS_EQUALS     Type = "+="
	MINUS_EQUALS    Type = "-="
	ASTERISK_EQUALS Type = "*="
	SLASH_EQUALS    Type = "/="

	BANG      Type = "!"
	HASH      Type = "#"
	DOLLAR    Type = "$"
	PERCENT   Type = "%"
	AMPERSAND Type = "&"
	LPAREN    Type = "("
	RPAREN    Type = ")"
	ASTERISK  Type = "*"
	PLUS      Type = "+"
	MINUS     Type = "-"
	COMMA     Type = ","
	PERIOD    Type = "."
	SLASH     Type = "/"
	COLON     Type = ":"
	SEMICOLON Type = ";"
	LT        Type = "<"
	EQUALS    Type = "="
	GT        Type = ">"
	QUESTION  Type = "?"
	AT        Type = "@"
	LBRACKET  Type = "["
	BACKSLASH Type = "\\"
	RBRACKET  Type = "]"
	CARET     Type = "^"
	LBRACE    Type = "{"
	PIPE      Type = "|"
	RBRACE    Type = "}"
)

// Keyword identifies one of the reserved words of the language.
type Keyword int

const (
	Function Keyword = iota + 1
	If
	Else
	End
	Return
	Mutable
	For
	In
)

var keywordNames = map[Keyword]string{
	Function: "fn",
	If:       "if",
	Else:     "else",
	End:      "end",
	Return:   "return",
	Mutable:  "mut",
	For:      "for",
	In:       "in",
}

// String returns the source spelling of the keyword.
func (k Keyword) String() string {
	if s, ok := keywordNames[k]; ok {
		return s
	}
	return "Keyword(" + strconv.Itoa(int(k)) + ")"
}

// BuiltinType identifies one of the reserved type names.
type BuiltinType int

const (
	IntType BuiltinType = iota + 1
	FloatType
	BooleanType
	StringType
	ArrayType
)

var builtinTypeNames = map[BuiltinType]string{
	IntType:     "int",
	FloatType:   "float",
	BooleanType: "boolean",
	StringType:  "string",
	ArrayType:   "[]",
}

// String returns the source spelling of the builtin type.
func (b BuiltinType) String() string {
	if s, ok := builtinTypeNames[b]; ok {
		return s
	}
	return "BuiltinType(" + strconv.Itoa(int(b)) + ")"
}

// Reserved keywords
var keywords = map[string]Keyword{
	"fn":     Function,
	"if":     If,
	"else":   Else,
	"end":    End,
	"return": Return,
	"mut":    Mutable,
	"for":    For,
	"in":     In,
}

// Reserved type names. ArrayType has no identifier spelling; it is lexed
// from the "[]" punctuation pair.
var builtinTypes = map[string]BuiltinType{
	"int":     IntType,
	"float":   FloatType,
	"boolean": BooleanType,
	"string":  StringType,
}

// LookupIdentifier classifies identifier text. Keywords win over builtin
// type names, which win over plain identifiers.
func LookupIdentifier(identifier string) Token {
	if kw, ok := keywords[identifier]; ok {
		return NewKeyword(kw)
	}
	if bt, ok := builtinTypes[identifier]; ok {
		return NewBuiltinType(bt)
	}
	return NewIdent(identifier)
}

// Token is one classified unit of source text. Type selects which of the
// payload fields is meaningful.
type Token struct {
	Type    Type
	Literal string // IDENT, STRING and COMMENT text; spelling of fixed tokens
	Int     int64
	Float   float64
	Count   int // WHITESPACE run length
	Keyword Keyword
	Builtin BuiltinType
}

func NewIdent(name string) Token { return Token{Type: IDENT, Literal: name} }

func NewInt(v int64) Token { return Token{Type: INT, Int: v} }

func NewFloat(v float64) Token { return Token{Type: FLOAT, Float: v} }

func NewString(s string) Token { return Token{Type: STRING, Literal: s} }

func NewComment(s string) Token { return Token{Type: COMMENT, Literal: s} }

func NewWhitespace(n int) Token { return Token{Type: WHITESPACE, Count: n} }

func NewKeyword(kw Keyword) Token {
	return Token{Type: KEYWORD, Literal: kw.String(), Keyword: kw}
}

func NewBuiltinType(bt BuiltinType) Token {
	return Token{Type: BUILTIN_TYPE, Literal: bt.String(), Builtin: bt}
}

// New returns an operator or punctuation token, whose spelling is its type.
func New(t Type) Token { return Token{Type: t, Literal: string(t)} }

func (t Token) String() string {
	switch t.Type {
	case IDENT, COMMENT:
		return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
	case STRING:
		return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
	case INT:
		return fmt.Sprintf("%s(%d)", t.Type, t.Int)
	case FLOAT:
		return fmt.Sprintf("%s(%s)", t.Type, strconv.FormatFloat(t.Float, 'g', -1, 64))
	case WHITESPACE:
		return fmt.Sprintf("%s(%d)", t.Type, t.Count)
	case KEYWORD, BUILTIN_TYPE:
		return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
	default:
		return string(t.Type)
	}
}

// Value returns the payload of the token as a plain Go value.
func (t Token) Value() any {
	switch t.Type {
	case INT:
		return t.Int
	case FLOAT:
		return t.Float
	case WHITESPACE:
		return t.Count
	default:
		return t.Literal
	}
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  Type `json:"type"`
		Value any  `json:"value"`
	}{t.Type, t.Value()})
}

// EnrichedToken is a token together with the positions of its first and
// last characters.
type EnrichedToken struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
	Token Token    `json:"token"`
}

func (e EnrichedToken) String() string {
	return fmt.Sprintf("%6s-%-6s %s", e.Start, e.End, e.Token)
}
