package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Lexical errors in the input
//   - E9xxx: Internal lexer defects
type ErrorCode string

const (
	// Lexical errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected character
	E1002 ErrorCode = "E1002" // Unterminated string literal
	E1008 ErrorCode = "E1008" // Invalid number literal

	// Internal errors (E9xxx)
	E9001 ErrorCode = "E9001" // Punctuation tables out of sync
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected character",
	E1002: "unterminated string literal",
	E1008: "invalid number literal",
	E9001: "internal lexer error",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "lex"
	case '9':
		return "internal"
	default:
		return "unknown"
	}
}
