package zenith

import (
	"github.com/rs/zerolog"
	"github.com/zenith-lang/zenith/internal/lexer"
)

// Option configures a call to Tokenize.
type Option func(*options)

type options struct {
	filename               string
	logger                 *zerolog.Logger
	keepTrailingWhitespace bool
	strictStrings          bool
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) lexerOpts() []lexer.Option {
	var opts []lexer.Option
	if o.filename != "" {
		opts = append(opts, lexer.WithFilename(o.filename))
	}
	if o.logger != nil {
		opts = append(opts, lexer.WithLogger(*o.logger))
	}
	if o.keepTrailingWhitespace {
		opts = append(opts, lexer.WithKeepTrailingWhitespace(true))
	}
	if o.strictStrings {
		opts = append(opts, lexer.WithStrictStrings(true))
	}
	return opts
}

// WithFilename sets the filename for the source code being tokenized.
// This is used in error locations.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithLogger supplies a zerolog logger that receives debug events about
// each scan.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// WithKeepTrailingWhitespace keeps a final whitespace token, which is
// dropped by default.
func WithKeepTrailingWhitespace() Option {
	return func(o *options) {
		o.keepTrailingWhitespace = true
	}
}

// WithStrictStrings reports unterminated string literals as errors instead
// of ending them silently at the end of input.
func WithStrictStrings() Option {
	return func(o *options) {
		o.strictStrings = true
	}
}
