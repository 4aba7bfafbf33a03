package main

import (
	goerrors "errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zenith-lang/zenith"
)

const stdinName = "<stdin>"

// source is one named input to tokenize. Name is empty for --code.
type source struct {
	Name string
	Code string
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("code", "c", "", "Code to tokenize")
	cmd.Flags().Bool("stdin", false, "Read code from stdin")
}

func getSources(cmd *cobra.Command, args []string, stdin io.Reader) ([]source, error) {
	// Determine what code is to be tokenized. There are three possibilities:
	// 1. --code <code>
	// 2. --stdin (read code from stdin)
	// 3. one or more paths as args
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	stdinFlagSet, _ := cmd.Flags().GetBool("stdin")
	pathSupplied := len(args) > 0
	// Error if multiple input sources are specified
	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return nil, goerrors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return nil, goerrors.New("multiple input sources specified")
	}
	if stdinFlagSet {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return []source{{Name: stdinName, Code: string(data)}}, nil
	} else if pathSupplied {
		sources := make([]source, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source{Name: path, Code: string(data)})
		}
		return sources, nil
	} else if codeFlagSet {
		code, _ := cmd.Flags().GetString("code")
		return []source{{Code: code}}, nil
	}
	return nil, goerrors.New("no input: pass a file, --code or --stdin")
}

func getLexOptions() []zenith.Option {
	var opts []zenith.Option
	if viper.GetBool("keep-trailing-whitespace") {
		opts = append(opts, zenith.WithKeepTrailingWhitespace())
	}
	if viper.GetBool("strict-strings") {
		opts = append(opts, zenith.WithStrictStrings())
	}
	return opts
}
