package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zenith-lang/zenith"
	"golang.org/x/sync/errgroup"
)

// lexResult is the outcome of tokenizing one source.
type lexResult struct {
	Source  source
	Tokens  []zenith.Token
	Elapsed time.Duration
	Err     error
}

func lexHandler(cmd *cobra.Command, args []string) error {
	// Handle CPU profiling
	if profilePath := viper.GetString("cpu-profile"); profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
		handleSigForProfiler()
	}

	format := strings.ToLower(viper.GetString("output"))
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown output format: %s", format)
	}

	sources, err := getSources(cmd, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr())
	results := lexSources(sources, logger, getLexOptions()...)

	if err := collectErrors(results); err != nil {
		logger.Debug().Err(err).Msg("lexing failed")
		return &reportedError{text: formatErrors(results, useColor(os.Stderr))}
	}

	view := outputOptions{
		whitespace: viper.GetBool("whitespace"),
		timing:     viper.GetBool("timing"),
	}
	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, results, view, useColor(os.Stdout))
	}
	writeText(out, results, view)
	return nil
}

// lexSources tokenizes the sources concurrently, at most GOMAXPROCS at a
// time. Results keep the order of sources and each carries its own error.
func lexSources(sources []source, logger zerolog.Logger, opts ...zenith.Option) []lexResult {
	results := make([]lexResult, len(sources))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			fileOpts := []zenith.Option{
				zenith.WithFilename(src.Name),
				zenith.WithLogger(logger),
			}
			fileOpts = append(fileOpts, opts...)

			start := time.Now()
			tokens, err := zenith.Tokenize(src.Code, fileOpts...)
			results[i] = lexResult{
				Source:  src,
				Tokens:  tokens,
				Elapsed: time.Since(start),
				Err:     err,
			}
			return nil
		})
	}
	g.Wait()
	return results
}

func collectErrors(results []lexResult) error {
	var result *multierror.Error
	for _, r := range results {
		if r.Err != nil {
			result = multierror.Append(result, r.Err)
		}
	}
	return result.ErrorOrNil()
}

func versionHandler(cmd *cobra.Command, args []string) error {
	info, err := json.MarshalIndent(map[string]any{
		"version": version,
		"commit":  commit,
		"date":    date,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(info))
	return nil
}
