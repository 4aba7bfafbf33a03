package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var red = color.New(color.FgRed).SprintFunc()

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

// errorText renders an error returned from a command. Lex failures arrive
// already formatted.
func errorText(err error) string {
	if r, ok := err.(*reportedError); ok {
		return r.text
	}
	return red(err.Error()) + "\n"
}

// reportedError carries text that is already formatted for the terminal.
type reportedError struct {
	text string
}

func (e *reportedError) Error() string {
	return e.text
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// useColor reports whether output written to f should be colorized.
func useColor(f *os.File) bool {
	return !viper.GetBool("no-color") && isTerminal(f)
}

// newLogger builds the console logger used by the CLI. Debug events from
// the lexer only show up with --verbose.
func newLogger(w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:     w,
		NoColor: viper.GetBool("no-color"),
	}).Level(level).With().Timestamp().Logger()
}

func handleSigForProfiler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		pprof.StopCPUProfile()
		os.Exit(1)
	}()
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
}
