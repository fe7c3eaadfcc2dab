package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/shibukawa/condtrace/cli"
	"github.com/shibukawa/condtrace/condtree"
)

// ErrDuplicateFlag is returned when a single-use flag is given more than once
var ErrDuplicateFlag = errors.New("flag specified more than once")

// CLI represents the command-line interface
var CLI struct {
	Config  string           `help:"Configuration file path" default:"condtrace.yaml"`
	Verbose bool             `help:"Enable verbose output" short:"v"`
	Quiet   bool             `help:"Suppress output" short:"q"`
	Version kong.VersionFlag `help:"Show version information"`

	cli.TraceCmd
}

func main() {
	parser := kong.Must(&CLI,
		kong.Name("condtrace"),
		kong.Description("Calculates and displays the circumstances under which particular line number(s) are present when compiling the specified source file with respect to preprocessor definitions."),
		kong.Vars{"version": "condtrace v0.1.0"},
		kong.UsageOnError(),
	)

	// kong keeps the last value when a scalar flag repeats, so a second
	// --file would silently override the first
	parser.FatalIfErrorf(checkSingleUse(os.Args[1:], "--file"))

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	// Create context with config path
	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err = ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// checkSingleUse rejects a repeated single-use flag, in either the
// "--flag value" or "--flag=value" spelling. Tokens after a bare "--" are
// positional and don't count.
func checkSingleUse(args []string, flag string) error {
	count := 0

	for _, arg := range args {
		if arg == "--" {
			break
		}

		if arg == flag || strings.HasPrefix(arg, flag+"=") {
			count++
		}
	}

	if count > 1 {
		return fmt.Errorf("%w: %s", ErrDuplicateFlag, flag)
	}

	return nil
}

// exitCode maps structural directive errors to a distinct status so callers
// can tell a malformed source file from a bad invocation.
func exitCode(err error) int {
	if errors.Is(err, condtree.ErrUnmatchedElse) ||
		errors.Is(err, condtree.ErrUnmatchedEndif) ||
		errors.Is(err, condtree.ErrUnterminatedConditional) {
		return 2
	}

	return 1
}
