package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/shibukawa/condtrace"
	"github.com/shibukawa/condtrace/condtree"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// Error definitions
var (
	ErrInvalidLineNumber   = errors.New("invalid line number")
	ErrInvalidOutputFormat = errors.New("invalid output format")
)

// TraceCmd calculates and displays the circumstances under which particular
// line numbers are present when compiling the specified source file with
// respect to preprocessor definitions.
type TraceCmd struct {
	File     string `help:"Path to the file to read from" required:"" type:"path"`
	Lines    []int  `help:"The line number(s) to calculate" required:""`
	Format   string `help:"Output format (text, json)"`
	NoColor  bool   `help:"Disable colored output"`
	NoHeader bool   `help:"Suppress the per-line header"`
}

// Run executes the trace command
func (cmd *TraceCmd) Run(ctx *Context) error {
	// Load configuration
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Validate target lines before touching the file
	for _, line := range cmd.Lines {
		if line <= 0 {
			return fmt.Errorf("%w: '%d'", ErrInvalidLineNumber, line)
		}
	}

	// Command line overrides config
	format := cmd.Format
	if format == "" {
		format = config.Output.Format
	}

	if !condtrace.IsValidOutputFormat(format) {
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, format)
	}

	if cmd.NoColor || config.Output.NoColor {
		color.NoColor = true
	}

	if ctx.Verbose && !ctx.Quiet {
		color.Blue("Building conditional tree from %s", cmd.File)
	}

	// Build the forest once; it is read-only for every query after that
	forest, err := condtree.ParseFile(cmd.File)
	if err != nil {
		return err
	}

	if format == condtrace.FormatJSON {
		return writeJSONTrace(os.Stdout, forest, cmd.Lines)
	}

	header := !cmd.NoHeader && !config.Output.NoHeader

	return writeTextTrace(os.Stdout, forest, cmd.Lines, header)
}

var (
	requireTrue  = color.New(color.FgGreen)
	requireFalse = color.New(color.FgRed)
)

// writeTextTrace renders each target line's trace as a header followed by
// one REQUIRES entry per decision, then a blank separator line.
func writeTextTrace(w io.Writer, forest condtree.Forest, lines []int, header bool) error {
	for _, target := range lines {
		if header {
			fmt.Fprintf(w, "Requirements for line %d being included in the translation unit:\n", target)
		}

		for _, entry := range forest.Trace(target) {
			if entry.Requirement == condtree.RequireTrue {
				fmt.Fprintln(w, requireTrue.Sprintf("REQUIRES TRUE (%4d):  %s", entry.Line, entry.Condition))
			} else {
				fmt.Fprintln(w, requireFalse.Sprintf("REQUIRES FALSE (%4d): %s", entry.Line, entry.Condition))
			}
		}

		fmt.Fprintln(w)
	}

	return nil
}

// lineReport is the JSON shape for one queried line
type lineReport struct {
	Line         int                   `json:"line"`
	Requirements []condtree.TraceEntry `json:"requirements"`
}

func writeJSONTrace(w io.Writer, forest condtree.Forest, lines []int) error {
	reports := make([]lineReport, 0, len(lines))

	for _, target := range lines {
		entries := forest.Trace(target)
		if entries == nil {
			entries = []condtree.TraceEntry{}
		}

		reports = append(reports, lineReport{Line: target, Requirements: entries})
	}

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}

	data = append(data, '\n')

	_, err = w.Write(data)

	return err
}
