package directive

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// LogicalLine is one or more physical lines merged through trailing
// backslash continuations, treated as a single unit for classification.
// The backslash and a '\n' separator are kept inside Text so the merged
// condition renders the way it appears in the source.
type LogicalLine struct {
	Text string
	Line int // physical line number the logical line starts on (1-based)
	Span int // number of physical lines consumed
}

// LineIterator uses Go 1.24 iterator pattern
type LineIterator = iter.Seq2[LogicalLine, error]

// Reader merges physical lines from an input stream into logical lines.
type Reader struct {
	r *bufio.Reader
}

// NewReader creates a Reader over the given input.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Lines returns an iterator over logical lines. Line numbers advance by the
// number of physical lines each logical line consumed, not by one. A
// continuation at end of input terminates the logical line there.
func (r *Reader) Lines() LineIterator {
	return func(yield func(LogicalLine, error) bool) {
		lineNo := 1

		for {
			text, ok, err := r.readPhysical()
			if err != nil {
				yield(LogicalLine{}, err)
				return
			}

			if !ok {
				return
			}

			span := 1

			for strings.HasSuffix(text, "\\") {
				next, ok, err := r.readPhysical()
				if err != nil {
					yield(LogicalLine{}, err)
					return
				}

				if !ok {
					break
				}

				text += "\n" + next
				span++
			}

			if !yield(LogicalLine{Text: text, Line: lineNo, Span: span}, nil) {
				return
			}

			lineNo += span
		}
	}
}

// AllLines collects every logical line as a slice (for tests and debugging).
func (r *Reader) AllLines() ([]LogicalLine, error) {
	lines := make([]LogicalLine, 0, 64)

	for line, err := range r.Lines() {
		if err != nil {
			return lines, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// readPhysical reads one physical line without its line terminator. The
// second return value is false once the input is exhausted.
func (r *Reader) readPhysical() (string, bool, error) {
	s, err := r.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}

	if s == "" && err == io.EOF {
		return "", false, nil
	}

	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")

	return s, true, nil
}
