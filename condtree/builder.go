package condtree

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shibukawa/condtrace/directive"
)

// Sentinel errors
var (
	ErrUnmatchedElse           = errors.New("encountered #else/#elif outside of a conditional")
	ErrUnmatchedEndif          = errors.New("encountered #endif with no matching conditional")
	ErrUnterminatedConditional = errors.New("reached end of file with an active conditional block")
)

// Builder consumes classified logical lines in source order and produces a
// Forest. It keeps a stack of the currently open conditional at each nesting
// depth; an empty stack means the current line is outside every conditional.
type Builder struct {
	forest Forest
	stack  []*Conditional
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Feed advances the builder by one logical line. Lines that carry no
// structural directive are ignored.
func (b *Builder) Feed(line directive.LogicalLine) error {
	kind := directive.Classify(line.Text)

	switch {
	case kind.Opens():
		cond := &Conditional{
			BeginLine: line.Line,
			Blocks: []*Block{{
				BeginLine: line.Line,
				Condition: line.Text,
			}},
		}

		if len(b.stack) == 0 {
			// Top level
			b.forest = append(b.forest, cond)
		} else {
			// Nesting attaches to whichever branch is presently open
			open := b.openBlock()
			open.Nested = append(open.Nested, cond)
		}

		b.stack = append(b.stack, cond)

	case kind == directive.Elif || kind == directive.Else:
		if len(b.stack) == 0 {
			return fmt.Errorf("line %d: %w", line.Line, ErrUnmatchedElse)
		}

		open := b.openBlock()
		open.EndLine = line.Line

		cond := b.stack[len(b.stack)-1]
		cond.Blocks = append(cond.Blocks, &Block{
			BeginLine: line.Line,
			Condition: line.Text,
		})

	case kind == directive.Endif:
		if len(b.stack) == 0 {
			return fmt.Errorf("line %d: %w", line.Line, ErrUnmatchedEndif)
		}

		cond := b.stack[len(b.stack)-1]
		cond.EndLine = line.Line
		cond.Blocks[len(cond.Blocks)-1].EndLine = line.Line
		b.stack = b.stack[:len(b.stack)-1]
	}

	return nil
}

// Finish validates that every conditional was terminated and returns the
// forest. The builder must not be fed after Finish.
func (b *Builder) Finish() (Forest, error) {
	if len(b.stack) > 0 {
		open := b.stack[len(b.stack)-1]
		return nil, fmt.Errorf("line %d: %w", open.BeginLine, ErrUnterminatedConditional)
	}

	return b.forest, nil
}

// openBlock returns the last block of the innermost open conditional.
func (b *Builder) openBlock() *Block {
	cond := b.stack[len(b.stack)-1]
	return cond.Blocks[len(cond.Blocks)-1]
}

// Parse builds a forest from an input stream in a single forward pass.
func Parse(r io.Reader) (Forest, error) {
	builder := NewBuilder()

	for line, err := range directive.NewReader(r).Lines() {
		if err != nil {
			return nil, err
		}

		if err := builder.Feed(line); err != nil {
			return nil, err
		}
	}

	return builder.Finish()
}

// ParseFile builds a forest from the named file. The file handle is released
// on every path, including build failures.
func ParseFile(path string) (Forest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	defer f.Close()

	forest, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return forest, nil
}
