// Package condtree builds and queries the tree of conditional-compilation
// constructs of a single source file. The tree captures directive nesting
// only; no condition expression is ever evaluated.
package condtree

// Block is a single branch of a conditional group: one "#if", "#elif" or
// "#else" arm. Its line range is half-open — EndLine is the directive that
// closes the branch and belongs to the next branch, or to nobody when it is
// the group's "#endif".
type Block struct {
	BeginLine int
	EndLine   int
	Condition string // verbatim text of the opening directive, display only
	Nested    []*Conditional
}

// contains reports whether line falls inside the branch. The upper bound is
// exclusive: the directive terminating a block is not part of it.
func (b *Block) contains(line int) bool {
	return b.BeginLine <= line && line < b.EndLine
}

// Conditional is one full group from an opening "#if/#ifdef/#ifndef" to its
// matching "#endif". Blocks partition [BeginLine, EndLine]: the first block
// starts on BeginLine, each block ends where its successor begins, and the
// last block ends on EndLine.
type Conditional struct {
	BeginLine int
	EndLine   int
	Blocks    []*Block
}

// contains reports whether line falls inside the group, both ends inclusive.
func (c *Conditional) contains(line int) bool {
	return c.BeginLine <= line && line <= c.EndLine
}

// Forest is the ordered collection of top-level Conditionals of one file.
// Top-level groups are disjoint and appear in source order. A built forest
// is immutable and safe for concurrent queries.
type Forest []*Conditional
