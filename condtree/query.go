package condtree

import "fmt"

// Requirement characterizes one preprocessor decision: whether the branch's
// condition must have held or failed for the target line to be reached.
type Requirement int

const (
	RequireFalse Requirement = iota
	RequireTrue
)

func (r Requirement) String() string {
	if r == RequireTrue {
		return "TRUE"
	}

	return "FALSE"
}

// MarshalJSON renders the requirement as "TRUE" or "FALSE".
func (r Requirement) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", r.String())), nil
}

// TraceEntry is one preprocessor decision on the causal chain for a target
// line: the branch's opening directive line, whether its condition must be
// true or false, and the directive's verbatim text.
type TraceEntry struct {
	Line        int         `json:"line"`
	Requirement Requirement `json:"requirement"`
	Condition   string      `json:"condition"`
}

// Trace returns the ordered chain of branch decisions that must hold for the
// target line to be part of the compiled unit. Entries are depth-first,
// outer to inner, in branch scan order: the containing branch at each level
// is reported TRUE, every branch scanned before it FALSE, and branches after
// the containing one are never reported. An empty result means the line is
// unconditionally included.
//
// A target that sits exactly on a group's terminating directive matches no
// branch's half-open range: every branch of that group reports FALSE and
// none reports TRUE.
func (f Forest) Trace(target int) []TraceEntry {
	return traceConditionals(f, target, nil)
}

func traceConditionals(conds []*Conditional, target int, entries []TraceEntry) []TraceEntry {
	for _, cond := range conds {
		if !cond.contains(target) {
			continue
		}

		for _, block := range cond.Blocks {
			if block.contains(target) {
				entries = append(entries, TraceEntry{
					Line:        block.BeginLine,
					Requirement: RequireTrue,
					Condition:   block.Condition,
				})

				entries = traceConditionals(block.Nested, target, entries)

				// Later branches don't affect inclusion once an earlier
				// one is selected
				break
			}

			// The scan only reaches a later branch when every earlier
			// condition failed, so a skipped branch is still relevant
			entries = append(entries, TraceEntry{
				Line:        block.BeginLine,
				Requirement: RequireFalse,
				Condition:   block.Condition,
			})
		}

		// Top-level groups are disjoint; no other conditional can
		// contain the target
		break
	}

	return entries
}
