package directive

// Kind identifies which structural preprocessor directive a logical line
// carries. Directives that do not affect conditional nesting (pragma, define,
// include, ...) classify as None, as does any non-directive line.
type Kind int

const (
	None Kind = iota
	If
	Ifdef
	Ifndef
	Elif
	Else
	Endif
)

func (k Kind) String() string {
	switch k {
	case If:
		return "if"
	case Ifdef:
		return "ifdef"
	case Ifndef:
		return "ifndef"
	case Elif:
		return "elif"
	case Else:
		return "else"
	case Endif:
		return "endif"
	default:
		return "none"
	}
}

// Opens reports whether the directive starts a new conditional group.
func (k Kind) Opens() bool {
	return k == If || k == Ifdef || k == Ifndef
}

// isBlank matches the whitespace set the preprocessor skips before and
// after '#': space, tab and vertical tab.
func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Classify inspects one logical line and returns the structural directive it
// carries. The line is a directive only if its first non-blank character is
// '#'; whitespace is allowed between '#' and the keyword. The keyword is the
// maximal run of ASCII letters after the '#', matched case-sensitively, so
// "#if(FOO)" classifies as If while "#ifx" does not. Classify is a pure
// function of the text.
func Classify(text string) Kind {
	i := 0
	for i < len(text) && isBlank(text[i]) {
		i++
	}

	if i >= len(text) || text[i] != '#' {
		return None
	}

	i++
	for i < len(text) && isBlank(text[i]) {
		i++
	}

	start := i
	for i < len(text) && isAlpha(text[i]) {
		i++
	}

	switch text[start:i] {
	case "if":
		return If
	case "ifdef":
		return Ifdef
	case "ifndef":
		return Ifndef
	case "elif":
		return Elif
	case "else":
		return Else
	case "endif":
		return Endif
	default:
		return None
	}
}
