package directive

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Kind
	}{
		{
			name:     "if directive",
			input:    "#if defined(FOO)",
			expected: If,
		},
		{
			name:     "ifdef directive",
			input:    "#ifdef FOO",
			expected: Ifdef,
		},
		{
			name:     "ifndef directive",
			input:    "#ifndef FOO_H",
			expected: Ifndef,
		},
		{
			name:     "elif directive",
			input:    "#elif BAR > 1",
			expected: Elif,
		},
		{
			name:     "else directive",
			input:    "#else",
			expected: Else,
		},
		{
			name:     "endif directive",
			input:    "#endif",
			expected: Endif,
		},
		{
			name:     "endif with trailing comment",
			input:    "#endif // FOO",
			expected: Endif,
		},
		{
			name:     "leading whitespace",
			input:    "  \t#if FOO",
			expected: If,
		},
		{
			name:     "leading vertical tab",
			input:    "\v#if FOO",
			expected: If,
		},
		{
			name:     "whitespace after hash",
			input:    "#   if FOO",
			expected: If,
		},
		{
			name:     "keyword terminated by parenthesis",
			input:    "#if(FOO)",
			expected: If,
		},
		{
			name:     "pragma is not structural",
			input:    "#pragma once",
			expected: None,
		},
		{
			name:     "define is not structural",
			input:    "#define FOO 1",
			expected: None,
		},
		{
			name:     "include is not structural",
			input:    "#include <stdio.h>",
			expected: None,
		},
		{
			name:     "plain code",
			input:    "int x = 1;",
			expected: None,
		},
		{
			name:     "hash not first non-blank",
			input:    "x = 1; #if FOO",
			expected: None,
		},
		{
			name:     "empty line",
			input:    "",
			expected: None,
		},
		{
			name:     "blank line",
			input:    "   \t ",
			expected: None,
		},
		{
			name:     "bare hash",
			input:    "#",
			expected: None,
		},
		{
			name:     "hash followed by blanks only",
			input:    "#   ",
			expected: None,
		},
		{
			name:     "hash followed by non-letter",
			input:    "# 1",
			expected: None,
		},
		{
			name:     "unknown keyword sharing prefix",
			input:    "#ifx FOO",
			expected: None,
		},
		{
			name:     "keywords are case sensitive",
			input:    "#IF FOO",
			expected: None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.input))
		})
	}
}

func TestKindOpens(t *testing.T) {
	assert.True(t, If.Opens())
	assert.True(t, Ifdef.Opens())
	assert.True(t, Ifndef.Opens())
	assert.False(t, Elif.Opens())
	assert.False(t, Else.Opens())
	assert.False(t, Endif.Opens())
	assert.False(t, None.Opens())
}

func TestClassifyMergedLogicalLine(t *testing.T) {
	// A continuation keeps the backslash and newline inside the text; only
	// the head of the logical line decides the classification
	assert.Equal(t, If, Classify("#if defined(A) && \\\n    defined(B)"))
}
