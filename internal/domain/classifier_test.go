package domain

import (
	"strings"
	"testing"

	m "github.com/mouse-blink/locstat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const codeFragment = `// This is the main function.
fn main() {
    // Statements here are executed when the compiled binary is called.

    // Print text to the console.
    println!("Hello World!");
}`

func TestClassifier_Counts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want m.Stats
	}{
		{
			name: "code fragment",
			text: codeFragment,
			want: m.Stats{Total: 7, Code: 3, CodeSymbols: 41, Empty: 1, Comment: 3},
		},
		{
			name: "comments around blank lines",
			text: "// one\n// two\n\n\n\n// three",
			want: m.Stats{Total: 6, Code: 0, CodeSymbols: 0, Empty: 3, Comment: 3},
		},
		{
			name: "empty input",
			text: "",
			want: m.Stats{},
		},
		{
			name: "single code line",
			text: "abc",
			want: m.Stats{Total: 1, Code: 1, CodeSymbols: 3, Empty: 0, Comment: 0},
		},
		{
			name: "whitespace only line counts symbols",
			text: "   ",
			want: m.Stats{Total: 1, Code: 0, CodeSymbols: 3, Empty: 1, Comment: 0},
		},
		{
			name: "trailing newline does not add a line",
			text: "abc\n",
			want: m.Stats{Total: 1, Code: 1, CodeSymbols: 3},
		},
		{
			name: "lone newline is one empty line",
			text: "\n",
			want: m.Stats{Total: 1, Empty: 1},
		},
		{
			name: "indented comment",
			text: "\t  // note\nx := 1",
			want: m.Stats{Total: 2, Code: 1, CodeSymbols: 6, Comment: 1},
		},
		{
			name: "carriage return stays in the line",
			text: "a\r\n\r\n// c\r\n",
			want: m.Stats{Total: 3, Code: 1, CodeSymbols: 3, Empty: 1, Comment: 1},
		},
		{
			name: "code points not bytes",
			text: "привет // мир",
			want: m.Stats{Total: 1, Code: 1, CodeSymbols: 13},
		},
		{
			name: "single slash is code",
			text: "/ not a comment",
			want: m.Stats{Total: 1, Code: 1, CodeSymbols: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(tt.text)

			assert.Equal(t, tt.want.Total, c.TotalLines(), "TotalLines")
			assert.Equal(t, tt.want.Code, c.CodeLines(), "CodeLines")
			assert.Equal(t, tt.want.CodeSymbols, c.CodeSymbols(), "CodeSymbols")
			assert.Equal(t, tt.want.Empty, c.EmptyLines(), "EmptyLines")
			assert.Equal(t, tt.want.Comment, c.CommentLines(), "CommentLines")
		})
	}
}

func TestClassifier_Invariants(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		codeFragment,
		codeFragment + "\n",
		"   \n\t\n// x\ny",
		"//\n//\n//",
		strings.Repeat("a\n", 50),
		"\r\n",
	}

	for _, text := range inputs {
		c := NewClassifier(text)

		assert.Equal(t, c.TotalLines(), c.CodeLines()+c.EmptyLines()+c.CommentLines(), "partition for %q", text)
		assert.GreaterOrEqual(t, c.CodeLines(), 0, "code lines for %q", text)
		assert.GreaterOrEqual(t, c.CodeSymbols(), 0, "code symbols for %q", text)
		assert.Len(t, c.Lines(), c.TotalLines(), "lines for %q", text)
	}
}

func TestClassifier_Idempotent(t *testing.T) {
	c := NewClassifier(codeFragment)

	first := c.Stats("fragment")
	second := c.Stats("fragment")

	assert.Equal(t, first, second)
}

func TestClassifier_Lines(t *testing.T) {
	lines := NewClassifier(codeFragment).Lines()
	require.Len(t, lines, 7)

	kinds := make([]m.LineKind, 0, len(lines))
	for _, line := range lines {
		kinds = append(kinds, line.Kind)
	}

	assert.Equal(t, []m.LineKind{
		m.LineComment,
		m.LineCode,
		m.LineComment,
		m.LineEmpty,
		m.LineComment,
		m.LineCode,
		m.LineCode,
	}, kinds)
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, "}", lines[6].Text)
}

func TestClassifier_Stats(t *testing.T) {
	got := NewClassifier(codeFragment).Stats("main.rs")

	assert.Equal(t, m.Stats{
		Path:        "main.rs",
		Total:       7,
		Code:        3,
		CodeSymbols: 41,
		Empty:       1,
		Comment:     3,
	}, got)
}
