package domain

import (
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/locstat/internal/model"
)

const commentMarker = "//"

// Classifier splits a text into lines and counts them by kind.
// It never mutates its text, so all methods are safe for concurrent use.
type Classifier struct {
	text string
}

// NewClassifier creates a Classifier for text. Any text is valid, including "".
func NewClassifier(text string) *Classifier {
	return &Classifier{text: text}
}

// TotalLines returns the number of lines in the text.
func (c *Classifier) TotalLines() int {
	return len(c.lines())
}

// EmptyLines returns the number of lines that are blank after trimming whitespace.
func (c *Classifier) EmptyLines() int {
	count := 0

	for _, line := range c.lines() {
		if isEmptyLine(line) {
			count++
		}
	}

	return count
}

// CommentLines returns the number of lines whose trimmed content starts with "//".
func (c *Classifier) CommentLines() int {
	count := 0

	for _, line := range c.lines() {
		if isCommentLine(line) {
			count++
		}
	}

	return count
}

// CodeLines returns the lines that are neither empty nor comments.
func (c *Classifier) CodeLines() int {
	return c.TotalLines() - c.EmptyLines() - c.CommentLines()
}

// CodeSymbols returns the number of code points on code lines.
//
// The scan walks the raw "\n" segments and only skips zero-length segments
// and comments. A whitespace-only line is therefore counted as empty by
// EmptyLines but still contributes its characters here.
func (c *Classifier) CodeSymbols() int {
	count := 0

	for _, segment := range strings.Split(c.text, "\n") {
		if len(segment) == 0 || isCommentLine(segment) {
			continue
		}

		count += utf8.RuneCountInString(segment)
	}

	return count
}

// Lines returns every line with its classification.
func (c *Classifier) Lines() []m.Line {
	raw := c.lines()
	lines := make([]m.Line, 0, len(raw))

	for i, text := range raw {
		lines = append(lines, m.Line{Number: i + 1, Text: text, Kind: classify(text)})
	}

	return lines
}

// Stats bundles all counts for the text under the given path.
func (c *Classifier) Stats(path m.Path) m.Stats {
	return m.Stats{
		Path:        path,
		Total:       c.TotalLines(),
		Code:        c.CodeLines(),
		CodeSymbols: c.CodeSymbols(),
		Empty:       c.EmptyLines(),
		Comment:     c.CommentLines(),
	}
}

// lines splits on "\n". A final newline does not start another line.
func (c *Classifier) lines() []string {
	if c.text == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(c.text, "\n"), "\n")
}

func classify(line string) m.LineKind {
	switch {
	case isEmptyLine(line):
		return m.LineEmpty
	case isCommentLine(line):
		return m.LineComment
	default:
		return m.LineCode
	}
}

func isEmptyLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentMarker)
}
