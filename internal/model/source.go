// Package model defines the data structures shared by the line statistics packages.
package model

// Path represents a file system path.
type Path string

// StdinPath is the pseudo path used for text read from standard input.
const StdinPath Path = "-"

// Source is a text buffer to classify together with where it came from.
type Source struct {
	Origin Path
	Text   string
	// Hash is the SHA-256 of Text, used as the stats cache key.
	Hash string
}

// LineKind is the classification of a single line.
type LineKind string

const (
	// LineEmpty is a line that is blank once surrounding whitespace is trimmed.
	LineEmpty LineKind = "empty"
	// LineComment is a line whose trimmed content starts with "//".
	LineComment LineKind = "comment"
	// LineCode is every other line.
	LineCode LineKind = "code"
)

// Line is one classified line of a source. Number is 1-based.
type Line struct {
	Number int
	Text   string
	Kind   LineKind
}
