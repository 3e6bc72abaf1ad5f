// Package controller provides output adapters for displaying line statistics.
package controller

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/locstat/internal/model"
)

// Format selects how a report is rendered.
type Format string

// Available report formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat converts a flag or config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// UI defines the interface for displaying analysis results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayReport shows per-source statistics and their totals.
	DisplayReport(report m.Report, format Format) error
	// DisplayLines shows the classification of every line of one source.
	DisplayLines(path m.Path, lines []m.Line) error
}
