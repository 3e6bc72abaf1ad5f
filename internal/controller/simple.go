package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	m "github.com/mouse-blink/locstat/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the report in the requested format.
func (s *SimpleUI) DisplayReport(report m.Report, format Format) error {
	switch format {
	case FormatTable:
		return s.displayTable(report)
	case FormatJSON:
		return s.displayJSON(report)
	case FormatText:
		return s.displayText(report)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// DisplayLines prints one line per source line with its number and kind.
func (s *SimpleUI) DisplayLines(path m.Path, lines []m.Line) error {
	if len(lines) == 0 {
		s.printf("%s: no lines\n", path)
		return nil
	}

	for _, line := range lines {
		s.printf("%4d  %-7s  %s\n", line.Number, line.Kind, line.Text)
	}

	return nil
}

func (s *SimpleUI) displayText(report m.Report) error {
	switch len(report.Files) {
	case 0:
		s.printf("No source files found\n")
	case 1:
		writeStats(s.out(), report.Files[0])
	default:
		for _, stats := range report.Files {
			s.printf("==> %s <==\n", stats.Path)
			writeStats(s.out(), stats)
			s.printf("\n")
		}

		s.printf("==> total <==\n")
		writeStats(s.out(), report.Total)
	}

	return nil
}

func (s *SimpleUI) displayTable(report m.Report) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Code", "Symbols", "Empty", "Comments"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, stats := range report.Files {
		table.Append(statsRow(string(stats.Path), stats))
	}

	table.SetFooter(statsRow(fmt.Sprintf("Total Files %d", len(report.Files)), report.Total))
	table.Render()

	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) displayJSON(report m.Report) error {
	if report.Files == nil {
		report.Files = []m.Stats{}
	}

	enc := json.NewEncoder(s.out())
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}

func (s *SimpleUI) out() io.Writer {
	return s.cmd.OutOrStdout()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out(), format, args...)
}

// writeStats prints the five-line summary for one source.
func writeStats(w io.Writer, stats m.Stats) {
	_, _ = fmt.Fprintf(w, "Lines in total: %d\n", stats.Total)
	_, _ = fmt.Fprintf(w, "Lines containing code: %d\n", stats.Code)
	_, _ = fmt.Fprintf(w, "Code symbols: %d\n", stats.CodeSymbols)
	_, _ = fmt.Fprintf(w, "Empty lines: %d\n", stats.Empty)
	_, _ = fmt.Fprintf(w, "Comment lines: %d\n", stats.Comment)
}

func statsRow(label string, stats m.Stats) []string {
	return []string{
		label,
		fmt.Sprintf("%d", stats.Total),
		fmt.Sprintf("%d", stats.Code),
		fmt.Sprintf("%d", stats.CodeSymbols),
		fmt.Sprintf("%d", stats.Empty),
		fmt.Sprintf("%d", stats.Comment),
	}
}
