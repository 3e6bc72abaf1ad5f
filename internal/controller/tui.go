package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/locstat/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea and Lip Gloss for terminal display.
// Text and JSON reports are delegated to SimpleUI so their bytes do not
// depend on the terminal.
type TUI struct {
	output io.Writer
	simple *SimpleUI
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{output: cmd.OutOrStdout(), simple: NewSimpleUI(cmd)}
}

// DisplayReport renders table reports as a styled summary.
func (t *TUI) DisplayReport(report m.Report, format Format) error {
	if format != FormatTable {
		return t.simple.DisplayReport(report, format)
	}

	width, _, _ := t.terminalSize()
	_, err := fmt.Fprint(t.output, renderSummary(report, width))

	return err
}

// DisplayLines shows classified lines, paging interactively when they do not fit.
func (t *TUI) DisplayLines(path m.Path, lines []m.Line) error {
	model := newInspectModel(path, lines)

	if width, height, ok := t.terminalSize(); ok {
		model.width = width
		model.height = height
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) terminalSize() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}
