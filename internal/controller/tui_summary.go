package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/locstat/internal/model"
)

const summaryCountWidth = 9

var summaryColumns = []string{"Lines", "Code", "Symbols", "Empty", "Comments"}

// renderSummary draws the report as a bordered table sized to width.
func renderSummary(report m.Report, width int) string {
	if width <= 0 {
		width = 80
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	if len(report.Files) == 0 {
		return titleStyle.Render("No source files found") + "\n"
	}

	pathWidth := width - 6 - len(summaryColumns)*summaryCountWidth
	if pathWidth < 10 {
		pathWidth = 10
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8"))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(pathWidth)
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(summaryCountWidth).Align(lipgloss.Right)
	totalStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	headerCells := []string{lipgloss.NewStyle().Width(pathWidth).Render("Path")}
	for _, column := range summaryColumns {
		headerCells = append(headerCells, lipgloss.NewStyle().Width(summaryCountWidth).Align(lipgloss.Right).Render(column))
	}

	rows := []string{headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, headerCells...))}

	row := func(label string, stats m.Stats, style lipgloss.Style) string {
		cells := []string{style.Inherit(pathStyle).Render(truncateToWidth(label, pathWidth))}
		for _, value := range summaryValues(stats) {
			cells = append(cells, style.Inherit(countStyle).Render(fmt.Sprintf("%d", value)))
		}

		return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	for _, stats := range report.Files {
		rows = append(rows, row(string(stats.Path), stats, lipgloss.NewStyle()))
	}

	if len(report.Files) > 1 {
		rows = append(rows, row(fmt.Sprintf("Total (%d files)", len(report.Files)), report.Total, totalStyle))
	}

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Line statistics"),
		tableContainer.Render(strings.Join(rows, "\n")),
	) + "\n"
}

func summaryValues(stats m.Stats) []int {
	return []int{stats.Total, stats.Code, stats.CodeSymbols, stats.Empty, stats.Comment}
}
