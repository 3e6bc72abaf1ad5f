package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/locstat/internal/model"
)

// Rows taken by everything except the list: title, summary, footer, border, header.
const inspectChromeHeight = 9

var kindColors = map[m.LineKind]lipgloss.Color{
	m.LineCode:    lipgloss.Color("10"),
	m.LineComment: lipgloss.Color("8"),
	m.LineEmpty:   lipgloss.Color("240"),
}

// lineDelegate renders one classified line per list row.
type lineDelegate struct {
	offset int
}

func (d lineDelegate) Height() int  { return 1 }
func (d lineDelegate) Spacing() int { return 0 }
func (d lineDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d lineDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	li, ok := item.(lineItem)
	if !ok {
		return
	}

	_, _ = fmt.Fprint(w, renderLine(li.line, lm.Width(), index == lm.Index(), d.offset))
}

// renderLine formats "number kind text" to fit width.
func renderLine(line m.Line, width int, selected bool, offset int) string {
	numberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(5).Align(lipgloss.Right)
	kindStyle := lipgloss.NewStyle().Foreground(kindColors[line.Kind]).Bold(true).Width(8)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	textWidth := width - 15 // number (5) + spacing (2) + kind (8)

	text := expandTabs(line.Text)

	var displayText string

	if selected {
		numberStyle = numberStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		textStyle = textStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		displayText = animateScroll(text, textWidth, offset)
	} else {
		displayText = truncateToWidth(text, textWidth)
	}

	return fmt.Sprintf("%s  %s%s",
		numberStyle.Render(fmt.Sprintf("%d", line.Number)),
		kindStyle.Render(string(line.Kind)),
		textStyle.Render(displayText),
	)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(strings.TrimRight(s, "\r"), "\t", "    ")
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// inspectModel lists the classified lines of one source.
type inspectModel struct {
	width        int
	height       int
	path         m.Path
	lines        []m.Line
	counts       map[m.LineKind]int
	lineList     list.Model
	delegate     lineDelegate
	animOffset   int
	lastSelected int
}

func newInspectModel(path m.Path, lines []m.Line) inspectModel {
	counts := make(map[m.LineKind]int, len(kindColors))
	items := make([]list.Item, 0, len(lines))

	for _, line := range lines {
		counts[line.Kind]++
		items = append(items, lineItem{line: line})
	}

	delegate := lineDelegate{}
	lineList := list.New(items, delegate, 80, 20)
	lineList.SetShowPagination(false)
	lineList.SetShowFilter(true)
	lineList.SetShowHelp(false)
	lineList.SetShowTitle(false)
	lineList.SetShowStatusBar(false)
	lineList.FilterInput.Placeholder = "Filter by text…"

	lastSelected := -1
	if len(items) > 0 {
		lastSelected = 0
	}

	return inspectModel{
		path:         path,
		lines:        lines,
		counts:       counts,
		lineList:     lineList,
		delegate:     delegate,
		lastSelected: lastSelected,
	}
}

// needsPagination reports whether the lines overflow a known terminal height.
func (im inspectModel) needsPagination() bool {
	if im.height <= 0 {
		return false
	}

	return len(im.lines)+inspectChromeHeight > im.height
}

func (im inspectModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (im inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		im.width = msg.Width
		im.height = msg.Height
		im.lineList.SetWidth(im.width)

	case tickMsg:
		if im.lineList.FilterState() == list.Filtering {
			return im, nil
		}

		im.animOffset++
		im.delegate.offset = im.animOffset
		im.lineList.SetDelegate(im.delegate)

		return im, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return im, tea.Quit
		default:
			im.lineList, cmd = im.lineList.Update(msg)

			// Restart the scroll animation when the selection moves
			if im.lineList.Index() != im.lastSelected {
				im.lastSelected = im.lineList.Index()
				im.animOffset = 0
				im.delegate.offset = 0
				im.lineList.SetDelegate(im.delegate)
			}

			return im, cmd
		}
	}

	return im, cmd
}

func (im inspectModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		im.header(),
		im.renderTable(),
		im.footer(),
	)
}

// staticView prints every line without the interactive list.
func (im inspectModel) staticView() string {
	width := im.width
	if width <= 0 {
		width = 80
	}

	rows := make([]string, 0, len(im.lines))
	for _, line := range im.lines {
		rows = append(rows, renderLine(line, width, false, 0))
	}

	return lipgloss.JoinVertical(lipgloss.Left, im.header(), strings.Join(rows, "\n")) + "\n"
}

func (im inspectModel) header() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accent := func(kind m.LineKind) string {
		return lipgloss.NewStyle().Foreground(kindColors[kind]).Render(fmt.Sprintf("%d", im.counts[kind]))
	}

	title := titleStyle.Render(fmt.Sprintf("Line classification: %s", im.path))
	summary := summaryStyle.Render(fmt.Sprintf(
		"Lines: %d   Code: %s   Comment: %s   Empty: %s",
		len(im.lines),
		accent(m.LineCode),
		accent(m.LineComment),
		accent(m.LineEmpty),
	))

	return lipgloss.JoinVertical(lipgloss.Left, title, summary)
}

func (im inspectModel) footer() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(im.width).
		Render("↑/k up • ↓/j down • / filter • q quit")
}

func (im inspectModel) renderTable() string {
	listHeight := im.height - inspectChromeHeight
	if listHeight < 5 {
		listHeight = 5
	}

	// Window width minus margin, border and padding
	listWidth := im.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	im.lineList.SetHeight(listHeight)
	im.lineList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%5s  %-8s%s", "Line", "Kind", "Text"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			im.lineList.View(),
		),
	)
}
