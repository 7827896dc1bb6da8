package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/unitlab/internal/conversion"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00cccc"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	Cursor = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Value = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff88ff"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00aaaa")).
		Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))
)

// class colors, green for exact through red for rejected
var classStyles = map[conversion.Class]lipgloss.Style{
	conversion.Exact:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88")),
	conversion.Floating:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff")),
	conversion.Truncating: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00")),
	conversion.Rejected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444")),
}

// ClassBadge renders a conversion class in its color, padded to width.
func ClassBadge(c conversion.Class, width int) string {
	return classStyles[c].Render(fmt.Sprintf("%-*s", width, c))
}

// Table pads every column to its widest cell and styles the header. Cells
// are padded before styling so escape codes do not skew the widths.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(join(headers, widths)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(join(row, widths))
		b.WriteString("\n")
	}
	return b.String()
}

func join(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		pad := 0
		if i < len(widths) {
			pad = widths[i] - lipgloss.Width(c)
		}
		parts[i] = c + strings.Repeat(" ", max(pad, 0))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return Subtle.Render(left + " ◆ " + right)
}

func hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(KeyHint.Render(pairs[i]))
		b.WriteString(Subtle.Render(" " + pairs[i+1] + "  "))
	}
	return strings.TrimRight(b.String(), " ")
}
