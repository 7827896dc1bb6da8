package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/unitlab/internal/catalog"
	"github.com/san-kum/unitlab/internal/conversion"
	"github.com/san-kum/unitlab/internal/quantity"
)

const (
	stateFrom = iota
	stateTo
	stateValue
)

const pageSize = 12

type model struct {
	state, cursor int
	entries       []catalog.Entry
	targets       []catalog.Entry
	from, to      catalog.Entry
	rep           conversion.Rep
	input         string
	width, height int
}

// NewInteractiveApp lists every unit in reg. Plans shown next to results are
// classified for rep.
func NewInteractiveApp(reg *catalog.Registry, rep conversion.Rep) *model {
	return &model{
		state:   stateFrom,
		entries: reg.Entries(),
		rep:     rep,
		width:   80, height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateFrom:
		return m.listKey(msg, m.entries)
	case stateTo:
		return m.listKey(msg, m.targets)
	case stateValue:
		return m.valueKey(msg)
	}
	return m, nil
}

func (m model) listKey(msg tea.KeyMsg, list []catalog.Entry) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.state == stateTo {
			m.state, m.cursor = stateFrom, 0
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(list) == 0 {
			return m, nil
		}
		if m.state == stateFrom {
			m.from = list[m.cursor]
			m.targets = m.compatible(m.from)
			m.state, m.cursor = stateTo, 0
		} else {
			m.to = list[m.cursor]
			m.state, m.input = stateValue, "1"
		}
	}
	return m, nil
}

func (m model) valueKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state, m.cursor = stateTo, 0
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 {
			c := s[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
				m.input += s
			}
		}
	}
	return m, nil
}

func (m model) compatible(from catalog.Entry) []catalog.Entry {
	var out []catalog.Entry
	for _, e := range m.entries {
		if e.Name != from.Name && e.Dimension() == from.Dimension() {
			out = append(out, e)
		}
	}
	return out
}

// result converts the typed value; affine entries go through points.
func (m model) result() (float64, error) {
	v, err := strconv.ParseFloat(m.input, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", m.input)
	}
	if m.from.Affine || m.to.Affine {
		p, err := quantity.PointOf(v, m.from.AsScale()).In(m.to.AsScale())
		return p.Value(), err
	}
	q, err := quantity.Of(v, m.from.Unit).In(m.to.Unit)
	return q.Value(), err
}

func (m model) View() string {
	switch m.state {
	case stateFrom:
		return m.viewList("UNITLAB", "pick a unit to convert from", m.entries)
	case stateTo:
		return m.viewList(strings.ToUpper(m.from.Name), "convert to", m.targets)
	case stateValue:
		return m.viewValue()
	}
	return ""
}

func (m model) viewList(title, sub string, list []catalog.Entry) string {
	var b strings.Builder
	b.WriteString("\n\n    " + Title.Render(title) + "\n    " + Subtle.Render(sub) + "\n    " + Separator(25) + "\n\n")

	start := 0
	if m.cursor >= pageSize {
		start = m.cursor - pageSize + 1
	}
	for i := start; i < len(list) && i < start+pageSize; i++ {
		e := list[i]
		name := fmt.Sprintf("%-16s", e.Name)
		desc := fmt.Sprintf("%-6s %s", e.Symbol, e.Dimension())
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", Cursor.Render("▸"), Selected.Render(name), Value.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", Subtle.Render(name), Subtle.Render(desc)))
		}
	}
	if len(list) == 0 {
		b.WriteString("    " + Subtle.Render("no compatible units") + "\n")
	}
	b.WriteString("\n    " + hints("j/k", "navigate", "enter", "select", "esc", "back", "q", "quit") + "\n")
	return b.String()
}

func (m model) viewValue() string {
	var b strings.Builder
	b.WriteString("\n\n    " + Title.Render(m.from.Name+" → "+m.to.Name) + "\n    " + Separator(25) + "\n\n")
	b.WriteString(fmt.Sprintf("    %s %s\n", Value.Render(m.input+"_"), m.from.Symbol))

	out, err := m.result()
	if err != nil {
		b.WriteString("    " + ErrorText.Render(err.Error()) + "\n")
	} else {
		b.WriteString(fmt.Sprintf("    %s %s\n", Selected.Render(strconv.FormatFloat(out, 'g', -1, 64)), m.to.Symbol))
	}

	if !m.from.Affine && !m.to.Affine {
		p := conversion.Classify(m.from.Unit, m.to.Unit, m.rep)
		b.WriteString("\n    " + Subtle.Render(m.rep.String()+": ") + ClassBadge(p.Class, 0) + Subtle.Render("  factor "+p.Ratio.String()) + "\n")
	}
	b.WriteString("\n    " + hints("0-9", "edit", "esc", "back", "ctrl+c", "quit") + "\n")
	return b.String()
}

func RunInteractive(reg *catalog.Registry, rep conversion.Rep) error {
	_, err := tea.NewProgram(NewInteractiveApp(reg, rep), tea.WithAltScreen()).Run()
	return err
}
