package viz

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/palin/internal/palindrome"
)

const maxHistory = 8

type entry struct {
	value int64
	ok    bool
}

type model struct {
	input         string
	history       []entry
	showPlot      bool
	width, height int
}

func NewInteractiveApp() model {
	return model{showPlot: true, width: 80, height: 24}
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
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if m.input == "" {
			return m, nil
		}
		n, err := strconv.ParseInt(m.input, 10, 64)
		m.input = ""
		if err != nil {
			return m, nil
		}
		m.history = append(m.history, entry{value: n, ok: palindrome.Check(n)})
		if len(m.history) > maxHistory {
			m.history = m.history[1:]
		}
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case "p":
		m.showPlot = !m.showPlot
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if c >= '0' && c <= '9' && len(m.input) < 19 {
				m.input += string(c)
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("\n\n    " + heading.Render("PALIN") + "\n    " + subtle.Render("integer palindrome checker") + "\n    " + subtle.Render("─────────────────────────") + "\n\n")

	b.WriteString("    " + dim.Render("number:") + " " + white.Render(m.input+"_") + "\n\n")

	if len(m.history) > 0 {
		last := m.history[len(m.history)-1]
		b.WriteString("    " + StyledVerdict(last.value, last.ok) + "\n")
		if m.showPlot {
			plot := DigitPlot(last.value)
			for _, line := range strings.Split(plot, "\n") {
				b.WriteString("    " + dim.Render(line) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if len(m.history) > 1 {
		b.WriteString("    " + subtle.Render("earlier:") + "\n")
		for i := len(m.history) - 2; i >= 0; i-- {
			e := m.history[i]
			b.WriteString("    " + dim.Render(Verdict(e.value, e.ok)) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("    " + keyHint.Render("0-9") + subtle.Render(" type  ") + keyHint.Render("enter") + subtle.Render(" check  ") + keyHint.Render("p") + subtle.Render(" plot  ") + keyHint.Render("q") + subtle.Render(" quit") + "\n")
	return b.String()
}

func RunInteractive() error {
	_, err := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen()).Run()
	return err
}
