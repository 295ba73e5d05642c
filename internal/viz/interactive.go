package viz

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bsviz/internal/export"
	"github.com/san-kum/bsviz/internal/session"
)

const (
	defaultWidth = 80
	chartWidth   = 24
	chartHeight  = 6
	barWidth     = 20
)

// Model is the Bubble Tea model of the step-through view.
type Model struct {
	sess      *session.Session[float64]
	array     []float64
	keys      keyMap
	help      help.Model
	input     textinput.Model
	inputting bool
	caret     int
	theme     Theme
	st        styles
	status    string
	width     int
}

// NewModel wraps sess. An unknown theme name falls back to the default.
func NewModel(sess *session.Session[float64], theme string) Model {
	th, _ := GetTheme(theme)

	in := textinput.New()
	in.Prompt = "target> "
	in.Placeholder = "number"
	in.CharLimit = 32

	array := sess.Array()
	caret := slices.Index(array, sess.Target())
	if caret < 0 {
		caret = 0
	}

	m := Model{
		sess:  sess,
		array: array,
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: in,
		caret: caret,
		theme: th,
		st:    newStyles(th),
		width: defaultWidth,
	}
	m.syncKeys()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Update translates input events into session calls.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.inputting {
			return m.inputKey(msg)
		}
		return m.navKey(msg)
	}
	return m, nil
}

func (m Model) navKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.sess.Next()
	case key.Matches(msg, m.keys.Prev):
		m.sess.Prev()
	case key.Matches(msg, m.keys.Reset), key.Matches(msg, m.keys.First):
		m.sess.Reset()
	case key.Matches(msg, m.keys.Last):
		m.sess.Last()
	case key.Matches(msg, m.keys.CaretR):
		m.caret = (m.caret + 1) % len(m.array)
	case key.Matches(msg, m.keys.CaretL):
		m.caret = (m.caret - 1 + len(m.array)) % len(m.array)
	case key.Matches(msg, m.keys.Select):
		if err := m.sess.SelectIndex(m.caret); err != nil {
			m.status = err.Error()
		}
	case key.Matches(msg, m.keys.Input):
		m.inputting = true
		m.input.SetValue("")
		cmd := m.input.Focus()
		m.syncKeys()
		return m, cmd
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.syncKeys()
	return m, nil
}

func (m Model) inputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		raw := strings.TrimSpace(m.input.Value())
		m.closeInput()
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.status = fmt.Sprintf("not a number: %q", raw)
			return m, nil
		}
		if err := m.sess.SelectTarget(v); err != nil {
			m.status = err.Error()
			return m, nil
		}
		if i := slices.Index(m.array, v); i >= 0 {
			m.caret = i
		}
		m.syncKeys()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.inputting = false
	m.input.Blur()
	m.syncKeys()
}

// syncKeys disables bindings that would be no-ops, which also hides them
// from the help line.
func (m *Model) syncKeys() {
	nav := !m.inputting
	m.keys.Prev.SetEnabled(nav && !m.sess.AtStart())
	m.keys.Reset.SetEnabled(nav && !m.sess.AtStart())
	m.keys.First.SetEnabled(nav && !m.sess.AtStart())
	m.keys.Next.SetEnabled(nav && !m.sess.AtEnd())
	m.keys.Last.SetEnabled(nav && !m.sess.AtEnd())
	for _, b := range []*key.Binding{&m.keys.CaretR, &m.keys.CaretL, &m.keys.Select, &m.keys.Input, &m.keys.Theme, &m.keys.Help} {
		b.SetEnabled(nav)
	}
}

// View renders the array, pointer row, step label and explanation.
func (m Model) View() string {
	step := m.sess.Current()

	var b strings.Builder
	b.WriteString(m.st.header.Render("BINARY SEARCH") + "  " +
		m.st.subtle.Render("target ") + m.st.value.Render(formatValue(m.sess.Target())) + "\n\n")
	b.WriteString(m.renderArray() + "\n\n")

	progress := 1.0
	if n := m.sess.Len() - 1; n > 0 {
		progress = float64(m.sess.Index()) / float64(n)
	}
	b.WriteString(m.st.label.Render(m.sess.Label()) + "  " + m.st.progressBar(progress, barWidth) + "\n")

	textWidth := max(20, m.width-chartWidth-12)
	b.WriteString(m.st.explain.Width(textWidth).Render(step.Explanation) + "\n")

	if m.inputting {
		b.WriteString("\n" + m.input.View() + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.st.status.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.st.separator(min(textWidth, 40)) + "\n")
	b.WriteString(m.help.View(m.keys))

	chart := export.PlotSearchSpace(m.sess.Trace(), chartWidth, chartHeight)
	side := m.st.panel.Render(m.st.subtle.Render(chart))
	return lipgloss.JoinHorizontal(lipgloss.Top, b.String(), "  ", side)
}

func (m Model) renderArray() string {
	step := m.sess.Current()
	pointers := Pointers(step, len(m.array))

	w := 3
	for _, v := range m.array {
		w = max(w, len(formatValue(v)))
	}
	w += 2

	cols := make([]string, len(m.array))
	for i, v := range m.array {
		cell := m.st.cells[ClassOf(step, i)].Width(w).Align(lipgloss.Center).Render(formatValue(v))
		idx := m.st.subtle.Width(w).Align(lipgloss.Center).Render(strconv.Itoa(i))
		ptr := lipgloss.PlaceHorizontal(w, lipgloss.Center, m.st.pointerLabel(pointers[i]))
		caret := strings.Repeat(" ", w)
		if i == m.caret {
			caret = lipgloss.PlaceHorizontal(w, lipgloss.Center, m.st.caret.Render("^"))
		}
		cols[i] = lipgloss.JoinVertical(lipgloss.Center, cell, idx, ptr, caret)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Run starts the full-screen program and blocks until the user quits.
func Run(sess *session.Session[float64], theme string) error {
	_, err := tea.NewProgram(NewModel(sess, theme), tea.WithAltScreen()).Run()
	return err
}
