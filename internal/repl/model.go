package repl

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kin-lang/kin/foundation/kin/token"
)

// entry is one block of the transcript
type entry struct {
	prompt string
	input  string
	output string
	style  lipgloss.Style
}

// Model is the bubbletea model of the interactive REPL
type Model struct {
	session *Session
	title   string

	width  int
	height int
	ready  bool

	input    textinput.Model
	viewport viewport.Model

	transcript []entry
	history    []string
	historyPos int
	quitting   bool
}

// NewModel creates a REPL model around session. title is shown in the
// header, e.g. "Kin v0.1.0".
func NewModel(session *Session, title string) Model {
	ti := textinput.New()
	ti.Prompt = session.Prompt()
	ti.PromptStyle = PromptStyle
	ti.Placeholder = "reka x = 1;"
	ti.CharLimit = 4096
	ti.ShowSuggestions = true
	ti.SetSuggestions(slices.Sorted(maps.Keys(token.Keywords())))
	ti.Focus()

	return Model{
		session: session,
		title:   title,
		input:   ti,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			m.session.Reset()
			m.input.Reset()
			m.input.Prompt = m.session.Prompt()
			return m, nil

		case "ctrl+l":
			m.transcript = nil
			m.updateContent()
			return m, nil

		case "up":
			if m.historyPos > 0 {
				m.historyPos--
				m.input.SetValue(m.history[m.historyPos])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.historyPos < len(m.history)-1 {
				m.historyPos++
				m.input.SetValue(m.history[m.historyPos])
				m.input.CursorEnd()
			} else {
				m.historyPos = len(m.history)
				m.input.Reset()
			}
			return m, nil

		case "enter":
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-6))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-6)
		}
		m.input.Width = max(10, msg.Width-len(m.input.Prompt)-6)
		m.updateContent()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	prompt := m.input.Prompt
	m.input.Reset()

	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.historyPos = len(m.history)

	res := m.session.Eval(line)
	m.input.Prompt = m.session.Prompt()

	e := entry{prompt: prompt, input: line}
	switch {
	case res.Err != nil:
		e.output, e.style = m.session.Diagnose(res.Err), ErrorMessageStyle
	case res.Message != "":
		e.output, e.style = res.Message, MessageStyle
	default:
		e.output, e.style = res.Output, OutputStyle
	}
	m.transcript = append(m.transcript, e)
	m.updateContent()

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "..."
	}

	var s strings.Builder
	s.WriteString(TitleStyle.Render(m.title))
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m *Model) renderFooter() string {
	help := "Enter: run • Tab: complete keyword • Esc: cancel block • Ctrl+L: clear • Ctrl+C: quit"
	mode := "ast"
	if m.session.TokensMode() {
		mode = "tokens"
	}
	mode = fmt.Sprintf("mode: %s", mode)

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-len(mode)-4)),
			ModeStyle.Render(mode),
		),
	)
}

func (m *Model) updateContent() {
	var content strings.Builder

	for _, e := range m.transcript {
		content.WriteString(PromptStyle.Render(e.prompt))
		content.WriteString(e.input)
		content.WriteString("\n")
		if e.output != "" {
			content.WriteString(e.style.Render(e.output))
			content.WriteString("\n")
		}
	}

	if !m.ready {
		return
	}
	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// Transcript returns the plain text of the session so far
func (m Model) Transcript() string {
	var s strings.Builder
	for _, e := range m.transcript {
		s.WriteString(e.prompt)
		s.WriteString(e.input)
		s.WriteString("\n")
		if e.output != "" {
			s.WriteString(e.output)
			s.WriteString("\n")
		}
	}
	return s.String()
}
