// Package tui provides a terminal user interface for musictext
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/musictext/pkg/lily"
	"github.com/james-see/musictext/pkg/notation"
	"github.com/james-see/musictext/pkg/vexflow"
)

// Manuscript-inspired color scheme
var (
	inkBlue    = lipgloss.Color("#5FAFFF")
	paperGold  = lipgloss.Color("#FFD787")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(inkBlue).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(paperGold).
			PaddingTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	previewStyle = lipgloss.NewStyle().
			Foreground(silverGray)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(inkBlue).
			Padding(1, 2)
)

// Format selects the preview pane's output.
type Format int

const (
	FormatLilypond Format = iota
	FormatVexflow
)

// Model represents the TUI model
type Model struct {
	editor  textarea.Model
	format  Format
	doc     *notation.Document
	err     error
	preview string
	width   int
	height  int
}

// New creates a new TUI model
func New() Model {
	ta := textarea.New()
	ta.Placeholder = "|1 2 3|"
	ta.Focus()
	ta.SetWidth(40)
	ta.SetHeight(12)

	m := Model{editor: ta, format: FormatLilypond}
	m.recompile()
	return m
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(msg.Width/2 - 6)
		m.editor.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.format == FormatLilypond {
				m.format = FormatVexflow
			} else {
				m.format = FormatLilypond
			}
			m.recompile()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.recompile()
	return m, cmd
}

// recompile reruns the pipeline over the editor buffer. Compile errors are
// part of normal editing, so they land in the status line, not a crash.
func (m *Model) recompile() {
	text := m.editor.Value()
	if strings.TrimSpace(text) == "" {
		m.doc, m.err, m.preview = nil, nil, ""
		return
	}

	m.doc, m.err = notation.Compile(text)
	if m.err != nil {
		m.preview = ""
		return
	}

	var emitter notation.Emitter = lily.New()
	if m.format == FormatVexflow {
		emitter = vexflow.New()
	}
	out, err := emitter.Emit(m.doc)
	if err != nil {
		m.err = err
		m.preview = ""
		return
	}
	m.preview = out
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" MUSICTEXT EDITOR "))
	s.WriteString("\n")

	editorPane := boxStyle.Render(m.editor.View())
	previewPane := boxStyle.Render(previewStyle.Render(m.previewBody()))
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, editorPane, previewPane))

	s.WriteString("\n")
	s.WriteString(m.statusLine())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("tab: preview format • esc: quit"))

	return s.String()
}

func (m Model) previewBody() string {
	if m.preview == "" {
		return "(nothing to preview)"
	}
	lines := strings.Split(m.preview, "\n")
	max := m.height - 8
	if max > 0 && len(lines) > max {
		lines = lines[:max]
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusLine() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("✗ %s", m.err.Error()))
	}
	if m.doc == nil || len(m.doc.Staves) == 0 {
		return statusStyle.Render("  start typing notation above")
	}
	system := "mixed"
	if len(m.doc.Systems) == 1 {
		system = m.doc.Systems[0]
	}
	formatName := "lilypond"
	if m.format == FormatVexflow {
		formatName = "vexflow"
	}
	return statusStyle.Render(fmt.Sprintf("  %s • %d stave(s) • preview: %s", system, len(m.doc.Staves), formatName))
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
