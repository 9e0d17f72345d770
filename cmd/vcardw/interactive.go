package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/vcard"
	"github.com/wippyai/vcard/writer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	settingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateEditFold
)

type interactiveModel struct {
	err      error
	records  []*vcard.Record
	output   string
	warnings []writer.Warning
	foldIn   textinput.Model
	cfg      writer.Config
	selected int
	state    modelState
}

type renderedMsg struct {
	err      error
	output   string
	warnings []writer.Warning
}

func newInteractiveModel(records []*vcard.Record, cfg writer.Config) *interactiveModel {
	return &interactiveModel{
		records: records,
		cfg:     cfg,
		state:   stateBrowse,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.render
}

// render serializes the selected record with the current settings.
func (m *interactiveModel) render() tea.Msg {
	if len(m.records) == 0 {
		return renderedMsg{err: fmt.Errorf("no records loaded")}
	}
	out, warnings, err := writer.Marshal(m.records[m.selected], m.cfg)
	return renderedMsg{output: out, warnings: warnings, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateEditFold {
			return m.updateFold(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				return m, m.render
			}

		case "down", "j":
			if m.selected < len(m.records)-1 {
				m.selected++
				return m, m.render
			}

		case "1":
			m.cfg.Version = vcard.V21
			return m, m.render
		case "2":
			m.cfg.Version = vcard.V30
			return m, m.render
		case "3":
			m.cfg.Version = vcard.V40
			return m, m.render

		case "p":
			m.cfg.AddProdID = !m.cfg.AddProdID
			return m, m.render
		case "s":
			m.cfg.VersionStrict = !m.cfg.VersionStrict
			return m, m.render
		case "c":
			m.cfg.CaretEncoding = !m.cfg.CaretEncoding
			return m, m.render

		case "f":
			ti := textinput.New()
			ti.Prompt = "fold width: "
			ti.Placeholder = strconv.Itoa(m.cfg.Folding.LineLength)
			ti.Width = 10
			ti.Focus()
			m.foldIn = ti
			m.state = stateEditFold
			return m, textinput.Blink
		}

	case renderedMsg:
		m.output = msg.output
		m.warnings = msg.warnings
		m.err = msg.err
	}

	return m, nil
}

func (m *interactiveModel) updateFold(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = stateBrowse
		return m, nil

	case "enter":
		m.state = stateBrowse
		width, err := strconv.Atoi(strings.TrimSpace(m.foldIn.Value()))
		if err != nil {
			m.err = fmt.Errorf("fold width: %w", err)
			return m, nil
		}
		m.cfg.Folding.LineLength = width
		m.cfg.Folding.Disabled = width <= 0
		if m.cfg.Folding.Indent == "" {
			m.cfg.Folding.Indent = " "
		}
		return m, m.render
	}

	var cmd tea.Cmd
	m.foldIn, cmd = m.foldIn.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("vCard Preview"))
	b.WriteString(" ")
	b.WriteString(selectedStyle.Render(fmt.Sprintf(" record %d/%d ", m.selected+1, len(m.records))))
	b.WriteString("\n\n")
	b.WriteString(m.settings())
	b.WriteString("\n\n")

	if m.state == stateEditFold {
		b.WriteString(m.foldIn.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(resultStyle.Render(visibleNewlines(m.output, m.cfg.Newline)))
		b.WriteString("\n")
	}
	for _, w := range m.warnings {
		b.WriteString(warnStyle.Render("! " + w.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ record • 1/2/3 version • p prodid • s strict • c caret • f fold • q quit"))
	return b.String()
}

func (m *interactiveModel) settings() string {
	fold := "off"
	if m.cfg.Folding.Scheme().Enabled() {
		fold = strconv.Itoa(m.cfg.Folding.LineLength)
	}
	parts := []string{
		"version " + m.cfg.Version.String(),
		"prodid " + onOff(m.cfg.AddProdID),
		"strict " + onOff(m.cfg.VersionStrict),
		"caret " + onOff(m.cfg.CaretEncoding),
		"fold " + fold,
	}
	for i, p := range parts {
		parts[i] = settingStyle.Render(p)
	}
	return strings.Join(parts, "  ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// visibleNewlines renders the configured newline as a terminal line break
// so CRLF output displays cleanly.
func visibleNewlines(s, nl string) string {
	return strings.ReplaceAll(s, nl, "\n")
}

func runInteractive(records []*vcard.Record, cfg writer.Config) error {
	p := tea.NewProgram(newInteractiveModel(records, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var _ tea.Model = (*interactiveModel)(nil)
