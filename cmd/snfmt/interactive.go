package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	snfmt "github.com/snfmt/snfmt"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	fieldFormat = iota
	fieldArgs
	fieldCapacity
	fieldCount
)

type playgroundModel struct {
	inputs   [fieldCount]textinput.Model
	focusIdx int
}

func newPlaygroundModel() *playgroundModel {
	m := &playgroundModel{}

	format := textinput.New()
	format.Prompt = "template: "
	format.Placeholder = "x=%05d %s"
	format.Width = 48
	format.Focus()

	args := textinput.New()
	args.Prompt = "args:     "
	args.Placeholder = "int:-42 str:hello"
	args.Width = 48

	capacity := textinput.New()
	capacity.Prompt = "capacity: "
	capacity.Placeholder = "unbounded"
	capacity.Width = 12

	m.inputs[fieldFormat] = format
	m.inputs[fieldArgs] = args
	m.inputs[fieldCapacity] = capacity
	return m
}

func (m *playgroundModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "enter":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % fieldCount
			m.inputs[m.focusIdx].Focus()
			return m, nil
		case "shift+tab":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + fieldCount - 1) % fieldCount
			m.inputs[m.focusIdx].Focus()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *playgroundModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("snfmt playground"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.preview())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab next field • esc quit"))
	return b.String()
}

// preview renders the current template live. Parse problems show up as
// errors, contract violations as warnings; the render result itself is
// always available because rendering cannot fail.
func (m *playgroundModel) preview() string {
	format := m.inputs[fieldFormat].Value()
	if format == "" {
		return helpStyle.Render("enter a template to see output")
	}

	args, err := parseArgs(strings.Fields(m.inputs[fieldArgs].Value()))
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("args: %v", err))
	}

	var b strings.Builder

	if err := snfmt.Check(format, args...); err != nil {
		b.WriteString(warnStyle.Render(fmt.Sprintf("warning: %v", err)))
		b.WriteString("\n")
	}

	capacity := 0
	if v := m.inputs[fieldCapacity].Value(); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &capacity); err != nil || capacity < 0 {
			return errorStyle.Render("capacity: want a non-negative integer")
		}
	}

	if capacity == 0 {
		out := snfmt.Sprint(format, args...)
		b.WriteString(labelStyle.Render("output: "))
		b.WriteString(outputStyle.Render(fmt.Sprintf("%q", out)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("length: "))
		b.WriteString(fmt.Sprintf("%d", len(out)))
		return b.String()
	}

	buf := make([]byte, capacity)
	n := snfmt.Render(buf, format, args...)
	content := buf[:min(n, capacity-1)]
	b.WriteString(labelStyle.Render("output: "))
	b.WriteString(outputStyle.Render(fmt.Sprintf("%q", content)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("length: "))
	b.WriteString(fmt.Sprintf("%d logical", n))
	if n >= capacity {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  (truncated, %d byte(s) lost)", n-len(content))))
	}
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newPlaygroundModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
