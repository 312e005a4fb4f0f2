package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/hessian/encoder"
	"github.com/wippyai/hessian/jsonvalue"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Type JSON and watch its encoding update live",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(newInteractiveModel(newEncoder()), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

type interactiveModel struct {
	err   error
	enc   *encoder.Encoder
	tag   string
	data  []byte
	input textinput.Model
	width int
}

func newInteractiveModel(enc *encoder.Encoder) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = `{"a": 1}`
	ti.Prompt = "json: "
	ti.Width = 60
	ti.Focus()
	return &interactiveModel{enc: enc, input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+u":
			m.input.SetValue("")
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh re-encodes the current input.
func (m *interactiveModel) refresh() {
	m.tag, m.data, m.err = "", nil, nil

	src := strings.TrimSpace(m.input.Value())
	if src == "" {
		return
	}
	v, err := jsonvalue.Parse([]byte(src))
	if err != nil {
		m.err = err
		return
	}
	m.tag, m.data, m.err = m.enc.EncodeArg(v)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hessian 1.0.2"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.data != nil:
		b.WriteString(tagStyle.Render(m.tag))
		b.WriteString(fmt.Sprintf(" %d bytes\n\n", len(m.data)))
		b.WriteString(dump(m.data, rowBytes(m.width), true))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+u clear • esc quit"))
	return b.String()
}
