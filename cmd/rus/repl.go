package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rus-lang/rus/rus"
)

func newReplCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively inspect tokens and syntax trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *cfgPath)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newReplModel(cfg), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	mode        string // "ast" or "tokens"
	color       bool
	width       int
	height      int
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	CtrlT key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous input"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next input"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "inspect"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	CtrlT: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle mode"),
	),
}

func newReplModel(cfg config) replModel {
	ti := textinput.New()
	ti.Placeholder = "type a declaration or expression..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.Prompt = "rus> "
	if cfg.Output.Color {
		ti.PromptStyle = accentStyle
	}

	return replModel{
		textInput:  ti,
		historyIdx: -1,
		mode:       cfg.Output.Format,
		color:      cfg.Output.Color,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = nil
			return m, nil

		case key.Matches(msg, keys.CtrlT):
			m.mode = otherMode(m.mode)
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			output, isErr := inspect(input, m.mode)
			m.history = append(m.history, historyEntry{
				input:  input,
				output: output,
				isErr:  isErr,
			})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	switch strings.Fields(input)[0] {
	case ":ast":
		m.mode = "ast"
	case ":tokens", ":t":
		m.mode = "tokens"
	case ":clear", ":c":
		m.history = nil
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s (try :ast, :tokens, :clear, :quit)", input),
			isErr:  true,
		})
	}
	return m, nil
}

func otherMode(mode string) string {
	if mode == "ast" {
		return "tokens"
	}
	return "ast"
}

// inspect lexes the input and renders either its token stream or its
// syntax tree. A missing trailing ';' is supplied so bare expressions
// inspect cleanly.
func inspect(source, mode string) (string, bool) {
	trimmed := strings.TrimRight(source, " \t")
	if !strings.HasSuffix(trimmed, ";") && !strings.HasSuffix(trimmed, "}") {
		source = trimmed + ";"
	}

	tokens, errs := rus.Scan("repl", strings.NewReader(source))
	if len(errs) > 0 {
		var b strings.Builder
		for i, e := range errs {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(e.Error())
		}
		return b.String(), true
	}

	if mode == "tokens" {
		parts := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if tok.Type == rus.TokenEOF {
				continue
			}
			parts = append(parts, tok.String())
		}
		return strings.Join(parts, " "), false
	}

	stmts, err := rus.NewParser(tokens).Parse()
	if err != nil {
		return err.Error(), true
	}
	return strings.TrimRight(rus.Dump(stmts), "\n"), false
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}
	if m.quitting {
		return styled(mutedStyle, "Goodbye!\n", m.color)
	}

	var b strings.Builder

	header := styled(accentStyle, "Rus inspector", m.color)
	modeTag := styled(mutedStyle, "["+m.mode+"]", m.color)
	b.WriteString(header + " " + modeTag + "\n")
	b.WriteString(styled(mutedStyle, strings.Repeat("─", min(m.width-2, 60)), m.color) + "\n\n")

	reservedLines := 7
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(styled(mutedStyle, "  › ", m.color) + entry.input + "\n")
		}
		style := okStyle
		if entry.isErr {
			style = errorStyle
		}
		for _, line := range strings.Split(entry.output, "\n") {
			b.WriteString("  " + styled(style, line, m.color) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := styled(accentStyle, "ctrl+t", m.color) + styled(mutedStyle, " mode  ", m.color) +
		styled(accentStyle, "ctrl+l", m.color) + styled(mutedStyle, " clear  ", m.color) +
		styled(accentStyle, "ctrl+c", m.color) + styled(mutedStyle, " quit", m.color)
	b.WriteString(footer)

	return b.String()
}
