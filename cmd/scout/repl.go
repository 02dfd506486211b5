package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jpicht/scoutcode/lib/cipher"
	"github.com/jpicht/scoutcode/lib/scout"
)

var (
	accent = lipgloss.Color("#3B82F6")
	muted  = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	plainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

// lines taken by title, rule, status, input and footer
const chromeLines = 7

type translation struct {
	message string
	result  string
	failed  bool
}

type replModel struct {
	input    textinput.Model
	cipher   string
	op       scout.Op
	opts     scout.Options
	log      []translation
	recall   []string
	recallAt int
	width    int
	height   int
	showHelp bool
	quitting bool
}

var (
	quitKey  = key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"))
	clearKey = key.NewBinding(key.WithKeys("ctrl+l"))
	flipKey  = key.NewBinding(key.WithKeys("tab"))
	prevKey  = key.NewBinding(key.WithKeys("up"))
	nextKey  = key.NewBinding(key.WithKeys("down"))
	sendKey  = key.NewBinding(key.WithKeys("enter"))
)

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "message or :command"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = titleStyle

	m := replModel{
		input:    ti,
		cipher:   "morse",
		op:       scout.Decode,
		recallAt: -1,
	}
	m.input.Prompt = m.prompt()
	return m
}

func (m replModel) prompt() string {
	return fmt.Sprintf("%s:%s> ", m.cipher, m.op)
}

func (m replModel) status() string {
	var flags []string
	switch {
	case m.opts.Strict:
		flags = append(flags, "strict")
	case m.opts.Lenient:
		flags = append(flags, "lenient")
	default:
		flags = append(flags, "default policy")
	}
	if m.opts.Case == cipher.Lower {
		flags = append(flags, "lower case")
	} else {
		flags = append(flags, "upper case")
	}
	return strings.Join(flags, ", ")
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-10, 10)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, clearKey):
			m.log = nil
			return m, nil
		case key.Matches(msg, flipKey):
			m.op = flip(m.op)
			m.input.Prompt = m.prompt()
			return m, nil
		case key.Matches(msg, prevKey):
			m.recallStep(-1)
			return m, nil
		case key.Matches(msg, nextKey):
			m.recallStep(1)
			return m, nil
		case key.Matches(msg, sendKey):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func flip(op scout.Op) scout.Op {
	if op == scout.Decode {
		return scout.Encode
	}
	return scout.Decode
}

// recallStep walks the sent messages; stepping past the newest clears input
func (m *replModel) recallStep(d int) {
	if len(m.recall) == 0 {
		return
	}
	switch {
	case m.recallAt == -1 && d < 0:
		m.recallAt = len(m.recall) - 1
	case m.recallAt == -1:
		return
	default:
		m.recallAt += d
	}
	if m.recallAt < 0 {
		m.recallAt = 0
	}
	if m.recallAt >= len(m.recall) {
		m.recallAt = -1
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.recall[m.recallAt])
	}
	m.input.CursorEnd()
}

func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.recallAt = -1
	if line == "" {
		return m, nil
	}

	if strings.HasPrefix(line, ":") {
		return m.command(line)
	}

	m.log = append(m.log, m.translate(line))
	m.recall = append(m.recall, line)
	return m, nil
}

func (m replModel) command(line string) (replModel, tea.Cmd) {
	args := strings.Fields(line)

	switch args[0] {
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.log = nil
	case ":encode", ":e":
		m.op = scout.Encode
	case ":decode", ":d":
		m.op = scout.Decode
	case ":strict":
		m.opts.Strict, m.opts.Lenient = true, false
	case ":lenient":
		m.opts.Strict, m.opts.Lenient = false, true
	case ":default":
		m.opts = scout.Options{Case: m.opts.Case}
	case ":lower":
		m.opts.Case = cipher.Lower
	case ":upper":
		m.opts.Case = cipher.Upper
	case ":cipher":
		if len(args) != 2 {
			m.log = append(m.log, translation{message: line, result: "ciphers: " + strings.Join(scout.Names(), ", ")})
			break
		}
		if _, err := scout.Lookup(args[1]); err != nil {
			m.log = append(m.log, translation{message: line, result: err.Error(), failed: true})
			break
		}
		m.cipher = strings.ToLower(args[1])
	default:
		m.log = append(m.log, translation{message: line, result: "unknown command " + args[0], failed: true})
	}

	m.input.Prompt = m.prompt()
	return m, nil
}

func (m replModel) translate(message string) translation {
	t := translation{message: message}
	c, err := scout.Configure(m.cipher, m.opts)
	if err == nil {
		t.result, err = scout.Run(c, m.op, message)
	}
	if err != nil {
		t.result, t.failed = err.Error(), true
	}
	return t
}

func (m replModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("scout") + " " + mutedStyle.Render(m.status()) + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(0, min(m.width-2, 60)))) + "\n")

	rows := m.height - chromeLines
	if m.showHelp {
		rows -= len(helpLines) + 3
	}
	// each translation takes two rows
	first := len(m.log) - max(rows/2, 1)
	if first < 0 {
		first = 0
	}
	for i := first; i < len(m.log); i++ {
		t := m.log[i]
		b.WriteString(mutedStyle.Render("  "+t.message) + "\n")
		if t.failed {
			b.WriteString("  " + failStyle.Render("! "+t.result) + "\n")
		} else {
			b.WriteString("  " + plainStyle.Render("= "+t.result) + "\n")
		}
	}

	if m.showHelp {
		b.WriteString(panelStyle.Render(strings.Join(helpLines, "\n")) + "\n")
	}

	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(statusStyle.Render("tab") + mutedStyle.Render(" flip  ") +
		statusStyle.Render(":help") + mutedStyle.Render(" commands  ") +
		statusStyle.Render("ctrl+c") + mutedStyle.Render(" quit"))

	return b.String()
}

var helpLines = []string{
	":cipher [name]      show or select the cipher",
	":encode / :decode   translation direction (tab flips)",
	":strict / :lenient  fail on or copy unknown symbols",
	":default            the cipher's own policy",
	":lower / :upper     murcielago letter case",
	":clear              forget translations (ctrl+l)",
	":quit               leave (ctrl+c)",
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
