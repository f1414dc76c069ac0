package tui

import (
	"context"
	"fmt"
	"strings"

	"FcnLang/internal/history"
	"FcnLang/internal/lexer"
	l "FcnLang/internal/logger"
	"FcnLang/internal/repl"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Options configures the terminal UI.
type Options struct {
	// Strict rejects characters the tokenizer has no rule for.
	Strict  bool
	History history.Store
}

// resultMsg carries the outcome of running the front end on the input buffer.
type resultMsg struct {
	result *repl.Result
}

// executeCmd wraps repl.Execute in a Bubble Tea command so parsing runs
// off the Update loop and reports back as a resultMsg.
func executeCmd(source string, strict bool) tea.Cmd {
	return func() tea.Msg {
		var opts []lexer.Option
		if strict {
			opts = append(opts, lexer.WithStrict())
		}
		return resultMsg{result: repl.Execute(source, opts...)}
	}
}

// key mappings for the TUI.
type keyMap struct {
	Quit  key.Binding
	Run   key.Binding
	Clear key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Run: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "tokenize and parse"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear input"),
		),
	}
}

// ShortHelp returns keybindings to show in the minimized help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Clear},
		{k.Quit},
	}
}

// Styles for the UI.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("44")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// model holds the editor, the result pane and the state of the last run.
type model struct {
	opts      Options
	sessionID string
	logger    *l.Logger
	input     textarea.Model
	viewport  viewport.Model
	help      help.Model
	keys      keyMap
	status    string
	loading   bool
	err       error
	width     int
	height    int
}

func newModel(opts Options) model {
	ta := textarea.New()
	ta.Placeholder = "fcn add(x :: Int32, y :: Int32) -> Int32 { ... }"
	ta.Focus()
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = ta.FocusedStyle.CursorLine.Background(lipgloss.Color("236"))
	ta.ShowLineNumbers = true

	vp := viewport.New(80, 20)
	vp.SetContent(subtle.Render("Tokens and the parsed tree will appear here."))

	h := help.New()
	h.ShowAll = true

	status := "Ready"
	if opts.Strict {
		status = "Ready (strict tokenizer)"
	}

	return model{
		opts:      opts,
		sessionID: uuid.NewString(),
		logger:    l.Get("tui"),
		input:     ta,
		viewport:  vp,
		help:      h,
		keys:      newKeyMap(),
		status:    status,
	}
}

// Init satisfies the tea.Model interface.
func (m model) Init() tea.Cmd {
	return textarea.Blink
}

// Update satisfies the tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		if key.Matches(msg, m.keys.Clear) {
			m.input.Reset()
			return m, nil
		}

		if key.Matches(msg, m.keys.Run) {
			source := m.input.Value()
			if strings.TrimSpace(source) == "" {
				return m, nil
			}

			m.loading = true
			m.status = "Parsing..."
			m.err = nil
			m.logger.Debug("Processing unit: %q", source)
			return m, executeCmd(source, m.opts.Strict)
		}
	case resultMsg:
		m.loading = false
		m.record(msg.result)

		if err := msg.result.Err(); err != nil {
			m.logger.Error("Unit failed: %v", err)
			m.err = err
			m.status = "Parse failed"
		} else {
			m.err = nil
			m.status = fmt.Sprintf("Parsed %s", msg.result.Tree.Name)
		}
		m.viewport.SetContent(repl.FormatResult(msg.result))
		m.viewport.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// resize splits the space left after the fixed chrome between the input
// box (one third) and the results viewport.
func (m *model) resize() {
	const chromeLines = 10
	const minInputHeight = 3
	const minResultsHeight = 3

	available := m.height - chromeLines
	if available < 1 {
		available = 1
	}

	var inputHeight, resultsHeight int
	if available <= minInputHeight+minResultsHeight {
		inputHeight = max(available/2, 1)
		resultsHeight = max(available-inputHeight, 1)
	} else {
		inputHeight = max(available/3, minInputHeight)
		resultsHeight = max(available-inputHeight, minResultsHeight)
	}

	m.input.SetWidth(m.width - 6)
	m.input.SetHeight(inputHeight)
	m.viewport.Width = m.width - 6
	m.viewport.Height = resultsHeight
}

// record appends the unit to the history store, if one is configured.
func (m model) record(result *repl.Result) {
	if m.opts.History == nil {
		return
	}

	entry := &history.Entry{
		SessionID: m.sessionID,
		Source:    result.Source,
		Outcome:   result.Outcome(),
	}
	if err := result.Err(); err != nil {
		entry.Detail = err.Error()
	}
	if err := m.opts.History.Append(context.Background(), entry); err != nil {
		m.logger.Error("Failed to record history: %v", err)
	}
}

// View draws the entire interface.
func (m model) View() string {
	title := titleStyle.Render("fcn") + " " + subtle.Render("front end")

	inputBox := boxStyle.Render(m.input.View())
	resultBox := boxStyle.Render(m.viewport.View())

	status := m.status
	if m.loading {
		status += " (working...)"
	}
	statusLine := statusStyle.Render(status)
	if m.err != nil {
		statusLine += "  " + errorStyle.Render(m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtle.Render("Session "+m.sessionID),
		"",
		"Source:",
		inputBox,
		"",
		"Result:",
		resultBox,
		"",
		statusLine,
		m.help.View(m.keys),
	)
}

// Run starts the terminal UI and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run tui: %w", err)
	}
	return nil
}
