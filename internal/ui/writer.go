package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/ideadice/internal/entry"
	"github.com/chris-regnier/ideadice/internal/input"
	"github.com/chris-regnier/ideadice/internal/session"
	"github.com/chris-regnier/ideadice/internal/timer"
)

// focusArea is the pane receiving keys.
type focusArea int

const (
	focusEditor focusArea = iota
	focusHistory
)

const minSidebarWidth = 24

// WriterConfig holds configuration needed by the writing screen.
type WriterConfig struct {
	MaxWidth int   // maximum content width (0 = no limit)
	Theme    Theme // resolved theme
}

type autosaveMsg struct {
	ticket session.Ticket
}

type clockTickMsg time.Time

type feedbackMsg struct {
	gen int
	on  bool
}

// historyItem implements list.Item for an entry in the sidebar.
type historyItem struct {
	entry   entry.Entry
	current bool
}

func (h historyItem) Title() string {
	title := h.entry.Title()
	if title == "" {
		title = "(untitled)"
	}
	if h.entry.Locked {
		title = "🔒 " + title
	}
	if h.current {
		title = "▸ " + title
	}
	return title
}

func (h historyItem) Description() string {
	return fmt.Sprintf("%d words · %s", h.entry.WordCount(), h.entry.UpdatedAt.Local().Format(timeLayout))
}

func (h historyItem) FilterValue() string { return h.entry.Title() + " " + h.entry.Content }

// writerModel is the Bubble Tea model for the writing screen: dice prompt on
// top, editor on the left, history on the right.
type writerModel struct {
	session *session.Controller
	cfg     WriterConfig

	editor  textarea.Model
	preview viewport.Model // read-only view of a locked entry
	history list.Model
	focus   focusArea

	deleteActive bool
	deleteID     string
	helpActive   bool

	width  int
	height int
	ready  bool
}

func newWriterModel(s *session.Controller, cfg WriterConfig) writerModel {
	ta := textarea.New()
	ta.Placeholder = "Roll the dice and start writing..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	h := cfg.Theme.NewList(nil, 0, 0)
	h.Title = "History"
	h.SetShowHelp(false)
	h.SetShowStatusBar(false)
	h.DisableQuitKeybindings()

	m := writerModel{
		session: s,
		cfg:     cfg,
		editor:  ta,
		preview: viewport.New(0, 0),
		history: h,
	}
	m.syncEditor()
	m.refreshHistory()
	return m
}

func (m writerModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, clockTick())
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func autosaveAfter(t session.Ticket) tea.Cmd {
	return tea.Tick(t.After, func(time.Time) tea.Msg { return autosaveMsg{ticket: t} })
}

// feedbackCmds turns a pulse schedule into delayed messages.
func feedbackCmds(s *input.Schedule) tea.Cmd {
	if s == nil {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.Steps))
	for _, step := range s.Steps {
		msg := feedbackMsg{gen: s.Gen, on: step.On}
		cmds = append(cmds, tea.Tick(step.After, func(time.Time) tea.Msg { return msg }))
	}
	return tea.Batch(cmds...)
}

func (m writerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case autosaveMsg:
		if m.session.Flush(msg.ticket) {
			m.refreshHistory()
		}
		return m, nil

	case clockTickMsg:
		// Redraw so the footer timer advances.
		return m, clockTick()

	case feedbackMsg:
		m.session.ApplyFeedback(msg.gen, msg.on)
		return m, nil

	case tea.KeyMsg:
		if m.helpActive {
			switch msg.String() {
			case "?", "esc", "f1":
				m.helpActive = false
			}
			return m, nil
		}
		if m.deleteActive {
			return m.updateDeleteConfirm(msg)
		}
		if m.focus == focusHistory && m.history.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}

		// Global keys
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			m.session.SaveNow()
			return m, tea.Quit
		case "ctrl+l":
			m.session.ToggleLock()
			m.syncEditor()
			m.refreshHistory()
			return m, nil
		case "ctrl+n":
			m.session.NewWriting()
			m.syncEditor()
			m.refreshHistory()
			m.setFocus(focusEditor)
			return m, nil
		case "ctrl+r":
			m.session.Roll()
			return m, nil
		case "ctrl+b":
			m.session.SetNoBackspace(!m.session.NoBackspace())
			return m, nil
		case "f1":
			m.helpActive = true
			return m, nil
		case "tab":
			if m.focus == focusEditor {
				m.setFocus(focusHistory)
			} else {
				m.setFocus(focusEditor)
			}
			return m, nil
		}

		if m.focus == focusHistory {
			return m.updateHistory(msg)
		}
		return m.updateEditor(msg)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m writerModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if suppress, sched := m.session.HandleKey(input.ParseKey(msg.String())); suppress {
		return m, feedbackCmds(sched)
	}

	if m.session.Locked() {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	after := m.editor.Value()
	if after == before {
		return m, cmd
	}
	if !m.session.Edit(after) {
		m.syncEditor()
		return m, cmd
	}
	return m, tea.Batch(cmd, autosaveAfter(m.session.Keystroke()))
}

func (m writerModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, hasItem := m.history.SelectedItem().(historyItem)

	switch msg.String() {
	case "enter":
		if hasItem && m.session.Select(item.entry.ID) {
			m.syncEditor()
			m.refreshHistory()
			m.setFocus(focusEditor)
		}
		return m, nil
	case "x", "d":
		if hasItem {
			m.deleteActive = true
			m.deleteID = item.entry.ID
		}
		return m, nil
	case "L":
		if hasItem {
			m.session.LockEntry(item.entry.ID)
			m.syncEditor()
			m.refreshHistory()
		}
		return m, nil
	case "?":
		m.helpActive = true
		return m, nil
	case "esc":
		if m.history.FilterState() == list.Unfiltered {
			m.setFocus(focusEditor)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m writerModel) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.session.Delete(m.deleteID)
		m.deleteActive = false
		m.deleteID = ""
		m.refreshHistory()
	case "n", "esc":
		m.deleteActive = false
		m.deleteID = ""
	}
	return m, nil
}

func (m *writerModel) setFocus(f focusArea) {
	m.focus = f
	if f == focusEditor {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
	m.session.SetFocus(f == focusEditor)
}

// syncEditor copies the session buffer into the editor and preview.
func (m *writerModel) syncEditor() {
	if m.editor.Value() != m.session.Text() {
		m.editor.SetValue(m.session.Text())
	}
	m.preview.SetContent(RenderMarkdownWithStyle(m.session.Text(), m.preview.Width, m.cfg.Theme.MarkdownStyle))
	m.preview.GotoTop()
}

func (m *writerModel) refreshHistory() {
	current := m.session.History().View().EntryID
	entries := m.session.History().Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = historyItem{entry: e, current: e.ID == current}
	}
	idx := m.history.Index()
	m.history.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.history.Select(idx)
	}
}

// contentWidth returns the effective content width, respecting MaxWidth configuration.
func (m *writerModel) contentWidth() int {
	if m.cfg.MaxWidth > 0 && m.width > m.cfg.MaxWidth {
		return m.cfg.MaxWidth
	}
	return m.width
}

func (m *writerModel) sidebarWidth() int {
	return max(m.contentWidth()/3, minSidebarWidth)
}

func (m *writerModel) layout() {
	const (
		chrome       = 2 // pane border
		headerFooter = 3 // prompt, footer, hint line
	)
	cw := m.contentWidth()
	paneHeight := max(m.height-headerFooter-chrome, 3)
	sidebar := m.sidebarWidth()
	editorWidth := max(cw-sidebar-2*chrome, 10)

	m.editor.SetWidth(editorWidth)
	m.editor.SetHeight(paneHeight)
	m.preview.Width = editorWidth
	m.preview.Height = paneHeight
	m.history.SetSize(sidebar, paneHeight)
	m.syncEditor()
}

func (m writerModel) footer() string {
	theme := m.cfg.Theme
	parts := []string{
		fmt.Sprintf("%d words", m.session.WordCount()),
		timer.Format(m.session.Elapsed()),
	}
	status := theme.HelpStyle().Render(strings.Join(parts, "  "))

	if m.session.Locked() {
		status += theme.HelpStyle().Render("  ") + theme.AccentStyle().Render("🔒 locked")
	}
	if m.session.NoBackspace() {
		label := theme.HelpStyle().Render("forward only")
		if m.session.FeedbackActive() {
			label = theme.DangerStyle().Bold(true).Render("forward only")
		}
		status += theme.HelpStyle().Render("  ") + label
	}
	if m.session.Pending() {
		status += theme.HelpStyle().Render("  saving…")
	}
	return status
}

func (m writerModel) View() string {
	if !m.ready {
		// Dimensions are unknown until the first WindowSizeMsg.
		return "Loading..."
	}
	if m.helpActive {
		return m.helpOverlay()
	}

	theme := m.cfg.Theme
	cw := m.contentWidth()

	header := theme.PromptStyle().Render("🎲 " + m.session.Words().String())

	body := m.editor.View()
	if m.session.Locked() {
		body = m.preview.View()
	}
	left := theme.PaneStyle(m.focus == focusEditor).Render(body)
	right := theme.PaneStyle(m.focus == focusHistory).Render(m.history.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	hint := "^L lock  ^N new  ^R roll  ^B no-backspace  tab history  F1 help  ^Q quit"
	if m.focus == focusHistory {
		hint = "enter open  L lock  x delete  / filter  esc editor  ? help"
	}
	result := header + "\n" + panes + "\n" + m.footer() + "\n" + theme.HelpStyle().Render(hint)

	if m.deleteActive {
		prompt := fmt.Sprintf("Delete entry %s? [y/N] ", m.deleteID)
		result += "\n" + theme.DangerStyle().Render(prompt)
	}

	return theme.PaintScreen(result, m.width, m.height, cw)
}

func (m writerModel) helpOverlay() string {
	help := m.cfg.Theme.PaneStyle(true).
		Padding(1, 2).
		Width(52).
		Render(`Writing
  ctrl+l     lock / unlock this entry
  ctrl+n     new writing (rolls new words)
  ctrl+r     roll the dice again
  ctrl+b     toggle no-backspace mode
  tab        switch to history

History
  ↑/↓        navigate
  enter      open entry
  L          lock entry
  x          delete entry
  /          filter

  ctrl+q     quit      esc close help`)
	placed := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, help,
		lipgloss.WithWhitespaceBackground(m.cfg.Theme.Background))
	return m.cfg.Theme.PaintScreen(placed, m.width, m.height, m.width)
}

// RunWriter launches the full-screen writing session. Pending edits are
// saved on exit.
func RunWriter(s *session.Controller, cfg WriterConfig) error {
	p := tea.NewProgram(newWriterModel(s, cfg), tea.WithAltScreen())
	_, err := p.Run()
	s.SaveNow()
	return err
}
