// Package ui provides the interactive terminal user interface.
// This file contains the bubbletea model: one row per interface,
// up/down actions, and a poll-driven refresh of live state.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/wirewarden/common"
	"github.com/yllada/wirewarden/config"
	"github.com/yllada/wirewarden/vpn"
)

type tickMsg time.Time

// refreshMsg carries a fresh scan and probe back into the model.
type refreshMsg struct {
	inventory *vpn.Inventory
	active    vpn.ActiveSet
	err       error
}

// transitionDoneMsg reports a finished Up/Down request.
type transitionDoneMsg struct {
	res vpn.TransitionResult
}

// Model is the terminal UI state. The lifecycle core stays
// authoritative: the model only mirrors the last scan and probe for
// display, it never decides anything from them.
type Model struct {
	manager  *vpn.Manager
	cfg      *config.Config
	notifier common.Notifier

	keys keyMap
	help help.Model

	inventory *vpn.Inventory
	active    vpn.ActiveSet
	scanErr   string

	cursor int
	// busy serializes transitions: while one is in flight every further
	// transition key is ignored.
	busy        bool
	status      string
	statusIsErr bool

	width int
}

// NewModel creates the terminal UI model.
func NewModel(manager *vpn.Manager, cfg *config.Config, notifier common.Notifier) Model {
	return Model{
		manager:  manager,
		cfg:      cfg,
		notifier: notifier,
		keys:     defaultKeyMap(),
		help:     help.New(),
		active:   vpn.ActiveSet{},
	}
}

// Run starts the terminal UI and blocks until the user quits.
func Run(manager *vpn.Manager, cfg *config.Config, notifier common.Notifier) error {
	p := tea.NewProgram(NewModel(manager, cfg, notifier), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.tickCmd())
}

func (m Model) refreshCmd() tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		inv, err := manager.List()
		return refreshMsg{
			inventory: inv,
			active:    manager.Active(context.Background()),
			err:       err,
		}
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.PollInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) transitionCmd(name string, dir vpn.Direction) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		var res vpn.TransitionResult
		if dir == vpn.DirectionUp {
			res = manager.Up(context.Background(), name)
		} else {
			res = manager.Down(context.Background(), name)
		}
		return transitionDoneMsg{res: res}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		return m, tea.Batch(m.refreshCmd(), m.tickCmd())

	case refreshMsg:
		if msg.err != nil {
			m.scanErr = msg.err.Error()
		} else {
			m.scanErr = ""
			m.inventory = msg.inventory
		}
		m.active = msg.active
		m.clampCursor()
		return m, nil

	case transitionDoneMsg:
		m.busy = false
		m.status = msg.res.Message
		m.statusIsErr = !msg.res.OK
		m.active = msg.res.Active
		m.notify(msg.res)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return *m, tea.Quit

	case key.Matches(msg, keys.Rescan):
		return *m, m.refreshCmd()

	case key.Matches(msg, keys.CursorUp):
		if m.cursor > 0 {
			m.cursor--
		}
		return *m, nil

	case key.Matches(msg, keys.CursorDown):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return *m, nil

	case key.Matches(msg, keys.BringUp):
		return m.requestTransition(vpn.DirectionUp)

	case key.Matches(msg, keys.BringDown):
		return m.requestTransition(vpn.DirectionDown)
	}
	return *m, nil
}

func (m *Model) requestTransition(dir vpn.Direction) (tea.Model, tea.Cmd) {
	if m.busy || m.gated() || m.rowCount() == 0 {
		return *m, nil
	}
	name := m.inventory.Valid[m.cursor].Name
	m.busy = true
	m.status = fmt.Sprintf("bringing %s %s…", dir, name)
	m.statusIsErr = false
	return *m, m.transitionCmd(name, dir)
}

func (m *Model) notify(res vpn.TransitionResult) {
	if m.notifier == nil {
		return
	}
	if !res.OK {
		m.notifier.NotifyError(res.Name, res.Message)
		return
	}
	if res.Direction == vpn.DirectionUp {
		m.notifier.NotifyConnected(res.Name)
	} else {
		m.notifier.NotifyDisconnected(res.Name)
	}
}

func (m *Model) clampCursor() {
	if n := m.rowCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) rowCount() int {
	if m.inventory == nil {
		return 0
	}
	return len(m.inventory.Valid)
}

func (m Model) gated() bool {
	return m.inventory != nil && m.inventory.Gated()
}

func (m Model) View() string {
	var body string
	switch {
	case m.scanErr != "":
		body = errorStyle.Render("cannot read config directory: " + m.scanErr)
	case m.gated():
		body = m.gateView()
	default:
		body = m.listView()
	}

	lines := []string{
		titleStyle.Render(common.AppName) + statusStyle.Render("  "+m.manager.Dir()),
		"",
		body,
		"",
		m.statusView(),
		"",
		m.help.View(m.keys),
	}

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// gateView replaces the interface list while invalid config names
// exist: nothing may be interacted with until the files are fixed.
func (m Model) gateView() string {
	lines := []string{
		errorStyle.Render("Invalid config file names:"),
		"",
	}
	for _, name := range m.inventory.Invalid {
		lines = append(lines, errorStyle.Render("  "+name))
	}
	lines = append(lines, "",
		"File names must only contain letters, numbers, '+', '-', '_', '=' or '.'",
		"Rename or remove these files, then press "+cursorStyle.Render("r")+" to rescan.")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) listView() string {
	if m.rowCount() == 0 {
		return statusStyle.Render("No WireGuard configs found. Press r to rescan.")
	}

	lines := make([]string, 0, m.rowCount())
	for i, entry := range m.inventory.Valid {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("▸ ")
		}

		tag := inactiveTagStyle.Render("inactive")
		if m.active.Has(entry.Name) {
			tag = activeTagStyle.Render("active")
		}

		lines = append(lines, fmt.Sprintf("%s%s  %s", marker, nameStyle.Render(padName(entry.Name)), tag))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) statusView() string {
	activeLine := "Active: " + m.active.String()

	switch {
	case m.busy:
		return activeLine + "\n" + workingStyle.Render(m.status)
	case m.statusIsErr:
		return activeLine + "\n" + errorStyle.Render(m.status)
	case m.status != "":
		return activeLine + "\n" + okStyle.Render(m.status)
	default:
		return activeLine
	}
}

func padName(name string) string {
	return fmt.Sprintf("%-20s", name)
}
