package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"opsdeck/internal/eventbus"
	"opsdeck/internal/manager"
	"opsdeck/internal/ui/views"
)

// Model is the root application model: a tab bar over one list view
// per entity, plus the global help and status bars.
type Model struct {
	sections []section
	active   int
	profile  *manager.ProfileManager
	pager    *PagerOps

	styles *views.Styles
	popup  *views.PopupRenderer
	keys   keyMap
	help   help.Model

	width       int
	height      int
	status      string
	confirmQuit bool
}

// NewModel creates the root model
func NewModel(mgrs *manager.Managers, profile *manager.ProfileManager, debounce time.Duration) *Model {
	styles := views.NewStyles()
	pager := NewPagerOps()
	return &Model{
		sections: newSections(mgrs, profile, styles, pager, debounce),
		profile:  profile,
		pager:    pager,
		styles:   styles,
		popup:    views.NewPopupRenderer(styles),
		keys:     newKeyMap(),
		help:     help.New(),
	}
}

// SetProgram hands the running program to the pager for terminal handover
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init loads the first tab
func (m *Model) Init() tea.Cmd {
	return m.sections[m.active].activate()
}

// Update routes messages: keys go to the active section (after global
// handling), domain events are translated into refreshes, everything
// else is broadcast so each controller can pick out its own messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pagerDoneMsg:
		cmd, _ := m.sections[m.active].update(msg)
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		cmd, _ := m.sections[m.active].update(msg)
		return m, cmd
	}

	// Fetch results, debounce settles, spinner ticks and mutation
	// outcomes carry their own controller or entity identity.
	var cmds []tea.Cmd
	for _, s := range m.sections {
		if cmd, handled := s.update(msg); handled && cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmQuit {
		switch msg.String() {
		case "y", "Y", "enter", "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.confirmQuit = false
			return m, nil
		}
	}

	active := m.sections[m.active]

	// A modal or search input owns the keyboard completely
	if active.capturing() {
		cmd, _ := active.update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.confirmQuit = true
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		return m, m.switchTab((m.active + 1) % len(m.sections))
	case key.Matches(msg, m.keys.PrevTab):
		return m, m.switchTab((m.active - 1 + len(m.sections)) % len(m.sections))
	}

	cmd, _ := active.update(msg)
	return m, cmd
}

// switchTab changes the visible section, loading it on first visit
func (m *Model) switchTab(idx int) tea.Cmd {
	m.active = idx
	return m.sections[idx].activate()
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch ev := event.(type) {
	case eventbus.ProfileLoadedEvent:
		m.profile.Set(ev.Profile)
		m.status = fmt.Sprintf("Signed in as %s (%s)", ev.Profile.User.Name, ev.Profile.User.Role)
		return clearStatusLater()

	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", ev.Message, ev.Err)
		m.status = ev.Message
		return clearStatusLater()

	case eventbus.ConfigLoadedEvent:
		log.Printf("Config loaded, server %s", ev.ServerURL)
		return nil

	case eventbus.EntityCreatedEvent:
		return m.refreshEntity(ev.Entity)
	case eventbus.EntityUpdatedEvent:
		return m.refreshEntity(ev.Entity)
	case eventbus.EntityDeletedEvent:
		return m.refreshEntity(ev.Entity)
	case eventbus.RefreshRequestedEvent:
		return m.refreshEntity(ev.Entity)
	}
	return nil
}

// refreshEntity resynchronizes the section showing the given entity.
// The refresh is skipped by the active section's own mutation flow,
// which already refreshes itself; this covers the other tabs.
func (m *Model) refreshEntity(entity string) tea.Cmd {
	for i, s := range m.sections {
		if s.entity() == entity && i != m.active {
			return s.refresh()
		}
	}
	return nil
}

// View renders the tab bar, active section body and help/status bars
func (m *Model) View() string {
	if m.confirmQuit {
		return m.popup.Overlay(m.popup.RenderConfirm("Quit opsdeck?"), m.width, m.height)
	}

	var b strings.Builder

	// Tab bar
	var tabs strings.Builder
	for i, s := range m.sections {
		if i == m.active {
			tabs.WriteString(m.styles.TabActive.Render(s.title()))
		} else {
			tabs.WriteString(m.styles.TabInactive.Render(s.title()))
		}
		tabs.WriteString(" ")
	}
	b.WriteString(tabs.String())
	b.WriteString("\n\n")

	bodyHeight := m.height - 6
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	b.WriteString(m.sections[m.active].view(m.width, bodyHeight))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
