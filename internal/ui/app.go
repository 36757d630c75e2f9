package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/cardgrid/internal/prefs"
	"github.com/five82/cardgrid/internal/state"
)

// Controller is the part of state.Controller the UI drives.
type Controller interface {
	Refresh()
	Subscribe() (<-chan state.Snapshot, func())
}

// Options configures the UI.
type Options struct {
	Controller Controller
	Prefs      prefs.Prefs
	PrefsPath  string // empty disables saving
	Source     string // shown in the header
	Logger     *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Wiring
	controller  Controller
	updates     <-chan state.Snapshot
	unsubscribe func()
	prefsPath   string
	source      string
	logger      *zap.Logger

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot

	// Grid state
	columns  int // 0 picks from the width
	selected int
	topRow   int

	// Detail state
	detailOpen     bool
	detailViewport viewport.Model
}

// New creates a new Bubble Tea model and subscribes it to the controller.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.DefaultTheme
	}

	theme := GetTheme(p.Theme)
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = theme.Styles().AccentText

	m := Model{
		controller:  opts.Controller,
		unsubscribe: func() {},
		prefsPath:   opts.PrefsPath,
		source:      opts.Source,
		logger:      logger,
		theme:       theme,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		columns:     p.Columns,
	}
	if opts.Controller != nil {
		m.updates, m.unsubscribe = opts.Controller.Subscribe()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForSnapshot(m.updates))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(m.detailWidth(), m.bodyHeight())
		}
		m.ready = true
		m.help.Width = msg.Width
		m.ensureVisible()
		m.refreshDetail()
		return m, nil

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, waitForSnapshot(m.updates)

	case subscriptionClosedMsg:
		m.updates = nil
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
		return m, nil
	}

	if m.detailOpen {
		return m.handleDetailKey(msg)
	}
	if m.snapshot.Mode() != state.ModeList {
		return m, nil
	}
	return m.handleGridKey(msg)
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveRows(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRows(1)
	case key.Matches(msg, m.keys.Left):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveRows(-m.visibleRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveRows(m.visibleRows())
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(m.snapshot.Items) - 1
	case key.Matches(msg, m.keys.CycleColumns):
		m.cycleColumns()
	case key.Matches(msg, m.keys.Open):
		m.openDetail()
		return m, nil
	}
	m.clampSelection()
	m.ensureVisible()
	return m, nil
}

// refresh asks the controller for a new fetch. The resulting loading state
// arrives through the subscription like any other snapshot.
func (m *Model) refresh() {
	if m.controller == nil {
		return
	}
	m.logger.Debug("refresh requested from ui")
	m.controller.Refresh()
}

// applySnapshot swaps in new state and keeps the selection on a real card.
func (m *Model) applySnapshot(s state.Snapshot) {
	m.snapshot = s
	if s.Mode() != state.ModeList || len(s.Items) == 0 {
		m.detailOpen = false
	}
	m.clampSelection()
	m.ensureVisible()
	m.refreshDetail()
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.spinner.Style = m.theme.Styles().AccentText
	m.refreshDetail()
	m.savePrefs()
}

func (m *Model) cycleColumns() {
	m.columns = (m.columns + 1) % (prefs.MaxColumns + 1)
	m.topRow = 0
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Columns: m.columns}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

// Close releases the snapshot subscription.
func (m Model) Close() {
	m.unsubscribe()
}

// Messages

type snapshotMsg state.Snapshot

// subscriptionClosedMsg is delivered once the store closes the channel.
type subscriptionClosedMsg struct{}

// Commands

func waitForSnapshot(ch <-chan state.Snapshot) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return subscriptionClosedMsg{}
		}
		return snapshotMsg(s)
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
