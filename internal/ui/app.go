package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/periscope-dev/periscope/internal/appicon"
	"github.com/periscope-dev/periscope/internal/config"
	"github.com/periscope-dev/periscope/internal/prefs"
	"github.com/periscope-dev/periscope/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewEntries View = iota
	ViewTail
)

// EntryFilter represents the entry list filter mode.
type EntryFilter int

const (
	FilterAll EntryFilter = iota
	FilterErrors
	FilterWarnings
	FilterInstalls
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	Resolver  *appicon.Resolver
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    *config.Config
	resolver  *appicon.Resolver
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	focusedPane int // 0 = entry list, 1 = detail
	showHelp    bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Entry list state
	selectedRow int
	filterMode  EntryFilter
	search      searchState

	// Detail state
	detailViewport viewport.Model

	// Tail view state
	tailViewport viewport.Model
	follow       bool

	// Resolved icons by bundle identifier; a present key with a nil value
	// means resolution finished without a match.
	icons     map[string]*appicon.Icon
	iconKnown map[string]bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		config:      opts.Config,
		resolver:    opts.Resolver,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       GetTheme(themeName),
		currentView: ViewEntries,
		follow:      true,
		search:      newSearchState(),
		icons:       make(map[string]*appicon.Icon),
		iconKnown:   make(map[string]bool),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
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
			m.initViewports()
		}
		m.ready = true
		m.updateDetailViewport()
		m.updateTailViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.clampSelection()
		m.updateDetailViewport()
		m.updateTailViewport()
		return m, m.maybeResolveIcon()

	case iconResolvedMsg:
		m.iconKnown[msg.bundleID] = true
		m.icons[msg.bundleID] = msg.icon
		m.updateDetailViewport()
		return m, nil
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
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.search.active {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "e":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			saved := prefs.Load(m.prefsPath)
			saved.Theme = m.theme.Name
			_ = prefs.Save(m.prefsPath, saved)
		}
		m.updateTailViewport()
		return m, nil

	case "tab":
		if m.currentView == ViewEntries {
			m.focusedPane = (m.focusedPane + 1) % 2
		}
		return m, nil

	case "q", "esc":
		if m.search.regex != nil {
			m.clearSearch()
			return m, nil
		}
		m.currentView = ViewEntries
		return m, nil

	case "r":
		m.currentView = ViewTail
		m.updateTailViewport()
		return m, nil

	case "f":
		if m.currentView == ViewEntries {
			m.cycleFilter()
			m.clampSelection()
			m.updateDetailViewport()
			return m, m.maybeResolveIcon()
		}
		return m, nil

	case "/":
		if m.currentView == ViewEntries {
			m.startSearch()
		}
		return m, nil

	case "n":
		m.nextSearchMatch(1)
		return m, m.maybeResolveIcon()

	case "N":
		m.nextSearchMatch(-1)
		return m, m.maybeResolveIcon()

	case " ", "space":
		if m.currentView == ViewTail {
			m.follow = !m.follow
			m.updateTailViewport()
		}
		return m, nil
	}

	switch m.currentView {
	case ViewEntries:
		return m.handleEntriesKey(msg)
	case ViewTail:
		return m.handleTailKey(msg)
	}

	return m, nil
}

// handleEntriesKey processes keyboard input for the entry list.
func (m Model) handleEntriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focusedPane == 1 {
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}

	count := len(m.visibleEntries())
	if count == 0 {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		m.selectedRow = count - 1
	case "ctrl+d":
		m.selectedRow = min(count-1, m.selectedRow+m.listHeight()/2)
	case "ctrl+u":
		m.selectedRow = max(0, m.selectedRow-m.listHeight()/2)
	default:
		return m, nil
	}

	m.updateDetailViewport()
	return m, m.maybeResolveIcon()
}

// handleTailKey scrolls the raw tail viewport.
func (m Model) handleTailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "g", "home":
		m.follow = false
		m.tailViewport.GotoTop()
		return m, nil
	case "G", "end":
		m.tailViewport.GotoBottom()
		return m, nil
	}
	// Manual scrolling turns follow off so the position sticks.
	switch msg.String() {
	case "j", "k", "up", "down", "pgup", "pgdown", "ctrl+u", "ctrl+d":
		m.follow = false
	}
	var cmd tea.Cmd
	m.tailViewport, cmd = m.tailViewport.Update(msg)
	return m, cmd
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// cycleFilter cycles through entry filter modes.
func (m *Model) cycleFilter() {
	switch m.filterMode {
	case FilterAll:
		m.filterMode = FilterErrors
	case FilterErrors:
		m.filterMode = FilterWarnings
	case FilterWarnings:
		m.filterMode = FilterInstalls
	default:
		m.filterMode = FilterAll
	}
}

// filterLabel returns the display label for the current filter mode.
func (m Model) filterLabel() string {
	switch m.filterMode {
	case FilterErrors:
		return "Errors"
	case FilterWarnings:
		return "Warnings"
	case FilterInstalls:
		return "Installs"
	default:
		return "All"
	}
}

func (m *Model) initViewports() {
	m.detailViewport = viewport.New(m.detailWidth()-2, m.contentHeight()-2)
	m.tailViewport = viewport.New(m.width-2, m.contentHeight()-2)
}

// maybeResolveIcon dispatches background icon resolution for the selected
// entry's bundle identifier. Discovery happens inside the command, off the
// UI loop; the result re-enters Update as an iconResolvedMsg.
func (m Model) maybeResolveIcon() tea.Cmd {
	entry, ok := m.selectedEntry()
	if !ok || !entry.IsApplicationEvent() {
		return nil
	}
	if m.resolver == nil || m.iconKnown[entry.BundleID] {
		return nil
	}
	return resolveIconCmd(m.resolver, entry.BundleID)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewTail:
		b.WriteString(m.renderTail())
	default:
		b.WriteString(m.renderEntries())
	}

	return b.String()
}

func (m Model) contentHeight() int {
	// Header and command bar take a line each.
	h := m.height - 2
	if h < 3 {
		h = 3
	}
	return h
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type iconResolvedMsg struct {
	bundleID string
	icon     *appicon.Icon
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func resolveIconCmd(r *appicon.Resolver, bundleID string) tea.Cmd {
	return func() tea.Msg {
		icon, _ := r.Resolve(bundleID)
		return iconResolvedMsg{bundleID: bundleID, icon: icon}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
