package ui

import (
	"regexp"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchState holds entry-list search state.
type searchState struct {
	active bool // input mode
	query  string
	regex  *regexp.Regexp
	input  textinput.Model
}

func newSearchState() searchState {
	ti := textinput.New()
	ti.Placeholder = "Search entries..."
	ti.CharLimit = 100
	return searchState{input: ti}
}

func (m *Model) startSearch() {
	m.search.active = true
	m.search.input.SetValue(m.search.query)
	m.search.input.Focus()
}

func (m *Model) clearSearch() {
	m.search.query = ""
	m.search.regex = nil
	m.clampSelection()
}

// handleSearchKey processes input while the search prompt is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.search.active = false
		m.search.input.Blur()
		return m, nil

	case "enter":
		m.search.active = false
		m.search.input.Blur()
		m.applySearch(m.search.input.Value())
		m.clampSelection()
		m.updateDetailViewport()
		return m, m.maybeResolveIcon()
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

// applySearch compiles query case-insensitively. Invalid patterns fall back
// to a literal match so typing "(" does not break the prompt.
func (m *Model) applySearch(query string) {
	if query == "" {
		m.clearSearch()
		return
	}
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	}
	m.search.query = query
	m.search.regex = re
	m.selectedRow = 0
}

// nextSearchMatch moves the cursor by delta within the already-filtered
// list. With a search active the visible list is the match set, so this is
// plain cursor movement that wraps.
func (m *Model) nextSearchMatch(delta int) {
	if m.search.regex == nil {
		return
	}
	count := len(m.visibleEntries())
	if count == 0 {
		return
	}
	m.selectedRow = ((m.selectedRow+delta)%count + count) % count
	m.updateDetailViewport()
}
