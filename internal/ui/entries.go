package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/periscope-dev/periscope/internal/shepherd"
)

// visibleEntries applies the filter mode and any active search to the
// snapshot, newest entries last.
func (m Model) visibleEntries() []shepherd.Entry {
	entries := m.snapshot.Entries

	filtered := entries[:0:0]
	for _, e := range entries {
		switch m.filterMode {
		case FilterErrors:
			if !e.IsProblem() {
				continue
			}
		case FilterWarnings:
			if e.Level != shepherd.LevelWarn && !e.IsProblem() {
				continue
			}
		case FilterInstalls:
			if !e.IsApplicationEvent() {
				continue
			}
		}
		if m.search.regex != nil && !m.search.regex.MatchString(searchHaystack(e)) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func searchHaystack(e shepherd.Entry) string {
	parts := []string{e.Message, e.Category, e.ErrorCode, e.BundleID, e.PolicyID}
	for _, d := range e.Details {
		parts = append(parts, d.Label, d.Value)
	}
	return strings.Join(parts, " ")
}

// selectedEntry returns the entry under the cursor.
func (m Model) selectedEntry() (shepherd.Entry, bool) {
	entries := m.visibleEntries()
	if m.selectedRow < 0 || m.selectedRow >= len(entries) {
		return shepherd.Entry{}, false
	}
	return entries[m.selectedRow], true
}

// clampSelection keeps the cursor inside the visible range after the
// snapshot or the filter changed.
func (m *Model) clampSelection() {
	count := len(m.visibleEntries())
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

func (m Model) listWidth() int {
	// Detail pane gets roughly two fifths on wide terminals, nothing on
	// narrow ones.
	if m.width < 100 {
		return m.width
	}
	return m.width * 3 / 5
}

func (m Model) detailWidth() int {
	w := m.width - m.listWidth()
	if w < 20 {
		return 20
	}
	return w
}

func (m Model) listHeight() int {
	// Border rows of the surrounding box.
	return m.contentHeight() - 2
}

// renderEntries renders the entry list and, on wide terminals, the detail
// pane beside it.
func (m Model) renderEntries() string {
	list := m.renderEntryList()
	if m.listWidth() == m.width {
		return list
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, list, m.renderDetail())
}

func (m Model) renderEntryList() string {
	styles := m.theme.Styles()
	entries := m.visibleEntries()

	height := m.listHeight()
	innerWidth := m.listWidth() - 4 // borders plus padding

	var rows []string
	if len(entries) == 0 {
		rows = append(rows, styles.FaintText.Render(m.emptyListMessage()))
	}

	// Window the rows around the cursor.
	start := 0
	if m.selectedRow >= height {
		start = m.selectedRow - height + 1
	}
	end := min(len(entries), start+height)

	for i := start; i < end; i++ {
		rows = append(rows, m.renderEntryRow(entries[i], innerWidth, i == m.selectedRow))
	}

	border := m.theme.Border
	if m.focusedPane == 0 {
		border = m.theme.BorderFocus
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(m.listWidth() - 2).
		Height(height).
		Padding(0, 1)

	return box.Render(strings.Join(rows, "\n"))
}

func (m Model) emptyListMessage() string {
	if len(m.snapshot.Entries) == 0 {
		return "No log entries yet – waiting for the agent"
	}
	if m.search.regex != nil {
		return fmt.Sprintf("No entries match /%s/", m.search.query)
	}
	return fmt.Sprintf("No entries for filter %q", m.filterLabel())
}

func (m Model) renderEntryRow(e shepherd.Entry, width int, selected bool) string {
	styles := m.theme.Styles()

	ts := "        "
	if !e.Timestamp.IsZero() {
		ts = e.Timestamp.Format("15:04:05")
	}

	level := fmt.Sprintf("%-5s", e.Level)
	category := ""
	if e.Category != "" {
		category = "[" + e.Category + "] "
	}

	marker := "  "
	if e.IsApplicationEvent() {
		marker = "◆ "
	}

	used := len(ts) + 1 + len(level) + 1 + len(marker) + len(category)
	message := truncate(e.Message, max(10, width-used))

	if selected {
		line := fmt.Sprintf("%s %s %s%s%s", ts, level, marker, category, message)
		return styles.Selected.Width(width).Render(truncate(line, width))
	}

	return styles.FaintText.Render(ts) + " " +
		styles.LevelStyle(e.Level).Render(level) + " " +
		styles.AccentText.Render(marker) +
		styles.MutedText.Render(category) +
		styles.Text.Render(message)
}
