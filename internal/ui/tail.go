package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// updateTailViewport refreshes the raw tail content.
func (m *Model) updateTailViewport() {
	if !m.ready {
		return
	}
	m.tailViewport.Width = m.width - 4
	m.tailViewport.Height = m.contentHeight() - 2

	lines := make([]string, 0, len(m.snapshot.Entries))
	for _, e := range m.snapshot.Entries {
		for _, raw := range strings.Split(e.Raw, "\n") {
			lines = append(lines, m.colorizeLine(raw))
		}
	}
	m.tailViewport.SetContent(strings.Join(lines, "\n"))

	if m.follow {
		m.tailViewport.GotoBottom()
	}
}

// renderTail renders the raw log view.
func (m Model) renderTail() string {
	border := m.theme.BorderFocus
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(m.width - 2).
		Height(m.contentHeight() - 2).
		Padding(0, 1)
	return box.Render(m.tailViewport.View())
}
