package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/periscope-dev/periscope/internal/errcode"
	"github.com/periscope-dev/periscope/internal/shepherd"
)

// updateDetailViewport refreshes the detail pane for the selected entry.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	m.detailViewport.Width = m.detailWidth() - 4
	m.detailViewport.Height = m.contentHeight() - 2
	m.detailViewport.SetContent(m.renderDetailContent())
}

// renderDetail renders the bordered detail pane.
func (m Model) renderDetail() string {
	border := m.theme.Border
	if m.focusedPane == 1 {
		border = m.theme.BorderFocus
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(m.detailWidth() - 2).
		Height(m.contentHeight() - 2).
		Padding(0, 1)
	return box.Render(m.detailViewport.View())
}

func (m Model) renderDetailContent() string {
	styles := m.theme.Styles()

	entry, ok := m.selectedEntry()
	if !ok {
		return styles.FaintText.Render("Nothing selected")
	}

	label := func(s string) string { return styles.MutedText.Render(fmt.Sprintf("%-10s", s)) }
	var b strings.Builder

	if !entry.Timestamp.IsZero() {
		b.WriteString(label("Time") + styles.Text.Render(entry.Timestamp.Format("2006-01-02 15:04:05")) + "\n")
	}
	b.WriteString(label("Level") + styles.LevelBadge(entry.Level).Render(entry.Level) + "\n")
	if entry.Category != "" {
		b.WriteString(label("Category") + styles.AccentText.Render(entry.Category) + "\n")
	}
	if entry.PolicyID != "" {
		b.WriteString(label("Policy") + styles.Text.Render(entry.PolicyID) + "\n")
	}

	if entry.IsApplicationEvent() {
		b.WriteString(m.renderApplicationSection(entry))
	}

	if entry.ErrorCode != "" {
		b.WriteString(m.renderErrorCodeSection(entry.ErrorCode))
	}

	b.WriteString("\n")
	b.WriteString(styles.Text.Render(wrap(entry.Message, m.detailViewport.Width)))
	b.WriteString("\n")

	if len(entry.Details) > 0 {
		b.WriteString("\n" + styles.MutedText.Render("Details") + "\n")
		for _, d := range entry.Details {
			b.WriteString("  " + styles.FaintText.Render(d.Label+": ") + styles.Text.Render(d.Value) + "\n")
		}
	}

	return b.String()
}

// renderApplicationSection shows the bundle identifier along with the
// resolved application name and icon location, once resolution finished.
func (m Model) renderApplicationSection(entry shepherd.Entry) string {
	styles := m.theme.Styles()
	label := func(s string) string { return styles.MutedText.Render(fmt.Sprintf("%-10s", s)) }

	var b strings.Builder
	b.WriteString(label("Bundle") + styles.Text.Render(entry.BundleID) + "\n")

	if !m.iconKnown[entry.BundleID] {
		b.WriteString(label("App") + styles.FaintText.Render("resolving…") + "\n")
		return b.String()
	}

	icon := m.icons[entry.BundleID]
	if icon == nil {
		b.WriteString(label("App") + styles.FaintText.Render("not installed") + "\n")
		return b.String()
	}

	b.WriteString(label("App") + styles.SuccessText.Render("◆ "+icon.AppName) + "\n")
	if icon.Path != "" {
		b.WriteString(label("Icon") + styles.FaintText.Render(truncateMiddle(icon.Path, m.detailViewport.Width-11)) + "\n")
	}
	return b.String()
}

// renderErrorCodeSection explains the agent error code when the embedded
// table knows it.
func (m Model) renderErrorCodeSection(code string) string {
	styles := m.theme.Styles()
	label := func(s string) string { return styles.MutedText.Render(fmt.Sprintf("%-10s", s)) }

	var b strings.Builder
	b.WriteString(label("Code") + styles.DangerText.Render(code) + "\n")

	exp, ok := errcode.Explain(code)
	if !ok {
		return b.String()
	}
	width := max(20, m.detailViewport.Width)
	b.WriteString("  " + styles.WarningText.Render(wrap(exp.Summary, width-2)) + "\n")
	if exp.Hint != "" {
		b.WriteString("  " + styles.FaintText.Render(wrap(exp.Hint, width-2)) + "\n")
	}
	return b.String()
}
