package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/periscope-dev/periscope/internal/shepherd"
)

// renderHeader renders the one-line status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{styles.Logo.Render("periscope")}

	entries := m.snapshot.Entries
	errors, warnings, installs := countLevels(entries)

	parts = append(parts,
		styles.MutedText.Render("Entries:")+" "+styles.Text.Render(humanize.Comma(int64(len(entries)))))

	errStyle := styles.DangerText
	if errors == 0 {
		errStyle = styles.MutedText
	}
	warnStyle := styles.WarningText
	if warnings == 0 {
		warnStyle = styles.MutedText
	}
	parts = append(parts,
		styles.MutedText.Render("Errors:")+" "+errStyle.Render(fmt.Sprintf("%d", errors)),
		styles.MutedText.Render("Warnings:")+" "+warnStyle.Render(fmt.Sprintf("%d", warnings)),
		styles.MutedText.Render("Installs:")+" "+styles.AccentText.Render(fmt.Sprintf("%d", installs)),
	)

	if m.snapshot.IsStale() {
		parts = append(parts, styles.DangerText.Render("STALE")+" "+
			styles.MutedText.Render(truncate(fmt.Sprintf("%v", m.snapshot.LastError), 40)))
	} else if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, styles.FaintText.Render("updated "+humanize.Time(m.snapshot.LastUpdated)))
	}

	if m.config != nil {
		parts = append(parts, styles.FaintText.Render(truncateMiddle(m.config.AgentLogPath(), 40)))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders the second header line with mode indicators and
// key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	if m.search.active {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.SurfaceAlt)).
			Width(m.width).
			Padding(0, 1).
			Render(styles.AccentText.Render("/") + m.search.input.View())
	}

	var left []string
	switch m.currentView {
	case ViewTail:
		left = append(left, styles.AccentText.Render("RAW"))
		if m.follow {
			left = append(left, styles.SuccessText.Render("follow"))
		} else {
			left = append(left, styles.MutedText.Render("paused"))
		}
	default:
		left = append(left, styles.AccentText.Render("ENTRIES"))
		left = append(left, styles.MutedText.Render("filter:")+" "+styles.Text.Render(m.filterLabel()))
		if m.search.regex != nil {
			left = append(left, styles.WarningText.Render("/"+m.search.query+"/"))
		}
	}

	hints := "j/k move  f filter  / search  r raw  T theme  ? help  e quit"
	line := strings.Join(left, "  ")
	gap := m.width - lipgloss.Width(line) - len(hints) - 4
	if gap < 2 {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.SurfaceAlt)).
			Width(m.width).
			Padding(0, 1).
			Render(line)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(m.width).
		Padding(0, 1).
		Render(line + strings.Repeat(" ", gap) + styles.FaintText.Render(hints))
}

func countLevels(entries []shepherd.Entry) (errors, warnings, installs int) {
	for _, e := range entries {
		if e.IsProblem() {
			errors++
		} else if e.Level == shepherd.LevelWarn {
			warnings++
		}
		if e.IsApplicationEvent() {
			installs++
		}
	}
	return errors, warnings, installs
}
