package ui

import (
	"regexp"
	"strings"

	"github.com/periscope-dev/periscope/internal/shepherd"
)

var (
	rawLinePattern   = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\s+([A-Z]+)\s+(\[[^\]]+\]\s+)?(.*)$`)
	rawDetailPattern = regexp.MustCompile(`^(\s+-\s+)(.*)$`)
)

// colorizeLine applies level-aware styling to one raw log line. JSON lines
// and anything else unrecognized render unstyled so the raw view stays an
// honest copy of the file.
func (m Model) colorizeLine(line string) string {
	styles := m.theme.Styles()

	if strings.HasPrefix(strings.TrimSpace(line), "{") {
		return styles.FaintText.Render(line)
	}
	if md := rawDetailPattern.FindStringSubmatch(line); md != nil {
		return styles.FaintText.Render(md[1]) + styles.MutedText.Render(md[2])
	}
	ml := rawLinePattern.FindStringSubmatch(line)
	if ml == nil {
		return line
	}

	out := styles.FaintText.Render(ml[1]) + " " +
		styles.LevelStyle(shepherd.NormalizeLevel(ml[2])).Render(ml[2]) + " "
	if ml[3] != "" {
		out += styles.AccentText.Render(strings.TrimRight(ml[3], " ")) + " "
	}
	return out + ml[4]
}
