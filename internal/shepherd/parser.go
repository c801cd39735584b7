package shepherd

import (
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const plainTimestampLayout = "2006-01-02 15:04:05"

var (
	// 2025-06-01 10:32:15 ERROR [install] Item com.example.editor – install failed (SH-4021)
	plainLinePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\s+([A-Z]+)\s+(?:\[([^\]]+)\]\s+)?(?:[–-]\s+)?(.*)$`)
	detailPattern    = regexp.MustCompile(`^\s+-\s+([^:]+):\s*(.*)$`)
	errorCodePattern = regexp.MustCompile(`\b(SH-\d{3,5})\b`)
)

// ParseLine converts one raw log line to an Entry. Shepherd writes JSON
// lines by default; the legacy plain format is recognized as a fallback.
// Lines matching neither become message-only entries so nothing the agent
// wrote is ever dropped from the browser.
func ParseLine(line string) Entry {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Entry{Raw: line}
	}
	if strings.HasPrefix(trimmed, "{") && gjson.Valid(trimmed) {
		return parseJSONLine(line, trimmed)
	}
	return parsePlainLine(line, trimmed)
}

// ParseLines converts a batch of raw lines, folding indented detail lines
// ("    - Label: Value") into the entry they follow.
func ParseLines(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if m := detailPattern.FindStringSubmatch(line); m != nil && len(entries) > 0 {
			last := &entries[len(entries)-1]
			last.Details = append(last.Details, Detail{
				Label: strings.TrimSpace(m[1]),
				Value: strings.TrimSpace(m[2]),
			})
			last.Raw += "\n" + line
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, ParseLine(line))
	}
	return entries
}

func parseJSONLine(raw, trimmed string) Entry {
	result := gjson.Parse(trimmed)
	entry := Entry{
		Timestamp: parseTime(result.Get("ts").String()),
		Level:     NormalizeLevel(result.Get("level").String()),
		Category:  result.Get("category").String(),
		Message:   result.Get("msg").String(),
		ErrorCode: result.Get("error_code").String(),
		BundleID:  result.Get("bundle_id").String(),
		PolicyID:  result.Get("policy_id").String(),
		Raw:       raw,
	}
	result.Get("details").ForEach(func(_, value gjson.Result) bool {
		entry.Details = append(entry.Details, Detail{
			Label: value.Get("label").String(),
			Value: value.Get("value").String(),
		})
		return true
	})
	if entry.ErrorCode == "" {
		entry.ErrorCode = extractErrorCode(entry.Message)
	}
	return entry
}

func parsePlainLine(raw, trimmed string) Entry {
	m := plainLinePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Entry{Message: trimmed, Level: LevelInfo, Raw: raw}
	}
	entry := Entry{
		Timestamp: parseTime(m[1]),
		Level:     NormalizeLevel(m[2]),
		Category:  m[3],
		Message:   m[4],
		ErrorCode: extractErrorCode(m[4]),
		Raw:       raw,
	}
	return entry
}

// NormalizeLevel maps the agent's level spellings onto the four canonical
// values. Unknown levels fall back to INFO.
func NormalizeLevel(level string) string {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG", "TRACE":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR", "FATAL", "CRITICAL":
		return LevelError
	case "INFO", "NOTICE", "":
		return LevelInfo
	default:
		return LevelInfo
	}
}

func extractErrorCode(message string) string {
	if m := errorCodePattern.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	return ""
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(plainTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
