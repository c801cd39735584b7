package shepherd

import "time"

// Log levels after normalization.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Entry is a single diagnostic log record emitted by the shepherd agent.
type Entry struct {
	Timestamp time.Time
	Level     string // normalized: DEBUG, INFO, WARN, ERROR
	Category  string // agent subsystem, e.g. "policy", "install", "checkin"
	Message   string
	ErrorCode string // agent error code, e.g. "SH-4021"
	BundleID  string // bundle identifier for application events
	PolicyID  string // policy that triggered the event, when any
	Details   []Detail
	Raw       string // original line, used by the raw tail view
}

// Detail is a label/value pair attached to an entry.
type Detail struct {
	Label string
	Value string
}

// IsApplicationEvent reports whether the entry describes an installable
// application, i.e. carries a bundle identifier worth resolving to an icon.
func (e Entry) IsApplicationEvent() bool {
	return e.BundleID != ""
}

// IsProblem reports whether the entry should surface in error-focused views.
func (e Entry) IsProblem() bool {
	return e.Level == LevelError || e.ErrorCode != ""
}
