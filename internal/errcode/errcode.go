// Package errcode explains shepherd agent error codes to operators.
// The table ships embedded in the binary so explanations stay in lockstep
// with the release.
package errcode

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed codes.toml
var codesTOML []byte

// Explanation describes one agent error code.
type Explanation struct {
	Summary string `toml:"summary"`
	Hint    string `toml:"hint"`
}

var (
	loadOnce sync.Once
	table    map[string]Explanation
	loadErr  error
)

func load() {
	var raw struct {
		Codes map[string]Explanation `toml:"codes"`
	}
	if err := toml.Unmarshal(codesTOML, &raw); err != nil {
		loadErr = fmt.Errorf("parse embedded code table: %w", err)
		return
	}
	table = raw.Codes
}

// Explain returns the explanation for code. Unknown or empty codes report
// ok=false; the caller shows the bare code instead.
func Explain(code string) (Explanation, bool) {
	loadOnce.Do(load)
	if loadErr != nil {
		return Explanation{}, false
	}
	exp, ok := table[strings.ToUpper(strings.TrimSpace(code))]
	return exp, ok
}

// Known reports how many codes the embedded table covers.
func Known() int {
	loadOnce.Do(load)
	return len(table)
}
