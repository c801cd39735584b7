package appicon

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DirScanStrategy walks a fixed, ordered list of install roots looking for a
// bundle whose embedded identifier matches. It is the fallback for
// applications the registry has not indexed.
type DirScanStrategy struct {
	roots []string
}

// NewDirScanStrategy scans the given roots in order. Roots that do not exist
// or cannot be read are skipped.
func NewDirScanStrategy(roots ...string) *DirScanStrategy {
	return &DirScanStrategy{roots: roots}
}

func defaultScanRoots() []string {
	if runtime.GOOS != "darwin" {
		return nil
	}
	roots := []string{
		"/Applications",
		"/Applications/Utilities",
		"/System/Applications",
		"/System/Applications/Utilities",
		"/usr/local/Applications",
	}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, "Applications"))
	}
	return roots
}

// Lookup implements Strategy. The first bundle whose CFBundleIdentifier
// matches wins; later roots are not consulted.
func (s *DirScanStrategy) Lookup(bundleID string) (*Icon, bool) {
	for _, root := range s.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			// An unreadable or missing root is not an error; keep scanning.
			continue
		}
		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), ".app") {
				continue
			}
			appPath := filepath.Join(root, entry.Name())
			info, ok := readBundleInfo(appPath)
			if !ok || info.Identifier != bundleID {
				continue
			}
			if icon, ok := iconFromBundle(appPath); ok {
				return icon, true
			}
		}
	}
	return nil, false
}
