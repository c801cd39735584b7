package appicon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"howett.net/plist"
)

// Strategy locates an application icon for a bundle identifier. Lookup
// reports ok=false when the strategy has no answer; strategies never return
// errors, a failed probe simply defers to the next strategy in order.
type Strategy interface {
	Lookup(bundleID string) (*Icon, bool)
}

func defaultStrategies() []Strategy {
	return []Strategy{
		NewRegistryStrategy(),
		NewDirScanStrategy(defaultScanRoots()...),
	}
}

// RegistryStrategy asks the platform's application registry where the bundle
// is installed. On macOS that is the Spotlight metadata index, queried via
// mdfind. On other platforms the registry has no equivalent and the strategy
// always misses.
type RegistryStrategy struct {
	run func(name string, args ...string) ([]byte, error)
}

// NewRegistryStrategy returns a registry strategy backed by the real
// platform tools.
func NewRegistryStrategy() *RegistryStrategy {
	s := &RegistryStrategy{}
	if runtime.GOOS == "darwin" {
		s.run = func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		}
	}
	return s
}

// Lookup implements Strategy.
func (s *RegistryStrategy) Lookup(bundleID string) (*Icon, bool) {
	if s.run == nil {
		return nil, false
	}
	out, err := s.run("mdfind", fmt.Sprintf("kMDItemCFBundleIdentifier == %q", bundleID))
	if err != nil {
		return nil, false
	}
	for _, line := range strings.Split(string(out), "\n") {
		path := strings.TrimSpace(line)
		if path == "" {
			continue
		}
		if icon, ok := iconFromBundle(path); ok {
			return icon, true
		}
	}
	return nil, false
}

// bundleInfo is the subset of Info.plist keys icon resolution needs.
type bundleInfo struct {
	Identifier  string `plist:"CFBundleIdentifier"`
	Name        string `plist:"CFBundleName"`
	DisplayName string `plist:"CFBundleDisplayName"`
	IconFile    string `plist:"CFBundleIconFile"`
}

func readBundleInfo(appPath string) (bundleInfo, bool) {
	raw, err := os.ReadFile(filepath.Join(appPath, "Contents", "Info.plist"))
	if err != nil {
		return bundleInfo{}, false
	}
	var info bundleInfo
	if _, err := plist.Unmarshal(raw, &info); err != nil {
		return bundleInfo{}, false
	}
	return info, true
}

// iconFromBundle builds an Icon from the bundle at appPath. A matching
// bundle without an icon resource still counts as found; the path is left
// empty and the caller renders the name alone.
func iconFromBundle(appPath string) (*Icon, bool) {
	info, ok := readBundleInfo(appPath)
	if !ok {
		return nil, false
	}

	name := info.DisplayName
	if name == "" {
		name = info.Name
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(appPath), ".app")
	}

	icon := &Icon{AppName: name}
	if info.IconFile != "" {
		file := info.IconFile
		if filepath.Ext(file) == "" {
			file += ".icns"
		}
		path := filepath.Join(appPath, "Contents", "Resources", file)
		if _, err := os.Stat(path); err == nil {
			icon.Path = path
		}
	}
	return icon, true
}
