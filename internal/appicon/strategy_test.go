package appicon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeBundle creates a minimal .app bundle under root and returns its path.
// iconFile is optional; when non-empty a matching resource file is created.
func writeBundle(t *testing.T, root, appName, bundleID, iconFile string) string {
	t.Helper()

	appPath := filepath.Join(root, appName+".app")
	resources := filepath.Join(appPath, "Contents", "Resources")
	if err := os.MkdirAll(resources, 0o755); err != nil {
		t.Fatalf("create bundle dirs: %v", err)
	}

	iconKey := ""
	if iconFile != "" {
		iconKey = fmt.Sprintf("\t<key>CFBundleIconFile</key>\n\t<string>%s</string>\n", iconFile)
		name := iconFile
		if filepath.Ext(name) == "" {
			name += ".icns"
		}
		if err := os.WriteFile(filepath.Join(resources, name), []byte("icns"), 0o644); err != nil {
			t.Fatalf("write icon resource: %v", err)
		}
	}

	info := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>%s</string>
	<key>CFBundleName</key>
	<string>%s</string>
%s</dict>
</plist>
`, bundleID, appName, iconKey)
	if err := os.WriteFile(filepath.Join(appPath, "Contents", "Info.plist"), []byte(info), 0o644); err != nil {
		t.Fatalf("write Info.plist: %v", err)
	}
	return appPath
}

func TestDirScan_FindsMatchingBundle(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, root, "Other", "com.example.other", "")
	appPath := writeBundle(t, root, "Editor", "com.example.editor", "editor")

	s := NewDirScanStrategy(root)
	icon, ok := s.Lookup("com.example.editor")
	if !ok {
		t.Fatal("Lookup() ok = false, want true")
	}
	if icon.AppName != "Editor" {
		t.Fatalf("AppName = %q, want Editor", icon.AppName)
	}
	want := filepath.Join(appPath, "Contents", "Resources", "editor.icns")
	if icon.Path != want {
		t.Fatalf("Path = %q, want %q", icon.Path, want)
	}
}

func TestDirScan_SkipsUnreadableRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	later := t.TempDir()
	writeBundle(t, later, "Utility", "com.example.utility", "")

	s := NewDirScanStrategy(missing, later)
	icon, ok := s.Lookup("com.example.utility")
	if !ok || icon.AppName != "Utility" {
		t.Fatalf("Lookup() = %v, %v; want match from later root", icon, ok)
	}
}

func TestDirScan_OrderedRoots(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeBundle(t, first, "First", "com.example.dup", "")
	writeBundle(t, second, "Second", "com.example.dup", "")

	s := NewDirScanStrategy(first, second)
	icon, ok := s.Lookup("com.example.dup")
	if !ok || icon.AppName != "First" {
		t.Fatalf("Lookup() = %v, %v; want bundle from first root", icon, ok)
	}
}

func TestDirScan_NoMatch(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, root, "Editor", "com.example.editor", "")

	s := NewDirScanStrategy(root)
	if icon, ok := s.Lookup("com.example.absent"); ok || icon != nil {
		t.Fatalf("Lookup() = %v, %v; want nil, false", icon, ok)
	}
}

func TestDirScan_BundleWithoutIconStillResolves(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, root, "Plain", "com.example.plain", "")

	s := NewDirScanStrategy(root)
	icon, ok := s.Lookup("com.example.plain")
	if !ok {
		t.Fatal("Lookup() ok = false, want true")
	}
	if icon.AppName != "Plain" || icon.Path != "" {
		t.Fatalf("icon = %+v, want name Plain and empty path", icon)
	}
}

func TestRegistry_UsesRunnerOutput(t *testing.T) {
	root := t.TempDir()
	appPath := writeBundle(t, root, "Editor", "com.example.editor", "editor")

	var query string
	s := &RegistryStrategy{run: func(name string, args ...string) ([]byte, error) {
		if name != "mdfind" {
			t.Fatalf("command = %q, want mdfind", name)
		}
		query = args[len(args)-1]
		return []byte(appPath + "\n"), nil
	}}

	icon, ok := s.Lookup("com.example.editor")
	if !ok || icon.AppName != "Editor" {
		t.Fatalf("Lookup() = %v, %v; want Editor", icon, ok)
	}
	if want := `kMDItemCFBundleIdentifier == "com.example.editor"`; query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
}

func TestRegistry_RunnerFailureMisses(t *testing.T) {
	s := &RegistryStrategy{run: func(string, ...string) ([]byte, error) {
		return nil, errors.New("mdfind unavailable")
	}}
	if icon, ok := s.Lookup("com.example.editor"); ok || icon != nil {
		t.Fatalf("Lookup() = %v, %v; want nil, false", icon, ok)
	}
}

func TestRegistry_EmptyOutputMisses(t *testing.T) {
	s := &RegistryStrategy{run: func(string, ...string) ([]byte, error) {
		return []byte("\n"), nil
	}}
	if _, ok := s.Lookup("com.example.editor"); ok {
		t.Fatal("Lookup() ok = true, want false for empty registry output")
	}
}
