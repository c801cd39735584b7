package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "zero lines",
			maxLines: 0,
			expected: nil,
		},
		{
			name:     "negative lines",
			maxLines: -1,
			expected: nil,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil || lines != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", lines, err)
	}
}

func TestReadFrom_Incremental(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "agent.log")
	if err := os.WriteFile(logPath, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	lines, offset, err := ReadFrom(logPath, 0)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"one", "two"}) {
		t.Fatalf("lines = %v, want [one two]", lines)
	}

	// Nothing new yet.
	lines, offset2, err := ReadFrom(logPath, offset)
	if err != nil || len(lines) != 0 || offset2 != offset {
		t.Fatalf("ReadFrom(no growth) = %v, %d, %v", lines, offset2, err)
	}

	// Append and read only the new line.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open append: %v", err)
	}
	if _, err := f.WriteString("three\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	f.Close()

	lines, _, err = ReadFrom(logPath, offset)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"three"}) {
		t.Fatalf("lines = %v, want [three]", lines)
	}
}

func TestReadFrom_PartialLineHeldBack(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "agent.log")
	if err := os.WriteFile(logPath, []byte("complete\npart"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	lines, offset, err := ReadFrom(logPath, 0)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"complete"}) {
		t.Fatalf("lines = %v, want [complete]", lines)
	}
	if offset != int64(len("complete\n")) {
		t.Fatalf("offset = %d, want %d", offset, len("complete\n"))
	}

	// Finishing the line makes it visible.
	f, _ := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0o644)
	f.WriteString("ial\n")
	f.Close()

	lines, _, err = ReadFrom(logPath, offset)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"partial"}) {
		t.Fatalf("lines = %v, want [partial]", lines)
	}
}

func TestReadFrom_RotationRestarts(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "agent.log")
	if err := os.WriteFile(logPath, []byte("old line one\nold line two\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	_, offset, err := ReadFrom(logPath, 0)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}

	// Rotate: new file is shorter than the previous offset.
	if err := os.WriteFile(logPath, []byte("fresh\n"), 0o644); err != nil {
		t.Fatalf("rotate log: %v", err)
	}
	lines, _, err := ReadFrom(logPath, offset)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"fresh"}) {
		t.Fatalf("lines = %v, want [fresh]", lines)
	}
}

func TestReadFrom_MissingFile(t *testing.T) {
	lines, offset, err := ReadFrom(filepath.Join(t.TempDir(), "absent.log"), 42)
	if err != nil || lines != nil || offset != 0 {
		t.Fatalf("ReadFrom(missing) = %v, %d, %v; want nil, 0, nil", lines, offset, err)
	}
}
