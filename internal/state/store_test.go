package state

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/periscope-dev/periscope/internal/shepherd"
)

func entry(msg string) shepherd.Entry {
	return shepherd.Entry{Level: shepherd.LevelInfo, Message: msg}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	s := NewStore(0)

	before := time.Now()
	s.Update([]shepherd.Entry{entry("one"), entry("two")}, nil)

	snap := s.Snapshot()
	if len(snap.Entries) != 2 || snap.Entries[0].Message != "one" {
		t.Fatalf("snapshot entries = %#v, want 2 entries", snap.Entries)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Entries[0].Message = "mutated"
	snap2 := s.Snapshot()
	if snap2.Entries[0].Message != "one" {
		t.Fatalf("Snapshot should clone entries; got %q want one", snap2.Entries[0].Message)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	s := NewStore(0)

	s.Update([]shepherd.Entry{entry("kept")}, nil)

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if len(snap.Entries) != 1 || snap.Entries[0].Message != "kept" {
		t.Fatalf("entries changed on error: %#v", snap.Entries)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	s := NewStore(0)

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsStale() {
		t.Fatalf("fresh store: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(nil, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsStale() {
		t.Fatalf("after 1 failure: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(nil, errors.New("fail 2"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsStale() {
		t.Fatalf("after 2 failures: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update([]shepherd.Entry{entry("recovered")}, nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsStale() {
		t.Fatalf("after recovery: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}
}

func TestStore_LimitTrimsOldest(t *testing.T) {
	s := NewStore(3)

	for i := 1; i <= 5; i++ {
		s.Update([]shepherd.Entry{entry(fmt.Sprintf("msg %d", i))}, nil)
	}

	snap := s.Snapshot()
	if len(snap.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(snap.Entries))
	}
	if snap.Entries[0].Message != "msg 3" || snap.Entries[2].Message != "msg 5" {
		t.Fatalf("Entries = %#v, want msgs 3..5", snap.Entries)
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(0)
	s.Update([]shepherd.Entry{entry("one")}, nil)
	s.Reset()

	snap := s.Snapshot()
	if len(snap.Entries) != 0 || snap.LastError != nil || snap.ConsecutiveFailures != 0 {
		t.Fatalf("after Reset: %#v", snap)
	}
}
