// Package state holds the shared snapshot the poller writes and the UI
// reads. A sync.RWMutex store hands out defensive copies so the Bubble Tea
// loop never observes a partially applied update, and poll failures are
// counted without discarding the last good data.
package state
