// Package app provides the orchestration layer for periscope.
//
// # Overview
//
// This package wires together configuration, the log poller, shared state,
// icon resolution, and the UI to form the complete application. It is the
// composition root: every dependency is constructed here and handed down
// explicitly, including the icon resolver, which is deliberately built as
// an owned object rather than package-global state so tests and future
// callers can hold isolated instances.
//
// # Architecture
//
//  1. Load shepherd's configuration to locate the diagnostic log
//  2. Load user preferences (theme, buffer size)
//  3. Route periscope's own diagnostics to a state-directory log file
//  4. Create the shared state.Store and the appicon.Resolver
//  5. Backfill the tail of the agent log, then start the background poller
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Polling behavior
//
// The poller runs at a configurable cadence (default: 2 seconds). The
// first refresh backfills the last N lines using the ring-buffer reader;
// subsequent refreshes follow the file by byte offset, so a busy agent
// costs only the bytes it appended. Rotation is detected by a shrinking
// file and restarts the offset. Read failures are recorded in the store
// (the header shows a stale indicator after repeated ones) and polling
// continues; a missing log file is not a failure, since the agent may
// simply not have started yet.
//
// # Error handling
//
// Fatal errors returned from Run are limited to configuration problems.
// Everything that happens after startup is recoverable: poll errors are
// logged and counted, and the UI keeps rendering the last good snapshot.
package app
