// Package logtail reads shepherd's diagnostic log file incrementally.
//
// Read extracts the last N lines of a file with a ring buffer, using
// O(maxLines) memory regardless of file size; the poller uses it for the
// initial backfill. ReadFrom then follows the file between polls by byte
// offset, handing back only complete new lines and detecting truncation
// (log rotation) by a shrinking size.
//
// Neither function watches the file; scheduling is the poller's job, and
// parsing belongs to the shepherd package.
package logtail
