// Package appicon resolves application icons for bundle identifiers seen in
// shepherd's diagnostic log.
//
// # Overview
//
// Log rows that describe an application event carry a bundle identifier
// (for example "com.example.editor"). The UI wants to show the installed
// application's name and icon next to those rows. Discovering that mapping
// means hitting the platform's application registry or walking install
// directories on disk, both of which are far too slow to repeat per render.
// This package performs the discovery once per identifier and memoizes the
// answer, including the negative one, for the life of the process.
//
// # Resolution strategies
//
// A Resolver holds an ordered list of Strategy values and asks each in turn
// until one reports a hit:
//
//  1. RegistryStrategy queries the platform application registry
//     (Spotlight's metadata index on macOS).
//  2. DirScanStrategy walks a fixed list of well-known install roots and
//     matches bundles by their embedded CFBundleIdentifier.
//
// Strategies never surface errors. A probe that fails for any reason simply
// misses, and a total miss is itself a valid, cacheable result: an
// identifier that resolves to "no icon" today will not be re-scanned
// tomorrow within the same session.
//
// # Concurrency
//
// Resolve is called concurrently from background commands, one per rendered
// row. The cache is guarded by a sync.RWMutex: hits take only the read
// lock, so readers never block each other, and a writer inserting a freshly
// resolved entry is atomic with respect to all readers. Discovery itself
// runs outside any lock. When two callers race on the same unseen
// identifier both perform the discovery and the last writer wins; the
// duplicate work is accepted in exchange for keeping the hot path free of
// single-flight bookkeeping.
//
// # Testing
//
// Strategies are a one-method interface, so tests substitute call-counting
// stubs to verify the caching contract, and DirScanStrategy accepts
// arbitrary roots so a fake bundle tree under t.TempDir() exercises the
// real plist parsing path.
package appicon
