package appicon

import (
	"strings"
	"sync"
)

// Icon identifies a resolved application icon on disk.
type Icon struct {
	AppName string // display name of the installed application
	Path    string // icon resource path; may be empty when the bundle ships no icon file
}

// Resolver memoizes icon lookups per bundle identifier. Results are cached
// for the lifetime of the resolver, including failed lookups, so each
// distinct bundle identifier triggers discovery at most once per session.
type Resolver struct {
	mu         sync.RWMutex
	cache      map[string]*Icon // nil value records a failed lookup
	strategies []Strategy
}

// New builds a Resolver that tries the given strategies in order. With no
// arguments it uses the platform defaults: the application registry first,
// then a scan of the well-known install directories.
func New(strategies ...Strategy) *Resolver {
	if len(strategies) == 0 {
		strategies = defaultStrategies()
	}
	return &Resolver{
		cache:      make(map[string]*Icon),
		strategies: strategies,
	}
}

// Resolve returns the icon for bundleID, or ok=false when no installed
// application matches. Absence is cached just like a hit; subsequent calls
// for the same identifier never touch the registry or filesystem again.
//
// Resolve is safe for concurrent use. Cached lookups take only a read lock,
// so they never wait on each other or on in-flight discovery.
func (r *Resolver) Resolve(bundleID string) (*Icon, bool) {
	if strings.TrimSpace(bundleID) == "" {
		return nil, false
	}

	r.mu.RLock()
	icon, seen := r.cache[bundleID]
	r.mu.RUnlock()
	if seen {
		return icon, icon != nil
	}

	// Discovery runs outside the lock. Two callers racing on the same
	// unseen key may both do the work; the last write wins. Tolerating the
	// duplicate keeps the fast path lock-free of any I/O.
	icon = nil
	for _, s := range r.strategies {
		if found, ok := s.Lookup(bundleID); ok {
			icon = found
			break
		}
	}

	r.mu.Lock()
	r.cache[bundleID] = icon
	r.mu.Unlock()

	return icon, icon != nil
}

// Size reports the number of cached entries, counting negative ones.
func (r *Resolver) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}
