package exchange

import (
	"fmt"
	"sync"

	"normex/pkg/core"
)

// Factory constructs a venue client from a config.
type Factory func(config *core.Config) (Exchange, error)

type registryKey struct {
	venue   string
	version string
}

// Registry is a thread-safe registry of venue implementations keyed by
// venue identifier and API version. Implementations are resolved at
// client-construction time; there is no dynamic lookup by type name.
type Registry struct {
	mu        sync.RWMutex
	factories map[registryKey]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[registryKey]Factory),
	}
}

// Register adds a factory for the venue and version. An existing entry for
// the same key is overwritten.
func (r *Registry) Register(venue, version string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[registryKey{venue: venue, version: version}] = factory
}

// New resolves the factory for the venue and version and constructs a
// client with the given config.
func (r *Registry) New(venue, version string, config *core.Config) (Exchange, error) {
	r.mu.RLock()
	factory, ok := r.factories[registryKey{venue: venue, version: version}]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no implementation registered for venue %q version %q", venue, version)
	}
	return factory(config)
}

// Versions returns the registered versions for a venue.
func (r *Registry) Versions(venue string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var versions []string
	for key := range r.factories {
		if key.venue == venue {
			versions = append(versions, key.version)
		}
	}
	return versions
}

// Exists reports whether the venue and version pair is registered.
func (r *Registry) Exists(venue, version string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[registryKey{venue: venue, version: version}]
	return ok
}
