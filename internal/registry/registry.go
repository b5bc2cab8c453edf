// Package registry provides a global registry of pattern generators.
// Recipes register themselves in init() functions, so the batch runner and
// the CLI can discover them without a hardcoded list.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/jumpforge/internal/gen"
	"github.com/vovakirdan/jumpforge/internal/pattern"
	"github.com/vovakirdan/jumpforge/internal/physics"
)

// Generator builds one kind of obstacle pattern.
// Generators are deterministic for a given RNG state and never validate;
// the caller decides whether a result is kept.
type Generator interface {
	// ID returns a unique identifier (e.g., "wave-rider").
	// Used for CLI flags, export slugs and the run ledger.
	ID() string

	// Title returns a human-readable name (e.g., "Wave Rider").
	Title() string

	// Description summarises the pattern for listings.
	Description() string

	// Generate produces a fresh pattern using rng for every random choice.
	Generate(rng gen.RNG, m physics.Model, cfg pattern.BuildConfig) (pattern.Pattern, error)
}

// Info contains metadata about a registered generator.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a generator instance.
type Factory func() Generator

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a generator factory to the registry.
// Typically called from an init() function.
// Panics if a generator with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: generator %q already registered", id))
	}

	factories[id] = f

	g := f()
	infos[id] = Info{ID: id, Title: g.Title(), Description: g.Description()}
}

// List returns information about all registered generators, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the registered generator IDs, sorted.
func IDs() []string {
	list := List()
	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates a generator by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown generator %q", id)
	}

	return f(), nil
}

// Exists checks if a generator with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
