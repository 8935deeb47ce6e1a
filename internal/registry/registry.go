// Package registry provides a global registry of map generator factories.
// Generators register themselves in init() functions, so configuration and
// the CLI can resolve generator kinds by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hexgrid/internal/tilemap"
)

var ErrUnknownKind = errors.New("registry: unknown generator kind")

// Params carries the generator settings a factory may use. Factories ignore
// the fields that do not apply to them.
type Params struct {
	Tiles     []string
	Seed      int64
	Frequency float64
	Octaves   int
	Bands     []tilemap.Band
}

// Factory builds a generator for the given tile types.
type Factory func(types *tilemap.TileTypes, p Params) (tilemap.Generator, error)

// GeneratorInfo contains metadata about a registered generator.
type GeneratorInfo struct {
	Kind        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a generator factory to the registry.
// Panics if a generator with the same kind is already registered.
func Register(kind, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[kind]; exists {
		panic(fmt.Sprintf("registry: generator %q already registered", kind))
	}
	entries[kind] = entry{factory: f, description: description}
}

// List returns information about all registered generators, sorted by kind.
func List() []GeneratorInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GeneratorInfo, 0, len(entries))
	for kind, e := range entries {
		result = append(result, GeneratorInfo{Kind: kind, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Create builds a generator by kind.
func Create(kind string, types *tilemap.TileTypes, p Params) (tilemap.Generator, error) {
	mu.RLock()
	e, ok := entries[kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return e.factory(types, p)
}

// Exists checks if a generator with the given kind is registered.
func Exists(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[kind]
	return ok
}
