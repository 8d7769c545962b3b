// Package registry provides a global registry of script factories.
// Scripts register themselves in init() functions, allowing scene files to
// name a behaviour without the loader depending on every script package.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/critterbits/internal/engine"
)

// ErrUnknown is returned by Create for names nobody registered.
var ErrUnknown = errors.New("registry: unknown script")

// ScriptInfo contains metadata about a registered script.
type ScriptInfo struct {
	Name        string
	Description string
}

// Factory creates a fresh script instance configured from scene params.
type Factory func(params Params) engine.Script

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a script factory to the registry.
// Typically called from a script's init() function.
// Panics if a script with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: script %q already registered", name))
	}
	entries[name] = entry{factory: f, description: description}
}

// List returns information about all registered scripts, sorted by name.
func List() []ScriptInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScriptInfo, 0, len(entries))
	for name, e := range entries {
		result = append(result, ScriptInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a script by name.
func Create(name string, params Params) (engine.Script, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	if params == nil {
		params = Params{}
	}
	return e.factory(params), nil
}

// Exists checks if a script with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}
