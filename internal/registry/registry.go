// Package registry provides a global registry for chart generators.
// Generators register themselves in init() functions, allowing the platform
// to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-beats/internal/config"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

// Generator produces the beats of a chart.
// Generators are pure: the same seed and config always give the same chart.
type Generator interface {
	// ID returns a unique identifier for this chart (e.g., "random", "stairs").
	// Used for CLI arguments and the menu.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Generate builds the beat list for one run.
	Generate(seed int64, cfg config.ChartConfig) []rhythm.BeatSpec
}

// ChartInfo contains metadata about a registered generator.
type ChartInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new generator.
type Factory func() Generator

// DefaultChart is played when no chart is named.
const DefaultChart = "random"

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a generator factory to the registry.
// Panics if a generator with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: chart %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered charts, sorted by ID.
func List() []ChartInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ChartInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ChartInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a generator by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown chart %q", id)
	}

	return f(), nil
}

// Exists checks if a chart with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
