// Package registry provides a registry of game factories.
// Games register themselves in init() functions, allowing front-ends and
// replay verification to instantiate games by the ID stored with a run.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-birds/internal/core"
)

// Game is the interface front-ends drive.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input sampling, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game, stored with recorded runs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset discards all state and starts over from startup.
	// The RuntimeConfig provides screen dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current summary (phase, score).
	State() core.GameState

	// Tunables returns the game's configuration as YAML, stored with
	// recorded runs so they can be re-simulated.
	Tunables() ([]byte, error)
}

// Options configures a game instance.
type Options struct {
	ConfigPath string      // Custom config file; empty uses the search order
	ConfigData []byte      // Inline YAML, takes precedence over ConfigPath
	Logger     *log.Logger // Nil discards simulation logs
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or its factory fails.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
