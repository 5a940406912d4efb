// birds is a side-scrolling arcade game: jump through the gaps between
// scrolling pipes without touching them or the ground.
//
// Usage:
//
//	birds play               - Play in the terminal
//	birds window             - Play in a desktop window
//	birds serve              - Start SSH server for remote play
//	birds sim                - Run a scripted game headlessly
//	birds runs               - Browse recorded runs
//	birds replay <id>        - Re-simulate a recorded run
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Custom game config YAML
//	--db <path>         - Set database path (default: ~/.arcade/birds.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-birds/internal/core"
	_ "github.com/vovakirdan/tui-birds/internal/games/birds" // Registers the game
	"github.com/vovakirdan/tui-birds/internal/registry"
)

// gameID is the registered game every command plays.
const gameID = "birds"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// logOutput is the open --log-file, closed after the command runs.
var logOutput *os.File

func main() {
	err := rootCmd.Execute()
	if logOutput != nil {
		logOutput.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "birds",
	Short: "Birds - jump through the pipes",
	Long: `Birds is a minimal side-scrolling arcade game. The bird falls under
gravity, jumps on Space or a left click, and must pass through the gaps
between scrolling pipes without touching them or the ground.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a scripted game without a display
  runs     - Browse recorded runs
  replay   - Re-simulate a recorded run

Examples:
  birds play
  birds play --record
  birds window --fps 100
  birds serve --ssh :2222
  birds sim --ticks 5000 --press-every 30
  birds replay 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/birds.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds the logger for a command.
// Without --log-file, logs go to fallback (io.Discard for full-screen commands).
func newLogger(prefix string, fallback io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logOutput = f
		out = f
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// newGame creates the game with the global --config.
func newGame(logger *log.Logger) (registry.Game, error) {
	return registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Logger:     logger,
	})
}
