package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-birds/internal/games/birds"
	"github.com/vovakirdan/tui-birds/internal/platform/tui"
	"github.com/vovakirdan/tui-birds/internal/platform/window"
	"github.com/vovakirdan/tui-birds/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W   - Jump (also starts a round and restarts after game over)
  Left click   - Jump
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Q/Esc        - Quit

Terminals do not report key releases, so each key press counts as the key
held for one tick. Mouse buttons report real presses and releases.

Examples:
  birds play
  birds play --record
  birds play --seed 42 --config ./my-birds.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a 480x640 window.

Controls:
  Space/Up     - Jump
  Left click   - Jump
  Esc/Q        - Quit

Examples:
  birds window
  birds window --record --fps 100`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Store the session as a run")
	windowCmd.Flags().BoolVar(&flagRecord, "record", false, "Store the session as a run")
}

// openRecordingStore opens the runs database when recording is requested.
// Storage failures only disable recording.
func openRecordingStore(logger *log.Logger) *storage.Store {
	if !flagRecord {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database, not recording: %v\n", err)
		logger.Warn("recording disabled", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("birds", io.Discard)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := newGame(logger)
	if err != nil {
		return err
	}

	store := openRecordingStore(logger)
	if store != nil {
		defer store.Close()
	}

	id, err := tui.Run(game, runtimeConfig(width, height), tui.GameOptions{
		Store:  store,
		Record: flagRecord,
		Source: "play",
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if id != 0 {
		fmt.Printf("Run saved as #%d\n", id)
	}
	return nil
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("birds-window", os.Stderr)
	if err != nil {
		return err
	}

	game, err := newGame(logger)
	if err != nil {
		return err
	}
	bg, ok := game.(*birds.Game)
	if !ok {
		return fmt.Errorf("game %q cannot be drawn in a window", game.ID())
	}

	store := openRecordingStore(logger)
	if store != nil {
		defer store.Close()
	}

	id, err := window.Run(bg, runtimeConfig(0, 0), window.Options{
		Store:  store,
		Record: flagRecord,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	if id != 0 {
		fmt.Printf("Run saved as #%d\n", id)
	}
	return nil
}
