package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-birds/internal/core"
	"github.com/vovakirdan/tui-birds/internal/replay"
)

var (
	flagTicks      int
	flagPressEvery int
	flagHold       int
	flagSimRecord  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a display",
	Long: `Run the simulation headlessly with a scripted jump control: the key is
pressed every --press-every ticks and held for --hold ticks. Prints the
final lifecycle state and score.

Examples:
  birds sim
  birds sim --ticks 10000 --press-every 25 --hold 2 --seed 7
  birds sim --record --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3000, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagPressEvery, "press-every", 30, "Press the jump key every N ticks (0 = never)")
	simCmd.Flags().IntVar(&flagHold, "hold", 3, "Ticks the key stays down per press")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Store the simulation as a run")
}

// scriptedLevel reports whether the jump key is down at the given tick.
func scriptedLevel(tick, every, hold int) bool {
	if every <= 0 {
		return false
	}
	return tick%every < max(hold, 1)
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}
	logger, err := newLogger("birds", os.Stderr)
	if err != nil {
		return err
	}

	game, err := newGame(logger)
	if err != nil {
		return err
	}
	rc := runtimeConfig(0, 0)
	game.Reset(rc)

	var rec *replay.Recorder
	if flagSimRecord {
		if rec, err = replay.NewRecorder(game, rc, "sim"); err != nil {
			return err
		}
	}

	sampler := core.NewInputSampler(core.TickDuration(rc.TickRate))
	rounds := 0
	for tick := 0; tick < flagTicks; tick++ {
		frame := sampler.Sample(scriptedLevel(tick, flagPressEvery, flagHold), false)
		if rec != nil {
			rec.Observe(frame)
		}
		before := game.State()
		after := game.Step(frame).State
		if after.GameOver && !before.GameOver {
			rounds++
		}
	}

	state := game.State()
	fmt.Printf("seed:   %d\n", rc.Seed)
	fmt.Printf("ticks:  %d\n", flagTicks)
	fmt.Printf("state:  %s\n", state.Phase)
	fmt.Printf("score:  %d\n", state.Score)
	fmt.Printf("rounds: %d lost\n", rounds)

	if rec == nil {
		return nil
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(rec.Finish(state))
	if err != nil {
		return err
	}
	fmt.Printf("run:    #%d\n", id)
	return nil
}
