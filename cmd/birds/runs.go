package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-birds/internal/platform/tui"
	"github.com/vovakirdan/tui-birds/internal/registry"
	"github.com/vovakirdan/tui-birds/internal/replay"
	"github.com/vovakirdan/tui-birds/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `List recorded runs. When stdout is a terminal this opens an
interactive table (d deletes the selected run); otherwise the most recent
runs are printed as text.

Examples:
  birds runs
  birds runs --limit 5 | cat
  birds runs delete 3`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Load a recorded run, step a fresh game through its inputs with the
recorded seed, tick rate and tunables, and report whether it ends in the
recorded state with the recorded score.

Examples:
  birds replay 3`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to print")
	runsCmd.AddCommand(runsDeleteCmd)
}

// openStore opens the runs database named by --db.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening runs database: %w", err)
	}
	return store, nil
}

// parseRunID parses a run ID argument.
func parseRunID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid run id %q", arg)
	}
	return id, nil
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			width, height = w, h
		}
		return tui.RunRunsBrowser(store, width, height)
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'birds play --record' to keep one.")
		return nil
	}

	fmt.Printf("  %-5s  %-16s  %-7s  %-8s  %-10s  %s\n", "ID", "Date", "Source", "Ticks", "Phase", "Score")
	fmt.Printf("  %-5s  %-16s  %-7s  %-8s  %-10s  %s\n", "--", "----", "------", "-----", "-----", "-----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-16s  %-7s  %-8d  %-10s  %d\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Source, r.Ticks, r.FinalPhase, r.FinalScore)
	}
	return nil
}

func runRunsDelete(_ *cobra.Command, args []string) error {
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteRun(id); err != nil {
		return err
	}
	fmt.Printf("Deleted run #%d\n", id)
	return nil
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}
	logger, err := newLogger("birds-replay", os.Stderr)
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Run(id)
	if err != nil {
		return err
	}

	res, err := replay.Verify(run, registry.Options{Logger: logger})
	fmt.Printf("run #%d: %d ticks, seed %d, %d input events\n", run.ID, run.Ticks, run.Seed, len(run.Events))
	fmt.Printf("recorded: %s, score %d\n", run.FinalPhase, run.FinalScore)
	if errors.Is(err, replay.ErrMismatch) {
		fmt.Printf("replayed: %s, score %d\n", res.Phase, res.Score)
		return err
	}
	if err != nil {
		return err
	}
	fmt.Printf("replayed: %s, score %d (reproduced)\n", res.Phase, res.Score)
	return nil
}
