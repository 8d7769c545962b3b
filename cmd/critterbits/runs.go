package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/critterbits/internal/platform/tui"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [scene-id]",
	Short: "Browse recorded runs",
	Long: `Show recorded runs in a scrollable table, newest first.

Examples:
  critterbits runs
  critterbits runs meadow --limit 50`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 100, "Maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	_, logger := setup()

	store := openStore(logger)
	if store == nil {
		fail("runs needs the cache database")
	}
	defer store.Close()

	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
	}
	runs, err := store.RecentRuns(sceneID, flagRunsLimit)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if err := tui.RunRuns(runs, width, height); err != nil {
		fail("%v", err)
	}
}
