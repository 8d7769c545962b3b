package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/critterbits/internal/engine"
	"github.com/vovakirdan/critterbits/internal/storage"
)

var (
	flagFrames int
	flagNoSave bool
)

var runCmd = &cobra.Command{
	Use:   "run <scene.yaml>",
	Short: "Simulate a scene without a display",
	Long: `Load a scene and advance it a fixed number of frames at the configured
frame rate, then print the engine counters. The run is recorded in the
cache database unless --no-save is given.

Examples:
  critterbits run scenes/meadow.yaml
  critterbits run scenes/meadow.yaml --frames 1800`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, logger := setup()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	eng, s, err := loadScene(args[0], cfg, logger, store)
	if err != nil {
		fail("%v", err)
	}

	if err := eng.Run(flagFrames, cfg.DeltaTime()); err != nil {
		if errors.Is(err, engine.ErrNoScene) {
			fail("scene %q has no entities", s.ID)
		}
		fail("%v", err)
	}

	c := eng.Counters()
	fmt.Printf("Scene:      %s\n", s.ID)
	fmt.Printf("Frames:     %d (%.1fs simulated)\n", c.Frames, c.Elapsed)
	fmt.Printf("Entities:   %d\n", c.Entities)
	fmt.Printf("Collisions: %d\n", c.Collisions)
	fmt.Printf("Avg FPS:    %.1f\n", c.AvgFPS())

	if store == nil || flagNoSave {
		return
	}
	if _, err := store.SaveRun(storage.RunStats{
		SceneID:    s.ID,
		Frames:     int(c.Frames),
		Entities:   c.Entities,
		Collisions: int(c.Collisions),
		AvgFPS:     c.AvgFPS(),
	}); err != nil {
		fmt.Printf("Warning: run not recorded: %v\n", err)
	}
}
