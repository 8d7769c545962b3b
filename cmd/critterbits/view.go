package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/critterbits/internal/platform/tui"
	"github.com/vovakirdan/critterbits/internal/storage"
)

var viewCmd = &cobra.Command{
	Use:   "view <scene.yaml>",
	Short: "Watch and play a scene",
	Long: `Open a scene in the terminal. The camera follows the scene's follow
target, one cell per world unit.

Controls:
  Arrows/WASD  - Move
  P/Space      - Pause
  Tab          - Toggle debug overlays
  ?            - Help
  Q/Esc        - Quit

Examples:
  critterbits view scenes/meadow.yaml
  critterbits view scenes/meadow.yaml --log-level warn`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func runView(cmd *cobra.Command, args []string) {
	cfg, logger := setup()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	eng, s, err := loadScene(args[0], cfg, logger, store)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size, config window size as fallback
	width, height := cfg.Window.Width, cfg.Window.Height
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	title := s.Name
	if title == "" {
		title = cfg.Window.Title
	}

	counters, runErr := tui.Run(eng, cfg, title, width, height)
	if store != nil && counters.Frames > 0 {
		//nolint:errcheck // Best-effort save
		store.SaveRun(storage.RunStats{
			SceneID:    s.ID,
			Frames:     int(counters.Frames),
			Entities:   counters.Entities,
			Collisions: int(counters.Collisions),
			AvgFPS:     counters.AvgFPS(),
		})
	}
	if runErr != nil {
		fail("running viewer: %v", runErr)
	}
}
