package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/critterbits/internal/scene"
)

var flagForce bool

var bakeCmd = &cobra.Command{
	Use:   "bake <scene.yaml>",
	Short: "Combine a scene's tiles into collision regions",
	Long: `Combine the solid tiles of a scene into as few rectangles as possible
and store them in the cache database, keyed by scene id and tile grid hash.

Examples:
  critterbits bake scenes/meadow.yaml
  critterbits bake scenes/meadow.yaml --force`,
	Args: cobra.ExactArgs(1),
	Run:  runBake,
}

func init() {
	bakeCmd.Flags().BoolVar(&flagForce, "force", false, "Rebake even when the cache is current")
}

func runBake(cmd *cobra.Command, args []string) {
	_, logger := setup()

	s, err := scene.Load(args[0])
	if err != nil {
		fail("%v", err)
	}

	store := openStore(logger)
	if store == nil {
		fail("bake needs the cache database")
	}
	defer store.Close()

	if flagForce {
		if err := store.ClearRegions(s.ID); err != nil {
			fail("%v", err)
		}
	}

	res, err := scene.NewBaker(store, logger).Bake(s)
	if err != nil {
		fail("%v", err)
	}

	state := "baked"
	if res.Cached {
		state = "already cached"
	}
	fmt.Printf("Scene %s %s\n", s.ID, state)
	fmt.Printf("  tiles:   %d\n", res.Tiles)
	fmt.Printf("  regions: %d\n", len(res.Regions))
}
