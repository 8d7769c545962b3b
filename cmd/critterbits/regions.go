package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/critterbits/internal/regions"
)

var regionsCmd = &cobra.Command{
	Use:   "regions [scene-id]",
	Short: "Show cached regions",
	Long: `Print the cached collision regions of a scene, or list every cached
scene when no id is given.

Examples:
  critterbits regions
  critterbits regions meadow`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRegions,
}

func runRegions(cmd *cobra.Command, args []string) {
	_, logger := setup()

	store := openStore(logger)
	if store == nil {
		fail("regions needs the cache database")
	}
	defer store.Close()

	if len(args) == 0 {
		sets, err := store.CachedScenes()
		if err != nil {
			fail("%v", err)
		}
		if len(sets) == 0 {
			fmt.Println("No scenes baked yet.")
			return
		}
		fmt.Printf("  %-16s  %-6s  %-7s  %s\n", "Scene", "Tiles", "Regions", "Baked")
		fmt.Printf("  %-16s  %-6s  %-7s  %s\n", "-----", "-----", "-------", "-----")
		for _, rs := range sets {
			fmt.Printf("  %-16s  %-6d  %-7d  %s\n", rs.SceneID, rs.TileCount, rs.RegionCount, rs.CreatedAt.Format("2006-01-02 15:04"))
		}
		return
	}

	info, rects, err := store.LatestRegions(args[0])
	if err != nil {
		fail("%v", err)
	}
	if info == nil {
		fmt.Printf("No regions cached for %q.\n", args[0])
		fmt.Println("Run 'critterbits bake <scene.yaml>' first.")
		return
	}

	fmt.Printf("Regions - %s (%d tiles -> %d regions, area %d)\n",
		info.SceneID, info.TileCount, info.RegionCount, regions.TotalArea(rects))
	fmt.Println()
	for i, r := range rects {
		fmt.Printf("  %3d  %v\n", i+1, r)
	}
}
