// critterbits runs 2D entity scenes in the terminal.
//
// Usage:
//
//	critterbits list                    - List available scripts
//	critterbits run <scene.yaml>        - Simulate a scene headless
//	critterbits view <scene.yaml>       - Watch and play a scene
//	critterbits bake <scene.yaml>       - Combine and cache tile regions
//	critterbits regions <scene-id>      - Show cached regions
//	critterbits runs                    - Browse recorded runs
//
// Global flags:
//
//	--config <path>     - Engine config YAML
//	--db <path>         - Cache database (default: ~/.critterbits/cache.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/critterbits/internal/config"
	"github.com/vovakirdan/critterbits/internal/engine"
	"github.com/vovakirdan/critterbits/internal/scene"
	"github.com/vovakirdan/critterbits/internal/storage"

	// Import scripts to register them
	_ "github.com/vovakirdan/critterbits/internal/scripts"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "critterbits",
	Short: "Critterbits - a small 2D entity engine for the terminal",
	Long: `Critterbits loads YAML scenes made of a tile grid and scripted sprites,
resolves their collisions and draws them in the terminal.

Available commands:
  list     - Show all registered scripts
  run      - Simulate a scene without a display
  view     - Watch and play a scene
  bake     - Combine a scene's tiles into collision regions
  regions  - Show the cached regions of a scene
  runs     - Browse recorded runs

Examples:
  critterbits list
  critterbits run scenes/meadow.yaml --frames 600
  critterbits view scenes/meadow.yaml
  critterbits bake scenes/meadow.yaml
  critterbits regions meadow`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.critterbits/cache.db", "Path to cache database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(bakeCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(runsCmd)
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// setup loads the engine config and builds the logger from it.
func setup() (config.EngineConfig, *log.Logger) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if ok, fixes := cfg.Validate(); !ok {
		for _, f := range fixes {
			fmt.Fprintf(os.Stderr, "Warning: config: %s\n", f)
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "critterbits",
	})
	logger.SetLevel(cfg.Level())
	return cfg, logger
}

// openStore opens the cache database. A failure is reported and nil is
// returned so commands can go on without caching.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open cache database, continuing without it", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// loadScene parses the scene at path, bakes its regions through store
// (which may be nil) and installs it into a fresh engine.
func loadScene(path string, cfg config.EngineConfig, logger *log.Logger, store *storage.Store) (*engine.Engine, *scene.Scene, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, nil, err
	}

	var cache scene.RegionCache
	if store != nil {
		cache = store
	}
	bake, err := scene.NewBaker(cache, logger).Bake(s)
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New(engine.Options{
		ViewW:            cfg.Window.Width,
		ViewH:            cfg.Window.Height,
		MaxResolvePasses: cfg.Physics.MaxResolvePasses,
		Logger:           logger,
	})
	if err := scene.Install(eng, s, bake); err != nil {
		return nil, nil, err
	}
	return eng, s, nil
}
