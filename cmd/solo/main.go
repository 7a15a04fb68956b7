// solo is a terminal rendition of Solo Mission, a vertically scrolling
// space shooter.
//
// Usage:
//
//	solo list              - List available variants
//	solo play [variant]    - Play a variant (menu when omitted)
//	solo simulate          - Run the autopilot headless and print a summary
//	solo serve             - Start SSH server for remote play
//	solo scores <variant>  - Show high scores or recorded runs
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--seed-phrase <text>   - Derive the seed from a phrase
//	--db <path>            - Set database path (default: ~/.solo/scores.db)
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/solo-mission/internal/games/solo"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagSeedPhrase string
	flagDBPath     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solo",
	Short: "Solo Mission - a scrolling space shooter in your terminal",
	Long: `Solo Mission is a vertically scrolling space shooter. Drag the ship
with the arrow keys, tap space to fire, and keep enemies from slipping past.

Available commands:
  list      - Show all variants
  play      - Play a variant
  simulate  - Let the autopilot fly a headless run
  serve     - Start SSH server for remote play
  scores    - View high scores and recorded runs

Examples:
  solo list
  solo play
  solo play solo_free --difficulty hard
  solo simulate --duration 2m --seed-phrase "first contact"
  solo serve --ssh :2222
  solo scores solo --runs`,
	SilenceUsage:      true,
	PersistentPreRunE: setupGlobals,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSeedPhrase, "seed-phrase", "", "Derive the RNG seed from a phrase")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.solo/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupGlobals validates global flags and configures logging.
func setupGlobals(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	log.SetLevel(level)

	if flagSeedPhrase != "" {
		flagSeed = seedFromPhrase(flagSeedPhrase)
	}
	return nil
}

// seedFromPhrase hashes a phrase into a non-zero seed.
func seedFromPhrase(phrase string) int64 {
	seed := int64(xxhash.Sum64String(phrase) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// gameLogger returns a logger for game events written to stderr.
func gameLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "solo",
	})
	l.SetLevel(log.GetLevel())
	return l
}

// configureGames applies per-run game settings shared by every command.
func configureGames(configPath, difficulty string, logger *log.Logger) {
	solo.SetConfigPath(configPath)
	solo.SetDifficultyPreset(difficulty)
	solo.SetLogger(logger)
}
