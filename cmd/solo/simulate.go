package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/solo-mission/internal/core"
	"github.com/vovakirdan/solo-mission/internal/games/solo"
	"github.com/vovakirdan/solo-mission/internal/registry"
	"github.com/vovakirdan/solo-mission/internal/storage"
)

var (
	flagSimVariant    string
	flagSimDuration   time.Duration
	flagSimRuns       int
	flagSimSave       bool
	flagSimScreen     bool
	flagSimConfig     string
	flagSimDifficulty string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot fly headless runs",
	Long: `Run the autopilot without a terminal UI and print a summary per run.

Runs stop at game over or when the simulated duration elapses. Several runs
use consecutive seeds and execute in parallel. Results are recorded in the
scores database unless --save=false is given.

Examples:
  solo simulate
  solo simulate --duration 5m --variant solo_god
  solo simulate --runs 8 --seed 42
  solo simulate --seed-phrase "first contact" --screen`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimVariant, "variant", solo.VariantClassic.ID, "Variant to simulate")
	simulateCmd.Flags().DurationVar(&flagSimDuration, "duration", 2*time.Minute, "Simulated time limit per run")
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs with consecutive seeds")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", true, "Record the runs in the scores database")
	simulateCmd.Flags().BoolVar(&flagSimScreen, "screen", false, "Print the final frame of each run")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simResult is the outcome of one headless run.
type simResult struct {
	Record storage.RunRecord
	Over   bool
	Screen string
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagSimRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagSimRuns)
	}
	if flagSimDuration <= 0 {
		return fmt.Errorf("--duration must be positive, got %s", flagSimDuration)
	}
	if !registry.Exists(flagSimVariant) {
		return fmt.Errorf("unknown variant %q (run 'solo list' to see available variants)", flagSimVariant)
	}
	if err := checkDifficulty(flagSimDifficulty); err != nil {
		return err
	}
	logger := gameLogger()
	configureGames(flagSimConfig, flagSimDifficulty, logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	maxTicks := int(flagSimDuration.Seconds() * float64(flagFPS))

	results := make([]simResult, flagSimRuns)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i := range results {
		i := i // per-iteration copy (go1.21 loop semantics)
		g.Go(func() error {
			res, err := simulateRun(ctx, flagSimVariant, seed+int64(i), maxTicks)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if flagSimSave {
		saveSimResults(results)
	}
	for _, r := range results {
		logger.Info("run finished",
			"variant", r.Record.Variant,
			"seed", r.Record.Seed,
			"score", r.Record.Score,
			"elapsed", r.Record.Elapsed,
			"over", r.Over,
		)
	}
	printSimResults(results)
	return nil
}

// simulateRun plays one run to game over or maxTicks.
func simulateRun(ctx context.Context, variant string, seed int64, maxTicks int) (simResult, error) {
	created, err := registry.Create(variant)
	if err != nil {
		return simResult{}, err
	}
	game, ok := created.(*solo.Game)
	if !ok {
		return simResult{}, fmt.Errorf("variant %q has no autopilot", variant)
	}
	game.SetAutopilot(solo.NewAutopilot())
	game.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: flagFPS, Seed: seed})

	input := core.NewInputFrame()
	var state core.GameState
	for tick := 0; tick < maxTicks; tick++ {
		if tick%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return simResult{}, err
			}
		}
		state = game.Step(input).State
		if state.GameOver {
			break
		}
	}

	st := game.Stats()
	res := simResult{
		Record: storage.RunRecord{
			Variant:   variant,
			Seed:      seed,
			Score:     state.Score,
			Lives:     state.Lives,
			Elapsed:   st.Elapsed,
			Shots:     st.ShotsFired,
			Destroyed: st.EnemiesDestroyed,
			Escaped:   st.EnemiesEscaped,
			Bonuses:   st.BonusesCaught,
		},
		Over: state.GameOver,
	}
	if flagSimScreen {
		screen := core.NewScreen(60, 30)
		game.Render(screen)
		res.Screen = screen.String()
	}
	return res, nil
}

func saveSimResults(results []simResult) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return
	}
	defer store.Close()

	for i := range results {
		id, err := store.SaveRun(results[i].Record)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		results[i].Record.ID = id
	}
}

func printSimResults(results []simResult) {
	fmt.Printf("  %-20s  %7s  %5s  %7s  %7s  %5s  %8s  %s\n",
		"Seed", "Score", "Lives", "Kills", "Escaped", "Bonus", "Time", "Outcome")
	for _, r := range results {
		outcome := "time limit"
		if r.Over {
			outcome = "game over"
		}
		rec := r.Record
		fmt.Printf("  %-20d  %7d  %5d  %7d  %7d  %5d  %7.1fs  %s\n",
			rec.Seed, rec.Score, rec.Lives, rec.Destroyed, rec.Escaped, rec.Bonuses, rec.Elapsed, outcome)
		if rec.ID != "" {
			fmt.Printf("  run %s\n", rec.ID)
		}
		if r.Screen != "" {
			fmt.Println()
			fmt.Println(r.Screen)
			fmt.Println()
		}
	}
}
