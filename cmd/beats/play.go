package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/game"
	"github.com/vovakirdan/tui-beats/internal/platform/tui"
	"github.com/vovakirdan/tui-beats/internal/registry"
)

var flagKeys string

var playCmd = &cobra.Command{
	Use:   "play [chart]",
	Short: "Play a chart",
	Long: `Start playing the specified chart (default: random).

Controls:
  D F J K    - Hit lanes 1-4 (see --keys and 'beats bind')
  R          - Restart with a new session
  Tab        - Results (after the chart ends)
  Esc        - Chart picker
  Q/Ctrl+C   - Quit

Examples:
  beats play
  beats play jacks
  beats play stairs --keys asl;
  beats play random --seed 7 --fps 120`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagKeys, "keys", "", `Lane keys for this run, e.g. "dfjk" or "a,s,l,;"`)
	menuCmd.Flags().StringVar(&flagKeys, "keys", "", `Lane keys for this run, e.g. "dfjk" or "a,s,l,;"`)
}

func runPlay(_ *cobra.Command, args []string) error {
	chartID := registry.DefaultChart
	if len(args) > 0 {
		chartID = args[0]
	}

	// Check if chart exists
	if !registry.Exists(chartID) {
		return fmt.Errorf("unknown chart %q (run 'beats list' to see available charts)", chartID)
	}

	env, err := localEnv(flagKeys)
	if err != nil {
		return err
	}

	out, err := playChart(chartID, env, runtimeConfig())
	if err != nil {
		return err
	}

	// Esc from a direct run continues in the menu
	if out.BackToMenu {
		return menuLoop(env, runtimeConfig())
	}
	return nil
}

// playChart runs one chart to the end of its program.
func playChart(chartID string, env tui.Env, cfg core.RuntimeConfig) (tui.Outcome, error) {
	chart, err := registry.Create(chartID)
	if err != nil {
		return tui.Outcome{}, err
	}

	g := game.New(chart, env.Config, env.Sound, game.WithLogger(logger))
	out, err := tui.Run(g, env, cfg)
	if err != nil {
		return out, fmt.Errorf("running chart: %w", err)
	}

	logger.Info("run finished",
		"chart", chartID,
		"score", out.Summary.Score,
		"accuracy", out.Summary.Accuracy(),
	)
	return out, nil
}
