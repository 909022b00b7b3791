package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a chart picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a chart.
Esc during a chart returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select chart
  Q/Esc        - Quit

Examples:
  beats menu
  beats menu --fps 120
  beats menu --keys asl;`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	env, err := localEnv(flagKeys)
	if err != nil {
		return err
	}
	return menuLoop(env, runtimeConfig())
}

// menuLoop alternates between the picker and the selected chart until the
// player quits.
func menuLoop(env tui.Env, cfg core.RuntimeConfig) error {
	laneKeys := env.LaneKeys
	if len(laneKeys) == 0 {
		laneKeys = env.Config.Keys.Lanes
	}

	for {
		menuResult, err := tui.RunMenu(cfg, laneKeys)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit || menuResult.ChartID == "" {
			return nil
		}

		// Each pick gets a fresh chart unless the seed is pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		out, err := playChart(menuResult.ChartID, env, runCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if !out.BackToMenu {
			return nil
		}
	}
}
