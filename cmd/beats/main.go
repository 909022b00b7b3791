// beats is a four-lane rhythm game for the terminal.
//
// Usage:
//
//	beats list              - List available charts
//	beats play [chart]      - Play a chart (default: random)
//	beats menu              - Pick charts interactively
//	beats serve             - Start SSH server for remote play
//	beats bind <keys>       - Store your lane keys
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible charts
//	--db <path>         - Set profiles database path (default: ~/.beats/profiles.db)
//	--config <path>     - Use a custom beats.yaml
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import charts to register them
	_ "github.com/vovakirdan/tui-beats/internal/charts/jacks"
	_ "github.com/vovakirdan/tui-beats/internal/charts/random"
	_ "github.com/vovakirdan/tui-beats/internal/charts/stairs"

	"github.com/vovakirdan/tui-beats/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

var (
	beatsCfg config.BeatsConfig
	logger   = log.New(io.Discard)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beats",
	Short: "TUI Beats - a rhythm game in your terminal",
	Long: `TUI Beats is a four-lane rhythm game played in the terminal.
Beats scroll down towards the hit line; press the lane key as a beat
crosses it. Timing is judged Perfect, Good, Okay, Meh or Miss.

Available commands:
  list     - Show all available charts
  play     - Play a chart directly
  menu     - Interactive chart picker
  serve    - Start SSH server for remote play
  bind     - Store your lane keys

Settings are read from beats.yaml and BEATS_* variables (a .env file in
the working directory is loaded first).

Examples:
  beats play
  beats play stairs --seed 42
  beats menu --fps 120
  beats serve --ssh :2222
  beats bind asl;`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.beats/profiles.db", "Path to profiles database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom beats.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bindCmd)
}

// setup loads .env, the config file and the logger before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	beatsCfg = cfg

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	// The alt screen owns stdout, so logs only go to a file when asked
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "beats",
			Level:           level,
		})
	}
	logger.SetLevel(level)
	return nil
}
