// dominoes is a terminal domino-path puzzle: draw a path across the floor,
// watch dominoes get laid along it, then push the first one over and try to
// topple into the goal.
//
// Usage:
//
//	dominoes list              - List available modes
//	dominoes play [mode]       - Play (campaign by default)
//	dominoes levels            - Show the level table
//	dominoes serve             - Start SSH server for remote play
//	dominoes trace             - Run a level headless and log snapshots
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--config <path>    - Tuning config YAML
//	--levels <path>    - Level file or directory
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/domino-path/internal/games/dominoes"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagLevels  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dominoes",
	Short: "Domino Path - topple a domino trail into the goal",
	Long: `Domino Path is a terminal puzzle. Draw a path from the start point,
dominoes are laid along it at a fixed spacing, and a pusher knocks the first
one over. Reach the goal to advance to the next level.

Available commands:
  list     - Show the available modes
  play     - Play a mode directly
  levels   - Show the level table
  serve    - Start SSH server for remote play
  trace    - Run a level headless and log snapshots

Examples:
  dominoes play
  dominoes play sandbox
  dominoes play --level 3
  dominoes serve --ssh :2222
  dominoes trace --level 1 --point 0,0`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		dominoes.SetConfigPath(flagConfig)
		dominoes.SetLevelsPath(flagLevels)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to a level file or directory")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(traceCmd)
}

// newLogger builds a logger writing to --log-file, or to fallback when no
// file is set. The returned closer releases the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
