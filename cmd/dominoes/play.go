package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/games/dominoes"
	"github.com/vovakirdan/domino-path/internal/platform/tui"
	"github.com/vovakirdan/domino-path/internal/registry"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. The mode defaults to the campaign.

Controls:
  Arrows/hjkl     - Move cursor
  Enter/Click     - Place waypoint
  Z/R/Right click - Undo last waypoint
  C               - Clear path
  Space           - Start the pusher
  X               - Back to drawing
  N               - Next level (after a win)
  ?               - Toggle help
  Q/Ctrl+C        - Quit

Examples:
  dominoes play
  dominoes play sandbox
  dominoes play --level 2
  dominoes play --config ./my-dominoes.yaml --log-file ./dominoes.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Starting level (1-indexed, campaign only)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "dominoes"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'dominoes list' to see available modes", gameID)
	}

	// The alt screen owns stdout, so logs only go to --log-file.
	logger, closeLog, err := newLogger("dominoes", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	dominoes.SetLogger(logger)
	dominoes.SetStartLevel(flagStartLevel)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	logger.Info("starting", "mode", gameID, "level", flagStartLevel, "fps", flagFPS)

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
