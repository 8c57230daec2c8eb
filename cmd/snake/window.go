package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/underwater-snake/internal/games/snake"
	"github.com/vovakirdan/underwater-snake/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a native window (900x900 with the default grid).

Controls:
  Arrows/WASD  - Steer (any direction starts the next round)
  P            - Pause
  Esc/Q        - Quit

Examples:
  snake window
  snake window --difficulty easy --mute
  snake window --spectate :8090`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a spectator websocket feed on this address (e.g. :8090)")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := newLogger("snake", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := desktop.Options{
		Audio:  newAudio(cfg, flagMute, logger),
		Logger: logger,
		Seed:   flagSeed,
	}
	defer opts.Audio.Close()

	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Store = store
	}
	if hub := startSpectator(ctx, flagSpectate, logger); hub != nil {
		opts.Spectator = hub
	}

	if err := desktop.Run(snake.NewWithConfig(cfg), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
