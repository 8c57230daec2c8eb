package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/underwater-snake/internal/config"
	"github.com/vovakirdan/underwater-snake/internal/core"
	"github.com/vovakirdan/underwater-snake/internal/games/snake"
	"github.com/vovakirdan/underwater-snake/internal/platform/tui"
	"github.com/vovakirdan/underwater-snake/internal/registry"
)

var (
	flagSpectate string
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD  - Steer (any direction starts the next round)
  P            - Pause
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  Ctrl+Y       - Copy the screen to the clipboard
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 0.25s per move
  normal - 0.20s per move
  hard   - 0.12s per move

Without --difficulty a menu asks before the game starts.

Examples:
  snake play
  snake play --difficulty hard
  snake play --spectate :8090
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a spectator websocket feed on this address (e.g. :8090)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := newLogger("snake", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Get terminal size early for the difficulty menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagDifficulty == "" {
		preset, ok, menuErr := tui.RunDifficultySelector(cfg.Difficulty, width, height)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		// User quit from the menu
		if !ok {
			return
		}
		config.ApplySnakePreset(&cfg, preset)
	}

	snake.SetConfig(cfg)
	game, err := registry.Create(snake.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW, runtime.ScreenH = width, height
	runtime.TickRate = cfg.Timing.RenderFPS
	runtime.Seed = flagSeed

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := tui.Options{
		Audio:  newAudio(cfg, flagMute, logger),
		Logger: logger,
	}
	defer opts.Audio.Close()

	// Continue without storage when the database is unavailable
	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Store = store
	}
	if hub := startSpectator(ctx, flagSpectate, logger); hub != nil {
		opts.Spectator = hub
	}

	logger.Info("Starting game", "difficulty", cfg.Difficulty, "step", cfg.Timing.StepInterval, "fps", cfg.Timing.RenderFPS)
	if err := tui.Run(game, runtime, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
