package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/underwater-snake/internal/audio"
	"github.com/vovakirdan/underwater-snake/internal/config"
	"github.com/vovakirdan/underwater-snake/internal/spectate"
	"github.com/vovakirdan/underwater-snake/internal/storage"
)

// loadGameConfig reads the YAML config and applies --difficulty and --fps.
func loadGameConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	config.ApplySnakePreset(&cfg, config.DifficultyPreset(flagDifficulty))
	if flagFPS > 0 {
		cfg.Timing.RenderFPS = flagFPS
	}
	return cfg, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds the root logger. Terminal frontends pass toFile so log
// lines never land on the screen they draw; the returned closer releases the
// file.
func newLogger(prefix string, toFile bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if toFile {
		path, err := expandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the score database. Failure is logged and play continues
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newAudio opens the sound device unless muted. Failure falls back to silence.
func newAudio(cfg config.SnakeConfig, mute bool, logger *log.Logger) audio.Player {
	player, err := audio.New(cfg.Audio.Enabled && !mute, cfg.Audio.Volume)
	if err != nil {
		logger.Warn("audio unavailable, playing muted", "error", err)
	}
	return player
}

// startSpectator serves the spectator feed on addr until ctx ends. It returns
// nil when addr is empty.
func startSpectator(ctx context.Context, addr string, logger *log.Logger) *spectate.Hub {
	if addr == "" {
		return nil
	}
	hub := spectate.NewHub(logger.WithPrefix("spectate"))
	go func() {
		if err := hub.Serve(ctx, addr); err != nil {
			logger.Error("spectator feed stopped", "error", err)
		}
	}()
	return hub
}
