// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Timing     TimingConfig     `yaml:"timing"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// GridConfig defines the board size and its pixel layout.
type GridConfig struct {
	CellSize  int `yaml:"cell_size"`  // Pixels per cell edge
	CellCount int `yaml:"cell_count"` // Cells per board side
	Offset    int `yaml:"offset"`     // Pixels between window edge and board
}

// TimingConfig defines the two time bases: snake moves and screen refresh.
type TimingConfig struct {
	StepInterval float64 `yaml:"step_interval"` // Seconds between snake moves
	RenderFPS    int     `yaml:"render_fps"`    // Frames per second
}

// Step returns the move interval as a duration.
func (t TimingConfig) Step() time.Duration {
	return time.Duration(t.StepInterval * float64(time.Second))
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// MinCellCount is the smallest board that fits the start body.
const MinCellCount = 10

// Validate checks that the configuration can run a game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.CellCount < MinCellCount:
		return fmt.Errorf("config: grid.cell_count must be at least %d, got %d", MinCellCount, c.Grid.CellCount)
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("config: grid.cell_size must be positive, got %d", c.Grid.CellSize)
	case c.Grid.Offset < 0:
		return fmt.Errorf("config: grid.offset must not be negative, got %d", c.Grid.Offset)
	case c.Timing.StepInterval <= 0:
		return fmt.Errorf("config: timing.step_interval must be positive, got %g", c.Timing.StepInterval)
	case c.Timing.RenderFPS <= 0:
		return fmt.Errorf("config: timing.render_fps must be positive, got %d", c.Timing.RenderFPS)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	if c.Difficulty != "" && !c.Difficulty.Known() {
		return fmt.Errorf("config: unknown difficulty %q", c.Difficulty)
	}
	return nil
}
