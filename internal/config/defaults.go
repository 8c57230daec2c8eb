package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			CellSize:  30,
			CellCount: 25,
			Offset:    75,
		},
		Timing: TimingConfig{
			StepInterval: 0.2,
			RenderFPS:    60,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
