package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Known reports whether the preset is one of the named levels.
func (p DifficultyPreset) Known() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// StepIntervalForPreset returns the seconds between moves for a preset.
// Unknown presets fall back to normal speed.
func StepIntervalForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.25
	case DifficultyHard:
		return 0.12
	default:
		return 0.2
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset
	cfg.Timing.StepInterval = StepIntervalForPreset(preset)
}
