// snake is Underwater Snake: a snake that swims a fixed grid eating fish,
// playable in the terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	snake play              - Play in the terminal
//	snake window            - Play in a desktop window
//	snake serve             - Start SSH server for remote play
//	snake scores            - Show high scores
//	snake config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Override render frames per second
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <name>   - Skip the menu and use easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/underwater-snake/internal/config"
	// Import the game to register it
	_ "github.com/vovakirdan/underwater-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Underwater Snake - swim, eat fish, grow",
	Long: `Underwater Snake is the classic snake game on a 25x25 grid.
Steer with the arrow keys or WASD, eat fish to grow, and avoid the walls
and your own tail. A collision resets the round; any direction starts
the next one.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard --spectate :8090
  snake window
  snake serve --ssh :2222
  snake scores -i`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render frames per second (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database (env SNAKE_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (env SNAKE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env SNAKE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.snake/snake.log", "Log file used while a terminal game is running")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills flags the user did not set from the environment (and .env).
func applyEnv(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.EnvOr("SNAKE_DB", flagDBPath)
	}
	if !flags.Changed("config") {
		flagConfig = config.EnvOr("SNAKE_CONFIG", flagConfig)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.EnvOr("SNAKE_LOG_LEVEL", flagLogLevel)
	}

	if flagDifficulty != "" && !config.DifficultyPreset(flagDifficulty).Known() {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	return nil
}
