// xonix is a territory-capture arcade game for the terminal.
//
// Usage:
//
//	xonix play [variant]     - Play (default variant: xonix)
//	xonix list               - List available variants
//	xonix scores [variant]   - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 10)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.xonix/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-xonix/internal/games/xonix"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "xonix",
	Short: "Xonix - claim the sea, dodge the enemies",
	Long: `Xonix is a territory-capture arcade game for the terminal.

Cut trails across the sea. Close a trail against land and every region
without a sea enemy becomes yours. Claim enough of the board to clear the level.

Available commands:
  play     - Play a variant
  list     - Show all variants
  scores   - View high scores

Examples:
  xonix play
  xonix play xonix_wide --difficulty hard
  xonix play --backend tcell
  xonix scores --tui`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		xonix.SetConfigPath(flagConfig)
		xonix.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.xonix/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
