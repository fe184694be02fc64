// survival is a terminal side-scroller: a student runs through a school
// hallway dodging thrown paper airplanes, textbooks, apples, pencils,
// backpacks and lunch trays.
//
// Usage:
//
//	survival play            - Play in the terminal
//	survival scores          - Show high scores
//	survival sim             - Run a headless simulation
//	survival config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.survival/scores.db)
//	--log-file <path>    - Log file, "-" for stderr (default: ~/.survival/survival.log)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/school-survival/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survival",
	Short: "School Survival - dodge your way down the hallway",
	Long: `School Survival is a terminal side-scroller. Run, jump and crouch
through a school hallway while classmates throw things at you.
Stand on the tables to get out of the way.

Available commands:
  play     - Play in the terminal
  scores   - View high scores
  sim      - Run a headless simulation
  config   - Print the effective configuration

Examples:
  survival play
  survival play --difficulty hard
  survival scores --limit 20
  survival sim --duration 60000 --seed 7`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	defaults := logging.DefaultOptions()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.survival/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaults.File, `Log file path ("-" for stderr, "" to disable)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaults.Level, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	opts := logging.DefaultOptions()
	opts.File = flagLogFile
	opts.Level = flagLogLevel

	l, closer, err := logging.New(opts)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	logger.Debug("starting", "command", cmd.Name())
	return nil
}
