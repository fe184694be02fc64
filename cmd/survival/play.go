package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/school-survival/internal/core"
	"github.com/vovakirdan/school-survival/internal/platform/tui"
	"github.com/vovakirdan/school-survival/internal/storage"
)

var flagHoldMs int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  A/Left, D/Right   - Move
  Space/W/Up        - Jump
  S/Down            - Crouch
  P/Esc             - Pause
  R                 - Restart (paused or after game over)
  Ctrl+S            - Save a screenshot
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower start, slower ramp, 5 hearts
  normal - Default progression, 3 hearts
  hard   - Faster start, 2 hearts
  fixed  - No progression, stays at the config's initial level

Examples:
  survival play
  survival play --difficulty hard
  survival play --config ./my-survival.yaml
  survival play --hold-ms 200`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagHoldMs, "hold-ms", int(tui.DefaultHoldWindow/time.Millisecond),
		"How long a key press counts as held, in milliseconds")
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, preset, seed, err := newGame(flagSeed)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting run", "seed", seed, "preset", presetName(preset), "size", fmt.Sprintf("%dx%d", width, height))
	final, err := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		},
		Store:      store,
		Logger:     logger,
		HoldWindow: time.Duration(flagHoldMs) * time.Millisecond,
		Preset:     presetName(preset),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Printf("Best: %d\n", final.HighScore())
	return nil
}
