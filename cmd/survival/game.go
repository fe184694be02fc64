package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/school-survival/internal/config"
	"github.com/vovakirdan/school-survival/internal/games/survival"
)

// Flags shared by the commands that build a game.
var (
	flagConfig     string
	flagDifficulty string
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig resolves the configuration from --config and applies the
// --difficulty preset on top of it.
func loadGameConfig() (config.SurvivalConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SurvivalConfig{}, "", err
	}

	cfg, source, err := config.LoadSurvival(flagConfig)
	if err != nil {
		return config.SurvivalConfig{}, "", err
	}
	logger.Info("config loaded", "source", source, "preset", string(preset))

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.SurvivalConfig{}, "", err
	}
	return cfg, preset, nil
}

// presetName is the label stored with scores.
func presetName(p config.DifficultyPreset) string {
	if p == "" {
		return string(config.DifficultyNormal)
	}
	return string(p)
}

// newGame builds a game from the shared flags. A zero seed is replaced by
// the current time; the seed actually used is returned.
func newGame(seed int64) (*survival.Game, config.DifficultyPreset, int64, error) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		return nil, "", 0, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := survival.New(cfg, survival.NewRand(seed))
	if err != nil {
		return nil, "", 0, fmt.Errorf("cannot create game: %w", err)
	}
	return g, preset, seed, nil
}
