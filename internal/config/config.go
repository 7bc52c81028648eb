// Package config provides Viper-based configuration loading for the crawl engine.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/crawl/internal/game/dice"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File redirects log output to a file. Empty writes to stderr so the
	// driver's stdout stays reserved for the game frame.
	File string `mapstructure:"file"`
}

// GameConfig holds turn-engine tuning.
type GameConfig struct {
	// Seed fixes the random source. 0 draws a random seed at startup.
	Seed int64 `mapstructure:"seed"`
	// AlertDecayTurns is the number of alerted turns after which a monster
	// forgets the player and returns to unaware.
	AlertDecayTurns int `mapstructure:"alert_decay_turns"`
	// PlayerName is the display name of the player actor.
	PlayerName string `mapstructure:"player_name"`
	// PlayerAwareness is the radius of the player's field of view.
	PlayerAwareness int `mapstructure:"player_awareness"`
	// PlayerSpeed is the scheduler time cost of one player turn.
	PlayerSpeed int `mapstructure:"player_speed"`
	// PlayerHealth is the player's starting and maximum health.
	PlayerHealth int `mapstructure:"player_health"`
	// PlayerAttack is the dice expression rolled when the player attacks.
	PlayerAttack string `mapstructure:"player_attack"`
	// PlayerDefense is subtracted from damage dealt to the player.
	PlayerDefense int `mapstructure:"player_defense"`
}

// ContentConfig locates level, monster and script content on disk.
type ContentConfig struct {
	// LevelsDir holds level layout YAML files, loaded in lexicographic order.
	LevelsDir string `mapstructure:"levels_dir"`
	// MonstersDir holds monster template YAML files.
	MonstersDir string `mapstructure:"monsters_dir"`
	// ScriptsDir holds Lua behavior scripts. Empty disables scripted behaviors.
	ScriptsDir string `mapstructure:"scripts_dir"`
	// ScriptInstructionLimit caps Lua opcodes per hook call. 0 uses the default.
	ScriptInstructionLimit int `mapstructure:"script_instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Content ContentConfig `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.AlertDecayTurns < 1 {
		errs = append(errs, fmt.Sprintf("game.alert_decay_turns must be >= 1, got %d", g.AlertDecayTurns))
	}
	if g.PlayerName == "" {
		errs = append(errs, "game.player_name must not be empty")
	}
	if g.PlayerAwareness < 1 {
		errs = append(errs, fmt.Sprintf("game.player_awareness must be >= 1, got %d", g.PlayerAwareness))
	}
	if g.PlayerSpeed < 1 {
		errs = append(errs, fmt.Sprintf("game.player_speed must be >= 1, got %d", g.PlayerSpeed))
	}
	if g.PlayerHealth < 1 {
		errs = append(errs, fmt.Sprintf("game.player_health must be >= 1, got %d", g.PlayerHealth))
	}
	if g.PlayerAttack == "" {
		errs = append(errs, "game.player_attack must not be empty")
	} else if _, err := dice.Parse(g.PlayerAttack); err != nil {
		errs = append(errs, fmt.Sprintf("game.player_attack: %v", err))
	}
	if g.PlayerDefense < 0 {
		errs = append(errs, fmt.Sprintf("game.player_defense must be >= 0, got %d", g.PlayerDefense))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.LevelsDir == "" {
		errs = append(errs, "content.levels_dir must not be empty")
	}
	if c.MonstersDir == "" {
		errs = append(errs, "content.monsters_dir must not be empty")
	}
	if c.ScriptInstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("content.script_instruction_limit must be >= 0, got %d", c.ScriptInstructionLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with CRAWL_ prefix
	v.SetEnvPrefix("CRAWL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults registers the default value of every known key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.alert_decay_turns", 15)
	v.SetDefault("game.player_name", "Rogue")
	v.SetDefault("game.player_awareness", 15)
	v.SetDefault("game.player_speed", 10)
	v.SetDefault("game.player_health", 100)
	v.SetDefault("game.player_attack", "1d6+1")
	v.SetDefault("game.player_defense", 1)

	v.SetDefault("content.levels_dir", "content/levels")
	v.SetDefault("content.monsters_dir", "content/monsters")
	v.SetDefault("content.scripts_dir", "")
	v.SetDefault("content.script_instruction_limit", 0)
}
