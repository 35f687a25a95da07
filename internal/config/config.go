package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/talgya/flyin/internal/world"
)

// Config represents the complete flyin configuration
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation" yaml:"simulation"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Generate   GenerateConfig   `mapstructure:"generate" yaml:"generate"`
}

// SimulationConfig controls the turn loop
type SimulationConfig struct {
	// MaxTurns stops a run that has not finished after this many turns.
	// 0 disables the limit.
	MaxTurns int `mapstructure:"max_turns" yaml:"max_turns"`
}

// OutputConfig controls the movement log
type OutputConfig struct {
	// Color selects colored hub names
	// Options: "auto" (when stdout is a terminal), "always", "never"
	Color string `mapstructure:"color" yaml:"color"`
}

// LoggingConfig controls diagnostic logging on stderr
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format" yaml:"format"`
}

// GenerateConfig holds the procedural map parameters
type GenerateConfig struct {
	Width        int   `mapstructure:"width" yaml:"width"`
	Height       int   `mapstructure:"height" yaml:"height"`
	Seed         int64 `mapstructure:"seed" yaml:"seed"` // 0 = random
	Drones       int   `mapstructure:"drones" yaml:"drones"`
	HubCapacity  int   `mapstructure:"hub_capacity" yaml:"hub_capacity"`
	LinkCapacity int   `mapstructure:"link_capacity" yaml:"link_capacity"`

	// Noise thresholds in [0,1]; values above PriorityLevel are priority,
	// below RestrictedLevel restricted, below BlockedLevel blocked.
	PriorityLevel   float64 `mapstructure:"priority_level" yaml:"priority_level"`
	RestrictedLevel float64 `mapstructure:"restricted_level" yaml:"restricted_level"`
	BlockedLevel    float64 `mapstructure:"blocked_level" yaml:"blocked_level"`
}

// World converts the generate section to generator parameters.
func (g GenerateConfig) World() world.GenConfig {
	return world.GenConfig{
		Width:        g.Width,
		Height:       g.Height,
		Seed:         g.Seed,
		HubCapacity:  g.HubCapacity,
		LinkCapacity: g.LinkCapacity,
		PriorityLvl:  g.PriorityLevel,
		RestrictLvl:  g.RestrictedLevel,
		BlockedLvl:   g.BlockedLevel,
	}
}

// Default returns a Config with sensible default values
func Default() *Config {
	gen := world.DefaultGenConfig()
	return &Config{
		Simulation: SimulationConfig{
			MaxTurns: 10000,
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Generate: GenerateConfig{
			Width:           gen.Width,
			Height:          gen.Height,
			Seed:            42,
			Drones:          4,
			HubCapacity:     gen.HubCapacity,
			LinkCapacity:    gen.LinkCapacity,
			PriorityLevel:   gen.PriorityLvl,
			RestrictedLevel: gen.RestrictLvl,
			BlockedLevel:    gen.BlockedLvl,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("simulation.max_turns", defaults.Simulation.MaxTurns)

	viper.SetDefault("output.color", defaults.Output.Color)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)

	viper.SetDefault("generate.width", defaults.Generate.Width)
	viper.SetDefault("generate.height", defaults.Generate.Height)
	viper.SetDefault("generate.seed", defaults.Generate.Seed)
	viper.SetDefault("generate.drones", defaults.Generate.Drones)
	viper.SetDefault("generate.hub_capacity", defaults.Generate.HubCapacity)
	viper.SetDefault("generate.link_capacity", defaults.Generate.LinkCapacity)
	viper.SetDefault("generate.priority_level", defaults.Generate.PriorityLevel)
	viper.SetDefault("generate.restricted_level", defaults.Generate.RestrictedLevel)
	viper.SetDefault("generate.blocked_level", defaults.Generate.BlockedLevel)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flyin")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flyin"
	}
	return filepath.Join(home, ".config", "flyin")
}

// ConfigFile returns the path to the user config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
