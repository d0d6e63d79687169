// Package config provides configuration management for the card.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config holds all configuration for the card.
type Config struct {
	Card          CardConfig         `mapstructure:"card"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Animation     AnimationConfig    `mapstructure:"animation"`
	Log           LogConfig          `mapstructure:"log"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// CardConfig holds the names printed on the card.
type CardConfig struct {
	Nickname     string `mapstructure:"nickname"`
	To           string `mapstructure:"to"`
	From         string `mapstructure:"from"`
	ScreenshotTo string `mapstructure:"screenshot_to"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorTitle    string `mapstructure:"color_title"`
	ColorText     string `mapstructure:"color_text"`
	ColorAccent   string `mapstructure:"color_accent"`
	ColorMuted    string `mapstructure:"color_muted"`
	ColorBorder   string `mapstructure:"color_border"`
	ColorYes      string `mapstructure:"color_yes"`
	ColorMaybe    string `mapstructure:"color_maybe"`
	ColorNo       string `mapstructure:"color_no"`
	ColorReset    string `mapstructure:"color_reset"`
	ColorSad      string `mapstructure:"color_sad"`
	ColorHelp     string `mapstructure:"color_help"`
	GradientStart string `mapstructure:"gradient_start"`
	GradientEnd   string `mapstructure:"gradient_end"`
	IconHeart     string `mapstructure:"icon_heart"`
	IconClock     string `mapstructure:"icon_clock"`
	IconCheck     string `mapstructure:"icon_check"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle:    "#E11D48",
		ColorText:     "#F43F5E",
		ColorAccent:   "#BE123C",
		ColorMuted:    "#FDA4AF",
		ColorBorder:   "#FBCFE8",
		ColorYes:      "#EC4899",
		ColorMaybe:    "#A855F7",
		ColorNo:       "#64748B",
		ColorReset:    "#F472B6",
		ColorSad:      "#94A3B8",
		ColorHelp:     "#95A5A6",
		GradientStart: "#F9A8D4",
		GradientEnd:   "#E11D48",
		IconHeart:     "♥",
		IconClock:     "⏰",
		IconCheck:     "✔",
	}
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// AnimationConfig holds animation settings.
type AnimationConfig struct {
	FrameInterval Duration `mapstructure:"frame_interval"`
	// Seed makes ornaments and placements reproducible; 0 picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// StorageConfig holds the data directory for the config and log files.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Card: CardConfig{
			Nickname:     "Anjuu",
			To:           "My Favorite Person",
			From:         "Yours Truly",
			ScreenshotTo: "Abi",
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Animation: AnimationConfig{
			FrameInterval: Duration(66 * time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.valentine/valentine.log",
		},
		Storage: StorageConfig{
			DataDir: "~/.valentine",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Defaults returns the default configuration with its paths expanded,
// ready to use when the config file cannot be read.
func Defaults() (*Config, error) {
	cfg := DefaultConfig()
	var err error
	if cfg.Storage.DataDir, err = ExpandHome(cfg.Storage.DataDir); err != nil {
		return nil, err
	}
	if cfg.Log.File, err = ExpandHome(cfg.Log.File); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := viper.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Storage.DataDir, err = ExpandHome(cfg.Storage.DataDir); err != nil {
		return nil, err
	}
	if cfg.Log.File, err = ExpandHome(cfg.Log.File); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("card.nickname", cfg.Card.Nickname)
	viper.Set("card.to", cfg.Card.To)
	viper.Set("card.from", cfg.Card.From)
	viper.Set("card.screenshot_to", cfg.Card.ScreenshotTo)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("animation.frame_interval", cfg.Animation.FrameInterval.String())
	viper.Set("animation.seed", cfg.Animation.Seed)
	viper.Set("log.level", cfg.Log.Level)
	viper.Set("log.file", cfg.Log.File)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".valentine", "config.toml"), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
// Other paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// setDefaults sets default values for viper.
func setDefaults() {
	defaults := DefaultConfig()
	viper.SetDefault("card.nickname", defaults.Card.Nickname)
	viper.SetDefault("card.to", defaults.Card.To)
	viper.SetDefault("card.from", defaults.Card.From)
	viper.SetDefault("card.screenshot_to", defaults.Card.ScreenshotTo)
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("animation.frame_interval", defaults.Animation.FrameInterval.String())
	viper.SetDefault("animation.seed", 0)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.file", defaults.Log.File)
	viper.SetDefault("storage.data_dir", defaults.Storage.DataDir)

	theme := defaults.Theme
	viper.SetDefault("theme.color_title", theme.ColorTitle)
	viper.SetDefault("theme.color_text", theme.ColorText)
	viper.SetDefault("theme.color_accent", theme.ColorAccent)
	viper.SetDefault("theme.color_muted", theme.ColorMuted)
	viper.SetDefault("theme.color_border", theme.ColorBorder)
	viper.SetDefault("theme.color_yes", theme.ColorYes)
	viper.SetDefault("theme.color_maybe", theme.ColorMaybe)
	viper.SetDefault("theme.color_no", theme.ColorNo)
	viper.SetDefault("theme.color_reset", theme.ColorReset)
	viper.SetDefault("theme.color_sad", theme.ColorSad)
	viper.SetDefault("theme.color_help", theme.ColorHelp)
	viper.SetDefault("theme.gradient_start", theme.GradientStart)
	viper.SetDefault("theme.gradient_end", theme.GradientEnd)
	viper.SetDefault("theme.icon_heart", theme.IconHeart)
	viper.SetDefault("theme.icon_clock", theme.IconClock)
	viper.SetDefault("theme.icon_check", theme.IconCheck)
}

// FrameInterval returns the animation frame interval, falling back to the
// default for unset or out-of-range values.
func (c *Config) FrameInterval() time.Duration {
	d := time.Duration(c.Animation.FrameInterval)
	if d < 10*time.Millisecond || d > time.Second {
		return time.Duration(DefaultConfig().Animation.FrameInterval)
	}
	return d
}
