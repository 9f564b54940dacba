// Package config provides configuration management for SousChef.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the SousChef application.
type Config struct {
	Notifications NotificationConfig `mapstructure:"notifications"`
	WakeLock      WakeLockConfig     `mapstructure:"wake_lock"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// WakeLockConfig holds display wake lock settings.
type WakeLockConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorStep      string `mapstructure:"color_step"`
	ColorTimer     string `mapstructure:"color_timer"`
	ColorPaused    string `mapstructure:"color_paused"`
	ColorTitle     string `mapstructure:"color_title"`
	ColorDone      string `mapstructure:"color_done"`
	ColorHelp      string `mapstructure:"color_help"`
	GradientStart  string `mapstructure:"gradient_start"`
	GradientEnd    string `mapstructure:"gradient_end"`
	IconApp        string `mapstructure:"icon_app"`
	IconTimer      string `mapstructure:"icon_timer"`
	IconDone       string `mapstructure:"icon_done"`
	IconPaused     string `mapstructure:"icon_paused"`
	IconIngredient string `mapstructure:"icon_ingredient"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorStep:      "#E8A33D",
		ColorTimer:     "#E05C5C",
		ColorPaused:    "#6B7280",
		ColorTitle:     "#6B7280",
		ColorDone:      "#2ECC71",
		ColorHelp:      "#95A5A6",
		GradientStart:  "#E8A33D",
		GradientEnd:    "#E05C5C",
		IconApp:        "🍳",
		IconTimer:      "⏲",
		IconDone:       "✓",
		IconPaused:     "⏸",
		IconIngredient: "•",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		WakeLock: WakeLockConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DataDir: "~/.souschef",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.souschef" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".souschef")
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
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("wake_lock.enabled", cfg.WakeLock.Enabled)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_step", cfg.Theme.ColorStep)
	viper.Set("theme.color_timer", cfg.Theme.ColorTimer)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_done", cfg.Theme.ColorDone)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.gradient_start", cfg.Theme.GradientStart)
	viper.Set("theme.gradient_end", cfg.Theme.GradientEnd)
	viper.Set("theme.icon_app", cfg.Theme.IconApp)
	viper.Set("theme.icon_timer", cfg.Theme.IconTimer)
	viper.Set("theme.icon_done", cfg.Theme.IconDone)
	viper.Set("theme.icon_paused", cfg.Theme.IconPaused)
	viper.Set("theme.icon_ingredient", cfg.Theme.IconIngredient)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".souschef", "config.toml"), nil
}

// GetDBPath returns the path to the recipe database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "souschef.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("wake_lock.enabled", true)
	viper.SetDefault("storage.data_dir", "~/.souschef")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_step", defaults.ColorStep)
	viper.SetDefault("theme.color_timer", defaults.ColorTimer)
	viper.SetDefault("theme.color_paused", defaults.ColorPaused)
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_done", defaults.ColorDone)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.gradient_start", defaults.GradientStart)
	viper.SetDefault("theme.gradient_end", defaults.GradientEnd)
	viper.SetDefault("theme.icon_app", defaults.IconApp)
	viper.SetDefault("theme.icon_timer", defaults.IconTimer)
	viper.SetDefault("theme.icon_done", defaults.IconDone)
	viper.SetDefault("theme.icon_paused", defaults.IconPaused)
	viper.SetDefault("theme.icon_ingredient", defaults.IconIngredient)
}
