package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Log level for the CLI: debug, info, warn or error
	// Default: "info"
	LogLevel string `mapstructure:"log_level"`

	// Directory holding the session database
	// Default: the config directory
	DataDir string `mapstructure:"data_dir"`

	// Last.fm API credentials
	LastFM LastFMConfig `mapstructure:"lastfm"`

	// Example web server
	Server ServerConfig `mapstructure:"server"`

	path string
}

// LastFMConfig holds Last.fm specific configuration
type LastFMConfig struct {
	APIKey     string `mapstructure:"api_key"`
	APISecret  string `mapstructure:"api_secret"`
	SessionKey string `mapstructure:"session_key"`
	BaseURL    string `mapstructure:"base_url"`
}

// ServerConfig holds settings for the serve command
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// EnvPrefix is prepended to environment overrides: lastfm.api_key is read
// from LASTFM_LASTFM_API_KEY.
const EnvPrefix = "LASTFM"

// Load reads configuration from file and environment. An empty path
// searches the config directory and the working directory; a missing file
// is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(getConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = getConfigDir()
	}
	cfg.path = path

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("data_dir", "")

	v.SetDefault("lastfm.api_key", "")
	v.SetDefault("lastfm.api_secret", "")
	v.SetDefault("lastfm.session_key", "")
	v.SetDefault("lastfm.base_url", "")

	v.SetDefault("server.addr", ":8888")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s", cfg.LogLevel)
	}
	return nil
}

// HasCredentials reports whether both the API key and secret are set.
func (c *Config) HasCredentials() bool {
	return c.LastFM.APIKey != "" && c.LastFM.APISecret != ""
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "lastfm")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Path returns the file Save writes to.
func (c *Config) Path() string {
	if c.path != "" {
		return c.path
	}
	return filepath.Join(getConfigDir(), "config.yaml")
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	v.Set("log_level", c.LogLevel)
	v.Set("data_dir", c.DataDir)
	v.Set("lastfm.api_key", c.LastFM.APIKey)
	v.Set("lastfm.api_secret", c.LastFM.APISecret)
	v.Set("lastfm.session_key", c.LastFM.SessionKey)
	v.Set("lastfm.base_url", c.LastFM.BaseURL)
	v.Set("server.addr", c.Server.Addr)

	path := c.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return os.Chmod(path, 0600)
}
