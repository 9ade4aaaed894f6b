package cli

import (
	"encoding/json"
	"os"

	"github.com/adrg/xdg"
)

var cfgFile = "minesweeper/config.json"

// Config holds CLI configuration read from the XDG config directory
type Config struct {
	// Difficulty used when no --difficulty or --layout is given
	DefaultDifficulty string `json:"default_difficulty"`
	// Name recorded as the acting player
	PlayerName string `json:"player_name"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultDifficulty: "easy",
		PlayerName:        "player",
	}
}

// InitConfig loads the config file if one exists, falling back to defaults
func InitConfig() (*Config, error) {
	config := DefaultConfig()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		// No config file is fine
		return config, nil
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config to the XDG config directory
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(absPath, data, 0644)
}
