package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	log "github.com/sirupsen/logrus"
)

var (
	cfgFile = "quoridor/config.json"
	dbFile  = "quoridor/matches.db"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// Config holds the settings shared by the commands.
type Config struct {
	DBPath     string  `json:"db_path"`
	Depth      int     `json:"depth"`
	Workers    int     `json:"workers"`
	Games      int     `json:"games"`
	MaxTurns   int     `json:"max_turns"`
	MoveChance float64 `json:"move_chance"`
	LogLevel   string  `json:"log_level"`
}

// Load reads the config file from the XDG config directories if one exists,
// then applies environment overrides and validates the result.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		path = ""
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit config file. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := readCfgFile(path, &config); err != nil {
			return nil, err
		}
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if config.DBPath == "" {
		dbPath, err := xdg.DataFile(dbFile)
		if err != nil {
			return nil, fmt.Errorf("locate match database: %w", err)
		}
		config.DBPath = dbPath
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyEnv() error {
	c.DBPath = getEnv("QUORIDOR_DB", c.DBPath)
	c.LogLevel = getEnv("QUORIDOR_LOG_LEVEL", c.LogLevel)

	ints := []struct {
		key    string
		target *int
	}{
		{"QUORIDOR_DEPTH", &c.Depth},
		{"QUORIDOR_WORKERS", &c.Workers},
		{"QUORIDOR_GAMES", &c.Games},
		{"QUORIDOR_MAX_TURNS", &c.MaxTurns},
	}
	for _, entry := range ints {
		value := getEnv(entry.key, "")
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return &InvalidConfig{fmt.Sprintf("%s=%q is not an integer", entry.key, value)}
		}
		*entry.target = n
	}

	if value := getEnv("QUORIDOR_MOVE_CHANCE", ""); value != "" {
		chance, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &InvalidConfig{fmt.Sprintf("QUORIDOR_MOVE_CHANCE=%q is not a number", value)}
		}
		c.MoveChance = chance
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Depth < 1 {
		return &InvalidConfig{fmt.Sprintf("depth must be at least 1, got %d", c.Depth)}
	}
	if c.Workers < 1 {
		return &InvalidConfig{fmt.Sprintf("workers must be at least 1, got %d", c.Workers)}
	}
	if c.Games < 0 || c.MaxTurns < 0 {
		return &InvalidConfig{"games and max_turns cannot be negative"}
	}
	if c.MoveChance < 0 || c.MoveChance > 1 {
		return &InvalidConfig{fmt.Sprintf("move_chance must be within [0, 1], got %v", c.MoveChance)}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	return nil
}

// ApplyLogLevel sets the logrus level from the config.
func (c *Config) ApplyLogLevel() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return c.SaveFile(absPath)
}

func (c *Config) SaveFile(path string) error {
	jsonData, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0664)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
