package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration. Values come from an optional
// YAML file with environment variables overriding; everything has a usable
// default so the client runs with no configuration at all.
type Config struct {
	Environment string `yaml:"environment" env:"MINDVAULT_ENV" env-default:"development"`
	LogLevel    string `yaml:"log_level" env:"MINDVAULT_LOG_LEVEL" env-default:"info"`

	// DataDir is the root for everything the client writes: the database,
	// the persisted state snapshot, uploads and exports. Empty means
	// ~/.mindvault.
	DataDir string `yaml:"data_dir" env:"MINDVAULT_DATA_DIR" env-default:""`

	DatabaseFile string `yaml:"database_file" env:"MINDVAULT_DATABASE_FILE" env-default:"mindvault.db"`
	SnapshotFile string `yaml:"snapshot_file" env:"MINDVAULT_SNAPSHOT_FILE" env-default:"state.json"`
	UploadDir    string `yaml:"upload_dir" env:"MINDVAULT_UPLOAD_DIR" env-default:"uploads"`
	ExportDir    string `yaml:"export_dir" env:"MINDVAULT_EXPORT_DIR" env-default:"exports"`
}

// Load reads configuration from the given YAML file (optional) and the
// environment. A missing file is not an error; a present but unreadable
// one is.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, err
			}
			return cfg.withDefaults()
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() (*Config, error) {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		c.DataDir = filepath.Join(home, ".mindvault")
	}
	return &c, nil
}

// DatabasePath is the absolute location of the SQLite database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// SnapshotPath is the absolute location of the persisted state snapshot.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.DataDir, c.SnapshotFile)
}

// UploadPath is the directory uploaded files land in.
func (c *Config) UploadPath() string {
	return filepath.Join(c.DataDir, c.UploadDir)
}

// ExportPath is the directory exports are written to.
func (c *Config) ExportPath() string {
	return filepath.Join(c.DataDir, c.ExportDir)
}
