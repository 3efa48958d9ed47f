// Package config loads checkmate settings from defaults, an optional YAML
// file and CHECKMATE_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abatilo/checkmate/internal/kv"
)

// Config is the complete runtime configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Backend string      `yaml:"backend"`
	Dir     string      `yaml:"dir"`
	Redis   RedisConfig `yaml:"redis"`
	SQL     SQLConfig   `yaml:"sql"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// SQLConfig configures the sql backend.
type SQLConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: kv.BackendFile,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "checkmate:",
			},
			SQL: SQLConfig{
				Driver: "sqlite3",
			},
		},
	}
}

// DefaultPath returns ~/.config/checkmate/config.yaml, honouring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "checkmate", "config.yaml"), nil
}

// Load builds the configuration. A missing file at path is not an error;
// an empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	s := &cfg.Storage
	s.Backend = getEnv("CHECKMATE_BACKEND", s.Backend)
	s.Dir = getEnv("CHECKMATE_DATA_DIR", s.Dir)
	s.Redis.Addr = getEnv("CHECKMATE_REDIS_ADDR", s.Redis.Addr)
	s.Redis.Password = getEnv("CHECKMATE_REDIS_PASSWORD", s.Redis.Password)
	s.Redis.DB = getEnvAsInt("CHECKMATE_REDIS_DB", s.Redis.DB)
	s.Redis.Prefix = getEnv("CHECKMATE_REDIS_PREFIX", s.Redis.Prefix)
	s.SQL.Driver = getEnv("CHECKMATE_SQL_DRIVER", s.SQL.Driver)
	s.SQL.DSN = getEnv("CHECKMATE_SQL_DSN", s.SQL.DSN)
}

// SQLiteFile is the database created in the data directory when the sql
// backend uses sqlite3 without a DSN.
const SQLiteFile = "checkmate.db"

// ResolvePaths fills storage locations left empty with paths under the data
// directory: storage.dir when set, otherwise the one returned by dataDir.
// An empty sqlite3 DSN would open a temporary database that is deleted on
// close, so it becomes a file in that directory.
func (c *Config) ResolvePaths(dataDir func() (string, error)) error {
	s := &c.Storage
	switch s.Backend {
	case "", kv.BackendFile:
		if s.Dir != "" {
			return nil
		}
		dir, err := dataDir()
		if err != nil {
			return err
		}
		s.Dir = dir
	case kv.BackendSQL:
		if s.SQL.DSN != "" || s.SQL.Driver != "sqlite3" {
			return nil
		}
		dir := s.Dir
		if dir == "" {
			var err error
			if dir, err = dataDir(); err != nil {
				return err
			}
		}
		//nolint:gosec // G301: 0755 is appropriate for a user data directory
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		s.SQL.DSN = filepath.Join(dir, SQLiteFile)
	}
	return nil
}

// KVOptions converts the storage settings for kv.Open.
func (c *Config) KVOptions() kv.Options {
	s := c.Storage
	return kv.Options{
		Backend: s.Backend,
		Dir:     s.Dir,
		Redis: kv.RedisOptions{
			Addr:     s.Redis.Addr,
			Password: s.Redis.Password,
			DB:       s.Redis.DB,
			Prefix:   s.Redis.Prefix,
		},
		SQLDriver: s.SQL.Driver,
		SQLDSN:    s.SQL.DSN,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
