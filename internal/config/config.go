package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/d2go/internal/activity"
)

// Data sources for the formula database.
const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// Output formats of the CLI.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Calculator holds all configuration for the d2calc CLI.
type Calculator struct {
	LogLevel string    `yaml:"log_level"`
	Log      LogConfig `yaml:"log"`

	Data     DataConfig     `yaml:"data"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`

	// Activity the repl starts from
	Activity activity.Activity `yaml:"activity"`

	// Concurrent analyses in batch mode
	Workers int    `yaml:"workers"`
	Output  string `yaml:"output"`
}

// LogConfig controls the rotated log file. An empty File logs to stderr.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// DataConfig selects where formulas and the enhanced-perk map come from.
type DataConfig struct {
	Source          string `yaml:"source"`
	SQLitePath      string `yaml:"sqlite_path"`
	EnhancedMapPath string `yaml:"enhanced_map_path"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// CacheConfig bounds the weapon template cache.
type CacheConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	MaxKeys int           `yaml:"max_keys"`
}

// DefaultCalculator returns Calculator config with sensible defaults.
func DefaultCalculator() Calculator {
	return Calculator{
		LogLevel: "info",
		Log: LogConfig{
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Data: DataConfig{
			Source:     SourceStatic,
			SQLitePath: "d2go.db",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "d2go",
			Password: "d2go",
			DBName:   "d2go",
			SSLMode:  "disable",
		},
		Cache: CacheConfig{
			TTL:     10 * time.Minute,
			MaxKeys: 256,
		},
		Activity: activity.Default(),
		Workers:  4,
		Output:   OutputTable,
	}
}

// LoadCalculator loads calculator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadCalculator(path string) (Calculator, error) {
	cfg := DefaultCalculator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the CLI cannot act on.
func (c Calculator) Validate() error {
	switch c.Data.Source {
	case SourceStatic, SourcePostgres, SourceSQLite:
	default:
		return fmt.Errorf("unknown data source %q", c.Data.Source)
	}
	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
