package sched

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"

	"rrsim/internal/job"
)

// EnvPrefix is the prefix of every environment override, e.g. RRSIM_QUANTUM.
const EnvPrefix = "RRSIM"

// Config mirrors the simulation file.
type Config struct {
	Quantum   int64      `yaml:"quantum" envconfig:"QUANTUM"`       // 20 (by default)
	LogLevel  string     `yaml:"log_level" envconfig:"LOG_LEVEL"`   // info (by default)
	LogFormat string     `yaml:"log_format" envconfig:"LOG_FORMAT"` // console (by default)
	TraceCSV  string     `yaml:"trace_csv" envconfig:"TRACE_CSV"`   // empty = no CSV trace
	Tasks     []job.Spec `yaml:"tasks" ignored:"true"`
}

// If no file is given, we use default values
func defaultConfig() Config {
	return Config{
		Quantum:   20,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads YAML over the defaults and then applies RRSIM_* environment
// overrides; empty path = defaults and environment only.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("config env: %w", err)
	}

	// a missing value falls back to the default; a negative quantum is left
	// for New to reject
	def := defaultConfig()
	if cfg.Quantum == 0 {
		cfg.Quantum = def.Quantum
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = def.LogFormat
	}

	return cfg, nil
}
