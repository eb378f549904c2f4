package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Transport modes for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
	// SeedSamples stores the sample records when the database is empty.
	SeedSamples bool `yaml:"seed_samples"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Path is an optional log file; empty logs to the console.
	Path string `yaml:"path"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path:        "impact.db",
			SeedSamples: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: TransportStdio,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("IMPACT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("IMPACT_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("IMPACT_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid IMPACT_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("IMPACT_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if seed := os.Getenv("IMPACT_SEED_SAMPLES"); seed != "" {
		v, err := strconv.ParseBool(seed)
		if err != nil {
			return Config{}, fmt.Errorf("invalid IMPACT_SEED_SAMPLES: %w", err)
		}
		cfg.DB.SeedSamples = v
	}
	if level := os.Getenv("IMPACT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("IMPACT_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if mode := os.Getenv("IMPACT_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}

	if cfg.Transport.Mode != TransportStdio && cfg.Transport.Mode != TransportHTTP {
		return Config{}, fmt.Errorf("invalid transport mode %q: want %s or %s", cfg.Transport.Mode, TransportStdio, TransportHTTP)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
