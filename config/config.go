package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SystemConfig struct {
	Workdir  string `yaml:"workdir" json:"workdir"`
	Location string `yaml:"location" json:"location"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type StoreConfig struct {
	// Path of the embedded database file. Empty means in-memory-disabled
	// mode: reads return nothing, writes are no-ops.
	Path string `yaml:"path" json:"path"`
}

type AppConfig struct {
	System SystemConfig `yaml:"system" json:"system"`
	Logger LoggerConfig `yaml:"logger" json:"logger"`
	Store  StoreConfig  `yaml:"store" json:"store"`
}

func DefaultConfig() *AppConfig {
	return &AppConfig{
		System: SystemConfig{
			Workdir:  "/var/yazanstore",
			Location: "Africa/Cairo",
		},
		Logger: LoggerConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "storefront.log",
		},
	}
}

// LoadConfig reads the YAML file at path when it exists, then applies
// environment overrides. A missing file falls back to defaults silently.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %q", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "read config %q", path)
		}
	}
	applyEnv(cfg)
	if cfg.Store.Path == "" && cfg.System.Workdir != "" {
		cfg.Store.Path = filepath.Join(cfg.System.Workdir, "storefront.db")
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("YAZAN_WORKDIR"); v != "" {
		cfg.System.Workdir = v
	}
	if v := os.Getenv("YAZAN_LOCATION"); v != "" {
		cfg.System.Location = v
	}
	if v := os.Getenv("YAZAN_LOGGER_MODE"); v != "" {
		cfg.Logger.Mode = v
	}
	if v := os.Getenv("YAZAN_LOGGER_FILE_ENABLE"); v != "" {
		cfg.Logger.FileEnable = cast.ToBool(v)
	}
	if v := os.Getenv("YAZAN_LOGGER_FILENAME"); v != "" {
		cfg.Logger.Filename = v
	}
	if v := os.Getenv("YAZAN_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
}
