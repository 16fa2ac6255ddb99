package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Endpoint holds the backend paths of one collection
type Endpoint struct {
	ListPath   string `koanf:"list_path"`
	CreatePath string `koanf:"create_path"`
}

type Config struct {
	AppName string `koanf:"app_name"`
	Log     struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`
	Backend struct {
		BaseURL     string `koanf:"base_url"`
		AttachToken bool   `koanf:"attach_token"`
	} `koanf:"backend"`
	Server struct {
		Address         string        `koanf:"address"`
		ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	} `koanf:"server"`
	Session struct {
		File string `koanf:"file"`
	} `koanf:"session"`
	Endpoints struct {
		Bankers         Endpoint `koanf:"bankers"`
		BankerDirectory Endpoint `koanf:"banker_directory"`
		Lenders         Endpoint `koanf:"lenders"`
	} `koanf:"endpoints"`
}

// DefaultConfig returns the default configuration for directory-dashboard
func DefaultConfig() *Config {
	cfg := &Config{AppName: "directory-dashboard"}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Backend.BaseURL = "http://localhost:3001"
	cfg.Server.Address = ":8080"
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Session.File = defaultSessionFile()
	cfg.Endpoints.Bankers = Endpoint{ListPath: "/bankers/get-bankers", CreatePath: "/bankers/create-banker"}
	cfg.Endpoints.BankerDirectory = Endpoint{
		ListPath:   "/banker-directory/get-directories",
		CreatePath: "/banker-directory/create-directories",
	}
	cfg.Endpoints.Lenders = Endpoint{ListPath: "/lenders/get-lenders", CreatePath: "/lenders/create-lender"}
	return cfg
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ".directory-dashboard-session.json"
	}
	return filepath.Join(dir, "directory-dashboard", "session.json")
}

// Load loads the configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Load default values.
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	// Load from config file if specified.
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, fmt.Errorf("error loading TOML config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error checking config file: %w", err)
		}
	} else {
		commonPaths := []string{
			"./config.toml",
			"./config/config.toml",
			"/etc/directory-dashboard/config.toml",
		}
		for _, path := range commonPaths {
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
					return nil, fmt.Errorf("error loading TOML config file from %s: %w", path, err)
				}
				break
			}
		}
	}

	// APP_BACKEND__BASE_URL becomes backend.base_url.
	callback := func(s string) string {
		s = strings.TrimPrefix(s, "APP_")
		parts := strings.Split(s, "__")
		for i, part := range parts {
			parts[i] = strings.ToLower(part)
		}
		return strings.Join(parts, ".")
	}
	if err := k.Load(env.Provider("APP_", ".", callback), nil); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

// validateConfig checks required fields.
func validateConfig(config *Config) error {
	// Backend config validations.
	if config.Backend.BaseURL == "" {
		return errors.New("backend base_url cannot be empty")
	}
	if !strings.HasPrefix(config.Backend.BaseURL, "http://") && !strings.HasPrefix(config.Backend.BaseURL, "https://") {
		return fmt.Errorf("backend base_url must start with 'http://' or 'https://', got '%s'", config.Backend.BaseURL)
	}

	endpoints := map[string]Endpoint{
		"bankers":          config.Endpoints.Bankers,
		"banker_directory": config.Endpoints.BankerDirectory,
		"lenders":          config.Endpoints.Lenders,
	}
	for name, ep := range endpoints {
		if !strings.HasPrefix(ep.ListPath, "/") || !strings.HasPrefix(ep.CreatePath, "/") {
			return fmt.Errorf("endpoints.%s paths must start with '/'", name)
		}
	}

	if config.Server.Address == "" {
		return errors.New("server address cannot be empty")
	}
	if config.Server.ShutdownTimeout < 0 {
		return errors.New("server shutdown_timeout cannot be negative")
	}
	if config.Session.File == "" {
		return errors.New("session file cannot be empty")
	}

	// Log config validations.
	if config.Log.Level == "" {
		return errors.New("log level cannot be empty")
	}
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}
	if !validLogLevels[strings.ToLower(config.Log.Level)] {
		return errors.New("invalid log level: must be one of debug, info, warn, error, fatal")
	}
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(config.Log.Format)] {
		return errors.New("invalid log format: must be text or json")
	}

	return nil
}
