package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default YAML defaults file name.
const DefaultConfigFile = ".docscrawl"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML defaults file. Every field is a pointer so a key absent
// from the file is distinguishable from a key set to its zero value; only
// keys present in the file are applied, and a flag the user passed on the
// command line always wins over the file.
type File struct {
	StartURL       *string `yaml:"start_url"`
	PathPrefix     *string `yaml:"path_prefix"`
	OutputDir      *string `yaml:"output_dir"`
	MaxPages       *int    `yaml:"max_pages"`
	Concurrency    *int    `yaml:"concurrency"`
	Delay          *string `yaml:"delay"`
	Timeout        *string `yaml:"timeout"`
	Screenshots    *bool   `yaml:"screenshots"`
	CredentialFile *string `yaml:"credential_file"`
	UserAgent      *string `yaml:"user_agent"`
	DBDir          *string `yaml:"db_dir"`
}

// LoadConfigFile loads crawl defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers decide
// how to handle that based on whether the path was explicitly given.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FindConfigFile searches for the defaults file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .docscrawl in the current directory
// 3. Look for .docscrawl in the user's home directory
//
// Returns the path to the file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// ApplyTo copies the file's values into cfg for every field the caller did
// not already set on the command line. changed reports whether a flag was
// explicitly passed, keyed by flag name.
func (f *File) ApplyTo(cfg *Config, changed func(flag string) bool) error {
	if f.StartURL != nil && !changed("start-url") && cfg.StartURL == "" {
		cfg.StartURL = *f.StartURL
	}
	if f.PathPrefix != nil && !changed("prefix") {
		cfg.PathPrefix = *f.PathPrefix
	}
	if f.OutputDir != nil && !changed("out-dir") {
		cfg.OutputDir = *f.OutputDir
	}
	if f.MaxPages != nil && !changed("max-pages") {
		cfg.MaxPages = *f.MaxPages
	}
	if f.Concurrency != nil && !changed("concurrency") {
		cfg.Concurrency = *f.Concurrency
	}
	if f.Delay != nil && !changed("delay") {
		d, err := time.ParseDuration(*f.Delay)
		if err != nil {
			return fmt.Errorf("config file delay: %w", err)
		}
		cfg.Delay = d
	}
	if f.Timeout != nil && !changed("timeout") {
		d, err := time.ParseDuration(*f.Timeout)
		if err != nil {
			return fmt.Errorf("config file timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if f.Screenshots != nil && !changed("screenshots") {
		cfg.Screenshots = *f.Screenshots
	}
	if f.CredentialFile != nil && !changed("cookies-file") {
		cfg.CredentialFile = *f.CredentialFile
	}
	if f.UserAgent != nil && !changed("user-agent") {
		cfg.UserAgent = *f.UserAgent
	}
	if f.DBDir != nil && !changed("db-dir") {
		cfg.DBDir = *f.DBDir
	}
	return nil
}
