package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	musicnotes "github.com/Vintermom/my-music-notes"
)

const configFilename = ".musicnotes.yaml"

// fileConfig is the optional YAML config read from the home directory.
type fileConfig struct {
	Dir       string `yaml:"dir"`
	ExportDir string `yaml:"export_dir"`
}

// loadConfig reads ~/.musicnotes.yaml if present. A missing or unreadable
// file is not an error; flags always win over the file.
func loadConfig() fileConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		return fileConfig{}
	}

	data, err := os.ReadFile(filepath.Join(home, configFilename))
	if err != nil {
		return fileConfig{}
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Default().Warn("ignoring malformed config file", "path", configFilename, "error", err)
		return fileConfig{}
	}
	return cfg
}

// resolveStoreDir picks the store directory: --dir flag, then config file,
// then ~/.musicnotes.
func resolveStoreDir() string {
	if storeDir != "" {
		return storeDir
	}
	cfg := loadConfig()
	if cfg.Dir != "" {
		return cfg.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".musicnotes"
	}
	return filepath.Join(home, ".musicnotes")
}

// resolveExportDir picks the export directory: config file, then CWD.
func resolveExportDir() string {
	cfg := loadConfig()
	if cfg.ExportDir != "" {
		return cfg.ExportDir
	}
	return "."
}

// openApp wires the app for a command run.
func openApp() (*musicnotes.App, error) {
	return musicnotes.New(resolveStoreDir(),
		musicnotes.WithLogger(slog.Default()),
	)
}
