/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenkit/fs"
	"bennypowers.dev/tokenkit/internal/logger"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokenkit"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/tokenkit.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
// Settings absent from the file keep their defaults; a platforms section
// replaces the default platforms entirely.
func Load(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		cfg.Platforms = nil
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}
		if cfg.Platforms == nil {
			cfg.Platforms = DefaultPlatforms()
		}

		logger.Debug("loaded config from %s", configPath)
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config, or defaults when no config file exists.
// A config file that exists but fails to load is an error: falling back
// to defaults would point build at the default output directory.
func LoadOrDefault(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		logger.Debug("no config file under %s, using defaults", rootDir)
		return Default(), nil
	}
	return cfg, nil
}
