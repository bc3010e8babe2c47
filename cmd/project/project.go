/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project resolves the project every command operates on from the
// global flags, environment and config file.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"bennypowers.dev/tokenkit/config"
	"bennypowers.dev/tokenkit/fs"
	"bennypowers.dev/tokenkit/validator"
)

// Project is a token project rooted at Root.
type Project struct {
	FS     fs.FileSystem
	Root   string
	Config *config.Config
}

// Load returns the project named by the --root flag (or TOKENKIT_ROOT),
// reading its config file and applying the --prefix override.
func Load() (*Project, error) {
	root := viper.GetString("root")
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root %q: %w", root, err)
	}
	return New(fs.NewOSFileSystem(), abs, viper.GetString("prefix"))
}

// New returns the project at root on the given filesystem. A non-empty
// prefix overrides the configured one. A config file that cannot be
// loaded is an error; defaults apply only when there is no config file.
func New(filesystem fs.FileSystem, root, prefix string) (*Project, error) {
	cfg, err := config.LoadOrDefault(filesystem, root)
	if err != nil {
		return nil, err
	}
	if prefix != "" {
		cfg.Prefix = prefix
	}
	return &Project{FS: filesystem, Root: root, Config: cfg}, nil
}

// ValidatorOptions returns the validator settings for the project.
func (p *Project) ValidatorOptions() validator.Options {
	return validator.Options{
		SourceDir:  p.Config.SourceDir(p.Root),
		SchemaPath: p.Config.SchemaPath(p.Root),
		LogoFile:   p.Config.Logo,
	}
}
