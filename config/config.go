/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokenkit projects.
package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/tokenkit/convert"
)

// Config represents a tokenkit project configuration. Relative paths are
// resolved against the project root, except Include and Logo, which are
// relative to Source, and the Typings and SourceMap paths and platform build
// paths, which are relative to Output.
type Config struct {
	// Prefix is the default token name prefix for platforms that set none.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Source is the token source tree.
	Source string `yaml:"source" json:"source"`

	// Schema is the JSON Schema token files are validated against.
	Schema string `yaml:"schema" json:"schema"`

	// Output is the build directory. It is deleted and recreated on every build.
	Output string `yaml:"output" json:"output"`

	// Include lists the token files fed to the transformation engine.
	Include []string `yaml:"include" json:"include"`

	// Logo is the logo token file checked for missing assets.
	Logo string `yaml:"logo" json:"logo"`

	// SourceMap is where the merged source map is written. Empty disables it.
	SourceMap string `yaml:"sourceMap" json:"sourceMap"`

	Typings Typings `yaml:"typings" json:"typings"`

	Platforms map[string]convert.Platform `yaml:"platforms" json:"platforms"`
}

// Typings configures TypeScript declaration output.
type Typings struct {
	// Input is the flat JSON file whose keys become token names.
	Input string `yaml:"input" json:"input"`
	// Output is the declaration file.
	Output string `yaml:"output" json:"output"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Source: "new_tokens",
		Schema: "schemas/token.schema.json",
		Output: "dist",
		Include: []string{
			"primitives/**/*.json",
			"semantic/**/*.json",
			"themes/**/*.json",
		},
		Logo:      "semantic/logo.json",
		SourceMap: "json/tokens.source-map.json",
		Typings: Typings{
			Input:  "json/tokens.flat.json",
			Output: "ts/tokens.d.ts",
		},
		Platforms: DefaultPlatforms(),
	}
}

// DefaultPlatforms returns the css and json platforms.
func DefaultPlatforms() map[string]convert.Platform {
	return map[string]convert.Platform{
		"css": {
			TransformGroup: "css",
			BuildPath:      "css/",
			Files:          []convert.File{{Destination: "tokens.css", Format: "css/variables"}},
		},
		"json": {
			TransformGroup: "js",
			BuildPath:      "json/",
			Files:          []convert.File{{Destination: "tokens.flat.json", Format: "json/flat"}},
		},
	}
}

// resolve joins p to base unless p is absolute.
func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, filepath.FromSlash(p))
}

// SourceDir returns the absolute token source directory.
func (c *Config) SourceDir(root string) string {
	return resolve(root, c.Source)
}

// SchemaPath returns the absolute schema path.
func (c *Config) SchemaPath(root string) string {
	return resolve(root, c.Schema)
}

// OutputDir returns the absolute build directory.
func (c *Config) OutputDir(root string) string {
	return resolve(root, c.Output)
}

// SourceMapPath returns the absolute source map path, or "" when disabled.
func (c *Config) SourceMapPath(root string) string {
	return resolve(c.OutputDir(root), c.SourceMap)
}

// TypingsInput returns the absolute path of the flat JSON read for typings.
func (c *Config) TypingsInput(root string) string {
	return resolve(c.OutputDir(root), c.Typings.Input)
}

// TypingsOutput returns the absolute path of the declaration file.
func (c *Config) TypingsOutput(root string) string {
	return resolve(c.OutputDir(root), c.Typings.Output)
}

// EngineConfig returns the transformation engine configuration. Platforms
// without their own prefix inherit the global one.
func (c *Config) EngineConfig(root string) convert.Config {
	platforms := make(map[string]convert.Platform, len(c.Platforms))
	for name, p := range c.Platforms {
		if p.Prefix == "" {
			p.Prefix = c.Prefix
		}
		platforms[name] = p
	}
	return convert.Config{
		SourceDir: c.SourceDir(root),
		Include:   slices.Clone(c.Include),
		BuildDir:  c.OutputDir(root),
		Platforms: platforms,
	}
}

// PlatformNames returns the configured platform names, sorted.
func (c *Config) PlatformNames() []string {
	return slices.Sorted(maps.Keys(c.Platforms))
}

// Validate reports configuration mistakes that would make a build fail or
// destroy files outside the build directory.
func (c *Config) Validate(root string) error {
	var errs []error

	if c.Source == "" {
		errs = append(errs, errors.New("source must be set"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output must be set"))
	} else {
		out := c.OutputDir(root)
		for _, protected := range []string{root, c.SourceDir(root)} {
			if protected != "" && contains(out, protected) {
				errs = append(errs, fmt.Errorf("output %s must not contain %s", c.Output, protected))
			}
		}
	}
	if len(c.Include) == 0 {
		errs = append(errs, errors.New("include must list at least one pattern"))
	}

	for _, name := range c.PlatformNames() {
		for _, file := range c.Platforms[name].Files {
			if file.Destination == "" {
				errs = append(errs, fmt.Errorf("platform %s: file without destination", name))
			}
			if _, err := convert.ParseFormat(file.Format); err != nil {
				errs = append(errs, fmt.Errorf("platform %s: %w", name, err))
			}
		}
	}

	return errors.Join(errs...)
}

// contains reports whether dir is p or one of p's ancestors.
func contains(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
