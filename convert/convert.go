/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert is the token transformation engine. It loads token files
// matched by include globs, resolves references, and writes one set of
// output files per platform, each platform applying its own transforms.
package convert

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"bennypowers.dev/tokenkit/fs"
	"bennypowers.dev/tokenkit/internal/logger"
	"bennypowers.dev/tokenkit/parser"
	"bennypowers.dev/tokenkit/resolver"
	"bennypowers.dev/tokenkit/source"
	"bennypowers.dev/tokenkit/token"
	"bennypowers.dev/tokenkit/transform"
)

// File declares one output file of a platform.
type File struct {
	// Destination is the file name, relative to the platform's build path.
	Destination string `yaml:"destination" json:"destination"`

	// Format names a registered format, e.g. "css/variables".
	Format string `yaml:"format" json:"format"`

	// Selector overrides the CSS rule selector (css/variables only).
	Selector string `yaml:"selector,omitempty" json:"selector,omitempty"`

	// Header overrides the generated-file banner.
	Header string `yaml:"header,omitempty" json:"header,omitempty"`
}

// Platform declares how tokens are transformed and written for one target.
type Platform struct {
	// TransformGroup names a registered transform group.
	TransformGroup string `yaml:"transformGroup" json:"transformGroup"`

	// Transforms are applied after the group's transforms.
	Transforms []string `yaml:"transforms,omitempty" json:"transforms,omitempty"`

	// BuildPath is the output directory, relative to the engine's build dir.
	BuildPath string `yaml:"buildPath" json:"buildPath"`

	// Prefix is prepended to every token name.
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`

	Files []File `yaml:"files" json:"files"`
}

// Config configures an Engine.
type Config struct {
	// SourceDir is the directory include patterns are relative to.
	SourceDir string

	// Include lists glob patterns of token files, e.g. "primitives/**/*.json".
	Include []string

	// BuildDir is the directory platform build paths are relative to.
	BuildDir string

	Platforms map[string]Platform
}

// Engine transforms token files into platform outputs.
type Engine struct {
	fs     fs.FileSystem
	cfg    Config
	files  []string
	tokens []*token.Token
	loaded bool
}

// New creates an engine. Nothing is read until Load or a build method runs.
func New(filesystem fs.FileSystem, cfg Config) *Engine {
	return &Engine{fs: filesystem, cfg: cfg}
}

// Load expands the include globs, parses every matched file, merges the
// tokens and resolves references. A token path defined in more than one
// file takes its last definition, in sorted file order.
func (e *Engine) Load() error {
	files, err := source.Glob(e.fs, e.cfg.SourceDir, e.cfg.Include)
	if err != nil {
		return err
	}

	p := parser.NewJSONParser()
	byPath := make(map[string]*token.Token)
	var order []string

	for _, file := range files {
		logger.Debug("loading %s", file)
		tokens, err := p.ParseFile(e.fs, file, parser.Options{})
		if err != nil {
			return err
		}
		for _, tok := range tokens {
			key := tok.DotPath()
			if prev, exists := byPath[key]; exists {
				logger.Warn("token collision: %s defined in %s and %s, using the latter", key, prev.FilePath, tok.FilePath)
			} else {
				order = append(order, key)
			}
			byPath[key] = tok
		}
	}

	slices.Sort(order)
	merged := make([]*token.Token, 0, len(order))
	for _, key := range order {
		merged = append(merged, byPath[key])
	}

	if err := resolver.ResolveAliases(merged); err != nil {
		return err
	}

	e.files = files
	e.tokens = merged
	e.loaded = true
	return nil
}

func (e *Engine) ensureLoaded() error {
	if e.loaded {
		return nil
	}
	return e.Load()
}

// SourceFiles returns the token files matched by the include globs.
func (e *Engine) SourceFiles() []string {
	return slices.Clone(e.files)
}

// PlatformNames returns the configured platform names, sorted.
func (e *Engine) PlatformNames() []string {
	return slices.Sorted(maps.Keys(e.cfg.Platforms))
}

// Tokens returns the platform's view of the tokens: resolved clones with
// the platform's transforms applied, in dot-path order.
func (e *Engine) Tokens(platform string) ([]*token.Token, error) {
	pc, ok := e.cfg.Platforms[platform]
	if !ok {
		return nil, fmt.Errorf("unknown platform: %s", platform)
	}
	if err := e.ensureLoaded(); err != nil {
		return nil, err
	}

	transforms, err := transform.Resolve(pc.TransformGroup, pc.Transforms)
	if err != nil {
		return nil, fmt.Errorf("platform %s: %w", platform, err)
	}

	tokens := token.CloneAll(e.tokens)
	if err := transform.Apply(tokens, transforms, pc.Prefix); err != nil {
		return nil, fmt.Errorf("platform %s: %w", platform, err)
	}
	return tokens, nil
}

// BuildPlatform writes every file of one platform and returns their paths.
func (e *Engine) BuildPlatform(platform string) ([]string, error) {
	tokens, err := e.Tokens(platform)
	if err != nil {
		return nil, err
	}
	pc := e.cfg.Platforms[platform]
	dir := filepath.Join(e.cfg.BuildDir, pc.BuildPath)

	written := make([]string, 0, len(pc.Files))
	for _, file := range pc.Files {
		format, err := ParseFormat(file.Format)
		if err != nil {
			return written, fmt.Errorf("platform %s: %w", platform, err)
		}
		data, err := FormatTokens(tokens, format, file)
		if err != nil {
			return written, fmt.Errorf("platform %s: formatting %s: %w", platform, file.Destination, err)
		}

		dest := filepath.Join(dir, file.Destination)
		if err := e.fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return written, fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
		}
		if err := e.fs.WriteFile(dest, data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", dest, err)
		}
		logger.Info("✔︎ %s", dest)
		written = append(written, dest)
	}
	return written, nil
}

// BuildAllPlatforms builds every platform in name order and returns all
// written paths. It stops at the first failing platform.
func (e *Engine) BuildAllPlatforms() ([]string, error) {
	if err := e.ensureLoaded(); err != nil {
		return nil, err
	}

	var written []string
	for _, name := range e.PlatformNames() {
		logger.Debug("building platform %s", name)
		paths, err := e.BuildPlatform(name)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
