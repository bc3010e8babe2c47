/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build runs a full token build: it recreates the output directory,
// writes the source map, runs the transformation engine for every platform
// and derives TypeScript typings from the flat JSON output.
package build

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokenkit/collect"
	"bennypowers.dev/tokenkit/config"
	"bennypowers.dev/tokenkit/convert"
	"bennypowers.dev/tokenkit/fs"
	"bennypowers.dev/tokenkit/internal/logger"
	"bennypowers.dev/tokenkit/token"
)

// Result describes the files a build wrote.
type Result struct {
	// SourceMap is the source map path, empty when disabled.
	SourceMap string `json:"sourceMap,omitempty"`

	// Outputs are the engine's output files, in platform order.
	Outputs []string `json:"outputs"`

	// Typings is the declaration file path.
	Typings string `json:"typings"`

	// SourceFiles is the number of files in the source map.
	SourceFiles int `json:"sourceFiles"`

	// Tokens is the number of token names in the typings.
	Tokens int `json:"tokens"`
}

// Build runs the whole pipeline for the project at root. The output
// directory is deleted first, so a failed build may leave it partially
// written.
func Build(filesystem fs.FileSystem, root string, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(root); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	outDir := cfg.OutputDir(root)
	if err := filesystem.RemoveAll(outDir); err != nil {
		return nil, fmt.Errorf("failed to clean %s: %w", outDir, err)
	}
	if err := filesystem.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	result := &Result{}

	if path := cfg.SourceMapPath(root); path != "" {
		merged, err := collect.Collect(filesystem, cfg.SourceDir(root))
		if err != nil {
			return nil, err
		}
		if err := collect.Write(filesystem, path, merged); err != nil {
			return nil, err
		}
		logger.Info("✔︎ %s", path)
		result.SourceMap = path
		result.SourceFiles = len(merged)
	}

	engine := convert.New(filesystem, cfg.EngineConfig(root))
	outputs, err := engine.BuildAllPlatforms()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", token.ErrEngineInvocation, err)
	}
	result.Outputs = outputs
	if result.SourceMap == "" {
		result.SourceFiles = len(engine.SourceFiles())
	}

	names, err := ReadNames(filesystem, cfg.TypingsInput(root))
	if err != nil {
		return nil, err
	}

	typingsPath := cfg.TypingsOutput(root)
	if err := filesystem.MkdirAll(filepath.Dir(typingsPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: %w", token.ErrTypingsGenerationFailed, err)
	}
	if err := filesystem.WriteFile(typingsPath, Typings(names), 0644); err != nil {
		return nil, fmt.Errorf("%w: %w", token.ErrTypingsGenerationFailed, err)
	}
	logger.Info("✔︎ %s", typingsPath)

	result.Typings = typingsPath
	result.Tokens = len(names)
	return result, nil
}
