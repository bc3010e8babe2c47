/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/tokenkit/build"
	"bennypowers.dev/tokenkit/cmd/project"
	"bennypowers.dev/tokenkit/collect"
	"bennypowers.dev/tokenkit/internal/version"
	"bennypowers.dev/tokenkit/validator"
)

// ValidateInput are the validate_tokens arguments.
type ValidateInput struct {
	LogoFile string `json:"logoFile,omitempty" jsonschema:"logo token file relative to the source directory"`
}

// Problem is one validation problem.
type Problem struct {
	Kind       string `json:"kind"`
	File       string `json:"file"`
	Path       string `json:"path,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidateOutput is the validate_tokens result.
type ValidateOutput struct {
	OK       bool      `json:"ok"`
	Files    int       `json:"files"`
	Problems []Problem `json:"problems"`
}

// BuildInput are the build_tokens arguments.
type BuildInput struct {
	Prefix string `json:"prefix,omitempty" jsonschema:"token name prefix, overriding the configured one"`
}

// CollectInput are the collect_tokens arguments.
type CollectInput struct {
	Write bool `json:"write,omitempty" jsonschema:"write the source map to its configured path"`
}

// CollectOutput is the collect_tokens result.
type CollectOutput struct {
	Keys []string `json:"keys"`
	Path string   `json:"path,omitempty"`
}

// NewServer returns an MCP server exposing the token tools for p.
func NewServer(p *project.Project) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "tokenkit", Version: version.Get()}, nil)
	h := &handlers{project: p}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_tokens",
		Description: "Validate every token file against the token schema and check logo assets.",
	}, h.validate)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_tokens",
		Description: "Rebuild the output directory: CSS variables, flat JSON, source map and TypeScript typings.",
	}, h.build)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "collect_tokens",
		Description: "Merge every token file into one source map keyed by relative path.",
	}, h.collect)

	return server
}

type handlers struct {
	project *project.Project
}

func (h *handlers) validate(ctx context.Context, req *mcp.CallToolRequest, in ValidateInput) (*mcp.CallToolResult, ValidateOutput, error) {
	opts := h.project.ValidatorOptions()
	if in.LogoFile != "" {
		opts.LogoFile = in.LogoFile
	}

	report, err := validator.Validate(h.project.FS, opts)
	if err != nil {
		return nil, ValidateOutput{}, err
	}

	out := ValidateOutput{OK: report.OK(), Files: report.Files, Problems: make([]Problem, 0, len(report.Problems))}
	for _, p := range report.Problems {
		out.Problems = append(out.Problems, Problem{
			Kind:       kindName(p.Kind),
			File:       p.FilePath,
			Path:       p.Path,
			Message:    p.Message,
			Suggestion: p.Suggestion,
		})
	}
	return nil, out, nil
}

func (h *handlers) build(ctx context.Context, req *mcp.CallToolRequest, in BuildInput) (*mcp.CallToolResult, build.Result, error) {
	cfg := *h.project.Config
	if in.Prefix != "" {
		cfg.Prefix = in.Prefix
	}

	result, err := build.Build(h.project.FS, h.project.Root, &cfg)
	if err != nil {
		return nil, build.Result{}, err
	}
	return nil, *result, nil
}

func (h *handlers) collect(ctx context.Context, req *mcp.CallToolRequest, in CollectInput) (*mcp.CallToolResult, CollectOutput, error) {
	cfg := h.project.Config
	merged, err := collect.Collect(h.project.FS, cfg.SourceDir(h.project.Root))
	if err != nil {
		return nil, CollectOutput{}, err
	}

	out := CollectOutput{Keys: merged.Keys()}
	if in.Write {
		path := cfg.SourceMapPath(h.project.Root)
		if path == "" {
			return nil, CollectOutput{}, errors.New("source map output is disabled in the config")
		}
		if err := collect.Write(h.project.FS, path, merged); err != nil {
			return nil, CollectOutput{}, err
		}
		out.Path = path
	}
	return nil, out, nil
}

func kindName(kind error) string {
	if kind == nil {
		return "unknown"
	}
	return kind.Error()
}
