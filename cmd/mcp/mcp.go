/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command, which serves the token tools over
// the Model Context Protocol on stdio.
package mcp

import (
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenkit/cmd/project"
	"bennypowers.dev/tokenkit/internal/logger"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve validate, build and collect as MCP tools on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the tools
validate_tokens, build_tokens and collect_tokens for the project at --root.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol
	logger.SetOutput(io.Discard)

	p, err := project.Load()
	if err != nil {
		return err
	}

	return NewServer(p).Run(cmd.Context(), &mcp.StdioTransport{})
}
