/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for tokenkit.
package build

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	buildlib "bennypowers.dev/tokenkit/build"
	"bennypowers.dev/tokenkit/cmd/project"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Build CSS, JSON and TypeScript outputs from design tokens",
	Long: `Build recreates the output directory, writes the token source map, runs every
configured platform, and generates TypeScript typings from the flat JSON output.

Platforms, include globs and output paths are read from .config/tokenkit.yaml.
Without a config file the defaults are:

  new_tokens/{primitives,semantic,themes}/**/*.json
    -> dist/css/tokens.css
    -> dist/json/tokens.flat.json
    -> dist/json/tokens.source-map.json
    -> dist/ts/tokens.d.ts`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("json", false, "Print the build result as JSON")
}

func run(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	p, err := project.Load()
	if err != nil {
		return err
	}

	result, err := buildlib.Build(p.FS, p.Root, p.Config)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling build result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Built %d tokens from %d source files.\n", result.Tokens, result.SourceFiles)
	return nil
}
