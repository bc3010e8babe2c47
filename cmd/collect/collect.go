/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package collect provides the collect command for tokenkit.
package collect

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenkit/cmd/project"
	collectlib "bennypowers.dev/tokenkit/collect"
	"bennypowers.dev/tokenkit/internal/logger"
)

// Cmd is the collect cobra command.
var Cmd = &cobra.Command{
	Use:   "collect",
	Short: "Merge every token file into one source map",
	Long: `Collect reads every JSON file in the token source tree and merges them into
one object keyed by relative path without extension.

By default the source map is printed to stdout. With --write it is written to
the configured sourceMap path under the output directory.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("write", false, "Write the source map to the configured path")
	Cmd.Flags().StringP("output", "o", "", "Write the source map to this file")
}

func run(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	output, _ := cmd.Flags().GetString("output")

	p, err := project.Load()
	if err != nil {
		return err
	}

	merged, err := collectlib.Collect(p.FS, p.Config.SourceDir(p.Root))
	if err != nil {
		return err
	}

	if output == "" && write {
		output = p.Config.SourceMapPath(p.Root)
	}
	if output != "" {
		if err := collectlib.Write(p.FS, output, merged); err != nil {
			return err
		}
		logger.Info("✔︎ %s", output)
		return nil
	}

	data, err := merged.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
