/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokenkit.
package validate

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenkit/cmd/project"
	"bennypowers.dev/tokenkit/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate design token files",
	Long: `Validate every JSON file in the token source tree against the token schema,
and check that every logo token points at an existing asset.

Exits non-zero when any problem is found. All problems are reported.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

var (
	failure = color.New(color.FgRed)
	hint    = color.New(color.FgYellow)
	success = color.New(color.FgGreen)
)

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	p, err := project.Load()
	if err != nil {
		return err
	}

	report, err := validator.Validate(p.FS, p.ValidatorOptions())
	if err != nil {
		return err
	}

	Print(cmd.OutOrStdout(), cmd.ErrOrStderr(), report, quiet)
	return report.Err()
}

// Print writes a human-readable report: problems to errOut, the summary to out.
func Print(out, errOut io.Writer, report *validator.Report, quiet bool) {
	for _, problem := range report.Problems {
		failure.Fprint(errOut, "✘ ")
		location := problem.FilePath
		if problem.Path != "" {
			location += " " + problem.Path
		}
		fmt.Fprintf(errOut, "%s: %s\n", location, problem.Message)
		if problem.Suggestion != "" {
			hint.Fprintf(errOut, "  %s\n", problem.Suggestion)
		}
	}

	if !report.OK() {
		failure.Fprintf(errOut, "%d problem(s) in %d file(s) checked\n", len(report.Problems), report.Files)
		return
	}
	if !quiet {
		success.Fprintf(out, "✔︎ %d token file(s) valid\n", report.Files)
	}
}
