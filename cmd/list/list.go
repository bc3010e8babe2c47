/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenkit.
package list

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenkit/cmd/project"
	"bennypowers.dev/tokenkit/cmd/render"
	"bennypowers.dev/tokenkit/convert"
	"bennypowers.dev/tokenkit/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List tokens as a platform sees them",
	Long: `List the tokens of one platform, with the platform's names and transformed
values, without writing any files.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("platform", "css", "Platform whose transforms are applied")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("group", "", "Filter by top-level group")
	Cmd.Flags().Bool("deprecated", false, "Only show deprecated tokens")
	Cmd.Flags().Bool("no-deprecated", false, "Hide deprecated tokens")
	Cmd.Flags().String("format", "table", "Output format: table, json, markdown, names")
}

func run(cmd *cobra.Command, args []string) error {
	platform, _ := cmd.Flags().GetString("platform")
	typeFilter, _ := cmd.Flags().GetString("type")
	groupFilter, _ := cmd.Flags().GetString("group")
	deprecatedOnly, _ := cmd.Flags().GetBool("deprecated")
	hideDeprecated, _ := cmd.Flags().GetBool("no-deprecated")
	format, _ := cmd.Flags().GetString("format")

	if deprecatedOnly && hideDeprecated {
		return fmt.Errorf("--deprecated and --no-deprecated are mutually exclusive")
	}

	p, err := project.Load()
	if err != nil {
		return err
	}

	engine := convert.New(p.FS, p.Config.EngineConfig(p.Root))
	tokens, err := engine.Tokens(platform)
	if err != nil {
		return err
	}

	rows := render.ComputeRows(filterTokens(tokens, typeFilter, groupFilter, deprecatedOnly, hideDeprecated))

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, rows)
	case "markdown":
		return render.Markdown(out, rows)
	case "names":
		return render.Names(out, rows)
	case "table":
		return render.Table(out, rows, !color.NoColor)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// filterTokens keeps tokens matching every non-empty filter.
func filterTokens(tokens []*token.Token, typeFilter, groupFilter string, deprecatedOnly, hideDeprecated bool) []*token.Token {
	result := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if typeFilter != "" && tok.Type != typeFilter {
			continue
		}
		if groupFilter != "" && tok.Category() != groupFilter {
			continue
		}
		if deprecatedOnly && !tok.Deprecated {
			continue
		}
		if hideDeprecated && tok.Deprecated {
			continue
		}
		result = append(result, tok)
	}
	return result
}
