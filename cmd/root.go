/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenkit.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenkit/cmd/build"
	"bennypowers.dev/tokenkit/cmd/collect"
	"bennypowers.dev/tokenkit/cmd/list"
	"bennypowers.dev/tokenkit/cmd/mcp"
	"bennypowers.dev/tokenkit/cmd/validate"
	"bennypowers.dev/tokenkit/cmd/version"
	"bennypowers.dev/tokenkit/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokenkit",
	Short: "Validate and build design tokens",
	Long: `tokenkit validates design token files against a JSON Schema, collects them
into a source map, and builds CSS custom properties, flat JSON and TypeScript
typings from them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("root", "r", ".", "Project root directory")
	flags.StringP("prefix", "p", "", "Token name prefix (overrides config)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	viper.SetEnvPrefix("tokenkit")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(collect.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
