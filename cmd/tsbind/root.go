// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"tsbind/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "tsbind",
	Short: "TypeScript declarations from component interfaces",
	Long: `tsbind - TypeScript declarations from component interfaces

tsbind reads resolved component interface models (JSON, YAML or TOML) and renders
their records, enums and objects as TypeScript interfaces or type aliases.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

		cli.SetupLogger(os.Stderr, verbose, quiet)
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}
		var err error
		if cfg, configPath, err = cli.LoadConfig(cfgFile); err != nil {
			return cli.ConfigError("loading configuration", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover tsbind.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {

	if err := rootCmd.Execute(); err != nil {
		return cli.ReportError(os.Stderr, err)
	}
	return cli.ExitSuccess
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
