// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tsbind/internal/cli"
	"tsbind/internal/generator"
	"tsbind/internal/genfs"
)

var (
	generateOut       string
	generateStyle     string
	generateVoid      string
	generateAsync     string
	generateImportExt string
	generateIndex     bool
	generateSummary   bool
	generateCheck     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [model files...]",
	Short: "Render TypeScript declarations",
	Long: `Render one <namespace>.ts file per model document, plus an index.ts that
re-exports all of them. Without arguments the models listed in tsbind.yaml are used.`,
	Example: `  # Interface style into ./gen
  tsbind generate --out gen geometry.json

  # Type aliases, explicit void everywhere, ESM import paths
  tsbind generate --style type-alias --import-ext js models/*.yaml

  # Fail if checked-in files are out of date
  tsbind generate --check`,
	RunE: func(cmd *cobra.Command, args []string) error {

		applyGenerateFlags(cmd, cfg)

		paths := args
		if len(paths) == 0 {
			paths = cfg.Models
		}
		if len(paths) == 0 {
			return cli.ConfigError("no model files", errors.New("pass model files as arguments or list them under models in tsbind.yaml"))
		}

		opts, err := cfg.Options()
		if err != nil {
			return cli.ConfigError("invalid options", err)
		}
		opts.Check = generateCheck

		gen, err := generator.New(opts)
		if err != nil {
			return cli.ConfigError("invalid options", err)
		}
		components, err := generator.LoadModels(paths)
		if err != nil {
			return cli.ModelLoadError("loading models", err)
		}

		result, err := gen.Run(cmd.Context(), components)
		if err != nil {
			if errors.Is(err, genfs.ErrStale) {
				return cli.StaleError("generated files are out of date", err)
			}
			return cli.GeneralError("generating", err)
		}
		if quiet {
			return nil
		}
		verb := "Generated"
		if result.Checked {
			verb = "Checked"
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d files in %s\n", verb, len(result.Files), opts.OutDir)
		return nil
	},
}

// applyGenerateFlags переносит явно заданные флаги поверх конфигурации.
func applyGenerateFlags(cmd *cobra.Command, c *cli.Config) {

	flags := cmd.Flags()
	c.Out = resolveString(generateOut, c.Out)
	c.Style = resolveString(generateStyle, c.Style)
	c.Void = resolveString(generateVoid, c.Void)
	c.Async = resolveString(generateAsync, c.Async)
	c.ImportExt = resolveString(generateImportExt, c.ImportExt)
	if flags.Changed("index") {
		c.Index = generateIndex
	}
	if flags.Changed("summary") {
		c.Summary = generateSummary
	}
}

func init() {

	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "output directory (default from config, else .)")
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "declaration style: interface or type-alias")
	generateCmd.Flags().StringVar(&generateVoid, "void", "", "methods without a return type: omit or explicit (default per style)")
	generateCmd.Flags().StringVar(&generateAsync, "async", "", "promise wrapping: always or if-return (default per style)")
	generateCmd.Flags().StringVar(&generateImportExt, "import-ext", "", "extension of index.ts import paths: none, ts or js")
	generateCmd.Flags().BoolVar(&generateIndex, "index", true, "write index.ts re-exporting every component")
	generateCmd.Flags().BoolVar(&generateSummary, "summary", false, "write a markdown summary next to each component")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "verify files on disk instead of writing them")
}
