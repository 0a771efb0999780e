// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tsbind/internal/cli"
	"tsbind/internal/generator"
	"tsbind/internal/model"
	"tsbind/internal/renderer"
	"tsbind/internal/validate"
)

var (
	inspectStyle     string
	inspectNamespace string
	inspectTS        bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <model files...>",
	Short: "Print a markdown summary of a model",
	Long: `Print a markdown summary of one component. With several model files the
component is chosen by --namespace.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		style, err := renderer.ParseStyle(resolveString(inspectStyle, cfg.Style))
		if err != nil {
			return cli.ConfigError("invalid style", err)
		}
		r, err := renderer.New(style)
		if err != nil {
			return cli.ConfigError("invalid style", err)
		}
		components, err := generator.LoadModels(args)
		if err != nil {
			return cli.ModelLoadError("loading models", err)
		}
		ci, err := pickComponent(components, inspectNamespace)
		if err != nil {
			return cli.ConfigError("selecting component", err)
		}

		var out string
		if inspectTS {
			out, err = r.Render(ci)
		} else {
			out, err = r.Summary(ci)
		}
		if err != nil {
			return cli.GeneralError("rendering", err)
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func pickComponent(components []*model.ComponentInterface, namespace string) (*model.ComponentInterface, error) {

	if namespace != "" {
		return validate.FindComponent(components, namespace)
	}
	if len(components) != 1 {
		return nil, errors.Errorf("%d components loaded, choose one with --namespace", len(components))
	}
	return components[0], nil
}

func init() {

	inspectCmd.Flags().StringVar(&inspectStyle, "style", "", "declaration style: interface or type-alias")
	inspectCmd.Flags().StringVarP(&inspectNamespace, "namespace", "n", "", "namespace of the component to inspect")
	inspectCmd.Flags().BoolVar(&inspectTS, "ts", false, "print the TypeScript declarations instead of the summary")
}
