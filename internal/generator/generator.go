// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package generator drives the renderer over a set of component models and
// writes the resulting TypeScript files.
package generator

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tsbind/internal/genfs"
	"tsbind/internal/model"
	"tsbind/internal/naming"
	"tsbind/internal/renderer"
	"tsbind/internal/tsg"
	"tsbind/internal/validate"
)

const (
	indexBase    = "index"
	indexFile    = indexBase + ".ts"
	headerBanner = "// Code generated by tsbind. DO NOT EDIT.\n"
)

type Generator struct {
	opts     Options
	renderer *renderer.Renderer
}

func New(opts Options) (*Generator, error) {

	if err := validate.ValidateOutDir(opts.OutDir); err != nil {
		return nil, err
	}
	if _, err := ParseImportExt(string(opts.ImportExt)); err != nil {
		return nil, err
	}
	var rendererOpts []renderer.Option
	if opts.Policy != nil {
		rendererOpts = append(rendererOpts, renderer.WithReturnPolicy(*opts.Policy))
	}
	r, err := renderer.New(opts.Style, rendererOpts...)
	if err != nil {
		return nil, err
	}
	return &Generator{opts: opts, renderer: r}, nil
}

// Result lists the files a run produced or checked, relative to OutDir.
type Result struct {
	Files   []string
	Checked bool
}

// Run renders components and writes them to OutDir, or verifies them in
// check mode. Nothing is written when any component fails to render.
func (g *Generator) Run(ctx context.Context, components []*model.ComponentInterface) (*Result, error) {

	log.Debug().
		Str("outDir", g.opts.OutDir).
		Str("style", string(g.renderer.Style())).
		Int("components", len(components)).
		Bool("check", g.opts.Check).
		Msg("generating TypeScript declarations")

	files, err := g.Build(ctx, components)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate TypeScript declarations")
		return nil, err
	}
	result := &Result{Checked: g.opts.Check}
	for _, f := range files.Files() {
		result.Files = append(result.Files, f.RelativePath)
	}
	if g.opts.Check {
		if err = files.Verify(ctx, g.opts.OutDir); err != nil {
			return result, err
		}
		log.Debug().Int("files", files.Len()).Msg("generated files are up to date")
		return result, nil
	}
	if err = files.Write(ctx, g.opts.OutDir); err != nil {
		return nil, err
	}
	log.Debug().Int("files", files.Len()).Msg("TypeScript declarations generated successfully")
	return result, nil
}

// Build renders every component into an in-memory file set. Components render
// in parallel; all failures are reported together.
func (g *Generator) Build(ctx context.Context, components []*model.ComponentInterface) (*genfs.GenFS, error) {

	var reserved []string
	if g.opts.Index {
		reserved = append(reserved, indexBase)
	}
	if err := validate.ValidateComponents(components, reserved...); err != nil {
		return nil, errors.Wrap(err, "invalid components")
	}

	files := genfs.New()
	var mu sync.Mutex
	var result *multierror.Error

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, ci := range components {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := g.component(ci, files)
			if err != nil {
				mu.Lock()
				result = multierror.Append(result, errors.Wrapf(err, "component %s", ci.Namespace))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if result != nil {
		sort.Slice(result.Errors, func(i, j int) bool {
			return result.Errors[i].Error() < result.Errors[j].Error()
		})
		return nil, result.ErrorOrNil()
	}

	if g.opts.Index {
		if err := files.Add(indexFile, &genfs.File{RelativePath: indexFile, Data: g.index(components)}); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// component рендерит компоненту в собственный набор файлов и вливает его в files.
func (g *Generator) component(ci *model.ComponentInterface, files *genfs.GenFS) error {

	log.Debug().Str("namespace", ci.Namespace).Msg("rendering component")

	file, err := g.renderer.File(ci)
	if err != nil {
		return err
	}
	base := naming.KebabCase(ci.Namespace)
	file.Comment(headerBanner + "// Namespace: " + ci.Namespace + ". Style: " + string(g.renderer.Style()) + ".\n\n")
	out := []*genfs.File{{RelativePath: base + ".ts", Data: file.Bytes()}}

	if g.opts.Summary {
		var summary string
		if summary, err = g.renderer.Summary(ci); err != nil {
			return errors.Wrap(err, "summary")
		}
		out = append(out, &genfs.File{RelativePath: base + ".md", Data: []byte(summary)})
	}
	own := genfs.New()
	if err = own.Add(ci.Namespace, out...); err != nil {
		return err
	}
	return files.Merge(own)
}

// index собирает barrel-файл, реэкспортирующий все компоненты в порядке имён файлов.
func (g *Generator) index(components []*model.ComponentInterface) []byte {

	bases := make([]string, 0, len(components))
	for _, ci := range components {
		bases = append(bases, naming.KebabCase(ci.Namespace))
	}
	sort.Strings(bases)

	file := tsg.NewFile().Comment(headerBanner + "\n")
	for _, base := range bases {
		file.Add(tsg.NewStatement().ExportAll("./" + base + g.opts.ImportExt.suffix()))
		file.Line()
	}
	return file.Bytes()
}

// LoadModels loads every model document. Failures of all paths are reported together.
func LoadModels(paths []string) ([]*model.ComponentInterface, error) {

	var result *multierror.Error
	components := make([]*model.ComponentInterface, 0, len(paths))
	for _, path := range paths {
		ci, err := model.Load(path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		log.Debug().Str("path", path).Str("namespace", ci.Namespace).Msg("model loaded")
		components = append(components, ci)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return components, nil
}
