// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package genfs holds generated files in memory and either writes them to
// disk or verifies that disk already matches them.
package genfs

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const ioLimit = 12

// ErrStale marks a file on disk that is missing or differs from the generated one.
var ErrStale = errors.New("generated file is stale")

type File struct {
	// RelativePath is where the file is written, relative to the output prefix.
	RelativePath string
	Data         []byte
}

type entry struct {
	data  []byte
	owner string
}

// GenFS is safe for concurrent Add and Merge. Files cannot be removed once added.
type GenFS struct {
	files map[string]entry
	mu    sync.Mutex
}

func New() *GenFS {
	return &GenFS{
		files: make(map[string]entry),
	}
}

// Add adds files produced by owner. Nothing is added if any path is absolute
// or already taken.
func (fs *GenFS) Add(owner string, files ...*File) error {

	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.add(owner, files...)
}

func (fs *GenFS) add(owner string, files ...*File) error {

	var result *multierror.Error
	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		if prev, has := fs.files[f.RelativePath]; has {
			result = multierror.Append(result, errors.Errorf("cannot create %s for %q, already created for %q", f.RelativePath, owner, prev.owner))
		} else if _, dup := seen[f.RelativePath]; dup {
			result = multierror.Append(result, errors.Errorf("cannot create %s twice for %q", f.RelativePath, owner))
		}
		if filepath.IsAbs(f.RelativePath) {
			result = multierror.Append(result, errors.Errorf("generated files must have relative paths, got %s from %q", f.RelativePath, owner))
		}
		seen[f.RelativePath] = struct{}{}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	for _, f := range files {
		fs.files[f.RelativePath] = entry{data: f.Data, owner: owner}
	}
	return nil
}

// Merge moves every file of other into fs. Conflicting paths are reported together.
func (fs *GenFS) Merge(other *GenFS) error {

	other.mu.Lock()
	entries := make(map[string]entry, len(other.files))
	for path, e := range other.files {
		entries[path] = e
	}
	other.mu.Unlock()

	fs.mu.Lock()
	defer fs.mu.Unlock()
	var result *multierror.Error
	for _, path := range sortedKeys(entries) {
		e := entries[path]
		if err := fs.add(e.owner, &File{RelativePath: path, Data: e.data}); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Files returns a copy of the contents sorted by path.
func (fs *GenFS) Files() []File {

	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]File, 0, len(fs.files))
	for _, path := range sortedKeys(fs.files) {
		out = append(out, File{RelativePath: path, Data: fs.files[path].data})
	}
	return out
}

func (fs *GenFS) Len() int {

	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.files)
}

// Write writes every file under prefix. Each file goes to a temporary file in
// the target directory first and is renamed into place, so readers never see
// a partially written file.
func (fs *GenFS) Write(ctx context.Context, prefix string) error {

	files := fs.Files()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ioLimit)
	for _, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeAtomic(filepath.Join(prefix, f.RelativePath), f.Data)
		})
	}
	return g.Wait()
}

// Verify compares every file under prefix with its generated contents. Missing
// or different files are collected into one error whose parts wrap ErrStale.
func (fs *GenFS) Verify(ctx context.Context, prefix string) error {

	files := fs.Files()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ioLimit)

	var mu sync.Mutex
	var result *multierror.Error
	stale := func(err error) {
		mu.Lock()
		result = multierror.Append(result, err)
		mu.Unlock()
	}
	for _, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(prefix, f.RelativePath)
			onDisk, err := os.ReadFile(path) //nolint:gosec
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					stale(errors.Wrapf(ErrStale, "%s: should exist, but does not", path))
					return nil
				}
				return errors.Wrapf(err, "%s: error reading file", path)
			}
			if diff := cmp.Diff(string(onDisk), string(f.Data)); diff != "" {
				stale(errors.Wrapf(ErrStale, "%s would have changed:\n\n%s", path, diff))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "io error while verifying tree")
	}
	if result != nil {
		sort.Slice(result.Errors, func(i, j int) bool {
			return result.Errors[i].Error() < result.Errors[j].Error()
		})
	}
	return result.ErrorOrNil()
}

func writeAtomic(path string, data []byte) (err error) {

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "%s: failed to ensure parent directory exists", path)
	}
	var tmp *os.File
	if tmp, err = os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp"); err != nil {
		return errors.Wrapf(err, "%s: create temporary file", path)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "%s: error while writing file", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "%s: error while writing file", path)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "%s: set permissions", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "%s: rename into place", path)
	}
	return nil
}

func sortedKeys(m map[string]entry) []string {
	return slices.Sorted(maps.Keys(m))
}
