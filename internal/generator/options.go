// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package generator

import (
	"github.com/pkg/errors"

	"tsbind/internal/renderer"
)

// ImportExt is the extension index.ts appends to its re-export paths.
type ImportExt string

const (
	ImportExtNone ImportExt = "none"
	ImportExtTS   ImportExt = "ts"
	ImportExtJS   ImportExt = "js"
)

func ParseImportExt(s string) (ImportExt, error) {

	switch ImportExt(s) {
	case ImportExtNone, ImportExtTS, ImportExtJS:
		return ImportExt(s), nil
	case "":
		return ImportExtNone, nil
	}
	return "", errors.Errorf("unknown import extension %q, want none, ts or js", s)
}

func (e ImportExt) suffix() string {

	switch e {
	case ImportExtTS:
		return ".ts"
	case ImportExtJS:
		return ".js"
	}
	return ""
}

type Options struct {
	Style renderer.Style
	// Policy overrides the return-type policy of Style when set.
	Policy *renderer.ReturnPolicy
	OutDir string

	Index     bool
	ImportExt ImportExt
	Summary   bool
	// Check verifies files on disk instead of writing them.
	Check bool
}

func DefaultOptions() Options {
	return Options{
		Style:     renderer.StyleInterface,
		OutDir:    ".",
		Index:     true,
		ImportExt: ImportExtNone,
	}
}
