// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package model

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the only document format major version understood by Decode.
const SupportedMajor = "v1"

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var ErrUnsupportedFormat = errors.New("unsupported model format")

// FormatOf выбирает формат по расширению файла.
func FormatOf(path string) (Format, error) {

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%s", path)
}

// Load reads a model document from disk. When the document has no namespace
// the file base name without extension is used.
func Load(path string) (ci *ComponentInterface, err error) {

	var format Format
	if format, err = FormatOf(path); err != nil {
		return nil, err
	}
	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return nil, errors.Wrap(err, "read model")
	}
	if ci, err = Decode(data, format); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	if ci.Namespace == "" {
		ci.Namespace = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ci, nil
}

func Decode(data []byte, format Format) (*ComponentInterface, error) {

	var ci ComponentInterface
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &ci); err != nil {
			return nil, errors.Wrap(err, "decode json model")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &ci); err != nil {
			return nil, errors.Wrap(err, "decode yaml model")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &ci); err != nil {
			return nil, errors.Wrap(err, "decode toml model")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	if err := checkVersion(ci.Version); err != nil {
		return nil, err
	}
	if err := ci.CheckDefinitions(); err != nil {
		return nil, err
	}
	return &ci, nil
}

func checkVersion(version string) error {

	if version == "" {
		return nil
	}
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return errors.Errorf("model version %q is not a semantic version", version)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return errors.Errorf("model version %q: major %s is not supported, want %s", version, major, SupportedMajor)
	}
	return nil
}
