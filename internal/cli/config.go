// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"tsbind/internal/generator"
	"tsbind/internal/renderer"
)

const (
	maxWalkDepth = 25
	envPrefix    = "TSBIND"
)

var configNames = []string{"tsbind.yaml", "tsbind.yml"}

// Config represents the tsbind configuration from tsbind.yaml. Models lists
// model documents used when none are given on the command line; Void and
// Async override the return policy of Style when non-empty.
type Config struct {
	Models    []string `mapstructure:"models" yaml:"models"`
	Out       string   `mapstructure:"out" yaml:"out"`
	Style     string   `mapstructure:"style" yaml:"style"`
	Void      string   `mapstructure:"void" yaml:"void"`
	Async     string   `mapstructure:"async" yaml:"async"`
	Index     bool     `mapstructure:"index" yaml:"index"`
	ImportExt string   `mapstructure:"import_ext" yaml:"import_ext"`
	Summary   bool     `mapstructure:"summary" yaml:"summary"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// env > config file > defaults. Flags are applied on top by the commands.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {

	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Wrap(err, "getting cwd")
	}
	return loadConfig(explicitConfigPath, cwd)
}

func loadConfig(explicitConfigPath, startDir string) (*Config, string, error) {

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath, startDir)
	if err != nil {
		return nil, "", err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err = v.ReadInConfig(); err != nil {
			return nil, configPath, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, configPath, errors.Wrap(err, "unmarshaling config")
	}
	// пути моделей из файла считаются от каталога файла
	if configPath != "" {
		base := filepath.Dir(configPath)
		for i, model := range cfg.Models {
			if !filepath.IsAbs(model) {
				cfg.Models[i] = filepath.Join(base, model)
			}
		}
	}
	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("models", []string{})
	v.SetDefault("out", ".")
	v.SetDefault("style", string(renderer.StyleInterface))
	v.SetDefault("void", "")
	v.SetDefault("async", "")
	v.SetDefault("index", true)
	v.SetDefault("import_ext", string(generator.ImportExtNone))
	v.SetDefault("summary", false)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from startDir looking for tsbind.yaml or tsbind.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath, startDir string) (string, error) {

	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", errors.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	dir := startDir
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

// Options converts the configuration into generator options.
func (c *Config) Options() (generator.Options, error) {

	opts := generator.DefaultOptions()

	style, err := renderer.ParseStyle(c.Style)
	if err != nil {
		return opts, err
	}
	importExt, err := generator.ParseImportExt(c.ImportExt)
	if err != nil {
		return opts, err
	}
	opts.Style = style
	opts.OutDir = c.Out
	opts.Index = c.Index
	opts.ImportExt = importExt
	opts.Summary = c.Summary

	if c.Void == "" && c.Async == "" {
		return opts, nil
	}
	policy := style.DefaultPolicy()
	if c.Void != "" {
		if policy.Void, err = renderer.ParseVoidPolicy(c.Void); err != nil {
			return opts, err
		}
	}
	if c.Async != "" {
		if policy.Async, err = renderer.ParseAsyncPolicy(c.Async); err != nil {
			return opts, err
		}
	}
	opts.Policy = &policy
	return opts, nil
}
