// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package validate

import (
	"errors"
	"fmt"
	"os"

	"tsbind/internal/model"
	"tsbind/internal/naming"
)

func ValidateComponent(ci *model.ComponentInterface) error {

	if ci == nil {
		return fmt.Errorf("component cannot be nil")
	}
	if ci.Namespace == "" {
		return fmt.Errorf("component.Namespace cannot be empty")
	}
	if naming.KebabCase(ci.Namespace) == "" {
		return fmt.Errorf("component %q: namespace has no usable characters for a file name", ci.Namespace)
	}
	if err := ci.CheckDefinitions(); err != nil {
		return fmt.Errorf("component %q: %w", ci.Namespace, err)
	}
	return nil
}

// ValidateOutDir accepts a missing directory, it is created on write.
func ValidateOutDir(outDir string) error {

	if outDir == "" {
		return fmt.Errorf("outDir cannot be empty")
	}
	info, err := os.Stat(outDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("outDir %q: %w", outDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("outDir %q is not a directory", outDir)
	}
	return nil
}

// ValidateComponents проверяет каждую компоненту и то, что их файлы не совпадают
// между собой и с зарезервированными именами (reserved — имена без расширения).
func ValidateComponents(components []*model.ComponentInterface, reserved ...string) error {

	if len(components) == 0 {
		return fmt.Errorf("no components to generate")
	}
	taken := make(map[string]struct{}, len(reserved))
	for _, name := range reserved {
		taken[name] = struct{}{}
	}
	files := make(map[string]string, len(components))
	for _, ci := range components {
		if err := ValidateComponent(ci); err != nil {
			return err
		}
		file := naming.KebabCase(ci.Namespace)
		if _, ok := taken[file]; ok {
			return fmt.Errorf("component %q renders to %q, which is reserved", ci.Namespace, file+".ts")
		}
		if prev, ok := files[file]; ok {
			return fmt.Errorf("components %q and %q both render to %q", prev, ci.Namespace, file+".ts")
		}
		files[file] = ci.Namespace
	}
	return nil
}

func FindComponent(components []*model.ComponentInterface, namespace string) (*model.ComponentInterface, error) {

	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}
	for _, ci := range components {
		if ci != nil && ci.Namespace == namespace {
			return ci, nil
		}
	}
	return nil, fmt.Errorf("component %q not found", namespace)
}
