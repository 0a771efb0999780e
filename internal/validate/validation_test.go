// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsbind/internal/model"
)

func TestValidateComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		components []*model.ComponentInterface
		reserved   []string
		wantErr    string
	}{
		{name: "empty", wantErr: "no components"},
		{name: "nil component", components: []*model.ComponentInterface{nil}, wantErr: "cannot be nil"},
		{name: "no namespace", components: []*model.ComponentInterface{{}}, wantErr: "Namespace cannot be empty"},
		{name: "unusable namespace", components: []*model.ComponentInterface{{Namespace: "__"}}, wantErr: "no usable characters"},
		{
			name:       "colliding files",
			components: []*model.ComponentInterface{{Namespace: "my_lib"}, {Namespace: "MyLib"}},
			wantErr:    `both render to "my-lib.ts"`,
		},
		{
			name:       "nil definition",
			components: []*model.ComponentInterface{{Namespace: "geo", Records: []*model.Record{nil}}},
			wantErr:    `component "geo": record #0: nil definition`,
		},
		{
			name:       "reserved file",
			components: []*model.ComponentInterface{{Namespace: "a"}, {Namespace: "Index"}},
			reserved:   []string{"index"},
			wantErr:    `component "Index" renders to "index.ts", which is reserved`,
		},
		{name: "index without reservation", components: []*model.ComponentInterface{{Namespace: "index"}}},
		{name: "ok", components: []*model.ComponentInterface{{Namespace: "a"}, {Namespace: "b"}}, reserved: []string{"index"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateComponents(tt.components, tt.reserved...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindComponent(t *testing.T) {
	t.Parallel()

	components := []*model.ComponentInterface{{Namespace: "a"}, nil, {Namespace: "b"}}

	ci, err := FindComponent(components, "b")
	require.NoError(t, err)
	assert.Same(t, components[2], ci)

	_, err = FindComponent(components, "c")
	assert.Error(t, err)

	_, err = FindComponent(components, "")
	assert.Error(t, err)
}

func TestValidateOutDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	tests := []struct {
		name    string
		outDir  string
		wantErr string
	}{
		{name: "empty", outDir: "", wantErr: "cannot be empty"},
		{name: "existing directory", outDir: dir},
		{name: "missing directory", outDir: filepath.Join(dir, "gen", "ts")},
		{name: "regular file", outDir: file, wantErr: "is not a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateOutDir(tt.outDir)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
