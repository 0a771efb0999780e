// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package renderer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsbind/internal/model"
	"tsbind/internal/naming"
)

var errStub = errors.New("stub: unresolved type")

// stubNamer отдаёт имена как есть, а имя типа берёт из дескриптора.
type stubNamer struct{}

func (stubNamer) ClassName(raw string) string { return raw }
func (stubNamer) VarName(raw string) string   { return raw }
func (stubNamer) FnName(raw string) string    { return raw }

func (stubNamer) TypeName(t *model.Type) (string, error) {
	if t == nil || t.Name == "" {
		return "", errStub
	}
	return t.Name, nil
}

type stubDocs struct{}

func (stubDocs) FormatDoc(doc string, indent int) (string, error) {
	if doc == "" {
		return "", nil
	}
	return strings.Repeat(" ", indent) + "// " + doc, nil
}

func typ(name string) *model.Type {
	return model.Named(model.TypeKindCustom, name)
}

func stubbed(style Style) *Renderer {
	r, _ := New(style, WithNamer(stubNamer{}), WithDocFormatter(stubDocs{}))
	return r
}

const (
	recordBanner = "// ==========\n// Record definitions:\n// ==========\n"
	enumBanner   = "// ==========\n// Enum definitions:\n// ==========\n"
	objectBanner = "// ==========\n// Object definitions:\n// ==========\n"
)

func sampleComponent() *model.ComponentInterface {
	return &model.ComponentInterface{
		Namespace: "sample",
		Records: []*model.Record{
			{Name: "Point", Fields: []*model.Field{
				{Name: "x", Type: typ("number")},
				{Name: "y", Type: typ("number")},
			}},
		},
		Objects: []*model.Object{
			{Name: "Counter", Methods: []*model.Method{
				{Name: "increment", Arguments: []*model.Argument{{Name: "by", Type: typ("number")}}, ReturnType: typ("number")},
			}},
		},
	}
}

func TestRenderFullOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{
			name:  "interface",
			style: StyleInterface,
			want: recordBanner +
				"\nexport interface Point {\n  x: number;\n  y: number;\n}\n" +
				"\n" + enumBanner +
				"\n" + objectBanner +
				"\nexport interface Counter {\n  increment(by: number): number;\n}\n",
		},
		{
			name:  "type alias",
			style: StyleTypeAlias,
			want: recordBanner +
				"\nexport type Point = {\n  x: number;\n  y: number;\n};\n" +
				"\n" + enumBanner +
				"\n" + objectBanner +
				"\nexport type Counter = {\n  increment(by: number): number;\n};\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := stubbed(tt.style).Render(sampleComponent())
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	for _, style := range []Style{StyleInterface, StyleTypeAlias} {
		r := NewInterface()
		if style == StyleTypeAlias {
			r = NewTypeAlias()
		}
		ci := &model.ComponentInterface{
			Records: []*model.Record{{Name: "point", Docstring: "A point.", Fields: []*model.Field{
				{Name: "x_pos", Type: model.Primitive(model.TypeKindFloat64)},
				{Name: "tags", Type: model.Map(model.Primitive(model.TypeKindString), model.Sequence(model.Primitive(model.TypeKindInt32)))},
			}}},
			Enums: []*model.Enum{{Name: "color", Variants: []*model.Variant{{Name: "red"}, {Name: "green"}}}},
			Objects: []*model.Object{{Name: "store", Methods: []*model.Method{
				{Name: "load", Async: true},
				{Name: "save", Arguments: []*model.Argument{{Name: "p", Type: model.Named(model.TypeKindRecord, "point")}}},
			}}},
		}
		first, err := r.Render(ci)
		require.NoError(t, err)
		second, err := r.Render(ci)
		require.NoError(t, err)
		assert.Equal(t, first, second, "style %s", style)
	}
}

func TestRenderOrderPreserved(t *testing.T) {
	t.Parallel()

	ci := &model.ComponentInterface{
		Records: []*model.Record{{Name: "Zeta"}, {Name: "Alpha"}, {Name: "Mid"}},
		Enums:   []*model.Enum{{Name: "Second"}, {Name: "First"}},
		Objects: []*model.Object{{Name: "Omega"}, {Name: "Beta"}},
	}
	got, err := stubbed(StyleInterface).Render(ci)
	require.NoError(t, err)

	order := []string{
		"Record definitions:", "interface Zeta", "interface Alpha", "interface Mid",
		"Enum definitions:", "enum Second", "enum First",
		"Object definitions:", "interface Omega", "interface Beta",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(got, marker)
		require.GreaterOrEqual(t, idx, 0, "missing %q", marker)
		assert.Greater(t, idx, last, "%q out of order", marker)
		last = idx
	}
}

func TestRecordFields(t *testing.T) {
	t.Parallel()

	ci := &model.ComponentInterface{
		Records: []*model.Record{{Name: "Item", Fields: []*model.Field{
			{Name: "id", Type: typ("string")},
			{Name: "count", Type: typ("number")},
		}}},
	}
	got, err := stubbed(StyleInterface).Render(ci)
	require.NoError(t, err)
	assert.Contains(t, got, "export interface Item {\n  id: string;\n  count: number;\n}")
	assert.Equal(t, 1, strings.Count(got, "interface Item"))
}

func TestMethodReturnPolicies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    *model.Method
		iface     string
		typeAlias string
	}{
		{
			name:      "no return, sync",
			method:    &model.Method{Name: "reset"},
			iface:     "  reset();\n",
			typeAlias: "  reset(): void;\n",
		},
		{
			name:      "return, sync",
			method:    &model.Method{Name: "get", ReturnType: typ("T")},
			iface:     "  get(): T;\n",
			typeAlias: "  get(): T;\n",
		},
		{
			name:      "return, async",
			method:    &model.Method{Name: "fetch", ReturnType: typ("T"), Async: true},
			iface:     "  fetch(): Promise<T>;\n",
			typeAlias: "  fetch(): Promise<T>;\n",
		},
		{
			name:      "no return, async",
			method:    &model.Method{Name: "flush", Async: true},
			iface:     "  flush(): Promise<void>;\n",
			typeAlias: "  flush(): void;\n",
		},
		{
			name: "parameters",
			method: &model.Method{Name: "put", Arguments: []*model.Argument{
				{Name: "key", Type: typ("string")},
				{Name: "value", Type: typ("number")},
			}},
			iface:     "  put(key: string, value: number);\n",
			typeAlias: "  put(key: string, value: number): void;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ci := &model.ComponentInterface{Objects: []*model.Object{{Name: "Api", Methods: []*model.Method{tt.method}}}}

			got, err := stubbed(StyleInterface).Render(ci)
			require.NoError(t, err)
			assert.Contains(t, got, "export interface Api {\n"+tt.iface+"}")

			got, err = stubbed(StyleTypeAlias).Render(ci)
			require.NoError(t, err)
			assert.Contains(t, got, "export type Api = {\n"+tt.typeAlias+"};")
		})
	}
}

func TestReturnPolicyOverride(t *testing.T) {
	t.Parallel()

	r, err := New(StyleInterface,
		WithNamer(stubNamer{}),
		WithReturnPolicy(ReturnPolicy{Void: ExplicitVoid, Async: WrapAsyncOnlyIfReturnType}))
	require.NoError(t, err)

	ci := &model.ComponentInterface{Objects: []*model.Object{{Name: "Api", Methods: []*model.Method{{Name: "flush", Async: true}}}}}
	got, err := r.Render(ci)
	require.NoError(t, err)
	assert.Contains(t, got, "export interface Api {\n  flush(): void;\n}")
}

func TestEmptyBodies(t *testing.T) {
	t.Parallel()

	ci := &model.ComponentInterface{
		Records: []*model.Record{{Name: "Unit"}},
		Objects: []*model.Object{{Name: "Nothing"}},
	}

	got, err := stubbed(StyleInterface).Render(ci)
	require.NoError(t, err)
	assert.Contains(t, got, "export interface Unit {}\n")
	assert.Contains(t, got, "export interface Nothing {}\n")

	got, err = stubbed(StyleTypeAlias).Render(ci)
	require.NoError(t, err)
	assert.Contains(t, got, "export type Unit = {};\n")
	assert.Contains(t, got, "export type Nothing = {};\n")
}

func TestDocstrings(t *testing.T) {
	t.Parallel()

	ci := &model.ComponentInterface{
		Records: []*model.Record{{Name: "Item", Docstring: "An item.", Fields: []*model.Field{
			{Name: "id", Type: model.Primitive(model.TypeKindString), Docstring: "The id."},
			{Name: "count", Type: model.Primitive(model.TypeKindUInt32)},
		}}},
	}
	got, err := NewInterface().Render(ci)
	require.NoError(t, err)

	want := "/**\n * An item.\n */\n" +
		"export interface Item {\n" +
		"  /**\n   * The id.\n   */\n" +
		"  id: string;\n" +
		"  count: /*u32*/number;\n" +
		"}"
	assert.Contains(t, got, want)
	assert.NotContains(t, got, "\n\n  ")
}

func TestDocstringsStubFormatter(t *testing.T) {
	t.Parallel()

	ci := &model.ComponentInterface{
		Objects: []*model.Object{{Name: "Api", Docstring: "top", Methods: []*model.Method{
			{Name: "run", Docstring: "runs"},
			{Name: "stop"},
		}}},
	}
	got, err := stubbed(StyleTypeAlias).Render(ci)
	require.NoError(t, err)
	assert.Contains(t, got, "// top\nexport type Api = {\n  // runs\n  run(): void;\n  stop(): void;\n};")
}

func TestEnums(t *testing.T) {
	t.Parallel()

	ci := &model.ComponentInterface{
		Enums: []*model.Enum{
			{Name: "color", Variants: []*model.Variant{{Name: "red", Docstring: "Warm."}, {Name: "dark_blue"}}},
			{Name: "shape", Docstring: "A shape.", Variants: []*model.Variant{
				{Name: "circle", Fields: []*model.Field{{Name: "radius", Type: model.Primitive(model.TypeKindFloat64)}}},
				{Name: "point"},
			}},
		},
	}
	for _, r := range []*Renderer{NewInterface(), NewTypeAlias()} {
		got, err := r.Render(ci)
		require.NoError(t, err)
		assert.Contains(t, got, "export enum Color {\n  /**\n   * Warm.\n   */\n  Red,\n  DarkBlue,\n}\n")
		assert.Contains(t, got, "/**\n * A shape.\n */\nexport type Shape =\n"+
			"  | { tag: \"Circle\"; radius: /*f64*/number }\n"+
			"  | { tag: \"Point\" };\n")
	}
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ci      *model.ComponentInterface
		wantErr error
		wantMsg string
	}{
		{
			name:    "field type",
			ci:      &model.ComponentInterface{Records: []*model.Record{{Name: "Point", Fields: []*model.Field{{Name: "x"}}}}},
			wantErr: errStub,
			wantMsg: "record Point: field x",
		},
		{
			name: "argument type",
			ci: &model.ComponentInterface{Objects: []*model.Object{{Name: "Api", Methods: []*model.Method{
				{Name: "call", Arguments: []*model.Argument{{Name: "a", Type: &model.Type{Kind: model.TypeKindCustom}}}},
			}}}},
			wantErr: errStub,
			wantMsg: "object Api: method call: argument a",
		},
		{
			name: "return type",
			ci: &model.ComponentInterface{Objects: []*model.Object{{Name: "Api", Methods: []*model.Method{
				{Name: "call", Async: true, ReturnType: &model.Type{Kind: model.TypeKindCustom}},
			}}}},
			wantErr: errStub,
			wantMsg: "object Api: method call: return type",
		},
		{
			name: "variant field",
			ci: &model.ComponentInterface{Enums: []*model.Enum{{Name: "Shape", Variants: []*model.Variant{
				{Name: "Circle", Fields: []*model.Field{{Name: "r"}}},
			}}}},
			wantErr: errStub,
			wantMsg: "enum Shape: variant Circle: field r",
		},
		{
			name:    "nil record",
			ci:      &model.ComponentInterface{Records: []*model.Record{nil}},
			wantErr: model.ErrNilDefinition,
			wantMsg: "record #0",
		},
		{
			name:    "nil field",
			ci:      &model.ComponentInterface{Records: []*model.Record{{Name: "Point", Fields: []*model.Field{nil}}}},
			wantErr: model.ErrNilDefinition,
			wantMsg: "record Point: field #0",
		},
		{
			name:    "nil method",
			ci:      &model.ComponentInterface{Objects: []*model.Object{{Name: "Api", Methods: []*model.Method{nil}}}},
			wantErr: model.ErrNilDefinition,
			wantMsg: "object Api: method #0",
		},
		{
			name:    "nil variant",
			ci:      &model.ComponentInterface{Enums: []*model.Enum{{Name: "Shape", Variants: []*model.Variant{nil}}}},
			wantErr: model.ErrNilDefinition,
			wantMsg: "enum Shape: variant #0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, style := range []Style{StyleInterface, StyleTypeAlias} {
				got, err := stubbed(style).Render(tt.ci)
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.wantMsg)
				assert.Empty(t, got)
			}
		})
	}
}

func TestSummaryNilDefinition(t *testing.T) {
	t.Parallel()

	got, err := NewInterface().Summary(&model.ComponentInterface{Namespace: "x", Objects: []*model.Object{nil}})
	require.ErrorIs(t, err, model.ErrNilDefinition)
	assert.Empty(t, got)
}

func TestReservedMemberNames(t *testing.T) {
	t.Parallel()

	ci := &model.ComponentInterface{
		Records: []*model.Record{{Name: "options", Fields: []*model.Field{
			{Name: "type", Type: model.Primitive(model.TypeKindString)},
			{Name: "default", Type: model.Primitive(model.TypeKindString)},
		}}},
		Objects: []*model.Object{{Name: "store", Methods: []*model.Method{
			{Name: "delete", Arguments: []*model.Argument{{Name: "in", Type: model.Primitive(model.TypeKindString)}}},
		}}},
	}
	got, err := NewInterface().Render(ci)
	require.NoError(t, err)
	assert.Contains(t, got, "  type: string;\n  default: string;\n")
	assert.Contains(t, got, "  delete(input: string);\n")
	assert.NotContains(t, got, "typeName")
	assert.NotContains(t, got, "deleteKey")
}

func TestRenderDocstringError(t *testing.T) {
	t.Parallel()

	ci := &model.ComponentInterface{Records: []*model.Record{{Name: "Point", Fields: []*model.Field{
		{Name: "x", Type: model.Primitive(model.TypeKindInt8), Docstring: "bad */ doc"},
	}}}}
	got, err := NewTypeAlias().Render(ci)
	assert.ErrorIs(t, err, naming.ErrCommentTerminator)
	assert.Empty(t, got)
}

func TestNewUnknownStyle(t *testing.T) {
	t.Parallel()

	_, err := New(Style("class"))
	assert.Error(t, err)

	style, err := ParseStyle("type-alias")
	require.NoError(t, err)
	assert.Equal(t, TypeAliasReturnPolicy, style.DefaultPolicy())
	assert.Equal(t, InterfaceReturnPolicy, StyleInterface.DefaultPolicy())
}

func TestRenderNil(t *testing.T) {
	t.Parallel()

	_, err := NewInterface().Render(nil)
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	t.Parallel()

	ci := &model.ComponentInterface{
		Namespace: "sample",
		Records: []*model.Record{{Name: "Item", Fields: []*model.Field{
			{Name: "id", Type: model.Optional(model.Primitive(model.TypeKindString)), Docstring: "The id.\nMore."},
		}}},
		Objects: []*model.Object{{Name: "Store", Methods: []*model.Method{{Name: "load_all", Async: true}}}},
	}
	got, err := NewInterface().Summary(ci)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "# sample\n"))
	assert.Contains(t, got, "## Records")
	assert.Contains(t, got, "`string \\| undefined`")
	assert.Contains(t, got, "The id.")
	assert.NotContains(t, got, "More.")
	assert.Contains(t, got, "## Enums\n\n*None.*")
	assert.Contains(t, got, "`loadAll(): Promise<void>`")
	assert.Contains(t, got, "## Declarations\n\n```typescript\n")
	assert.Contains(t, got, "export interface Store {\n  loadAll(): Promise<void>;\n}\n```\n")
}
