// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package naming projects model names and type descriptors into TypeScript.
package naming

import (
	"fmt"

	"github.com/pkg/errors"

	"tsbind/internal/model"
)

var (
	ErrUnknownKind  = errors.New("unknown type kind")
	ErrMissingType  = errors.New("missing type descriptor")
	ErrMissingName  = errors.New("named type without a name")
	ErrMissingInner = errors.New("container type without element type")
)

// Namer is the naming service the renderer depends on. VarName and FnName
// return member names, which may be reserved words; TypeName fails for
// descriptors it cannot project.
type Namer interface {
	ClassName(raw string) string
	VarName(raw string) string
	FnName(raw string) string
	TypeName(t *model.Type) (string, error)
}

type TypeScript struct{}

var _ Namer = TypeScript{}

func NewTypeScript() TypeScript {
	return TypeScript{}
}

func (TypeScript) ClassName(raw string) string {
	return PascalCase(raw)
}

func (TypeScript) VarName(raw string) string {
	return LowerCamelCase(raw)
}

func (TypeScript) FnName(raw string) string {
	return LowerCamelCase(raw)
}

var primitives = map[model.TypeKind]string{
	model.TypeKindInt8:      "/*i8*/number",
	model.TypeKindInt16:     "/*i16*/number",
	model.TypeKindInt32:     "/*i32*/number",
	model.TypeKindInt64:     "/*i64*/bigint",
	model.TypeKindUInt8:     "/*u8*/number",
	model.TypeKindUInt16:    "/*u16*/number",
	model.TypeKindUInt32:    "/*u32*/number",
	model.TypeKindUInt64:    "/*u64*/bigint",
	model.TypeKindFloat32:   "/*f32*/number",
	model.TypeKindFloat64:   "/*f64*/number",
	model.TypeKindBoolean:   "boolean",
	model.TypeKindString:    "string",
	model.TypeKindBytes:     "ArrayBuffer",
	model.TypeKindTimestamp: "Date",
	model.TypeKindDuration:  "number /* in milliseconds */",
}

func (n TypeScript) TypeName(t *model.Type) (string, error) {

	if t == nil {
		return "", ErrMissingType
	}
	if name, ok := primitives[t.Kind]; ok {
		return name, nil
	}
	switch t.Kind {
	case model.TypeKindRecord, model.TypeKindEnum, model.TypeKindCustom:
		if t.Name == "" {
			return "", errors.Wrapf(ErrMissingName, "%s", t.Kind)
		}
		return PascalCase(t.Name), nil
	case model.TypeKindObject:
		if t.Name == "" {
			return "", errors.Wrapf(ErrMissingName, "%s", t.Kind)
		}
		return n.ClassName(t.Name), nil
	case model.TypeKindCallbackInterface:
		if t.Name == "" {
			return "", errors.Wrapf(ErrMissingName, "%s", t.Kind)
		}
		return LowerCamelCase(t.Name), nil
	case model.TypeKindOptional:
		inner, err := n.element(t, t.Inner)
		if err != nil {
			return "", err
		}
		return inner + " | undefined", nil
	case model.TypeKindSequence:
		inner, err := n.element(t, t.Inner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Array<%s>", inner), nil
	case model.TypeKindMap:
		key, err := n.element(t, t.Key)
		if err != nil {
			return "", err
		}
		value, err := n.element(t, t.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Map<%s, %s>", key, value), nil
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", t.Kind)
}

func (n TypeScript) element(container, elem *model.Type) (string, error) {

	if elem == nil {
		return "", errors.Wrapf(ErrMissingInner, "%s", container.Kind)
	}
	name, err := n.TypeName(elem)
	if err != nil {
		return "", errors.Wrapf(err, "%s", container.Kind)
	}
	return name, nil
}
