// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package model

import (
	"github.com/pkg/errors"
)

// ErrNilDefinition reports a nil entry in a component model.
var ErrNilDefinition = errors.New("nil definition")

type TypeKind string

const (
	TypeKindInt8      TypeKind = "int8"
	TypeKindInt16     TypeKind = "int16"
	TypeKindInt32     TypeKind = "int32"
	TypeKindInt64     TypeKind = "int64"
	TypeKindUInt8     TypeKind = "uint8"
	TypeKindUInt16    TypeKind = "uint16"
	TypeKindUInt32    TypeKind = "uint32"
	TypeKindUInt64    TypeKind = "uint64"
	TypeKindFloat32   TypeKind = "float32"
	TypeKindFloat64   TypeKind = "float64"
	TypeKindBoolean   TypeKind = "boolean"
	TypeKindString    TypeKind = "string"
	TypeKindBytes     TypeKind = "bytes"
	TypeKindTimestamp TypeKind = "timestamp"
	TypeKindDuration  TypeKind = "duration"

	TypeKindRecord            TypeKind = "record"
	TypeKindEnum              TypeKind = "enum"
	TypeKindObject            TypeKind = "object"
	TypeKindCallbackInterface TypeKind = "callback_interface"
	TypeKindCustom            TypeKind = "custom"

	TypeKindOptional TypeKind = "optional"
	TypeKindSequence TypeKind = "sequence"
	TypeKindMap      TypeKind = "map"
)

// ComponentInterface is the resolved description of one component.
// Slices are ordered and the order is the output order.
type ComponentInterface struct {
	Namespace string `json:"namespace" yaml:"namespace" toml:"namespace"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`

	Records []*Record `json:"records,omitempty" yaml:"records,omitempty" toml:"records,omitempty"`
	Enums   []*Enum   `json:"enums,omitempty" yaml:"enums,omitempty" toml:"enums,omitempty"`
	Objects []*Object `json:"objects,omitempty" yaml:"objects,omitempty" toml:"objects,omitempty"`
}

type Record struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Fields    []*Field `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
	Docstring string   `json:"docstring,omitempty" yaml:"docstring,omitempty" toml:"docstring,omitempty"`
}

type Field struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Type      *Type  `json:"type" yaml:"type" toml:"type"`
	Docstring string `json:"docstring,omitempty" yaml:"docstring,omitempty" toml:"docstring,omitempty"`
}

type Enum struct {
	Name      string     `json:"name" yaml:"name" toml:"name"`
	Variants  []*Variant `json:"variants,omitempty" yaml:"variants,omitempty" toml:"variants,omitempty"`
	Docstring string     `json:"docstring,omitempty" yaml:"docstring,omitempty" toml:"docstring,omitempty"`
}

// IsFlat сообщает, что ни один вариант не несёт полей.
func (e *Enum) IsFlat() bool {

	for _, variant := range e.Variants {
		if variant != nil && len(variant.Fields) > 0 {
			return false
		}
	}
	return true
}

type Variant struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Fields    []*Field `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
	Docstring string   `json:"docstring,omitempty" yaml:"docstring,omitempty" toml:"docstring,omitempty"`
}

type Object struct {
	Name      string    `json:"name" yaml:"name" toml:"name"`
	Methods   []*Method `json:"methods,omitempty" yaml:"methods,omitempty" toml:"methods,omitempty"`
	Docstring string    `json:"docstring,omitempty" yaml:"docstring,omitempty" toml:"docstring,omitempty"`
}

type Method struct {
	Name       string      `json:"name" yaml:"name" toml:"name"`
	Arguments  []*Argument `json:"arguments,omitempty" yaml:"arguments,omitempty" toml:"arguments,omitempty"`
	ReturnType *Type       `json:"returnType,omitempty" yaml:"returnType,omitempty" toml:"returnType,omitempty"`
	Async      bool        `json:"async,omitempty" yaml:"async,omitempty" toml:"async,omitempty"`
	Docstring  string      `json:"docstring,omitempty" yaml:"docstring,omitempty" toml:"docstring,omitempty"`
}

type Argument struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Type *Type  `json:"type" yaml:"type" toml:"type"`
}

// Type is a type descriptor. Name is set for named kinds (record, enum,
// object, callback_interface, custom); Inner for optional and sequence;
// Key and Value for map.
type Type struct {
	Kind  TypeKind `json:"kind" yaml:"kind" toml:"kind"`
	Name  string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Inner *Type    `json:"inner,omitempty" yaml:"inner,omitempty" toml:"inner,omitempty"`
	Key   *Type    `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
	Value *Type    `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

func (t *Type) String() string {

	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case TypeKindOptional:
		return "optional<" + t.Inner.String() + ">"
	case TypeKindSequence:
		return "sequence<" + t.Inner.String() + ">"
	case TypeKindMap:
		return "map<" + t.Key.String() + ", " + t.Value.String() + ">"
	}
	if t.Name != "" {
		return string(t.Kind) + " " + t.Name
	}
	return string(t.Kind)
}

func Primitive(kind TypeKind) *Type {
	return &Type{Kind: kind}
}

func Named(kind TypeKind, name string) *Type {
	return &Type{Kind: kind, Name: name}
}

func Optional(inner *Type) *Type {
	return &Type{Kind: TypeKindOptional, Inner: inner}
}

func Sequence(inner *Type) *Type {
	return &Type{Kind: TypeKindSequence, Inner: inner}
}

func Map(key, value *Type) *Type {
	return &Type{Kind: TypeKindMap, Key: key, Value: value}
}

// CheckDefinitions returns ErrNilDefinition, wrapped with the path of the
// entry, for the first nil definition, variant, field, method or argument.
func (ci *ComponentInterface) CheckDefinitions() error {

	for i, def := range ci.Records {
		if def == nil {
			return errors.Wrapf(ErrNilDefinition, "record #%d", i)
		}
		if err := checkFields(def.Fields); err != nil {
			return errors.Wrapf(err, "record %s", def.Name)
		}
	}
	for i, def := range ci.Enums {
		if def == nil {
			return errors.Wrapf(ErrNilDefinition, "enum #%d", i)
		}
		for j, variant := range def.Variants {
			if variant == nil {
				return errors.Wrapf(ErrNilDefinition, "enum %s: variant #%d", def.Name, j)
			}
			if err := checkFields(variant.Fields); err != nil {
				return errors.Wrapf(err, "enum %s: variant %s", def.Name, variant.Name)
			}
		}
	}
	for i, def := range ci.Objects {
		if def == nil {
			return errors.Wrapf(ErrNilDefinition, "object #%d", i)
		}
		for j, method := range def.Methods {
			if method == nil {
				return errors.Wrapf(ErrNilDefinition, "object %s: method #%d", def.Name, j)
			}
			for k, arg := range method.Arguments {
				if arg == nil {
					return errors.Wrapf(ErrNilDefinition, "object %s: method %s: argument #%d", def.Name, method.Name, k)
				}
			}
		}
	}
	return nil
}

func checkFields(fields []*Field) error {

	for i, field := range fields {
		if field == nil {
			return errors.Wrapf(ErrNilDefinition, "field #%d", i)
		}
	}
	return nil
}
