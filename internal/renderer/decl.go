// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"tsbind/internal/model"
)

const nilName = "<nil>"

type DeclKind int

const (
	DeclRecord DeclKind = iota
	DeclEnum
	DeclObject
)

func (k DeclKind) String() string {

	switch k {
	case DeclRecord:
		return "record"
	case DeclEnum:
		return "enum"
	case DeclObject:
		return "object"
	}
	return "unknown"
}

// Decl is one top-level definition of a component. The set of
// implementations is closed: RecordDecl, EnumDecl, ObjectDecl.
type Decl interface {
	Kind() DeclKind
	DeclName() string
	sealed()
}

type RecordDecl struct{ Def *model.Record }

type EnumDecl struct{ Def *model.Enum }

type ObjectDecl struct{ Def *model.Object }

func (RecordDecl) Kind() DeclKind { return DeclRecord }
func (EnumDecl) Kind() DeclKind   { return DeclEnum }
func (ObjectDecl) Kind() DeclKind { return DeclObject }

func (d RecordDecl) DeclName() string {
	if d.Def == nil {
		return nilName
	}
	return d.Def.Name
}

func (d EnumDecl) DeclName() string {
	if d.Def == nil {
		return nilName
	}
	return d.Def.Name
}

func (d ObjectDecl) DeclName() string {
	if d.Def == nil {
		return nilName
	}
	return d.Def.Name
}

func (RecordDecl) sealed() {}
func (EnumDecl) sealed()   {}
func (ObjectDecl) sealed() {}

// Declarations lists records, then enums, then objects, each in model order.
func Declarations(ci *model.ComponentInterface) []Decl {

	decls := make([]Decl, 0, len(ci.Records)+len(ci.Enums)+len(ci.Objects))
	for _, def := range ci.Records {
		decls = append(decls, RecordDecl{Def: def})
	}
	for _, def := range ci.Enums {
		decls = append(decls, EnumDecl{Def: def})
	}
	for _, def := range ci.Objects {
		decls = append(decls, ObjectDecl{Def: def})
	}
	return decls
}

