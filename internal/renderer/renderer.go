// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package renderer projects a component interface into TypeScript
// declarations. Two styles exist: interface declarations and type aliases.
// A Renderer holds no state between calls and may be shared between
// goroutines.
package renderer

import (
	"github.com/pkg/errors"

	"tsbind/internal/model"
	"tsbind/internal/naming"
	"tsbind/internal/tsg"
)

type Style string

const (
	StyleInterface Style = "interface"
	StyleTypeAlias Style = "type-alias"
)

func ParseStyle(s string) (Style, error) {

	switch Style(s) {
	case StyleInterface, StyleTypeAlias:
		return Style(s), nil
	}
	return "", errors.Errorf("unknown style %q, want %s or %s", s, StyleInterface, StyleTypeAlias)
}

// DefaultPolicy returns the return-type policy a style uses unless overridden.
func (s Style) DefaultPolicy() ReturnPolicy {

	if s == StyleTypeAlias {
		return TypeAliasReturnPolicy
	}
	return InterfaceReturnPolicy
}

type Renderer struct {
	style  Style
	policy ReturnPolicy
	namer  naming.Namer
	docs   naming.DocFormatter
}

type Option func(r *Renderer)

func WithNamer(namer naming.Namer) Option {
	return func(r *Renderer) {
		r.namer = namer
	}
}

func WithDocFormatter(docs naming.DocFormatter) Option {
	return func(r *Renderer) {
		r.docs = docs
	}
}

func WithReturnPolicy(policy ReturnPolicy) Option {
	return func(r *Renderer) {
		r.policy = policy
	}
}

func New(style Style, opts ...Option) (*Renderer, error) {

	if _, err := ParseStyle(string(style)); err != nil {
		return nil, err
	}
	r := &Renderer{
		style:  style,
		policy: style.DefaultPolicy(),
		namer:  naming.NewTypeScript(),
		docs:   naming.NewJSDoc(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func NewInterface(opts ...Option) *Renderer {

	r, _ := New(StyleInterface, opts...)
	return r
}

func NewTypeAlias(opts ...Option) *Renderer {

	r, _ := New(StyleTypeAlias, opts...)
	return r
}

func (r *Renderer) Style() Style {
	return r.style
}

func (r *Renderer) Policy() ReturnPolicy {
	return r.policy
}

// Render returns the TypeScript text for ci. On error no text is returned.
func (r *Renderer) Render(ci *model.ComponentInterface) (string, error) {

	file, err := r.File(ci)
	if err != nil {
		return "", err
	}
	return file.String(), nil
}

var sections = []struct {
	kind  DeclKind
	title string
}{
	{kind: DeclRecord, title: "Record definitions:"},
	{kind: DeclEnum, title: "Enum definitions:"},
	{kind: DeclObject, title: "Object definitions:"},
}

const bannerRule = "=========="

// File builds the declarations of ci as a tsg.File without a header comment.
func (r *Renderer) File(ci *model.ComponentInterface) (*tsg.File, error) {

	if ci == nil {
		return nil, errors.New("nil component interface")
	}
	if err := ci.CheckDefinitions(); err != nil {
		return nil, err
	}
	decls := Declarations(ci)
	file := tsg.NewFile()
	for i, section := range sections {
		if i > 0 {
			file.Line()
		}
		file.Add(tsg.NewStatement().Comment(bannerRule + "\n" + section.title + "\n" + bannerRule))
		for _, decl := range decls {
			if decl.Kind() != section.kind {
				continue
			}
			stmt, err := r.declare(decl)
			if err != nil {
				return nil, errors.Wrapf(err, "%s %s", decl.Kind(), decl.DeclName())
			}
			file.Line()
			file.Add(stmt)
			file.Line()
		}
	}
	return file, nil
}

func (r *Renderer) declare(decl Decl) (*tsg.Statement, error) {

	switch d := decl.(type) {
	case RecordDecl:
		return r.record(d.Def)
	case EnumDecl:
		return r.enum(d.Def)
	case ObjectDecl:
		return r.object(d.Def)
	}
	return nil, errors.Errorf("unsupported declaration %T", decl)
}

// shape пишет именованный объектный тип в стиле рендерера.
func (r *Renderer) shape(stmt *tsg.Statement, name string, body func(g *tsg.Group)) *tsg.Statement {

	if r.style == StyleTypeAlias {
		return stmt.Export().TypeAlias(name).Object(body).Semicolon()
	}
	return stmt.Export().Interface(name, body)
}

func (r *Renderer) record(def *model.Record) (*tsg.Statement, error) {

	doc, err := r.docs.FormatDoc(def.Docstring, 0)
	if err != nil {
		return nil, err
	}
	var bodyErr error
	stmt := r.shape(tsg.NewStatement().Doc(doc), r.namer.ClassName(def.Name), func(g *tsg.Group) {
		bodyErr = r.fields(g, def.Fields)
	})
	if bodyErr != nil {
		return nil, bodyErr
	}
	return stmt, nil
}

func (r *Renderer) object(def *model.Object) (*tsg.Statement, error) {

	doc, err := r.docs.FormatDoc(def.Docstring, 0)
	if err != nil {
		return nil, err
	}
	var bodyErr error
	stmt := r.shape(tsg.NewStatement().Doc(doc), r.namer.ClassName(def.Name), func(g *tsg.Group) {
		bodyErr = r.methods(g, def.Methods)
	})
	if bodyErr != nil {
		return nil, bodyErr
	}
	return stmt, nil
}
