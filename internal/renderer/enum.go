// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"github.com/pkg/errors"

	"tsbind/internal/model"
	"tsbind/internal/tsg"
)

// enum renders a flat enum as a TypeScript enum and an enum whose variants
// carry fields as a union discriminated by "tag". Both styles share it.
func (r *Renderer) enum(def *model.Enum) (*tsg.Statement, error) {

	doc, err := r.docs.FormatDoc(def.Docstring, 0)
	if err != nil {
		return nil, err
	}
	name := r.namer.ClassName(def.Name)
	stmt := tsg.NewStatement().Doc(doc).Export()

	var bodyErr error
	if def.IsFlat() {
		stmt.Enum(name, func(g *tsg.Group) {
			for _, variant := range def.Variants {
				var vdoc string
				if vdoc, bodyErr = r.docs.FormatDoc(variant.Docstring, g.Indent()); bodyErr != nil {
					bodyErr = errors.Wrapf(bodyErr, "variant %s", variant.Name)
					return
				}
				g.Doc(vdoc)
				g.EnumMember(r.namer.ClassName(variant.Name))
			}
		})
	} else {
		stmt.TypeAlias(name).Union(func(g *tsg.Group) {
			for _, variant := range def.Variants {
				var member string
				if member, bodyErr = r.variant(variant); bodyErr != nil {
					return
				}
				g.UnionMember(member)
			}
		}).Semicolon()
	}
	if bodyErr != nil {
		return nil, bodyErr
	}
	return stmt, nil
}

// variant возвращает однострочный объектный тип варианта: { tag: "Name"; field: T }.
func (r *Renderer) variant(variant *model.Variant) (string, error) {

	tag := r.namer.ClassName(variant.Name)
	members := []string{tsg.Property("tag", tsg.Lit(tag))}
	for _, field := range variant.Fields {
		typeName, err := r.namer.TypeName(field.Type)
		if err != nil {
			return "", errors.Wrapf(err, "variant %s: field %s", variant.Name, field.Name)
		}
		members = append(members, tsg.Property(r.namer.VarName(field.Name), typeName))
	}
	return tsg.InlineObject(members...), nil
}
