// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"strings"

	"github.com/pkg/errors"

	"tsbind/internal/model"
	"tsbind/internal/naming"
	"tsbind/internal/tsg"
)

func (r *Renderer) fields(g *tsg.Group, fields []*model.Field) error {

	for _, field := range fields {
		doc, err := r.docs.FormatDoc(field.Docstring, g.Indent())
		if err != nil {
			return errors.Wrapf(err, "field %s", field.Name)
		}
		typeName, err := r.namer.TypeName(field.Type)
		if err != nil {
			return errors.Wrapf(err, "field %s", field.Name)
		}
		g.Doc(doc)
		g.Property(r.namer.VarName(field.Name), typeName)
	}
	return nil
}

func (r *Renderer) methods(g *tsg.Group, methods []*model.Method) error {

	for _, method := range methods {
		doc, err := r.docs.FormatDoc(method.Docstring, g.Indent())
		if err != nil {
			return errors.Wrapf(err, "method %s", method.Name)
		}
		params, err := r.paramList(method.Arguments)
		if err != nil {
			return errors.Wrapf(err, "method %s", method.Name)
		}
		ret, err := r.returnType(method)
		if err != nil {
			return errors.Wrapf(err, "method %s", method.Name)
		}
		g.Doc(doc)
		g.Method(r.namer.FnName(method.Name), params, ret)
	}
	return nil
}

// paramList собирает "name: Type" через ", " без завершающего разделителя.
func (r *Renderer) paramList(args []*model.Argument) (string, error) {

	params := make([]string, 0, len(args))
	for _, arg := range args {
		typeName, err := r.namer.TypeName(arg.Type)
		if err != nil {
			return "", errors.Wrapf(err, "argument %s", arg.Name)
		}
		// параметр — идентификатор, поэтому зарезервированные слова заменяются
		params = append(params, tsg.Property(naming.SafeName(r.namer.VarName(arg.Name)), typeName))
	}
	return strings.Join(params, ", "), nil
}

func (r *Renderer) returnType(method *model.Method) (string, error) {

	if method.ReturnType == nil {
		return r.policy.Annotation("", false, method.Async), nil
	}
	typeName, err := r.namer.TypeName(method.ReturnType)
	if err != nil {
		return "", errors.Wrap(err, "return type")
	}
	return r.policy.Annotation(typeName, true, method.Async), nil
}
