// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"strings"

	"github.com/pkg/errors"

	"tsbind/internal/markdown"
	"tsbind/internal/model"
)

// Summary returns a markdown overview of ci: tables of records, enums and
// objects followed by the declarations Render produces.
func (r *Renderer) Summary(ci *model.ComponentInterface) (string, error) {

	if ci == nil {
		return "", errors.New("nil component interface")
	}
	if err := ci.CheckDefinitions(); err != nil {
		return "", err
	}
	md := markdown.NewMarkdown()
	md.H1(ci.Namespace)
	md.PlainTextf("Style: %s. Void: %s. Async: %s.",
		markdown.Code(string(r.style)), markdown.Code(r.policy.Void.String()), markdown.Code(r.policy.Async.String()))

	var rows [][]string
	for _, def := range ci.Records {
		name := r.namer.ClassName(def.Name)
		if len(def.Fields) == 0 {
			rows = append(rows, []string{name, "", "", firstLine(def.Docstring)})
		}
		for _, field := range def.Fields {
			typeName, err := r.namer.TypeName(field.Type)
			if err != nil {
				return "", errors.Wrapf(err, "record %s: field %s", def.Name, field.Name)
			}
			rows = append(rows, []string{name, r.namer.VarName(field.Name), markdown.Code(typeName), firstLine(field.Docstring)})
		}
	}
	section(md, "Records", []string{"Record", "Field", "Type", "Description"}, rows)

	rows = nil
	for _, def := range ci.Enums {
		name := r.namer.ClassName(def.Name)
		for _, variant := range def.Variants {
			member, err := r.variant(variant)
			if err != nil {
				return "", errors.Wrapf(err, "enum %s", def.Name)
			}
			if def.IsFlat() {
				member = r.namer.ClassName(variant.Name)
			}
			rows = append(rows, []string{name, markdown.Code(member), firstLine(variant.Docstring)})
		}
	}
	section(md, "Enums", []string{"Enum", "Variant", "Description"}, rows)

	rows = nil
	for _, def := range ci.Objects {
		name := r.namer.ClassName(def.Name)
		if len(def.Methods) == 0 {
			rows = append(rows, []string{name, "", firstLine(def.Docstring)})
		}
		for _, method := range def.Methods {
			params, err := r.paramList(method.Arguments)
			if err != nil {
				return "", errors.Wrapf(err, "object %s: method %s", def.Name, method.Name)
			}
			ret, err := r.returnType(method)
			if err != nil {
				return "", errors.Wrapf(err, "object %s: method %s", def.Name, method.Name)
			}
			signature := r.namer.FnName(method.Name) + "(" + params + ")" + ret
			rows = append(rows, []string{name, markdown.Code(signature), firstLine(method.Docstring)})
		}
	}
	section(md, "Objects", []string{"Object", "Method", "Description"}, rows)

	declarations, err := r.Render(ci)
	if err != nil {
		return "", err
	}
	md.H2("Declarations")
	md.CodeBlocks(markdown.SyntaxHighlightTypeScript, declarations)

	if err := md.Error(); err != nil {
		return "", err
	}
	return md.String(), nil
}

func section(md *markdown.Markdown, title string, header []string, rows [][]string) {

	md.H2(title)
	if len(rows) == 0 {
		md.PlainText(markdown.Italic("None."))
		return
	}
	md.CustomTable(markdown.TableSet{Header: header, Rows: rows}, markdown.TableOptions{})
}

func firstLine(doc string) string {

	doc = strings.TrimSpace(doc)
	if i := strings.IndexByte(doc, '\n'); i >= 0 {
		doc = strings.TrimSpace(doc[:i])
	}
	return strings.ReplaceAll(doc, "|", `\|`)
}
