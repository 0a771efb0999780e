// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package naming

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var ErrCommentTerminator = errors.New("docstring contains comment terminator */")

// DocFormatter turns a docstring into a comment block indented by indent
// spaces. An empty docstring yields an empty string.
type DocFormatter interface {
	FormatDoc(doc string, indent int) (string, error)
}

type JSDoc struct{}

var _ DocFormatter = JSDoc{}

func NewJSDoc() JSDoc {
	return JSDoc{}
}

func (JSDoc) FormatDoc(doc string, indent int) (string, error) {

	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	if strings.TrimSpace(doc) == "" {
		return "", nil
	}
	if strings.Contains(doc, "*/") {
		return "", ErrCommentTerminator
	}
	lines := dedent(trimBlankLines(strings.Split(doc, "\n")))

	pad := strings.Repeat(" ", max(indent, 0))
	var b strings.Builder
	b.WriteString(pad + "/**\n")
	for _, line := range lines {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			b.WriteString(pad + " *\n")
			continue
		}
		b.WriteString(pad + " * " + line + "\n")
	}
	b.WriteString(pad + " */")
	return b.String(), nil
}

func trimBlankLines(lines []string) []string {

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// dedent убирает общий для всех непустых строк ведущий отступ.
func dedent(lines []string) []string {

	prefix := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix, first = lead, false
			continue
		}
		for !strings.HasPrefix(lead, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimPrefix(line, prefix)
	}
	return out
}
