// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package tsg

import (
	"fmt"
	"strings"
)

const indentUnit = "  "

type Statement struct {
	code   strings.Builder
	indent int
	export bool // следующее ключевое слово получает префикс export
}

func NewStatement() *Statement {
	return &Statement{}
}

func (s *Statement) String() string {
	return s.code.String()
}

func (s *Statement) Export() *Statement {
	s.export = true
	return s
}

// Doc пишет заранее отформатированный блок комментария. Пустой блок ничего не добавляет.
func (s *Statement) Doc(block string) *Statement {

	if block == "" {
		return s
	}
	s.code.WriteString(block)
	s.code.WriteString("\n")
	return s
}

func (s *Statement) Comment(text string) *Statement {

	for _, line := range strings.Split(text, "\n") {
		s.writeIndent()
		if line != "" {
			s.code.WriteString("// " + line)
		} else {
			s.code.WriteString("//")
		}
		s.code.WriteString("\n")
	}
	return s
}

func (s *Statement) Line() *Statement {
	s.code.WriteString("\n")
	return s
}

func (s *Statement) Id(name string) *Statement {
	s.code.WriteString(name)
	return s
}

func (s *Statement) Semicolon() *Statement {
	s.code.WriteString(";")
	return s
}

func (s *Statement) Interface(name string, fn func(*Group)) *Statement {

	s.keyword("interface " + name)
	s.code.WriteString(" ")
	return s.Block(fn)
}

func (s *Statement) TypeAlias(name string) *Statement {

	s.keyword("type " + name + " =")
	return s
}

func (s *Statement) Enum(name string, fn func(*Group)) *Statement {

	s.keyword("enum " + name)
	s.code.WriteString(" ")
	return s.Block(fn)
}

// Object пишет литерал объектного типа после пробела: " { ... }".
func (s *Statement) Object(fn func(*Group)) *Statement {

	s.code.WriteString(" ")
	return s.Block(fn)
}

// Block пишет тело в фигурных скобках; пустое тело даёт "{}".
func (s *Statement) Block(fn func(*Group)) *Statement {

	g := newGroup(s.indent + 1)
	if fn != nil {
		fn(g)
	}
	if g.empty() {
		s.code.WriteString("{}")
		return s
	}
	s.code.WriteString("{\n")
	s.code.WriteString(g.String())
	s.writeIndent()
	s.code.WriteString("}")
	return s
}

// Union пишет варианты объединения, каждый на своей строке с отступом.
func (s *Statement) Union(fn func(*Group)) *Statement {

	g := newGroup(s.indent + 1)
	if fn != nil {
		fn(g)
	}
	if g.empty() {
		s.code.WriteString(" never")
		return s
	}
	s.code.WriteString("\n")
	s.code.WriteString(strings.TrimSuffix(g.String(), "\n"))
	return s
}

func (s *Statement) ExportAll(path string) *Statement {

	s.writeIndent()
	s.code.WriteString("export * from ")
	s.code.WriteString("'" + path + "'")
	s.code.WriteString(";")
	return s
}

func (s *Statement) keyword(text string) {

	s.writeIndent()
	if s.export {
		s.code.WriteString("export ")
		s.export = false
	}
	s.code.WriteString(text)
}

func (s *Statement) writeIndent() {

	if str := s.code.String(); len(str) > 0 && !strings.HasSuffix(str, "\n") {
		return
	}
	s.code.WriteString(strings.Repeat(indentUnit, s.indent))
}

// Lit форматирует строковый литерал TypeScript в двойных кавычках.
func Lit(value string) string {
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(strings.ReplaceAll(value, `"`, `\"`), "\n", "\\n"))
}

// InlineObject собирает однострочный объектный тип: "{ a: T; b: U }".
func InlineObject(members ...string) string {

	if len(members) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(members, "; ") + " }"
}

func Property(name, typeName string) string {
	return name + ": " + typeName
}

type Group struct {
	code   strings.Builder
	indent int
}

func newGroup(indent int) *Group {
	return &Group{indent: indent}
}

// Indent returns the indentation width of the group's lines in spaces.
func (g *Group) Indent() int {
	return g.indent * len(indentUnit)
}

func (g *Group) String() string {
	return g.code.String()
}

func (g *Group) empty() bool {
	return g.code.Len() == 0
}

func (g *Group) Doc(block string) {

	if block == "" {
		return
	}
	g.code.WriteString(block)
	g.code.WriteString("\n")
}

// Add пишет statement отдельной строкой с отступом группы.
func (g *Group) Add(stmt *Statement) {

	if stmt == nil {
		return
	}
	g.Id(stmt.String())
}

func (g *Group) Id(text string) {

	g.code.WriteString(strings.Repeat(indentUnit, g.indent))
	g.code.WriteString(text)
	g.code.WriteString("\n")
}

func (g *Group) Property(name, typeName string) {
	g.Id(Property(name, typeName) + ";")
}

// Method пишет сигнатуру метода: name(params)ret; где ret уже содержит двоеточие, если нужно.
func (g *Group) Method(name, params, ret string) {
	g.Id(name + "(" + params + ")" + ret + ";")
}

func (g *Group) EnumMember(name string) {
	g.Id(name + ",")
}

func (g *Group) UnionMember(typeText string) {
	g.Id("| " + typeText)
}
