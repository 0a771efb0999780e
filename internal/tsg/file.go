// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package tsg

import (
	"strings"
)

type File struct {
	statements []*Statement
	comment    string
}

func NewFile() *File {
	return &File{
		statements: make([]*Statement, 0),
	}
}

// Comment задаёт шапку файла; пишется как есть, перед всеми statement.
func (f *File) Comment(comment string) *File {
	f.comment = comment
	return f
}

func (f *File) Add(stmt *Statement) *File {
	if stmt != nil {
		f.statements = append(f.statements, stmt)
	}
	return f
}

func (f *File) Line() *File {
	f.statements = append(f.statements, NewStatement().Line())
	return f
}

func (f *File) String() string {

	var buf strings.Builder
	if f.comment != "" {
		buf.WriteString(f.comment)
	}
	for _, stmt := range f.statements {
		buf.WriteString(stmt.String())
	}
	return buf.String()
}

func (f *File) Bytes() []byte {
	return []byte(f.String())
}
