// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"
)

const lineFeed = "\n"

type SyntaxHighlight string

const SyntaxHighlightTypeScript SyntaxHighlight = "typescript"

// Markdown collects blocks in memory. Table errors are accumulated and
// reported by Error.
type Markdown struct {
	body []string
	err  error
}

func NewMarkdown() *Markdown {
	return &Markdown{
		body: []string{},
	}
}

// String joins the blocks with a blank line between them.
func (m *Markdown) String() string {
	return strings.Join(m.body, lineFeed+lineFeed) + lineFeed
}

func (m *Markdown) Error() error {
	return m.err
}

func (m *Markdown) PlainText(text string) *Markdown {
	m.body = append(m.body, text)
	return m
}

func (m *Markdown) PlainTextf(format string, args ...any) *Markdown {
	return m.PlainText(fmt.Sprintf(format, args...))
}

func (m *Markdown) H1(text string) *Markdown {
	m.body = append(m.body, fmt.Sprintf("# %s", text))
	return m
}

func (m *Markdown) H2(text string) *Markdown {
	m.body = append(m.body, fmt.Sprintf("## %s", text))
	return m
}

func (m *Markdown) CodeBlocks(lang SyntaxHighlight, text string) *Markdown {
	m.body = append(m.body,
		fmt.Sprintf("```%s%s%s%s```", lang, lineFeed, strings.TrimSuffix(text, lineFeed), lineFeed))
	return m
}

type TableSet struct {
	Header []string
	Rows   [][]string
}

func (t *TableSet) ValidateColumns() error {
	headerColumns := len(t.Header)
	for _, record := range t.Rows {
		if len(record) != headerColumns {
			return ErrMismatchColumn
		}
	}
	return nil
}

type TableOptions struct {
	// AutoWrapText is whether to wrap the text automatically.
	AutoWrapText bool
	// AutoFormatHeaders is whether to format the header automatically.
	AutoFormatHeaders bool
}

// CustomTable renders t as a pipe table through tablewriter.
func (m *Markdown) CustomTable(t TableSet, options TableOptions) *Markdown {
	if err := t.ValidateColumns(); err != nil {
		m.err = multierror.Append(m.err, errors.Wrap(err, "failed to validate columns"))
		return m
	}

	var autoFormat tw.State = tw.Fail
	if options.AutoFormatHeaders {
		autoFormat = tw.Success
	}
	autoWrap := tw.WrapNone
	if options.AutoWrapText {
		autoWrap = tw.WrapNormal
	}

	buf := &strings.Builder{}
	table := tablewriter.NewTable(
		buf,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(
				tw.Rendition{
					Symbols: tw.NewSymbolCustom("Markdown").
						WithHeaderLeft("|").
						WithHeaderRight("|").
						WithColumn("|").
						WithMidLeft("|").
						WithMidRight("|").
						WithCenter("|"),
					Borders: tw.Border{
						Left:   tw.On,
						Top:    tw.Off,
						Right:  tw.On,
						Bottom: tw.Off,
					},
				},
			),
		),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: autoFormat},
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap:   autoWrap,
					AutoFormat: autoFormat,
				},
				Alignment: tw.CellAlignment{Global: tw.AlignNone},
			},
		}),
	)

	table.Header(t.Header)
	if err := table.Bulk(t.Rows); err != nil {
		m.err = multierror.Append(m.err, errors.Wrap(err, "failed to add rows to table"))
		return m
	}
	if err := table.Render(); err != nil {
		m.err = multierror.Append(m.err, errors.Wrap(err, "failed to render table"))
		return m
	}

	m.body = append(m.body, strings.TrimSuffix(buf.String(), lineFeed))
	return m
}

func escapePipe(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}
