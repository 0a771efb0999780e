// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   *Markdown
		want string
	}{
		{
			name: "headers",
			md:   NewMarkdown().H1("Title").H2("Section"),
			want: "# Title\n\n## Section\n",
		},
		{
			name: "plain text",
			md:   NewMarkdown().PlainTextf("Style: %s.", Code("interface")).PlainText(Italic("None.")),
			want: "Style: `interface`.\n\n*None.*\n",
		},
		{
			name: "code block",
			md:   NewMarkdown().CodeBlocks(SyntaxHighlightTypeScript, "export type A = {};\n"),
			want: "```typescript\nexport type A = {};\n```\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, tt.md.String()); diff != "" {
				t.Errorf("Markdown.String() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCustomTable(t *testing.T) {
	t.Parallel()

	md := NewMarkdown().CustomTable(TableSet{
		Header: []string{"Name", "Type"},
		Rows:   [][]string{{"id", Code("string | undefined")}},
	}, TableOptions{})
	require.NoError(t, md.Error())

	out := md.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "`string \\| undefined`")
}

func TestCustomTableMismatch(t *testing.T) {
	t.Parallel()

	md := NewMarkdown().CustomTable(TableSet{
		Header: []string{"Name", "Type"},
		Rows:   [][]string{{"id"}},
	}, TableOptions{})
	assert.ErrorIs(t, md.Error(), ErrMismatchColumn)
}
