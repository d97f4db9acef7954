package markdown

import (
	"bytes"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type Heading struct {
	Level int
	Text  string
}

type Stats struct {
	// Words counts prose only; code blocks are excluded.
	Words      int
	Headings   []Heading
	CodeBlocks int
}

type Inspector struct {
	md goldmark.Markdown
}

func NewInspector() *Inspector {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
			extension.Table,
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Inspector{md: md}
}

func (r *Inspector) Inspect(src []byte) Stats {
	ctx := parser.NewContext()
	doc := r.md.Parser().Parse(text.NewReader(src), parser.WithContext(ctx))

	var st Stats
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			st.CodeBlocks++
			return ast.WalkSkipChildren, nil
		case *ast.Heading:
			var textBuf bytes.Buffer
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if seg, ok := c.(*ast.Text); ok {
					textBuf.Write(seg.Segment.Value(src))
				}
			}
			st.Headings = append(st.Headings, Heading{Level: node.Level, Text: textBuf.String()})
		case *ast.Text:
			st.Words += len(bytes.Fields(node.Segment.Value(src)))
		}
		return ast.WalkContinue, nil
	})
	return st
}

// ReadingMinutes rounds up, with a floor of one minute.
func ReadingMinutes(words, wordsPerMinute int) int {
	if wordsPerMinute <= 0 || words <= 0 {
		return 1
	}
	m := (words + wordsPerMinute - 1) / wordsPerMinute
	if m < 1 {
		m = 1
	}
	return m
}
