package fragment

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource extracts fragments from Markdown using goldmark.
// Headings carry synthetic font sizes so the outline classifier can
// recover their levels; everything else is body-size text. Markdown
// has no pagination, so all fragments land on page 1.
type MarkdownSource struct{}

func (s *MarkdownSource) Extract(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var frags []Fragment
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title == "" {
				continue
			}
			frags = append(frags, Fragment{
				Text:     title,
				FontSize: HeadingSize(node.Level),
				Bold:     true,
				Page:     1,
			})
		default:
			t := extractBlockText(n, src)
			if t != "" {
				frags = append(frags, Fragment{
					Text:     t,
					FontSize: BodySize,
					Page:     1,
				})
			}
		}
	}

	return &Document{
		ID:        baseName(filename),
		Name:      filename,
		Fragments: renumber(frags),
	}, nil
}

// extractBlockText gets the text content of a goldmark AST node. Leaf
// blocks carry their raw source lines; container blocks (lists, quotes)
// are flattened through their children.
func extractBlockText(n ast.Node, src []byte) string {
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			var buf bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
			return strings.TrimSpace(buf.String())
		}
	}

	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := extractBlockText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
