package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-article/pkg/interfaces"
)

// ExtractBlocks walks the markdown AST and returns the ordered block sequence
// of the body: headings, paragraphs, fenced code samples, lists, and a
// catch-all for anything else. The sequence mirrors source order so callers
// can reason about document structure without re-parsing.
func ExtractBlocks(body []byte) ([]interfaces.Block, error) {
	engine := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := engine.Parser().Parse(text.NewReader(body))
	if root == nil {
		return nil, fmt.Errorf("markdown blocks: parser returned no document")
	}

	var blocks []interfaces.Block
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		switch typed := node.(type) {
		case *ast.Heading:
			blocks = append(blocks, interfaces.Block{
				Kind:  interfaces.BlockHeading,
				Level: typed.Level,
				Text:  string(nodeText(typed, body)),
			})
		case *ast.Paragraph:
			blocks = append(blocks, interfaces.Block{
				Kind: interfaces.BlockParagraph,
				Text: string(nodeText(typed, body)),
			})
		case *ast.FencedCodeBlock:
			blocks = append(blocks, interfaces.Block{
				Kind:     interfaces.BlockCodeFence,
				Language: string(typed.Language(body)),
				Literal:  string(nodeLines(typed, body)),
			})
		case *ast.List:
			blocks = append(blocks, interfaces.Block{
				Kind: interfaces.BlockList,
			})
		default:
			blocks = append(blocks, interfaces.Block{
				Kind: interfaces.BlockOther,
			})
		}
	}

	return blocks, nil
}

// nodeText flattens the inline text content of a block node.
func nodeText(node ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if textNode, ok := n.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.Bytes()
}

// nodeLines concatenates the raw line segments of a leaf block such as a
// fenced code body.
func nodeLines(node ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return buf.Bytes()
}
