// Package extract pulls comment and content ranges out of source
// documents so the masker can keep only the prose. Syntax analysis is
// delegated to tree-sitter grammars, except LaTeX which is scanned by
// hand. Extraction never fails: a language without a grammar, a parse
// error, or a cancelled context all yield empty results.
package extract

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"mozuku/internal/mask"
	"mozuku/internal/source"
)

// CommentSegments extracts the comments of text, sanitized for
// masking. Byte spans index into the UTF-8 text.
func CommentSegments(ctx context.Context, lang Language, text string) []mask.CommentSegment {
	if lang == LaTeX {
		return latexComments(text)
	}
	grammar := lang.grammar()
	types := lang.commentNodeTypes()
	if grammar == nil || types == nil {
		return nil
	}

	raw := []byte(text)
	root, closeTree := parse(ctx, grammar, raw)
	if root == nil {
		return nil
	}
	defer closeTree()

	var segments []mask.CommentSegment
	style := lang.CommentStyle()
	visit(root, func(node *sitter.Node) bool {
		if !types[node.Type()] {
			return true
		}
		start, end := node.StartByte(), node.EndByte()
		if start >= end || int(end) > len(raw) {
			return false
		}
		segments = append(segments, mask.CommentSegment{
			Span:      source.Span{Start: start, End: end},
			Sanitized: mask.Sanitize(string(raw[start:end]), style),
		})
		return false
	})
	return segments
}

// ContentRanges extracts the prose-bearing ranges of markup documents:
// text nodes for HTML, plain runs for LaTeX. Other languages have no
// content ranges.
func ContentRanges(ctx context.Context, lang Language, text string) []source.Span {
	switch lang {
	case HTML:
		return htmlContentRanges(ctx, text)
	case LaTeX:
		return latexContentRanges(text)
	}
	return nil
}

func htmlContentRanges(ctx context.Context, text string) []source.Span {
	raw := []byte(text)
	root, closeTree := parse(ctx, HTML.grammar(), raw)
	if root == nil {
		return nil
	}
	defer closeTree()

	var ranges []source.Span
	visit(root, func(node *sitter.Node) bool {
		if node.Type() != "text" {
			return true
		}
		start, end := node.StartByte(), node.EndByte()
		if start >= end || int(end) > len(raw) {
			return false
		}
		if span, ok := trimSpace(raw, start, end); ok {
			ranges = append(ranges, span)
		}
		return false
	})
	return ranges
}

// parse runs a tree-sitter parse and returns the root plus a cleanup
// func. A nil root means the parse failed and nothing needs closing.
func parse(ctx context.Context, grammar *sitter.Language, raw []byte) (*sitter.Node, func()) {
	if grammar == nil {
		return nil, nil
	}
	parser := sitter.NewParser()
	parser.SetLanguage(grammar)
	tree, err := parser.ParseCtx(ctx, nil, raw)
	if err != nil || tree == nil {
		return nil, nil
	}
	return tree.RootNode(), func() { tree.Close() }
}

// visit walks the tree depth-first. fn returns false to stop descent
// below a node; matched nodes are not searched for nested matches.
func visit(node *sitter.Node, fn func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		visit(node.Child(i), fn)
	}
}

// trimSpace shrinks a byte range to exclude surrounding whitespace,
// measured character-wise like the rest of masking.
func trimSpace(raw []byte, start, end uint32) (source.Span, bool) {
	content := string(raw[start:end])
	trimStart, trimEnd := start, end
	for _, r := range content {
		if !isSpaceRune(r) {
			break
		}
		trimStart += uint32(len(string(r)))
	}
	runes := []rune(content)
	for i := len(runes) - 1; i >= 0; i-- {
		if !isSpaceRune(runes[i]) {
			break
		}
		trimEnd -= uint32(len(string(runes[i])))
	}
	if trimEnd <= trimStart {
		return source.Span{}, false
	}
	return source.Span{Start: trimStart, End: trimEnd}, true
}
