package pipeline

import (
	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// dollarParser parses $tex$ spans on a single line. The opening dollar
// must not be followed by whitespace and the closing one must not follow
// whitespace or a backslash, nor be followed by a digit, so prices like
// "$5 and $10" stay text.
type dollarParser struct{}

func (s *dollarParser) Trigger() []byte { return []byte{'$'} }

func (s *dollarParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if block.PrecendingCharacter() == '$' {
		return nil
	}
	line, segment := block.PeekLine()
	end := scanDollar(line)
	if end < 0 {
		return nil
	}
	node := mathjax.NewInlineMath()
	node.AppendChild(node, ast.NewRawTextSegment(text.NewSegment(segment.Start+1, segment.Start+end)))
	block.Advance(end + 1)
	return node
}

// scanDollar returns the index of the closing dollar, or -1.
func scanDollar(line []byte) int {
	if len(line) < 3 || line[1] == '$' || util.IsSpace(line[1]) {
		return -1
	}
	for i := 2; i < len(line); i++ {
		if line[i] != '$' {
			continue
		}
		if util.IsSpace(line[i-1]) || line[i-1] == '\\' {
			continue
		}
		if i+1 < len(line) && (line[i+1] == '$' || isDigit(line[i+1])) {
			continue
		}
		return i
	}
	return -1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

type mathExtension struct{}

// Math adds $inline$ spans and $$ display blocks. Display blocks come
// from goldmark-mathjax; inline spans use the stricter dollarParser.
// Both are rendered by the hook renderer.
var Math goldmark.Extender = &mathExtension{}

func (e *mathExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(mathjax.NewMathJaxBlockParser(), 701)),
		parser.WithInlineParsers(util.Prioritized(&dollarParser{}, 501)),
	)
}
