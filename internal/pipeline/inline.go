package pipeline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Node kinds for the inline markup extension.
var (
	KindMark        = ast.NewNodeKind("Mark")
	KindSuperscript = ast.NewNodeKind("Superscript")
	KindSubscript   = ast.NewNodeKind("Subscript")
)

// Mark is ==highlighted== text.
type Mark struct{ ast.BaseInline }

// Kind implements ast.Node.
func (n *Mark) Kind() ast.NodeKind { return KindMark }

// Dump implements ast.Node.
func (n *Mark) Dump(source []byte, level int) { ast.DumpHelper(n, source, level, nil, nil) }

// Superscript is ^raised^ text.
type Superscript struct{ ast.BaseInline }

// Kind implements ast.Node.
func (n *Superscript) Kind() ast.NodeKind { return KindSuperscript }

// Dump implements ast.Node.
func (n *Superscript) Dump(source []byte, level int) { ast.DumpHelper(n, source, level, nil, nil) }

// Subscript is ~lowered~ text.
type Subscript struct{ ast.BaseInline }

// Kind implements ast.Node.
func (n *Subscript) Kind() ast.NodeKind { return KindSubscript }

// Dump implements ast.Node.
func (n *Subscript) Dump(source []byte, level int) { ast.DumpHelper(n, source, level, nil, nil) }

// markDelimiterProcessor pairs == delimiters, the same way goldmark
// pairs ~~ for strikethrough.
type markDelimiterProcessor struct{}

func (p *markDelimiterProcessor) IsDelimiter(b byte) bool { return b == '=' }

func (p *markDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (p *markDelimiterProcessor) OnMatch(consumes int) ast.Node { return &Mark{} }

var defaultMarkDelimiterProcessor = &markDelimiterProcessor{}

type markParser struct{}

func (s *markParser) Trigger() []byte { return []byte{'='} }

func (s *markParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, 2, defaultMarkDelimiterProcessor)
	if node == nil || node.OriginalLength != 2 || before == '=' {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

// tightParser parses delim-wrapped text with no whitespace inside, such
// as ^2^ or ~i~. A doubled delimiter is left to other parsers so ~~x~~
// stays strikethrough.
type tightParser struct {
	delim byte
	node  func() ast.Node
}

func (s *tightParser) Trigger() []byte { return []byte{s.delim} }

func (s *tightParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if block.PrecendingCharacter() == rune(s.delim) {
		return nil
	}
	line, segment := block.PeekLine()
	end := scanTight(line, s.delim)
	if end < 0 {
		return nil
	}
	node := s.node()
	node.AppendChild(node, ast.NewTextSegment(text.NewSegment(segment.Start+1, segment.Start+end)))
	block.Advance(end + 1)
	return node
}

// scanTight returns the index of the closing delimiter, or -1.
func scanTight(line []byte, delim byte) int {
	if len(line) < 3 || line[1] == delim || util.IsSpace(line[1]) {
		return -1
	}
	for i := 2; i < len(line); i++ {
		switch c := line[i]; {
		case c == delim:
			if i+1 < len(line) && line[i+1] == delim {
				return -1
			}
			return i
		case util.IsSpace(c):
			return -1
		}
	}
	return -1
}

type inlineMarkupRenderer struct{}

func (r *inlineMarkupRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMark, wrapTag("mark"))
	reg.Register(KindSuperscript, wrapTag("sup"))
	reg.Register(KindSubscript, wrapTag("sub"))
}

func wrapTag(tag string) renderer.NodeRendererFunc {
	return func(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			_, _ = w.WriteString("<" + tag + ">")
		} else {
			_, _ = w.WriteString("</" + tag + ">")
		}
		return ast.WalkContinue, nil
	}
}

type inlineMarkup struct{}

// InlineMarkup adds ==mark==, ^superscript^ and ~subscript~ syntax.
// Subscript takes a single tilde; ~~x~~ remains strikethrough.
var InlineMarkup goldmark.Extender = &inlineMarkup{}

func (e *inlineMarkup) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&tightParser{delim: '^', node: func() ast.Node { return &Superscript{} }}, 450),
		util.Prioritized(&tightParser{delim: '~', node: func() ast.Node { return &Subscript{} }}, 450),
		util.Prioritized(&markParser{}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&inlineMarkupRenderer{}, 500),
	))
}
