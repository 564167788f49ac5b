package sanitize

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// embedSourceAttr maps embedding elements to the attribute naming their source.
var embedSourceAttr = map[atom.Atom]string{
	atom.Iframe: "src",
	atom.Embed:  "src",
	atom.Object: "data",
}

// filterEmbeds removes embedding elements whose source host is not allowed
// and the content of those it keeps. The parser reads iframe content as raw
// text, which would be escaped again on every pass.
func (p *Policy) filterEmbeds(markup string) (string, error) {
	root, err := parseFragment(markup)
	if err != nil {
		return "", err
	}
	p.dropEmbeds(root)
	return renderFragment(root)
}

func (p *Policy) dropEmbeds(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		attr, embed := embedSourceAttr[c.DataAtom]
		switch {
		case !embed || c.Type != html.ElementNode:
			p.dropEmbeds(c)
		case p.allowedSource(attrValue(c, attr)):
			for c.FirstChild != nil {
				c.RemoveChild(c.FirstChild)
			}
		default:
			n.RemoveChild(c)
		}
		c = next
	}
}

// allowedSource accepts absolute http(s) URLs on an allowed host.
func (p *Policy) allowedSource(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return p.AllowsHost(u.Hostname())
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// parseFragment parses markup in a <body> context and hangs the resulting
// nodes under a detached document node for uniform traversal.
func parseFragment(markup string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the children of root without any wrapper.
func renderFragment(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
