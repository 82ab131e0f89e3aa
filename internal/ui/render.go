package ui

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes n as an HTML fragment.
func Render(w io.Writer, n *Node) error {
	root := &html.Node{Type: html.DocumentNode}
	appendTo(root, n)
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("render %s: %w", c.Data, err)
		}
	}
	return nil
}

// RenderDocument writes n as a complete document preceded by the HTML5 doctype.
func RenderDocument(w io.Writer, n *Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	appendTo(doc, n)
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// String renders n to a string, mainly for tests and logging.
func String(n *Node) string {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

func appendTo(parent *html.Node, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case TextKind:
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	case FragmentKind:
		for _, c := range n.Children {
			appendTo(parent, c)
		}
	default:
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(n.Tag)),
		}
		for _, k := range n.Attrs.sortedKeys() {
			el.Attr = append(el.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
		}
		for _, c := range n.Children {
			appendTo(el, c)
		}
		parent.AppendChild(el)
	}
}
