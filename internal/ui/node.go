// Package ui is a small declarative UI tree. Components build Nodes; Render
// turns a tree into HTML.
package ui

import (
	"sort"
	"strings"
)

// Kind discriminates node variants.
type Kind uint8

const (
	ElementKind Kind = iota
	TextKind
	FragmentKind
)

// Attrs are element attributes. Keys render in sorted order.
type Attrs map[string]string

// Node is one vertex of the UI tree.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    Attrs
	Text     string
	Children []*Node
}

// El builds an element. Nil children are skipped at render time.
func El(tag string, attrs Attrs, children ...*Node) *Node {
	return &Node{Kind: ElementKind, Tag: tag, Attrs: attrs, Children: children}
}

// Text builds an escaped text node.
func Text(s string) *Node {
	return &Node{Kind: TextKind, Text: s}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...*Node) *Node {
	return &Node{Kind: FragmentKind, Children: children}
}

// Classes joins the non-empty class names.
func Classes(names ...string) string {
	out := names[:0:0]
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

// When returns n if cond holds, nil otherwise.
func When(cond bool, n *Node) *Node {
	if !cond {
		return nil
	}
	return n
}

// HasClass reports whether the node's class attribute contains name.
func (n *Node) HasClass(name string) bool {
	if n == nil || n.Attrs == nil {
		return false
	}
	for _, c := range strings.Fields(n.Attrs["class"]) {
		if c == name {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindAll returns every element node whose class list contains name.
func (n *Node) FindAll(class string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == ElementKind && c.HasClass(class) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// TextContent concatenates all descendant text.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Kind == TextKind {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

func (a Attrs) sortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
