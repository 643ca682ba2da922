package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses an HTML fragment in body context and returns the
// top-level elements as detached subtrees owned by this document. Text is
// folded into each element's own text content; comments are dropped.
// Custom elements are not upgraded until the subtree connects.
func (d *Document) ParseFragment(src string) ([]*Element, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		return nil, err
	}
	var out []*Element
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		out = append(out, d.convertNode(n))
	}
	return out, nil
}

func (d *Document) convertNode(n *html.Node) *Element {
	el := d.CreateElement(n.Data)
	for _, a := range n.Attr {
		el.attrs = append(el.attrs, Attr{Key: strings.ToLower(a.Key), Value: a.Val})
	}
	var text []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			child := d.convertNode(c)
			child.parent = el
			el.children = append(el.children, child)
		case html.TextNode:
			if t := strings.TrimSpace(c.Data); t != "" {
				text = append(text, t)
			}
		}
	}
	el.text = strings.Join(text, " ")
	return el
}
