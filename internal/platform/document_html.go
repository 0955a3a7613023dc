package platform

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// HTMLDocument is a parsed host page for hosts without a DOM.
type HTMLDocument struct {
	root *html.Node
}

func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse host page: %w", err)
	}
	return &HTMLDocument{root: root}, nil
}

func ParseHTMLBytes(data []byte) (*HTMLDocument, error) {
	return ParseHTML(bytes.NewReader(data))
}

func LoadHTML(path string) (*HTMLDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseHTML(f)
}

// Element finds the element with the given id. Its text is the concatenation
// of its direct text children, nested elements are skipped.
func (d *HTMLDocument) Element(id string) (Element, bool) {
	n := findByID(d.root, id)
	if n == nil {
		return Element{}, false
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return Element{ID: id, Type: attr(n, "type"), Text: sb.String()}, true
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
