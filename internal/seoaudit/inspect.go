package seoaudit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// MetaDescription reports on the page's <meta name="description"> tag.
// Content is nil when the tag is missing or carries no content
// attribute; Length counts characters, not bytes.
type MetaDescription struct {
	Exists  bool    `json:"exists"`
	Content *string `json:"content"`
	Length  int     `json:"length"`
}

// H1Info reports on the page's <h1> tags. Content is the text of the
// first H1 in document order; AllH1s holds the text of every H1.
type H1Info struct {
	Exists  bool     `json:"exists"`
	Count   int      `json:"count"`
	Content *string  `json:"content"`
	AllH1s  []string `json:"all_h1s"`
}

// InspectMetaDescription finds the first <meta name="description"> in
// the document and reports on its content attribute.
func InspectMetaDescription(doc *html.Node) MetaDescription {
	node := findNode(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != "meta" {
			return false
		}
		name, ok := attrValue(n, "name")
		return ok && name == "description"
	})
	if node == nil {
		return MetaDescription{}
	}

	content, ok := attrValue(node, "content")
	if !ok {
		return MetaDescription{Exists: true}
	}
	return MetaDescription{
		Exists:  true,
		Content: &content,
		Length:  utf8.RuneCountInString(content),
	}
}

// InspectH1Tags collects every <h1> in document order.
func InspectH1Tags(doc *html.Node) H1Info {
	texts := []string{}
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "h1" {
			texts = append(texts, strings.TrimSpace(nodeText(n)))
		}
	})
	if len(texts) == 0 {
		return H1Info{AllH1s: texts}
	}

	first := texts[0]
	return H1Info{
		Exists:  true,
		Count:   len(texts),
		Content: &first,
		AllH1s:  texts,
	}
}

// nodeText concatenates the text nodes beneath n, the way a browser's
// textContent does.
func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
