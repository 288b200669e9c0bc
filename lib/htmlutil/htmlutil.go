package htmlutil

import (
	"bytes"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

type Anchor struct {
	Name string
	Href string
}

// GetAnchors collects hrefs in document order, skipping ones that do not
// parse as URLs.
func GetAnchors(sel *goquery.Selection) []Anchor {
	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		href := ""
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				break
			}
		}
		link, err := url.Parse(href)
		if err != nil {
			continue
		}
		anchors = append(anchors, Anchor{
			Name: GetText(n),
			Href: link.String(),
		})
	}
	return anchors
}

// TextNodes walks the selection depth-first and returns every non-empty
// text node payload in document order.
func TextNodes(sel *goquery.Selection) []string {
	var out []string
	for _, root := range sel.Nodes {
		var walk func(n *html.Node)
		walk = func(n *html.Node) {
			if n == nil {
				return
			}
			if n.Type == html.TextNode && n.Data != "" {
				out = append(out, n.Data)
				return
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				walk(child)
			}
		}
		walk(root)
	}
	return out
}
