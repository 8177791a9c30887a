// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"html"
	"strings"
)

// HTML writes nodes as an HTML fragment. All text and attribute values are
// escaped.
func HTML(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeHTML(&b, n)
	}
	return b.String()
}

// Page wraps the rendered nodes into a standalone HTML page titled title.
func Page(title string, nodes []Node) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title></head><body><article>")
	b.WriteString(HTML(nodes))
	b.WriteString("</article></body></html>\n")
	return b.String()
}

func writeHTML(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindRule:
		b.WriteString("<hr>")
		return
	case KindImage:
		b.WriteString(`<img src="`)
		b.WriteString(html.EscapeString(n.URL))
		b.WriteString(`" alt="`)
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString(`">`)
		return
	case KindFallback:
		b.WriteString(`<p class="block-fallback">`)
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</p>")
		return
	}

	b.WriteString("<")
	b.WriteString(n.Tag)
	b.WriteString(">")
	b.WriteString(html.EscapeString(n.Text))
	for _, c := range n.Children {
		writeHTML(b, c)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
}
