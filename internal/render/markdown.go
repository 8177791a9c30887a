// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Markdown writes nodes as a Markdown document, blocks separated by a blank
// line.
func Markdown(nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, markdownBlock(n))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// DocumentMarkdown renders doc straight to Markdown.
func DocumentMarkdown(doc models.Document) string {
	return Markdown(Document(&doc))
}

func markdownBlock(n Node) string {
	switch n.Kind {
	case KindHeading:
		return strings.Repeat("#", n.Level) + " " + n.Text
	case KindList:
		return strings.Join(markdownList(n, ""), "\n")
	case KindCode:
		return "```\n" + n.Text + "\n```"
	case KindQuote:
		lines := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			for _, l := range strings.Split(c.Text, "\n") {
				lines = append(lines, "> "+l)
			}
		}
		return strings.Join(lines, "\n")
	case KindRule:
		return "---"
	case KindTable:
		return markdownTable(n)
	case KindFigure:
		var img, caption string
		for _, c := range n.Children {
			switch c.Kind {
			case KindImage:
				img = fmt.Sprintf("![%s](%s)", c.Text, c.URL)
			case KindCaption:
				caption = "\n\n*" + c.Text + "*"
			}
		}
		return img + caption
	case KindFallback:
		return "```json\n" + n.Text + "\n```"
	default:
		return n.Text
	}
}

func markdownList(n Node, indent string) []string {
	lines := make([]string, 0, len(n.Children))
	for i, item := range n.Children {
		marker := "- "
		if n.Tag == "ol" {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		lines = append(lines, indent+marker+item.Text)
		for _, sub := range item.Children {
			lines = append(lines, markdownList(sub, indent+"   ")...)
		}
	}
	return lines
}

func markdownTable(n Node) string {
	var rows [][]string
	for _, section := range n.Children {
		for _, r := range section.Children {
			cells := make([]string, 0, len(r.Children))
			for _, c := range r.Children {
				cells = append(cells, strings.ReplaceAll(c.Text, "|", `\|`))
			}
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return ""
	}

	lines := []string{"| " + strings.Join(rows[0], " | ") + " |"}
	sep := make([]string, len(rows[0]))
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")
	for _, r := range rows[1:] {
		lines = append(lines, "| "+strings.Join(r, " | ")+" |")
	}
	return strings.Join(lines, "\n")
}
