// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// HeadingWeight maps a header level to the 5-step weight scale:
// level 1 is 5, level 2 is 4, down to 1 for level 5 and beyond.
func HeadingWeight(level int) int {
	switch {
	case level <= 1:
		return 5
	case level >= 5:
		return 1
	default:
		return 6 - level
	}
}

// Document maps doc into its visual tree, one top-level node per block.
// A nil document yields an empty tree.
func Document(doc *models.Document) []Node {
	if doc == nil {
		return []Node{}
	}

	nodes := make([]Node, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		nodes = append(nodes, Block(b))
	}
	return nodes
}

// Block maps a single block to its node.
func Block(b models.Block) Node {
	switch v := b.Decode().(type) {
	case models.ParagraphData:
		return Node{Kind: KindParagraph, Tag: "p", Text: v.Text}

	case models.HeaderData:
		return Node{
			Kind:   KindHeading,
			Tag:    "h" + strconv.Itoa(v.Level),
			Level:  v.Level,
			Weight: HeadingWeight(v.Level),
			Text:   v.Text,
		}

	case models.ListData:
		tag := "ul"
		if v.Style == models.ListOrdered {
			tag = "ol"
		}
		return Node{Kind: KindList, Tag: tag, Children: listItems(v.Items, tag)}

	case models.CodeData:
		return Node{Kind: KindCode, Tag: "pre", Text: v.Code}

	case models.QuoteData:
		quote := Node{Kind: KindQuote, Tag: "blockquote", Children: []Node{
			{Kind: KindParagraph, Tag: "p", Text: v.Text},
		}}
		if v.Caption != "" {
			quote.Children = append(quote.Children, Node{Kind: KindCite, Tag: "cite", Text: "— " + v.Caption})
		}
		return quote

	case models.DelimiterData:
		return Node{Kind: KindRule, Tag: "hr"}

	case models.TableData:
		return table(v)

	case models.ImageData:
		figure := Node{Kind: KindFigure, Tag: "figure", Children: []Node{
			{Kind: KindImage, Tag: "img", URL: v.File.URL, Text: v.Caption},
		}}
		if v.Caption != "" {
			figure.Children = append(figure.Children, Node{Kind: KindCaption, Tag: "figcaption", Text: v.Caption})
		}
		return figure

	case models.OpaqueData:
		return Node{Kind: KindFallback, Tag: "p", Text: dump(v.Raw)}
	}

	return Node{Kind: KindFallback, Tag: "p", Text: dump(b.Data)}
}

func listItems(items []models.ListItem, tag string) []Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		li := Node{Kind: KindListItem, Tag: "li", Text: item.Content}
		if len(item.Items) > 0 {
			li.Children = []Node{{Kind: KindList, Tag: tag, Children: listItems(item.Items, tag)}}
		}
		nodes = append(nodes, li)
	}
	return nodes
}

// table renders the first row as the heading row and the rest as the body.
func table(v models.TableData) Node {
	t := Node{Kind: KindTable, Tag: "table"}
	if len(v.Content) == 0 {
		return t
	}

	head := Node{Kind: KindTableHead, Tag: "thead", Children: []Node{row(v.Content[0], KindHeaderCell, "th")}}
	body := Node{Kind: KindTableBody, Tag: "tbody", Children: make([]Node, 0, len(v.Content)-1)}
	for _, r := range v.Content[1:] {
		body.Children = append(body.Children, row(r, KindCell, "td"))
	}

	t.Children = []Node{head, body}
	return t
}

func row(cells []string, kind Kind, tag string) Node {
	r := Node{Kind: KindRow, Tag: "tr", Children: make([]Node, 0, len(cells))}
	for _, c := range cells {
		r.Children = append(r.Children, Node{Kind: kind, Tag: tag, Text: c})
	}
	return r
}

// dump returns the compact JSON text of raw, or "{}" when there is none.
func dump(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "{}"
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}
