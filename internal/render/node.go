// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

// Kind identifies the visual template a [Node] was produced from.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindList
	KindListItem
	KindCode
	KindQuote
	KindCite
	KindRule
	KindTable
	KindTableHead
	KindTableBody
	KindRow
	KindHeaderCell
	KindCell
	KindFigure
	KindImage
	KindCaption
	KindFallback
)

var kindNames = [...]string{
	KindParagraph:  "paragraph",
	KindHeading:    "heading",
	KindList:       "list",
	KindListItem:   "list-item",
	KindCode:       "code",
	KindQuote:      "quote",
	KindCite:       "cite",
	KindRule:       "rule",
	KindTable:      "table",
	KindTableHead:  "table-head",
	KindTableBody:  "table-body",
	KindRow:        "row",
	KindHeaderCell: "header-cell",
	KindCell:       "cell",
	KindFigure:     "figure",
	KindImage:      "image",
	KindCaption:    "caption",
	KindFallback:   "fallback",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Node is one element of the visual tree.
type Node struct {
	Kind Kind

	// Tag is the HTML element the node maps to (p, h1..h6, ul, li, ...).
	Tag string

	// Level is the heading level for KindHeading nodes.
	Level int

	// Weight is the heading weight on a 1..5 scale, 5 being the heaviest.
	Weight int

	// Text is the literal text of leaf nodes.
	Text string

	// URL is the image source for KindImage nodes.
	URL string

	Children []Node
}

// PlainText returns the concatenated text of n and its descendants.
func (n Node) PlainText() string {
	text := n.Text
	for _, c := range n.Children {
		text += c.PlainText()
	}
	return text
}
