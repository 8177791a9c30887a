// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	paragraphStyle = lipgloss.NewStyle()
	codeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1)
	quoteStyle     = lipgloss.NewStyle().Italic(true).Border(lipgloss.ThickBorder(), false, false, false, true).PaddingLeft(1)
	citeStyle      = lipgloss.NewStyle().Faint(true)
	ruleStyle      = lipgloss.NewStyle().Faint(true)
	tableHeadStyle = lipgloss.NewStyle().Bold(true)
	captionStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
	fallbackStyle  = lipgloss.NewStyle().Faint(true)

	// headingStyles is indexed by heading weight.
	headingStyles = [...]lipgloss.Style{
		1: lipgloss.NewStyle().Bold(true),
		2: lipgloss.NewStyle().Bold(true).Underline(true),
		3: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		4: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("12")),
		5: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("14")),
	}
)

// Terminal writes nodes as styled terminal text wrapped to width columns.
// A width of zero or less disables wrapping.
func Terminal(nodes []Node, width int) string {
	blocks := make([]string, 0, len(nodes))
	for _, n := range nodes {
		blocks = append(blocks, terminalBlock(n, width))
	}
	return strings.Join(blocks, "\n\n")
}

func terminalBlock(n Node, width int) string {
	switch n.Kind {
	case KindHeading:
		w := n.Weight
		if w < 1 || w >= len(headingStyles) {
			w = 1
		}
		return wrap(headingStyles[w], width).Render(n.Text)

	case KindList:
		return strings.Join(terminalList(n, "", width), "\n")

	case KindCode:
		return codeStyle.Render(n.Text)

	case KindQuote:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			if c.Kind == KindCite {
				parts = append(parts, citeStyle.Render(c.Text))
				continue
			}
			parts = append(parts, c.Text)
		}
		return wrap(quoteStyle, width).Render(strings.Join(parts, "\n"))

	case KindRule:
		w := width
		if w <= 0 {
			w = 40
		}
		return ruleStyle.Render(strings.Repeat("─", w))

	case KindTable:
		return terminalTable(n)

	case KindFigure:
		lines := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			switch c.Kind {
			case KindImage:
				lines = append(lines, "[image] "+c.URL)
			case KindCaption:
				lines = append(lines, captionStyle.Render(c.Text))
			}
		}
		return strings.Join(lines, "\n")

	case KindFallback:
		return wrap(fallbackStyle, width).Render(n.Text)

	default:
		return wrap(paragraphStyle, width).Render(n.PlainText())
	}
}

func terminalList(n Node, indent string, width int) []string {
	lines := make([]string, 0, len(n.Children))
	for i, item := range n.Children {
		marker := "• "
		if n.Tag == "ol" {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		lines = append(lines, wrap(paragraphStyle, width).Render(indent+marker+item.Text))
		for _, sub := range item.Children {
			lines = append(lines, terminalList(sub, indent+"  ", width)...)
		}
	}
	return lines
}

// terminalTable lays cells out in columns padded to the widest cell.
func terminalTable(n Node) string {
	var rows [][]string
	headRows := 0
	for _, section := range n.Children {
		for _, r := range section.Children {
			cells := make([]string, 0, len(r.Children))
			for _, c := range r.Children {
				cells = append(cells, c.Text)
			}
			rows = append(rows, cells)
			if section.Kind == KindTableHead {
				headRows++
			}
		}
	}

	widths := map[int]int{}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	for ri, r := range rows {
		cells := make([]string, len(r))
		for i, c := range r {
			cells[i] = c + strings.Repeat(" ", widths[i]-lipgloss.Width(c))
		}
		line := strings.Join(cells, " │ ")
		if ri < headRows {
			line = tableHeadStyle.Render(line)
		}
		lines = append(lines, line)
		if ri == headRows-1 && len(rows) > headRows {
			lines = append(lines, ruleStyle.Render(strings.Repeat("─", lipgloss.Width(line))))
		}
	}
	return strings.Join(lines, "\n")
}

func wrap(style lipgloss.Style, width int) lipgloss.Style {
	if width <= 0 {
		return style
	}
	return style.Width(width)
}
