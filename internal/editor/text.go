// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// quoteCaptionSeparator splits quote text from its caption in the plain-text
// form.
const quoteCaptionSeparator = "--"

// blockText returns the plain-text form of a block payload:
//   - list: one item per line, nested items indented by two spaces;
//   - quote: the text, then a "--" line and the caption; text lines that
//     read "--" are escaped with a leading backslash;
//   - table: one row per line, cells separated by "|";
//   - image: the URL, then the caption on the following lines;
//   - unknown: the raw JSON data.
func blockText(data models.BlockData) string {
	switch v := data.(type) {
	case models.ParagraphData:
		return v.Text
	case models.HeaderData:
		return v.Text
	case models.ListData:
		return strings.Join(listText(v.Items, ""), "\n")
	case models.CodeData:
		return v.Code
	case models.QuoteData:
		text := escapeQuoteText(v.Text)
		if v.Caption == "" {
			return text
		}
		return text + "\n" + quoteCaptionSeparator + "\n" + v.Caption
	case models.DelimiterData:
		return ""
	case models.TableData:
		rows := make([]string, len(v.Content))
		for i, r := range v.Content {
			rows[i] = strings.Join(r, " | ")
		}
		return strings.Join(rows, "\n")
	case models.ImageData:
		if v.Caption == "" {
			return v.File.URL
		}
		return v.File.URL + "\n" + v.Caption
	case models.OpaqueData:
		return string(v.Raw)
	}
	return ""
}

func listText(items []models.ListItem, indent string) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, indent+item.Content)
		lines = append(lines, listText(item.Items, indent+"  ")...)
	}
	return lines
}

// parseBlockText applies text to the payload current, the inverse of
// blockText. Fields that the text form does not cover are kept from current.
func parseBlockText(current models.BlockData, text string) (models.BlockData, error) {
	switch v := current.(type) {
	case models.ParagraphData:
		v.Text = text
		return v, nil
	case models.HeaderData:
		v.Text = strings.ReplaceAll(text, "\n", " ")
		return v, nil
	case models.ListData:
		v.Items = parseList(text)
		return v, nil
	case models.CodeData:
		v.Code = text
		return v, nil
	case models.QuoteData:
		lines := strings.Split(text, "\n")
		body, caption := lines, ""
		for i, l := range lines {
			if strings.TrimSpace(l) == quoteCaptionSeparator {
				body = lines[:i]
				caption = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
				break
			}
		}
		v.Text, v.Caption = unescapeQuoteText(strings.Join(body, "\n")), caption
		return v, nil
	case models.DelimiterData:
		return v, nil
	case models.TableData:
		v.Content = parseTable(text, tableColumns(v.Content))
		return v, nil
	case models.ImageData:
		url, caption, _ := strings.Cut(text, "\n")
		v.File.URL = strings.TrimSpace(url)
		v.Caption = strings.TrimSpace(caption)
		return v, nil
	case models.OpaqueData:
		trimmed := strings.TrimSpace(text)
		if !json.Valid([]byte(trimmed)) {
			return nil, fmt.Errorf("%w: %s block needs JSON data", ErrInvalidBlockText, v.Type)
		}
		v.Raw = json.RawMessage(trimmed)
		return v, nil
	}
	return nil, ErrUnknownBlockType
}

// parseList reads one item per non-blank line. An item indented deeper than
// the previous one becomes its child.
func parseList(text string) []models.ListItem {
	type line struct {
		depth   int
		content string
	}

	var lines []line
	for _, l := range strings.Split(text, "\n") {
		content := strings.TrimSpace(l)
		if content == "" {
			continue
		}
		indent := len(l) - len(strings.TrimLeft(l, " \t"))
		lines = append(lines, line{depth: indent / 2, content: content})
	}

	var build func(start, depth int) ([]models.ListItem, int)
	build = func(start, depth int) ([]models.ListItem, int) {
		items := []models.ListItem{}
		i := start
		for i < len(lines) {
			l := lines[i]
			if l.depth < depth {
				break
			}
			if l.depth > depth && len(items) > 0 {
				var children []models.ListItem
				children, i = build(i, l.depth)
				last := &items[len(items)-1]
				last.Items = append(last.Items, children...)
				continue
			}
			items = append(items, models.ListItem{Content: l.content})
			i++
		}
		return items, i
	}

	items, _ := build(0, 0)
	return items
}

// escapeQuoteText prefixes a backslash to every line that would otherwise
// read as the caption separator, including lines already escaped.
func escapeQuoteText(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if isEscapedSeparator(l) {
			lines[i] = `\` + l
		}
	}
	return strings.Join(lines, "\n")
}

// unescapeQuoteText is the inverse of escapeQuoteText.
func unescapeQuoteText(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if strings.HasPrefix(l, `\`) && isEscapedSeparator(l[1:]) {
			lines[i] = l[1:]
		}
	}
	return strings.Join(lines, "\n")
}

// isEscapedSeparator reports whether l trims to the separator preceded by
// any number of backslashes.
func isEscapedSeparator(l string) bool {
	return strings.TrimLeft(strings.TrimSpace(l), `\`) == quoteCaptionSeparator
}

// tableColumns is the width of the grid, zero for an empty one.
func tableColumns(content [][]string) int {
	cols := 0
	for _, r := range content {
		cols = max(cols, len(r))
	}
	return cols
}

// parseTable reads one row per non-blank line with cells separated by "|".
// The grid keeps cols columns: short rows are padded and surplus cells are
// folded into the last one. With cols zero the widest row sets the width.
func parseTable(text string, cols int) [][]string {
	rows := [][]string{}
	width := cols
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		cells := strings.Split(l, "|")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if cols == 0 {
			width = max(width, len(cells))
		}
		rows = append(rows, cells)
	}
	for i, r := range rows {
		if len(r) > width {
			r = append(r[:width-1], strings.Join(r[width-1:], " | "))
		}
		for len(r) < width {
			r = append(r, "")
		}
		rows[i] = r
	}
	return rows
}
