// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor

import "github.com/MKhiriev/go-notes-keeper/models"

// Default shape of new blocks.
const (
	DefaultHeaderLevel = 2
	DefaultListStyle   = models.ListUnordered
	DefaultTableRows   = 2
	DefaultTableCols   = 3
)

// PaletteEntry is one block type offered by the editor.
type PaletteEntry struct {
	Type  string
	Label string
}

var palette = []PaletteEntry{
	{Type: models.BlockParagraph, Label: "Paragraph"},
	{Type: models.BlockHeader, Label: "Header"},
	{Type: models.BlockList, Label: "List"},
	{Type: models.BlockCode, Label: "Code"},
	{Type: models.BlockQuote, Label: "Quote"},
	{Type: models.BlockDelimiter, Label: "Delimiter"},
	{Type: models.BlockTable, Label: "Table"},
	{Type: models.BlockImage, Label: "Image (URL)"},
}

// Palette returns the block types that can be added to a draft, in menu
// order.
func Palette() []PaletteEntry {
	out := make([]PaletteEntry, len(palette))
	copy(out, palette)
	return out
}

// newBlockData returns the empty payload of a new block of blockType.
func newBlockData(blockType string) (models.BlockData, error) {
	switch blockType {
	case models.BlockParagraph:
		return models.ParagraphData{}, nil
	case models.BlockHeader:
		return models.HeaderData{Level: DefaultHeaderLevel}, nil
	case models.BlockList:
		return models.ListData{Style: DefaultListStyle, Items: []models.ListItem{}}, nil
	case models.BlockCode:
		return models.CodeData{}, nil
	case models.BlockQuote:
		return models.QuoteData{}, nil
	case models.BlockDelimiter:
		return models.DelimiterData{}, nil
	case models.BlockTable:
		grid := make([][]string, DefaultTableRows)
		for i := range grid {
			grid[i] = make([]string, DefaultTableCols)
		}
		return models.TableData{Content: grid}, nil
	case models.BlockImage:
		return models.ImageData{}, nil
	}
	return nil, ErrUnknownBlockType
}
