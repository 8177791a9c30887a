// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Block type tags understood by the editor and the renderer.
const (
	BlockParagraph = "paragraph"
	BlockHeader    = "header"
	BlockList      = "list"
	BlockCode      = "code"
	BlockQuote     = "quote"
	BlockDelimiter = "delimiter"
	BlockTable     = "table"
	BlockImage     = "image"
)

// Document is the normalized rich document produced by the editor and stored
// as a note body.
//
// JSON shape: {"time"?: 1700000000000, "blocks": [...], "version"?: "2.28.2"}.
type Document struct {
	// Time is the optional save timestamp (Unix milliseconds).
	Time *int64 `json:"time,omitempty"`

	// Blocks is the ordered block sequence. It is never nil after
	// normalization.
	Blocks []Block `json:"blocks"`

	// Version is the optional producer version string.
	Version string `json:"version,omitempty"`
}

// Block is a single typed entry of a [Document].
//
// Data is kept as raw JSON so fields that this program does not know about
// are written back exactly as they were read.
type Block struct {
	ID   string          `json:"id,omitempty"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// BlockData is the decoded, type-specific payload of a [Block].
// Exactly one variant exists per known block type, plus [OpaqueData] for
// everything else.
type BlockData interface {
	BlockType() string
}

// ParagraphData is the payload of a paragraph block.
type ParagraphData struct {
	Text string `json:"text"`
}

// HeaderData is the payload of a header block. Level is 1..6.
type HeaderData struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// List styles.
const (
	ListOrdered   = "ordered"
	ListUnordered = "unordered"
)

// ListData is the payload of a list block.
type ListData struct {
	Style string     `json:"style"`
	Items []ListItem `json:"items"`
}

// ListItem is one entry of a list. Nested entries are carried in Items.
//
// On the wire an item is either a plain string or an object
// {"content": "...", "items": [...]}; both forms are accepted.
type ListItem struct {
	Content string
	Items   []ListItem
}

// CodeData is the payload of a code block.
type CodeData struct {
	Code string `json:"code"`
}

// QuoteData is the payload of a quote block. Caption is optional.
type QuoteData struct {
	Text      string `json:"text"`
	Caption   string `json:"caption,omitempty"`
	Alignment string `json:"alignment,omitempty"`
}

// DelimiterData is the payload of a delimiter block. It carries no fields.
type DelimiterData struct{}

// TableData is the payload of a table block. The first row is the heading row.
type TableData struct {
	WithHeadings bool       `json:"withHeadings,omitempty"`
	Content      [][]string `json:"content"`
}

// ImageFile points at an image by URL.
type ImageFile struct {
	URL string `json:"url"`
}

// ImageData is the payload of an image block. Images are referenced by URL
// only.
type ImageData struct {
	File           ImageFile `json:"file"`
	Caption        string    `json:"caption,omitempty"`
	WithBorder     bool      `json:"withBorder,omitempty"`
	WithBackground bool      `json:"withBackground,omitempty"`
	Stretched      bool      `json:"stretched,omitempty"`
}

// OpaqueData is the payload of a block whose type is unknown or whose data
// could not be decoded into its variant. Raw is the data as stored.
type OpaqueData struct {
	Type string
	Raw  json.RawMessage
}

func (ParagraphData) BlockType() string { return BlockParagraph }
func (HeaderData) BlockType() string    { return BlockHeader }
func (ListData) BlockType() string      { return BlockList }
func (CodeData) BlockType() string      { return BlockCode }
func (QuoteData) BlockType() string     { return BlockQuote }
func (DelimiterData) BlockType() string { return BlockDelimiter }
func (TableData) BlockType() string     { return BlockTable }
func (ImageData) BlockType() string     { return BlockImage }
func (o OpaqueData) BlockType() string  { return o.Type }

// Decode returns the typed payload of b. It never fails: an unknown type or
// malformed data yields [OpaqueData].
func (b Block) Decode() BlockData {
	var (
		data BlockData
		err  error
	)

	switch b.Type {
	case BlockParagraph:
		var v ParagraphData
		err = decodeData(b.Data, &v)
		data = v
	case BlockHeader:
		var v HeaderData
		err = decodeData(b.Data, &v)
		if err == nil && (v.Level < 1 || v.Level > 6) {
			v.Level = 2
		}
		data = v
	case BlockList:
		var v ListData
		err = decodeData(b.Data, &v)
		if err == nil && v.Style != ListOrdered {
			v.Style = ListUnordered
		}
		data = v
	case BlockCode:
		var v CodeData
		err = decodeData(b.Data, &v)
		data = v
	case BlockQuote:
		var v QuoteData
		err = decodeData(b.Data, &v)
		data = v
	case BlockDelimiter:
		data = DelimiterData{}
	case BlockTable:
		var v TableData
		err = decodeData(b.Data, &v)
		data = v
	case BlockImage:
		var v ImageData
		err = decodeData(b.Data, &v)
		data = v
	default:
		return OpaqueData{Type: b.Type, Raw: b.Data}
	}

	if err != nil {
		return OpaqueData{Type: b.Type, Raw: b.Data}
	}
	return data
}

func decodeData(raw json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// NewBlock builds a block of the given id from a typed payload.
func NewBlock(id string, data BlockData) (Block, error) {
	if o, ok := data.(OpaqueData); ok {
		return Block{ID: id, Type: o.Type, Data: o.Raw}, nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return Block{}, fmt.Errorf("encode %s block: %w", data.BlockType(), err)
	}

	return Block{ID: id, Type: data.BlockType(), Data: raw}, nil
}

// ParagraphDocument returns a document holding exactly one paragraph with
// text.
func ParagraphDocument(text string) Document {
	raw, _ := json.Marshal(ParagraphData{Text: text})
	return Document{Blocks: []Block{{Type: BlockParagraph, Data: raw}}}
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	out := Document{Version: d.Version}
	if d.Time != nil {
		t := *d.Time
		out.Time = &t
	}
	out.Blocks = make([]Block, len(d.Blocks))
	for i, b := range d.Blocks {
		out.Blocks[i] = Block{ID: b.ID, Type: b.Type, Data: append(json.RawMessage(nil), b.Data...)}
	}
	return out
}

// PlainText flattens the document into text, one block per line. It is used
// for clipboard copies, character counts and Markdown export.
func (d Document) PlainText() string {
	var buf bytes.Buffer
	for i, b := range d.Blocks {
		if i > 0 {
			buf.WriteByte('\n')
		}
		switch v := b.Decode().(type) {
		case ParagraphData:
			buf.WriteString(v.Text)
		case HeaderData:
			buf.WriteString(v.Text)
		case ListData:
			buf.WriteString(strings.Join(listLines(v.Items, v.Style == ListOrdered, ""), "\n"))
		case CodeData:
			buf.WriteString(v.Code)
		case QuoteData:
			buf.WriteString(v.Text)
			if v.Caption != "" {
				buf.WriteString("\n— " + v.Caption)
			}
		case DelimiterData:
			buf.WriteString("***")
		case TableData:
			for r, row := range v.Content {
				if r > 0 {
					buf.WriteByte('\n')
				}
				for c, cell := range row {
					if c > 0 {
						buf.WriteString(" | ")
					}
					buf.WriteString(cell)
				}
			}
		case ImageData:
			buf.WriteString(v.File.URL)
		case OpaqueData:
			buf.Write(v.Raw)
		}
	}
	return buf.String()
}

func listLines(items []ListItem, ordered bool, indent string) []string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		lines = append(lines, indent+marker+item.Content)
		lines = append(lines, listLines(item.Items, ordered, indent+"  ")...)
	}
	return lines
}

// MarshalJSON writes items without children as plain strings so documents
// stay readable by consumers that only know the flat list format.
func (i ListItem) MarshalJSON() ([]byte, error) {
	if len(i.Items) == 0 {
		return json.Marshal(i.Content)
	}
	return json.Marshal(struct {
		Content string     `json:"content"`
		Items   []ListItem `json:"items"`
	}{i.Content, i.Items})
}

// UnmarshalJSON accepts both the plain string and the object item forms.
func (i *ListItem) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*i = ListItem{Content: s}
		return nil
	}

	var obj struct {
		Content string     `json:"content"`
		Items   []ListItem `json:"items"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*i = ListItem{Content: obj.Content, Items: obj.Items}
	return nil
}
