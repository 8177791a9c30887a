// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package editor holds the editable state of a note: its file name and the
// ordered block list, with the operations of the block palette.
package editor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// IDGenerator names new blocks.
type IDGenerator interface {
	Generate() string
}

// Draft is the editor state for one note. It is not safe for concurrent use.
type Draft struct {
	name    string
	blocks  []models.Block
	cursor  int
	version string

	ids IDGenerator
	now func() time.Time
}

// NewDraft opens content for editing under name. A document without blocks
// starts as one empty paragraph.
func NewDraft(ids IDGenerator, name string, content models.Document) *Draft {
	d := &Draft{
		name:    name,
		version: content.Version,
		ids:     ids,
		now:     time.Now,
	}

	doc := content.Clone()
	if len(doc.Blocks) == 0 {
		doc = models.ParagraphDocument("")
	}
	d.blocks = doc.Blocks
	for i := range d.blocks {
		if d.blocks[i].ID == "" {
			d.blocks[i].ID = ids.Generate()
		}
	}

	return d
}

func (d *Draft) Name() string { return d.name }

func (d *Draft) SetName(name string) { d.name = name }

// Len returns the number of blocks.
func (d *Draft) Len() int { return len(d.blocks) }

// Cursor returns the index of the selected block, or -1 for an empty draft.
func (d *Draft) Cursor() int {
	if len(d.blocks) == 0 {
		return -1
	}
	return d.cursor
}

// SetCursor selects block i, clamped to the draft.
func (d *Draft) SetCursor(i int) {
	d.cursor = clamp(i, 0, len(d.blocks)-1)
}

// Block returns a copy of block i.
func (d *Draft) Block(i int) (models.Block, bool) {
	if !d.inRange(i) {
		return models.Block{}, false
	}
	return cloneBlock(d.blocks[i]), true
}

// Blocks returns a copy of the block list.
func (d *Draft) Blocks() []models.Block {
	out := make([]models.Block, len(d.blocks))
	for i, b := range d.blocks {
		out[i] = cloneBlock(b)
	}
	return out
}

// Append adds a new empty block of blockType at the end and selects it.
func (d *Draft) Append(blockType string) (int, error) {
	return d.insertAt(len(d.blocks), blockType)
}

// InsertAfterCursor adds a new empty block of blockType after the selected
// block and selects it.
func (d *Draft) InsertAfterCursor(blockType string) (int, error) {
	at := 0
	if len(d.blocks) > 0 {
		at = d.cursor + 1
	}
	return d.insertAt(at, blockType)
}

func (d *Draft) insertAt(at int, blockType string) (int, error) {
	data, err := newBlockData(blockType)
	if err != nil {
		return -1, fmt.Errorf("%w: %q", err, blockType)
	}
	b, err := models.NewBlock(d.ids.Generate(), data)
	if err != nil {
		return -1, err
	}

	d.blocks = append(d.blocks, models.Block{})
	copy(d.blocks[at+1:], d.blocks[at:])
	d.blocks[at] = b
	d.cursor = at

	return at, nil
}

// Remove deletes block i. The cursor stays on the same position, or moves to
// the new last block.
func (d *Draft) Remove(i int) bool {
	if !d.inRange(i) {
		return false
	}
	d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
	d.cursor = clamp(d.cursor, 0, len(d.blocks)-1)
	return true
}

// MoveUp swaps block i with the block above it. The cursor follows the
// moved block.
func (d *Draft) MoveUp(i int) bool {
	if !d.inRange(i) || i == 0 {
		return false
	}
	d.blocks[i-1], d.blocks[i] = d.blocks[i], d.blocks[i-1]
	d.cursor = i - 1
	return true
}

// MoveDown swaps block i with the block below it. The cursor follows the
// moved block.
func (d *Draft) MoveDown(i int) bool {
	if !d.inRange(i) || i == len(d.blocks)-1 {
		return false
	}
	d.blocks[i+1], d.blocks[i] = d.blocks[i], d.blocks[i+1]
	d.cursor = i + 1
	return true
}

// Text returns the plain-text form of block i.
func (d *Draft) Text(i int) string {
	if !d.inRange(i) {
		return ""
	}
	return blockText(d.blocks[i].Decode())
}

// SetText replaces the content of block i with its plain-text form.
// Fields of the stored data that the text form does not cover are kept.
func (d *Draft) SetText(i int, text string) error {
	if !d.inRange(i) {
		return ErrBlockOutOfRange
	}
	data, err := parseBlockText(d.blocks[i].Decode(), text)
	if err != nil {
		return err
	}
	return d.store(i, data)
}

// SetHeaderLevel changes the level of header block i. Levels outside 1..6
// are refused.
func (d *Draft) SetHeaderLevel(i, level int) bool {
	if !d.inRange(i) || level < 1 || level > 6 {
		return false
	}
	h, ok := d.blocks[i].Decode().(models.HeaderData)
	if !ok {
		return false
	}
	h.Level = level
	return d.store(i, h) == nil
}

// CycleHeaderLevel moves header block i to the next level, wrapping from 6
// back to 1.
func (d *Draft) CycleHeaderLevel(i int) bool {
	if !d.inRange(i) {
		return false
	}
	h, ok := d.blocks[i].Decode().(models.HeaderData)
	if !ok {
		return false
	}
	return d.SetHeaderLevel(i, h.Level%6+1)
}

// ToggleListStyle switches list block i between ordered and unordered.
func (d *Draft) ToggleListStyle(i int) bool {
	if !d.inRange(i) {
		return false
	}
	l, ok := d.blocks[i].Decode().(models.ListData)
	if !ok {
		return false
	}
	if l.Style == models.ListOrdered {
		l.Style = models.ListUnordered
	} else {
		l.Style = models.ListOrdered
	}
	return d.store(i, l) == nil
}

// Document serializes the draft.
func (d *Draft) Document() (models.Document, error) {
	blocks := make([]models.Block, len(d.blocks))
	for i, b := range d.blocks {
		if len(bytes.TrimSpace(b.Data)) > 0 && !json.Valid(b.Data) {
			return models.Document{}, fmt.Errorf("%w: block %d (%s) holds invalid data", ErrSerialization, i, b.Type)
		}
		blocks[i] = cloneBlock(b)
	}

	ms := d.now().UnixMilli()
	return models.Document{Time: &ms, Blocks: blocks, Version: d.version}, nil
}

// Save hands the trimmed file name and the serialized draft to onSave.
// It does nothing and returns false when the name is blank or the draft
// cannot be serialized.
func (d *Draft) Save(onSave func(name string, doc models.Document)) bool {
	name := strings.TrimSpace(d.name)
	if name == "" {
		return false
	}
	doc, err := d.Document()
	if err != nil {
		return false
	}
	onSave(name, doc)
	return true
}

// Preview serializes the draft without ending the edit. A draft that cannot
// be serialized previews as an empty document.
func (d *Draft) Preview() models.Document {
	doc, err := d.Document()
	if err != nil {
		return models.Document{Blocks: []models.Block{}}
	}
	return doc
}

// store encodes data into block i on top of the stored fields.
func (d *Draft) store(i int, data models.BlockData) error {
	b, err := models.NewBlock(d.blocks[i].ID, data)
	if err != nil {
		return err
	}
	if known, ok := knownFields[data.BlockType()]; ok {
		b.Data = mergeData(d.blocks[i].Data, b.Data, known)
	}
	d.blocks[i] = b
	return nil
}

// knownFields lists the data fields each known block type owns. Any other
// field found in stored data is carried over unchanged on edit.
var knownFields = map[string][]string{
	models.BlockParagraph: {"text"},
	models.BlockHeader:    {"text", "level"},
	models.BlockList:      {"style", "items"},
	models.BlockCode:      {"code"},
	models.BlockQuote:     {"text", "caption", "alignment"},
	models.BlockDelimiter: {},
	models.BlockTable:     {"withHeadings", "content"},
	models.BlockImage:     {"file", "caption", "withBorder", "withBackground", "stretched"},
}

// mergeData replaces the known fields of base with those of update and
// keeps the rest. If either side is not a JSON object, update wins.
func mergeData(base, update json.RawMessage, known []string) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil || fields == nil {
		return update
	}
	var changed map[string]json.RawMessage
	if err := json.Unmarshal(update, &changed); err != nil {
		return update
	}
	for _, k := range known {
		delete(fields, k)
	}
	for k, v := range changed {
		fields[k] = v
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return update
	}
	return merged
}

func (d *Draft) inRange(i int) bool {
	return i >= 0 && i < len(d.blocks)
}

func cloneBlock(b models.Block) models.Block {
	return models.Block{ID: b.ID, Type: b.Type, Data: append(json.RawMessage(nil), b.Data...)}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
