// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
)

func sampleNodes(t *testing.T) []Node {
	t.Helper()
	return Document(&models.Document{Blocks: []models.Block{
		block(t, "header", `{"text":"Intro","level":1}`),
		block(t, "paragraph", `{"text":"a < b & c"}`),
		block(t, "list", `{"style":"ordered","items":["one","two"]}`),
		block(t, "table", `{"content":[["k","v"],["a","1"]]}`),
		block(t, "delimiter", `{}`),
		block(t, "unknown-widget", `{"x":"<script>"}`),
	}})
}

func TestHTML(t *testing.T) {
	out := HTML(sampleNodes(t))

	assert.Contains(t, out, "<h1>Intro</h1>")
	assert.Contains(t, out, "<p>a &lt; b &amp; c</p>")
	assert.Contains(t, out, "<ol><li>one</li><li>two</li></ol>")
	assert.Contains(t, out, "<table><thead><tr><th>k</th><th>v</th></tr></thead><tbody><tr><td>a</td><td>1</td></tr></tbody></table>")
	assert.Contains(t, out, "<hr>")
	assert.Contains(t, out, `<p class="block-fallback">{&#34;x&#34;:&#34;&lt;script&gt;&#34;}</p>`)
	assert.NotContains(t, out, "<script>")
}

func TestHTML_Image(t *testing.T) {
	out := HTML(Document(&models.Document{Blocks: []models.Block{
		block(t, "image", `{"file":{"url":"https://x.io/a.png?a=1&b=\"2\""},"caption":"cap"}`),
	}}))

	assert.Equal(t, `<figure><img src="https://x.io/a.png?a=1&amp;b=&#34;2&#34;" alt="cap"><figcaption>cap</figcaption></figure>`, out)
}

func TestPage(t *testing.T) {
	out := Page("notes <1>", sampleNodes(t))

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>notes &lt;1&gt;</title>")
	assert.Contains(t, out, "<article><h1>Intro</h1>")
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleNodes(t))

	expected := strings.Join([]string{
		"# Intro",
		"a < b & c",
		"1. one\n2. two",
		"| k | v |\n| --- | --- |\n| a | 1 |",
		"---",
		"```json\n{\"x\":\"<script>\"}\n```",
	}, "\n\n") + "\n"
	assert.Equal(t, expected, out)
}

func TestDocumentMarkdown_QuoteCodeAndImage(t *testing.T) {
	doc := models.Document{Blocks: []models.Block{
		block(t, "quote", `{"text":"line one\nline two","caption":"me"}`),
		block(t, "code", `{"code":"print(1)"}`),
		block(t, "image", `{"file":{"url":"u.png"},"caption":"pic"}`),
	}}

	out := DocumentMarkdown(doc)

	assert.Contains(t, out, "> line one\n> line two\n> — me")
	assert.Contains(t, out, "```\nprint(1)\n```")
	assert.Contains(t, out, "![pic](u.png)\n\n*pic*")
}

func TestTerminal(t *testing.T) {
	out := Terminal(sampleNodes(t), 0)

	assert.Contains(t, out, "Intro")
	assert.Contains(t, out, "a < b & c")
	assert.Contains(t, out, "1. one")
	assert.Contains(t, out, "2. two")
	assert.Contains(t, out, "k │ v")
	assert.Contains(t, out, `{"x":"<script>"}`)
}

func TestTerminal_EmptyTree(t *testing.T) {
	assert.Equal(t, "", Terminal(Document(nil), 80))
}
