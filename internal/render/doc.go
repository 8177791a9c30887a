// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns note documents into a read-only visual tree and
// writes that tree out as HTML, styled terminal text or Markdown.
//
// [Document] is a pure function: it keeps no state between calls and never
// fails. A block whose type is unknown, or whose data cannot be decoded,
// becomes a fallback paragraph holding a dump of its data; the blocks
// around it are rendered normally.
package render
