// Package render provides output renderers for the scrapemark pipeline.
// This file implements the Markdown renderer, which is a simple passthrough.
package render

import (
	"github.com/gaurav-prasanna/scrapemark/core"
)

// MarkdownRenderer writes the document body as-is. It's the simplest
// renderer since the normalized body is already markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the document body as bytes (passthrough).
func (r *MarkdownRenderer) Render(doc core.NormalizedDocument) ([]byte, error) {
	return []byte(doc.Body), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
