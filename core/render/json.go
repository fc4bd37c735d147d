// Package render — JSON renderer.
// Builds structured JSON output from the normalized document, parsing
// the markdown body to extract structural information (headings, links,
// code blocks, tables, lists).
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/scrapemark/core"
)

// Heading represents a single heading found in the document body.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the document body.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Structure holds structural metadata parsed from the body.
type Structure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	CodeBlocks int       `json:"code_blocks"`
	Tables     int       `json:"tables"`
	Lists      int       `json:"lists"`
}

// documentJSON is the complete JSON output for a single page.
type documentJSON struct {
	Document  core.NormalizedDocument `json:"document"`
	Structure Structure               `json:"structure"`
}

// JSONRenderer produces structured JSON output from the document.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the document into indented JSON.
func (r *JSONRenderer) Render(doc core.NormalizedDocument) ([]byte, error) {
	out := documentJSON{
		Document: doc,
		Structure: Structure{
			Headings:   extractHeadings(doc.Body),
			Links:      extractLinks(doc.Body),
			CodeBlocks: countCodeBlocks(doc.Body),
			Tables:     countTables(doc.Body),
			Lists:      countLists(doc.Body),
		},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// linkRegex matches Markdown links [text](url).
var linkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

func extractLinks(md string) []Link {
	matches := linkRegex.FindAllStringSubmatch(md, -1)
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{
			Text: m[1],
			Href: m[2],
		})
	}
	return links
}

// countCodeBlocks counts fenced code blocks (``` delimited).
func countCodeBlocks(md string) int {
	return strings.Count(md, "```") / 2
}

// countTables counts Markdown tables by looking for separator rows (|---|).
var tableSepRegex = regexp.MustCompile(`(?m)^\|[-:| ]+\|$`)

func countTables(md string) int {
	return len(tableSepRegex.FindAllString(md, -1))
}

// countLists counts list items (lines starting with -, *, or a number).
var listItemRegex = regexp.MustCompile(`(?m)^[\s]*[-*]\s|^[\s]*\d+\.\s`)

func countLists(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}
