// Package normalize implements the Normalizer interface.
// It post-processes selected content into the final markdown document:
// title and metadata header, heading demotion, table re-alignment, and
// link-spacing repair.
package normalize

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// linkSpacing matches a markdown link immediately followed by a
// non-whitespace, non-")" character.
var linkSpacing = regexp.MustCompile(`(\[[^\]]*\]\([^)]*\))([^\s)])`)

// MarkdownNormalizer post-processes markdown content.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize builds the final document body: a title heading, a source
// metadata block, a horizontal rule, then the content with headings
// demoted, tables re-aligned, and link spacing repaired.
//
// Normalize is meant to run exactly once per document. Feeding its
// output back in demotes the headings a second time; that is a known
// limitation, not a defect to guard against here.
func (n *MarkdownNormalizer) Normalize(content, title, sourceURL, timestamp string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString("_Source: ")
	b.WriteString(sourceURL)
	b.WriteString("_  \n")
	if timestamp != "" {
		b.WriteString("_Crawled: ")
		b.WriteString(timestamp)
		b.WriteString("_  \n")
	}
	b.WriteString("\n---\n\n")
	b.WriteString(content)

	out := demoteHeadings(b.String())
	out = realignTables(out)
	out = repairLinkSpacing(out)

	log.Debug().Str("title", title).Int("chars", len(out)).Msg("normalized document")
	return out
}

// demoteHeadings shifts every heading after the title down one level so
// the injected title stays the document's only level-1 heading. The
// scanner has two states: before the title heading (the first level-1
// line, left untouched) and after it (every heading gains one "#").
func demoteHeadings(content string) string {
	lines := strings.Split(content, "\n")
	titleConsumed := false

	for i, line := range lines {
		level := headingLevel(line)
		if level == 0 {
			continue
		}
		if !titleConsumed && level == 1 {
			titleConsumed = true
			continue
		}
		lines[i] = "#" + line
	}
	return strings.Join(lines, "\n")
}

// headingLevel returns the heading level of a line, or 0 when the line
// is not a heading.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// realignTables rewrites well-formed table blocks so every cell is
// padded as "| cell |". A block is well-formed when it has a header
// row, a separator row, and at least one data row, each delimited by
// leading and trailing pipes. Anything else is left exactly as found
// rather than corrupted.
func realignTables(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		if !isTableRow(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}

		end := i
		for end < len(lines) && isTableRow(lines[end]) {
			end++
		}
		block := lines[i:end]

		if len(block) >= 3 && !isSeparatorRow(block[0]) && isSeparatorRow(block[1]) {
			for _, row := range block {
				if isSeparatorRow(row) {
					out = append(out, row)
					continue
				}
				out = append(out, realignRow(row))
			}
		} else {
			log.Debug().Int("rows", len(block)).Msg("skipping malformed table block")
			out = append(out, block...)
		}
		i = end
	}
	return strings.Join(out, "\n")
}

func isTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= 2 && strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

// isSeparatorRow matches rows whose cells contain only "-", ":", and
// spaces, e.g. |---|:--:|.
func isSeparatorRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !isTableRow(trimmed) {
		return false
	}
	inner := strings.Trim(trimmed, "|")
	if !strings.ContainsRune(inner, '-') {
		return false
	}
	for _, r := range inner {
		switch r {
		case '-', ':', ' ', '|':
		default:
			return false
		}
	}
	return true
}

func realignRow(line string) string {
	trimmed := strings.TrimSpace(line)
	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "|"), "|")
	cells := strings.Split(inner, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// repairLinkSpacing inserts a space after any markdown link glued to the
// following character, which otherwise breaks rendering in most viewers.
func repairLinkSpacing(content string) string {
	return linkSpacing.ReplaceAllString(content, "$1 $2")
}
