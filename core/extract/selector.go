// Package extract chooses the best available content representation out
// of a fetch result, converting raw markup only when nothing better is
// populated.
package extract

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/gaurav-prasanna/scrapemark/core"
)

// FailureSentinel is returned when every extraction strategy comes up
// empty. Downstream stages treat it as regular content, so a document
// is always produced.
const FailureSentinel = "No content could be extracted."

// minMeaningful is the shortest extraction accepted as real content.
// Anything shorter is assumed to be boilerplate residue and the next
// strategy is attempted.
const minMeaningful = 50

// noiseSelectors are stripped from markup before any text extraction.
var noiseSelectors = []string{
	"script", "style", "nav", "header", "footer",
}

// containerSelectors are tried in order when hunting the main content
// of a page. The first selector with a non-empty match wins.
var containerSelectors = []string{
	"main",
	"article",
	".content",
	"#content",
	".main-content",
	".documentation",
	".docs-content",
}

// markupHints, together with the presence of angle brackets, mark a
// string as markup rather than extracted prose.
var markupHints = []string{"<p>", "<p ", "<div", "<a "}

// StrategySelector applies the content priority order to a fetch result.
type StrategySelector struct{}

// NewSelector creates a StrategySelector.
func NewSelector() *StrategySelector {
	return &StrategySelector{}
}

// Select returns the best available content for a result, trying in order:
//
//  1. the markdown field
//  2. enhanced-extraction content, re-converted only if it still looks
//     like markup
//  3. the content field, unless it carries the failure sentinel
//  4. the text field
//  5. the html field, through the markup-conversion chain
//
// Nothing usable yields the failure sentinel. The return value is never
// empty.
func (s *StrategySelector) Select(result *core.FetchResult) string {
	if result.Markdown != "" {
		log.Debug().Str("strategy", "markdown").Msg("content selected")
		return result.Markdown
	}

	if result.ExtractionMethod == core.ExtractionEnhanced && result.Content != "" {
		if looksLikeMarkup(result.Content) {
			if converted := s.convertMarkup(result.Content); converted != "" {
				log.Debug().Str("strategy", "enhanced-converted").Msg("content selected")
				return converted
			}
		}
		log.Debug().Str("strategy", "enhanced").Msg("content selected")
		return result.Content
	}

	if result.Content != "" && result.Content != FailureSentinel {
		log.Debug().Str("strategy", "content").Msg("content selected")
		return result.Content
	}

	if result.Text != "" {
		log.Debug().Str("strategy", "text").Msg("content selected")
		return result.Text
	}

	if result.HTML != "" {
		if converted := s.convertMarkup(result.HTML); converted != "" {
			log.Debug().Str("strategy", "html").Msg("content selected")
			return converted
		}
	}

	log.Warn().Str("url", result.URL).Msg("all extraction strategies exhausted")
	return FailureSentinel
}

// convertMarkup derives text content from raw markup. Noise elements are
// stripped first, then three strategies run in order: a named main-content
// container, the concatenation of all paragraphs, and the full page text.
// A strategy's output counts only when it clears the meaningful-length
// threshold. Returns "" when nothing clears it.
func (s *StrategySelector) convertMarkup(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		log.Warn().Err(err).Msg("parsing markup failed")
		return ""
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, sel := range containerSelectors {
		container := doc.Find(sel).First()
		if container.Length() == 0 || strings.TrimSpace(container.Text()) == "" {
			continue
		}
		if content := renderContainer(container); meaningful(content) {
			log.Debug().Str("selector", sel).Int("chars", len(content)).Msg("content extracted from container")
			return content
		}
		break
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if joined := strings.Join(paragraphs, "\n\n"); meaningful(joined) {
		log.Debug().Int("paragraphs", len(paragraphs)).Msg("content extracted from paragraphs")
		return joined
	}

	if text := strings.TrimSpace(doc.Text()); meaningful(text) {
		log.Debug().Int("chars", len(text)).Msg("content extracted from full page text")
		return text
	}

	return ""
}

// renderContainer converts a matched container to markdown, falling back
// to its plain text when the conversion fails or produces nothing.
func renderContainer(container *goquery.Selection) string {
	if html, err := goquery.OuterHtml(container); err == nil {
		if md, err := htmltomarkdown.ConvertString(html); err == nil && strings.TrimSpace(md) != "" {
			return strings.TrimSpace(md)
		}
	}
	return strings.TrimSpace(container.Text())
}

// looksLikeMarkup reports whether text still carries HTML rather than
// extracted prose: both angle brackets plus a paragraph, block, or link
// tag opening.
func looksLikeMarkup(s string) bool {
	if !strings.Contains(s, "<") || !strings.Contains(s, ">") {
		return false
	}
	lower := strings.ToLower(s)
	for _, hint := range markupHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

func meaningful(s string) bool {
	return len(s) > minMeaningful
}
