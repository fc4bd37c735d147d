package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/scrapemark/core"
)

// indexFilenames are path leaves that name a site root rather than a page.
var indexFilenames = map[string]bool{
	"index.html":   true,
	"index.htm":    true,
	"index.php":    true,
	"default.html": true,
	"default.aspx": true,
}

// ResolveTitle picks a human-readable title for a fetch result. Sources
// are tried in order: the explicit title field, the document <title>,
// og:title metadata, the first h1, the first h2 or h3, and finally the
// URL itself. Each step runs only when the previous one produced nothing.
func ResolveTitle(result *core.FetchResult) string {
	if title := strings.TrimSpace(result.Title); title != "" {
		return title
	}
	if result.HTML != "" {
		if title := titleFromMarkup(result.HTML); title != "" {
			return title
		}
	}
	return titleFromURL(result.URL)
}

func titleFromMarkup(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if title := strings.TrimSpace(content); title != "" {
			return title
		}
	}
	for _, sel := range []string{"h1", "h2", "h3"} {
		if title := strings.TrimSpace(doc.Find(sel).First().Text()); title != "" {
			return title
		}
	}
	return ""
}

// titleFromURL derives a title from the last path segment, turning
// "getting-started" into "Getting Started". Empty and index paths
// become "Home - {host}".
func titleFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "Untitled Page"
	}

	segments := strings.Split(parsed.Path, "/")
	last := ""
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			last = segments[i]
			break
		}
	}

	if last == "" || indexFilenames[strings.ToLower(last)] {
		return "Home - " + parsed.Host
	}
	if title := titleCaseSegment(last); title != "" {
		return title
	}
	return "Documentation from " + parsed.Host
}

// titleCaseSegment replaces hyphens and underscores with spaces and
// upper-cases the first letter of each word.
func titleCaseSegment(segment string) string {
	segment = strings.ReplaceAll(segment, "-", " ")
	segment = strings.ReplaceAll(segment, "_", " ")

	words := strings.Fields(segment)
	for i, word := range words {
		runes := []rune(word)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] = runes[0] - 'a' + 'A'
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
