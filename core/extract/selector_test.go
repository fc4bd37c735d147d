package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/scrapemark/core"
)

const longParagraph = "This paragraph easily clears the minimum length accepted as meaningful content by the extraction chain."

func TestSelectPriorityOrder(t *testing.T) {
	tests := []struct {
		name   string
		result core.FetchResult
		want   string
	}{
		{
			name: "markdown field wins over everything",
			result: core.FetchResult{
				URL:      "https://example.com",
				Markdown: "# Already markdown",
				Content:  "plain content",
				Text:     "plain text",
				HTML:     "<p>html</p>",
			},
			want: "# Already markdown",
		},
		{
			name: "content field when markdown missing",
			result: core.FetchResult{
				URL:     "https://example.com",
				Content: "plain content",
				Text:    "plain text",
			},
			want: "plain content",
		},
		{
			name: "content equal to sentinel is skipped",
			result: core.FetchResult{
				URL:     "https://example.com",
				Content: FailureSentinel,
				Text:    "plain text",
			},
			want: "plain text",
		},
		{
			name: "text field when content empty",
			result: core.FetchResult{
				URL:  "https://example.com",
				Text: "plain text",
			},
			want: "plain text",
		},
		{
			name: "enhanced content used verbatim when not markup",
			result: core.FetchResult{
				URL:              "https://example.com",
				Content:          "already extracted text",
				ExtractionMethod: core.ExtractionEnhanced,
			},
			want: "already extracted text",
		},
	}

	selector := NewSelector()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, selector.Select(&tc.result))
		})
	}
}

func TestSelectEnhancedMarkupReconverted(t *testing.T) {
	selector := NewSelector()
	result := core.FetchResult{
		URL:              "https://example.com",
		Content:          `<div class="content"><p>` + longParagraph + `</p></div>`,
		ExtractionMethod: core.ExtractionEnhanced,
	}

	got := selector.Select(&result)
	assert.Contains(t, got, "clears the minimum length")
	assert.NotContains(t, got, "<div")
	assert.NotContains(t, got, "<p>")
}

func TestSelectHTMLMainContainer(t *testing.T) {
	selector := NewSelector()
	result := core.FetchResult{
		URL: "https://example.com",
		HTML: `<html><head><script>nav()</script></head><body>
			<nav>Skip me</nav>
			<main><h2>Guide</h2><p>` + longParagraph + `</p></main>
			<footer>Skip me too</footer>
		</body></html>`,
	}

	got := selector.Select(&result)
	assert.Contains(t, got, "Guide")
	assert.Contains(t, got, "clears the minimum length")
	assert.NotContains(t, got, "Skip me")
	assert.NotContains(t, got, "nav()")
}

func TestSelectHTMLParagraphFallback(t *testing.T) {
	selector := NewSelector()
	// No recognized container; paragraphs joined with blank lines.
	result := core.FetchResult{
		URL: "https://example.com",
		HTML: `<html><body>
			<p>First paragraph of the page body with enough words in it.</p>
			<p>Second paragraph of the page body with enough words too.</p>
		</body></html>`,
	}

	got := selector.Select(&result)
	assert.Contains(t, got, "First paragraph")
	assert.Contains(t, got, "Second paragraph")
	assert.Contains(t, got, "\n\n")
}

func TestSelectHTMLFullTextLastResort(t *testing.T) {
	selector := NewSelector()
	result := core.FetchResult{
		URL:  "https://example.com",
		HTML: `<html><body><div>` + longParagraph + `</div></body></html>`,
	}

	got := selector.Select(&result)
	assert.Contains(t, got, "clears the minimum length")
}

func TestSelectShortContainerTriesNextStrategy(t *testing.T) {
	selector := NewSelector()
	// The main container is below the meaningful threshold; the paragraph
	// strategy picks up the longer body text.
	result := core.FetchResult{
		URL: "https://example.com",
		HTML: `<html><body>
			<main>tiny</main>
			<p>` + longParagraph + `</p>
		</body></html>`,
	}

	got := selector.Select(&result)
	assert.Contains(t, got, "clears the minimum length")
}

func TestSelectNeverReturnsEmpty(t *testing.T) {
	selector := NewSelector()
	tests := []core.FetchResult{
		{URL: "https://example.com"},
		{URL: "https://example.com", HTML: "<html><body></body></html>"},
		{URL: "https://example.com", HTML: "<html><body><p>short</p></body></html>"},
		{URL: "https://example.com", Content: FailureSentinel},
	}

	for _, result := range tests {
		got := selector.Select(&result)
		assert.Equal(t, FailureSentinel, got)
		assert.NotEmpty(t, got)
	}
}

func TestLooksLikeMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"paragraph tag", "<p>hello</p>", true},
		{"div tag", `<div class="x">hello</div>`, true},
		{"link tag", `see <a href="/x">this</a>`, true},
		{"plain prose", "just some text", false},
		{"angle brackets without tags", "a < b and b > c", false},
		{"uppercase tags", "<P>hello</P>", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, looksLikeMarkup(tc.in))
		})
	}
}

func TestMeaningful(t *testing.T) {
	assert.False(t, meaningful(""))
	assert.False(t, meaningful(strings.Repeat("x", minMeaningful)))
	assert.True(t, meaningful(strings.Repeat("x", minMeaningful+1)))
}
