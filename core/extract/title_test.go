package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/scrapemark/core"
)

func TestResolveTitle(t *testing.T) {
	tests := []struct {
		name   string
		result core.FetchResult
		want   string
	}{
		{
			name: "explicit title field wins",
			result: core.FetchResult{
				URL:   "https://example.com/page",
				Title: "Explicit Title",
				HTML:  "<html><head><title>Markup Title</title></head></html>",
			},
			want: "Explicit Title",
		},
		{
			name: "whitespace-only title field is skipped",
			result: core.FetchResult{
				URL:   "https://example.com/page",
				Title: "   ",
				HTML:  "<html><head><title>Markup Title</title></head></html>",
			},
			want: "Markup Title",
		},
		{
			name: "document title element",
			result: core.FetchResult{
				URL:  "https://example.com/page",
				HTML: "<html><head><title>Markup Title</title></head><body><h1>Heading</h1></body></html>",
			},
			want: "Markup Title",
		},
		{
			name: "og:title metadata",
			result: core.FetchResult{
				URL:  "https://example.com/page",
				HTML: `<html><head><meta property="og:title" content="OG Title"></head><body></body></html>`,
			},
			want: "OG Title",
		},
		{
			name: "first h1",
			result: core.FetchResult{
				URL:  "https://example.com/page",
				HTML: "<html><body><h1>First Heading</h1><h1>Second Heading</h1></body></html>",
			},
			want: "First Heading",
		},
		{
			name: "h2 before h3",
			result: core.FetchResult{
				URL:  "https://example.com/page",
				HTML: "<html><body><h3>Deep</h3><h2>Shallow</h2></body></html>",
			},
			want: "Shallow",
		},
		{
			name: "h3 when nothing shallower",
			result: core.FetchResult{
				URL:  "https://example.com/page",
				HTML: "<html><body><h3>Only Heading</h3></body></html>",
			},
			want: "Only Heading",
		},
		{
			name: "derived from URL path",
			result: core.FetchResult{
				URL: "https://docs.example.com/guide/getting-started",
			},
			want: "Getting Started",
		},
		{
			name: "underscores in path segment",
			result: core.FetchResult{
				URL: "https://example.com/user_guide",
			},
			want: "User Guide",
		},
		{
			name: "empty path",
			result: core.FetchResult{
				URL: "https://docs.example.com/",
			},
			want: "Home - docs.example.com",
		},
		{
			name: "index filename",
			result: core.FetchResult{
				URL: "https://example.com/index.html",
			},
			want: "Home - example.com",
		},
		{
			name: "path segment with no letters falls to ultimate fallback",
			result: core.FetchResult{
				URL: "https://example.com/guides/---",
			},
			want: "Documentation from example.com",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveTitle(&tc.result))
		})
	}
}

func TestTitleCaseSegment(t *testing.T) {
	assert.Equal(t, "Getting Started", titleCaseSegment("getting-started"))
	assert.Equal(t, "API Reference", titleCaseSegment("API_reference"))
	assert.Equal(t, "", titleCaseSegment("---"))
}
