// Package core defines the pipeline types and interfaces for scrapemark.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// ExtractionMethod records which extraction path produced the content
// field of a FetchResult.
type ExtractionMethod string

const (
	// ExtractionStandard marks content produced by the fetch client itself.
	ExtractionStandard ExtractionMethod = "standard"
	// ExtractionEnhanced marks content recovered by the markup-to-text
	// fallback chain after the standard extraction came up empty.
	ExtractionEnhanced ExtractionMethod = "enhanced"
)

// FetchResult holds whatever representations of a page the fetch side
// managed to produce. Only URL is guaranteed to be set; every other
// field may be absent or empty depending on the fetch client.
type FetchResult struct {
	URL              string
	Title            string
	Content          string
	Markdown         string
	HTML             string
	Text             string
	Timestamp        string // RFC3339, set when the page was fetched
	ExtractionMethod ExtractionMethod

	// Extra preserves response fields this pipeline does not interpret.
	// They are carried along for forward compatibility but never drive
	// a decision.
	Extra map[string]string
}

// NormalizedDocument is the final product of one pipeline run.
// Body holds markdown whose only level-1 heading is the title heading
// injected by the normalizer.
type NormalizedDocument struct {
	Title     string `json:"title"`
	SourceURL string `json:"source_url"`
	Timestamp string `json:"timestamp,omitempty"`
	Body      string `json:"body"`
}

// Fetcher retrieves a page representation for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Selector picks the best available content out of a fetch result.
// It never returns an empty string; when nothing usable exists it
// returns a fixed failure sentinel.
type Selector interface {
	Select(result *FetchResult) string
}

// Normalizer post-processes selected content into the final document body.
type Normalizer interface {
	Normalize(content, title, sourceURL, timestamp string) string
}

// Renderer converts a normalized document into a final output format.
type Renderer interface {
	Render(doc NormalizedDocument) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
