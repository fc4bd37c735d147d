// Package wiki handles Confluence-style backends: URL classification,
// page-identifier resolution, and the REST client for page storage bodies.
package wiki

import "strings"

// wikiPatterns are matched case-insensitively against the whole URL.
// Any single hit classifies the URL as wiki-style.
var wikiPatterns = []string{
	"confluence",
	".atlassian.net",
	"/wiki/",
	"/display/",
}

// IsWikiURL reports whether a URL belongs to a Confluence-style backend.
// All call sites must route through this function; the routing and the
// client setup deciding independently is exactly the inconsistency this
// guards against.
func IsWikiURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, pattern := range wikiPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
