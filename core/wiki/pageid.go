package wiki

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// Source identifies which URL shape a page identifier was resolved from.
type Source string

const (
	SourceQueryParam  Source = "query-parameter"
	SourcePathSegment Source = "path-segment"
	SourceShortLink   Source = "short-link"
	// SourceExplicit marks identifiers supplied by the caller directly
	// (e.g. a --page-id flag) rather than resolved from the URL.
	SourceExplicit Source = "explicit"
)

// PageID is a resolved page identifier and the recognizer that produced it.
type PageID struct {
	Value  string
	Source Source
}

// ResolvePageID extracts a page identifier from a wiki URL. Recognizers
// are tried in fixed priority order:
//
//  1. ?pageId=123456 query parameter, returned verbatim
//  2. /wiki/spaces/SPACE/pages/123456 — the segment after "pages",
//     accepted only if entirely decimal digits
//  3. /l/cp/ru5nUbGr short links — the segment after the l/cp pair,
//     returned verbatim
//
// ok is false when no shape matches. That is a routing signal telling
// the caller to fall back to markup-based fetching, never an error.
func ResolvePageID(rawURL string) (PageID, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return PageID{}, false
	}

	if id := parsed.Query().Get("pageId"); id != "" {
		log.Debug().Str("page_id", id).Str("source", string(SourceQueryParam)).Msg("resolved page id")
		return PageID{Value: id, Source: SourceQueryParam}, true
	}

	segments := strings.Split(parsed.Path, "/")

	for i, seg := range segments {
		if seg != "pages" {
			continue
		}
		if i+1 < len(segments) && isDigits(segments[i+1]) {
			log.Debug().Str("page_id", segments[i+1]).Str("source", string(SourcePathSegment)).Msg("resolved page id")
			return PageID{Value: segments[i+1], Source: SourcePathSegment}, true
		}
		break
	}

	for i := 0; i+2 < len(segments); i++ {
		if segments[i] == "l" && segments[i+1] == "cp" && segments[i+2] != "" {
			log.Debug().Str("page_id", segments[i+2]).Str("source", string(SourceShortLink)).Msg("resolved page id")
			return PageID{Value: segments[i+2], Source: SourceShortLink}, true
		}
	}

	log.Debug().Str("url", rawURL).Msg("no page id found in URL")
	return PageID{}, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
