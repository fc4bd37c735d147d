package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePageID(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantValue  string
		wantSource Source
		wantOK     bool
	}{
		{
			name:       "query parameter",
			url:        "https://confluence.example.com/pages/viewpage.action?pageId=123456",
			wantValue:  "123456",
			wantSource: SourceQueryParam,
			wantOK:     true,
		},
		{
			name:       "query parameter wins over path segment",
			url:        "https://team.atlassian.net/wiki/spaces/DOC/pages/999999/Title?pageId=123456",
			wantValue:  "123456",
			wantSource: SourceQueryParam,
			wantOK:     true,
		},
		{
			name:       "path segment after pages",
			url:        "https://team.atlassian.net/wiki/spaces/SPACE/pages/123456",
			wantValue:  "123456",
			wantSource: SourcePathSegment,
			wantOK:     true,
		},
		{
			name:       "path segment with trailing title",
			url:        "https://team.atlassian.net/wiki/spaces/SPACE/pages/123456/Page+Title",
			wantValue:  "123456",
			wantSource: SourcePathSegment,
			wantOK:     true,
		},
		{
			name:   "pages segment followed by non-digits",
			url:    "https://team.atlassian.net/wiki/spaces/SPACE/pages/viewpage.action",
			wantOK: false,
		},
		{
			name:       "short link",
			url:        "https://team.atlassian.net/l/cp/ru5nUbGr",
			wantValue:  "ru5nUbGr",
			wantSource: SourceShortLink,
			wantOK:     true,
		},
		{
			name:   "short link missing token",
			url:    "https://team.atlassian.net/l/cp",
			wantOK: false,
		},
		{
			name:   "no recognizable shape",
			url:    "https://example.com/some/page",
			wantOK: false,
		},
		{
			name:   "empty pageId parameter is ignored",
			url:    "https://example.com/pages/viewpage.action?pageId=",
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ResolvePageID(tc.url)
			require.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				return
			}
			assert.Equal(t, tc.wantValue, id.Value)
			assert.Equal(t, tc.wantSource, id.Source)
		})
	}
}
