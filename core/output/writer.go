// Package output handles file naming and writing for scrapemark outputs.
// Documents land under {base}/{domain}[/{space}]/{title}_{timestamp}{ext},
// with every path component sanitized for the filesystem.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultBaseDir = "scraped_content"

// invalidFilenameChars are stripped from path components.
var invalidFilenameChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// Writer writes rendered output to disk.
type Writer struct {
	BaseDir string

	// now is swappable for tests; filenames embed a timestamp.
	now func() time.Time
}

// New creates a Writer rooted at the given base directory.
// If baseDir is empty, ./scraped_content under the working directory is used.
func New(baseDir string) (*Writer, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		baseDir = filepath.Join(wd, defaultBaseDir)
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{BaseDir: baseDir, now: time.Now}, nil
}

// Save writes data under the domain directory (and space subdirectory,
// when set) with a filename derived from the page title. Returns the
// path written.
func (w *Writer) Save(data []byte, domain, title, spaceKey, ext string) (string, error) {
	dir := filepath.Join(w.BaseDir, sanitizeName(domain))
	if spaceKey != "" {
		dir = filepath.Join(dir, sanitizeName(spaceKey))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, w.filename(title)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("bytes", len(data)).Msg("document written")
	return path, nil
}

// filename derives a unique filename from a page title by appending a
// timestamp.
func (w *Writer) filename(title string) string {
	return fmt.Sprintf("%s_%s", sanitizeName(title), w.now().Format("20060102-150405"))
}

// sanitizeName makes a string safe to use as a single path component:
// spaces become underscores, invalid characters are dropped, length is
// capped, and an empty result falls back to "unnamed".
func sanitizeName(name string) string {
	sanitized := strings.ReplaceAll(name, " ", "_")
	sanitized = invalidFilenameChars.ReplaceAllString(sanitized, "")

	if len(sanitized) > 100 {
		sanitized = sanitized[:100]
	}
	sanitized = strings.TrimRight(sanitized, ".")

	if strings.TrimSpace(sanitized) == "" {
		return "unnamed"
	}
	return sanitized
}
