// The scrape command orchestrates the pipeline: classify the URL,
// fetch (wiki API or generic HTML), select content, resolve the title,
// normalize, render, write.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/scrapemark/core"
	"github.com/gaurav-prasanna/scrapemark/core/extract"
	"github.com/gaurav-prasanna/scrapemark/core/fetch"
	"github.com/gaurav-prasanna/scrapemark/core/normalize"
	"github.com/gaurav-prasanna/scrapemark/core/output"
	"github.com/gaurav-prasanna/scrapemark/core/render"
	"github.com/gaurav-prasanna/scrapemark/core/wiki"
)

// Flag variables.
var (
	flagOutputDir string
	flagTimeout   int
	flagSpace     string
	flagPageID    string
	flagConfig    string

	flagMarkdown bool
	flagPDF      bool
	flagJSON     bool

	flagWikiBase  string
	flagWikiEmail string
	flagWikiToken string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape a URL and write it as a normalized document",
	Long: `Scrape fetches a page, picks the best available content representation,
and writes a normalized markdown document. Confluence-style URLs are
fetched through the wiki REST API when credentials are available,
falling back to plain HTML fetching otherwise.

Examples:
  scrapemark scrape https://example.com/guide/getting-started
  scrapemark scrape https://team.atlassian.net/wiki/spaces/DOC/pages/123456 --space DOC
  scrapemark scrape https://example.com --pdf --output ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&flagOutputDir, "output", "", "Directory to save output files (default: ./scraped_content)")
	scrapeCmd.Flags().IntVar(&flagTimeout, "timeout", 30, "Timeout in seconds for HTTP requests")
	scrapeCmd.Flags().StringVar(&flagSpace, "space", "", "Wiki space key (used for the output directory layout)")
	scrapeCmd.Flags().StringVar(&flagPageID, "page-id", "", "Wiki page ID (skips page-id resolution from the URL)")
	scrapeCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML configuration file")

	// Output format flags (mutually exclusive; markdown is the default).
	scrapeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output markdown (default)")
	scrapeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	scrapeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")

	// Wiki credentials; also read from CONFLUENCE_URL, CONFLUENCE_EMAIL,
	// and CONFLUENCE_API_TOKEN, or a config file.
	scrapeCmd.Flags().StringVar(&flagWikiBase, "wiki-base", "", "Wiki API base URL (default: derived from the page URL)")
	scrapeCmd.Flags().StringVar(&flagWikiEmail, "wiki-email", "", "Wiki account email")
	scrapeCmd.Flags().StringVar(&flagWikiToken, "wiki-token", "", "Wiki API token")
}

func runScrape(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	var fileCfg FileConfig
	if flagConfig != "" {
		fileCfg, err = loadFileConfig(flagConfig)
		if err != nil {
			return err
		}
	}

	timeout := time.Duration(flagTimeout) * time.Second
	wikiCfg := resolveWikiConfig(fileCfg, flagWikiBase, flagWikiEmail, flagWikiToken, timeout)
	if wikiCfg.BaseURL == "" {
		wikiCfg.BaseURL = deriveWikiBase(parsed)
	}

	writer, err := output.New(firstNonEmpty(flagOutputDir, fileCfg.Output))
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()
	log.Info().Str("url", rawURL).Msg("starting scrape")

	result, err := fetchResult(ctx, rawURL, wikiCfg, timeout)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	selector := extract.NewSelector()
	normalizer := normalize.New()

	content := selector.Select(result)
	title := extract.ResolveTitle(result)
	body := normalizer.Normalize(content, title, result.URL, result.Timestamp)

	doc := core.NormalizedDocument{
		Title:     title,
		SourceURL: result.URL,
		Timestamp: result.Timestamp,
		Body:      body,
	}

	data, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path, err := writer.Save(data, parsed.Host, title, flagSpace, renderer.Extension())
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Content scraped and saved to: %s\n", path)
	return nil
}

// fetchResult routes the URL to the wiki API or the generic HTML fetcher.
// Wiki routing requires the URL to classify as wiki-style, credentials to
// be present, and a page identifier to resolve; any missing piece falls
// back to plain HTML fetching. Only a failed HTML fetch is an error.
func fetchResult(ctx context.Context, rawURL string, wikiCfg wiki.Config, timeout time.Duration) (*core.FetchResult, error) {
	if wiki.IsWikiURL(rawURL) {
		if result := tryWikiFetch(ctx, rawURL, wikiCfg); result != nil {
			return result, nil
		}
	}

	fetcher := fetch.New(timeout)
	return fetcher.Fetch(ctx, rawURL)
}

// tryWikiFetch attempts the wiki API path. A nil return means "fall back
// to HTML fetching"; it is never a fatal condition.
func tryWikiFetch(ctx context.Context, rawURL string, cfg wiki.Config) *core.FetchResult {
	if !cfg.Enabled() {
		log.Warn().Msg("wiki credentials missing, falling back to HTML fetch")
		return nil
	}

	pageID := wiki.PageID{Value: flagPageID, Source: wiki.SourceExplicit}
	if flagPageID == "" {
		var ok bool
		pageID, ok = wiki.ResolvePageID(rawURL)
		if !ok {
			log.Warn().Str("url", rawURL).Msg("no page id found, falling back to HTML fetch")
			return nil
		}
	}

	client := wiki.NewClient(cfg)
	result, err := client.FetchPage(ctx, pageID, rawURL)
	if err != nil {
		log.Warn().Err(err).Msg("wiki API fetch failed, falling back to HTML fetch")
		return nil
	}
	return result
}

// deriveWikiBase guesses the REST base URL from the page URL. Cloud-style
// wikis serve their API under the /wiki prefix.
func deriveWikiBase(parsed *url.URL) string {
	base := parsed.Scheme + "://" + parsed.Host
	if strings.HasPrefix(parsed.Path, "/wiki/") {
		base += "/wiki"
	}
	return base
}

// selectRenderer creates the appropriate Renderer based on flags.
// Markdown is the default when no format flag is given.
func selectRenderer() (core.Renderer, error) {
	formatCount := 0
	for _, set := range []bool{flagMarkdown, flagPDF, flagJSON} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	switch {
	case flagPDF:
		return render.NewPDFRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(), nil
	default:
		return render.NewMarkdownRenderer(), nil
	}
}
