package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jonathan/applyday/internal/fetch"
)

var (
	// ErrHTTPRequestFailed wraps download failures.
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed wraps HTML parsing failures.
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// FetchOptions overrides the HTTP settings used by FromURL. Nil means defaults.
var FetchOptions *fetch.Options

// FromURL downloads a job posting and extracts its description text using
// the selectors for the detected job board. With useBrowser set, pages whose
// text is too short are re-rendered in headless Chrome.
func FromURL(ctx context.Context, rawURL string, useBrowser bool, verbose bool) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(rawURL)
	if verbose {
		log.Printf("[ingest] %s (platform %s)", rawURL, platform)
	}

	page, err := fetch.URL(ctx, rawURL, FetchOptions)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	contentSelectors := fetch.ContentSelectors(platform)
	noiseSelectors := fetch.NoiseSelectors(platform)

	html := page.HTML
	text, err := fetch.ExtractMainText(html, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[ingest] extracted %d chars over HTTP", len(text))
	}

	rendered := false
	if useBrowser && fetch.NeedsBrowser(text) {
		if verbose {
			log.Printf("[ingest] text shorter than %d chars, rendering in browser", fetch.MinContentLength)
		}
		browserHTML, browserErr := fetch.WithBrowser(ctx, rawURL, fetch.DefaultTimeout, verbose)
		if browserErr != nil {
			log.Printf("[ingest] browser rendering failed, keeping HTTP text: %v", browserErr)
		} else if browserText, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			html, text, rendered = browserHTML, browserText, true
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, fmt.Errorf("%s: %w", rawURL, ErrEmptyContent)
	}

	metadata := NewMetadata(cleaned, SourceURL)
	metadata.URL = rawURL
	metadata.Platform = string(platform)
	metadata.Title = fetch.ExtractTitle(html)
	metadata.Rendered = rendered
	return cleaned, metadata, nil
}
