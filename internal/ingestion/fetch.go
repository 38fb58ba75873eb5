package ingestion

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	fetchTimeout   = 30 * time.Second
	browserTimeout = 60 * time.Second
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	// minPostingLength is the minimum extracted text length to trust the
	// plain HTTP fetch. Shorter content usually means a JavaScript-rendered
	// page, so we fall back to the headless browser.
	minPostingLength = 500
)

var blankLines = regexp.MustCompile(`\n{3,}`)

// FetchJobPosting downloads a job posting page and extracts its visible
// text. It tries a plain HTTP fetch first and, when useBrowser is set,
// falls back to headless browser rendering when the result looks like an
// unrendered SPA shell.
func FetchJobPosting(ctx context.Context, url string, useBrowser bool) (string, error) {
	html, err := fetchHTML(ctx, url)
	if err != nil {
		return "", err
	}

	text, err := ExtractVisibleText(html)
	if err != nil {
		return "", &FetchError{URL: url, Message: "failed to parse HTML", Cause: err}
	}

	if !useBrowser || len(strings.TrimSpace(text)) >= minPostingLength {
		return text, nil
	}

	log.Printf("[FETCH] content too short (%d chars), retrying %s with headless browser", len(text), url)
	rendered, err := renderWithBrowser(ctx, url, browserTimeout)
	if err != nil {
		// Keep whatever the plain fetch produced; a short posting is
		// still better than none.
		log.Printf("[FETCH] browser fallback failed: %v", err)
		return text, nil
	}

	renderedText, err := ExtractVisibleText(rendered)
	if err != nil {
		return text, nil
	}
	return renderedText, nil
}

func fetchHTML(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Message: "invalid request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: url, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Message: "failed to parse response", Cause: err}
	}
	html, err := doc.Html()
	if err != nil {
		return "", &FetchError{URL: url, Message: "failed to serialize document", Cause: err}
	}
	return html, nil
}

// ExtractVisibleText strips scripts, styles and navigation chrome from HTML
// and returns the remaining text with normalized line breaks.
func ExtractVisibleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	var sb strings.Builder
	doc.Find("body").Find("h1, h2, h3, h4, h5, h6, p, li, td, div, span").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes: skip containers whose children will be
		// visited anyway, to avoid duplicating text.
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	out := sb.String()
	if out == "" {
		// No element-level structure found; fall back to the whole body.
		out = doc.Find("body").Text()
	}
	return strings.TrimSpace(blankLines.ReplaceAllString(out, "\n\n")), nil
}
