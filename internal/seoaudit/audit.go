// Package seoaudit implements the HugemouthSEO free audit service: it
// fetches a page, inspects the meta description and H1 structure,
// scores the result, and serves the report over HTTP.
package seoaudit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/html"
)

// fetchTimeout bounds the outbound page fetch so a slow site cannot
// hold an audit request open past the server's write deadline.
const fetchTimeout = 10 * time.Second

// Report is the full result of auditing one page.
type Report struct {
	URL             string           `json:"url"`
	Timestamp       string           `json:"timestamp"`
	MetaDescription MetaDescription  `json:"meta_description"`
	H1Tag           H1Info           `json:"h1_tag"`
	Score           int              `json:"score"`
	Recommendations []Recommendation `json:"recommendations"`
	Status          string           `json:"status"`
}

// Auditor fetches pages and inspects their SEO signals.
type Auditor struct {
	client *http.Client
	logger *slog.Logger
}

// NewAuditor creates an Auditor with a bounded-timeout HTTP client.
func NewAuditor(logger *slog.Logger) *Auditor {
	return &Auditor{
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// Audit fetches the page at url and builds the audit report.
func (a *Auditor) Audit(ctx context.Context, url string) (*Report, error) {
	a.logger.Info("auditing", "url", url)

	doc, err := a.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	meta := InspectMetaDescription(doc)
	h1 := InspectH1Tags(doc)

	return &Report{
		URL:             url,
		Timestamp:       time.Now().Format(time.RFC3339),
		MetaDescription: meta,
		H1Tag:           h1,
		Score:           Score(meta, h1),
		Recommendations: Recommendations(meta, h1),
		Status:          "success",
	}, nil
}

// fetch retrieves the page and parses it. The response status is not
// checked: an error page still gets audited.
func (a *Auditor) fetch(ctx context.Context, url string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}
