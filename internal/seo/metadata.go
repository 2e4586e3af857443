// Package seo builds page metadata (title, description, Open Graph tags) for the portfolio pages.
package seo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/csm-portfolio/internal/metrics"
	"github.com/jonathan/csm-portfolio/internal/types"
)

const (
	// MaxTitleLength is the longest title search engines display in full
	MaxTitleLength = 60
	// MaxDescriptionLength is the longest meta description search engines display in full
	MaxDescriptionLength = 160

	ellipsis = "..."
)

// Site describes the portfolio owner and where the site is published
type Site struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	BaseURL string `json:"base_url"`
}

// OpenGraph holds the og:* tags for link previews
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	SiteName    string `json:"site_name"`
}

// Metadata is everything a page head needs for search and link previews
type Metadata struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Keywords     []string  `json:"keywords"`
	CanonicalURL string    `json:"canonical_url"`
	OpenGraph    OpenGraph `json:"open_graph"`
}

// Truncate shortens s to at most max runes, cutting at the last word boundary and appending "...".
// Strings that already fit are returned unchanged.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return string([]rune(s)[:max])
	}

	runes := []rune(s)[:max-len(ellipsis)]
	cut := string(runes)
	if i := strings.LastIndexAny(cut, " \t\n"); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:-") + ellipsis
}

// PageURL joins the site base URL and a path without doubling slashes.
func (s Site) PageURL(path string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// ForMetricsPage builds metadata for the metrics dashboard from the store summary and key metrics.
func ForMetricsPage(site Site, summary types.MetricsSummary, key []types.Metric) Metadata {
	title := Truncate(fmt.Sprintf("Impact Metrics | %s", site.Name), MaxTitleLength)

	highlights := make([]string, 0, len(key))
	for _, m := range key {
		highlights = append(highlights, fmt.Sprintf("%s %s", metrics.FormatValue(m.Value, m.Unit), m.Name))
	}

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("%d measurable results", summary.TotalMetrics))
	if site.Role != "" {
		desc.WriteString(" from " + site.Role + " " + site.Name)
	}
	if len(highlights) > 0 {
		desc.WriteString(": " + strings.Join(highlights, ", "))
	}
	desc.WriteString(".")
	description := Truncate(desc.String(), MaxDescriptionLength)

	keywords := []string{"customer success", "portfolio"}
	for _, c := range types.AllCategories() {
		if _, ok := summary.CategoryStats[c]; ok {
			keywords = append(keywords, string(c))
		}
	}

	url := site.PageURL("metrics")
	return Metadata{
		Title:        title,
		Description:  description,
		Keywords:     keywords,
		CanonicalURL: url,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         url,
			Type:        "website",
			SiteName:    site.Name,
		},
	}
}
