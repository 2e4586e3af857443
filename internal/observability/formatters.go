// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/csm-portfolio/internal/metrics"
	"github.com/jonathan/csm-portfolio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out      io.Writer
	maxItems int
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, maxItems: maxItemsToShow}
}

// ShowAll makes list output print every item instead of the first few.
func (p *Printer) ShowAll() *Printer {
	p.maxItems = -1
	return p
}

// clip shortens a line to n runes, marking the cut with "..."
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs the dashboard summary with per-category statistics.
func (p *Printer) PrintSummary(summary *types.MetricsSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total metrics:  %d\n", summary.TotalMetrics))
	sb.WriteString(fmt.Sprintf("Categories:     %d\n", summary.Categories))
	sb.WriteString(fmt.Sprintf("Trending up:    %d\n", summary.TrendingUp))
	sb.WriteString(fmt.Sprintf("Average score:  %.2f\n", summary.AverageScore))

	if len(summary.CategoryStats) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%-14s %5s %8s %8s %8s\n", "Category", "Count", "Avg", "Min", "Max"))
		for _, c := range types.AllCategories() {
			stats, ok := summary.CategoryStats[c]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("%s %-12s %5d %8.2f %8.2f %8.2f\n",
				metrics.CategoryIcon(c), c, stats.Count, stats.Average, stats.Min, stats.Max))
		}
	}

	p.printBox("METRICS SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetrics outputs metrics with their formatted values under the given title.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMetrics(title string, list []types.Metric) {
	if len(list) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO MATCHING METRICS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	count := len(list)
	if p.maxItems >= 0 {
		count = min(count, p.maxItems)
	}

	var sb strings.Builder
	for i := 0; i < count; i++ {
		view := metrics.NewView(list[i])
		sb.WriteString(fmt.Sprintf("%s %-10s %s\n", view.Glyph, view.Display, view.Name))
		sb.WriteString(fmt.Sprintf("   [%s] %s", view.Category, view.Timeframe))
		if view.Trend != "" {
			sb.WriteString(fmt.Sprintf(" trend:%s", view.Trend))
		}
		sb.WriteString("\n")
	}

	if len(list) > count {
		sb.WriteString(fmt.Sprintf("... and %d more metrics\n", len(list)-count))
	}

	p.printBox(fmt.Sprintf("%s (%d)", title, len(list)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIntegrityError outputs every violation found while loading a metrics document.
func (p *Printer) PrintIntegrityError(err *metrics.IntegrityError) {
	if err == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(err.Violations)))
	for i, v := range err.Violations {
		field := v.Field
		if v.Index >= 0 {
			field = fmt.Sprintf("metrics[%d].%s", v.Index, v.Field)
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", field))
		sb.WriteString(fmt.Sprintf("  %s", v.Message))
		if i < len(err.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INTEGRITY VIOLATIONS", sb.String())
}
