package metrics

import (
	"strings"

	"github.com/jonathan/csm-portfolio/internal/types"
)

// KeyMetricIDs is the curated set of metrics featured on the landing page.
var KeyMetricIDs = []string{
	"customer-retention-rate",
	"net-revenue-retention",
	"nps-score",
	"portfolio-arr",
}

func isKeyMetric(id string) bool {
	for _, key := range KeyMetricIDs {
		if id == key {
			return true
		}
	}
	return false
}

// Query combines filters with AND semantics. Zero-valued fields do not filter.
type Query struct {
	Category  types.Category
	Timeframe string
	Search    string
	KeyOnly   bool
	Trending  bool
}

// filter returns the metrics matching keep, in store order. The result is never nil.
func (s *Store) filter(keep func(m *types.Metric) bool) []types.Metric {
	out := make([]types.Metric, 0)
	for i := range s.metrics {
		if keep(&s.metrics[i]) {
			out = append(out, s.metrics[i])
		}
	}
	return out
}

// ByCategory returns the metrics of one category. Unknown categories match nothing.
func (s *Store) ByCategory(c types.Category) []types.Metric {
	return s.filter(func(m *types.Metric) bool {
		return m.Category == c
	})
}

// KeyMetrics returns the allowlisted metrics in store order; missing ids are skipped.
func (s *Store) KeyMetrics() []types.Metric {
	return s.filter(func(m *types.Metric) bool {
		return isKeyMetric(m.ID)
	})
}

// Trending returns the metrics whose trend is up.
func (s *Store) Trending() []types.Metric {
	return s.filter(func(m *types.Metric) bool {
		return m.Trend == types.TrendUp
	})
}

// ByTimeframe returns the metrics whose timeframe contains fragment (case-sensitive).
func (s *Store) ByTimeframe(fragment string) []types.Metric {
	return s.filter(func(m *types.Metric) bool {
		return strings.Contains(m.Timeframe, fragment)
	})
}

// Search matches query case-insensitively against name or description.
// A blank query returns every metric.
func (s *Store) Search(query string) []types.Metric {
	matches := searchMatcher(query)
	return s.filter(matches)
}

func searchMatcher(query string) func(m *types.Metric) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	return func(m *types.Metric) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(m.Name), needle) ||
			strings.Contains(strings.ToLower(m.Description), needle)
	}
}

// Filter applies every non-zero criterion of q.
func (s *Store) Filter(q Query) []types.Metric {
	matches := searchMatcher(q.Search)
	return s.filter(func(m *types.Metric) bool {
		if q.Category != "" && m.Category != q.Category {
			return false
		}
		if q.Timeframe != "" && !strings.Contains(m.Timeframe, q.Timeframe) {
			return false
		}
		if q.KeyOnly && !isKeyMetric(m.ID) {
			return false
		}
		if q.Trending && m.Trend != types.TrendUp {
			return false
		}
		return matches(m)
	})
}
