package metrics

import (
	"github.com/jonathan/csm-portfolio/internal/types"
)

// statsAccumulator folds numeric values; non-numeric values only bump the count.
type statsAccumulator struct {
	count   int
	numeric int
	sum     float64
	min     float64
	max     float64
}

func (a *statsAccumulator) add(v types.MetricValue) {
	a.count++

	n, ok := v.Number()
	if !ok {
		return
	}
	if a.numeric == 0 || n < a.min {
		a.min = n
	}
	if a.numeric == 0 || n > a.max {
		a.max = n
	}
	a.numeric++
	a.sum += n
}

// average is 0 when no numeric value was seen.
func (a *statsAccumulator) average() float64 {
	if a.numeric == 0 {
		return 0
	}
	return a.sum / float64(a.numeric)
}

func (a *statsAccumulator) stats() types.CategoryStats {
	return types.CategoryStats{
		Count:        a.count,
		NumericCount: a.numeric,
		Average:      a.average(),
		Min:          a.min,
		Max:          a.max,
	}
}

// CategoryStats computes count, average, min and max for each category present in the store.
// Categories without numeric values report zeros for average, min and max.
func (s *Store) CategoryStats() map[types.Category]types.CategoryStats {
	acc := make(map[types.Category]*statsAccumulator)
	for i := range s.metrics {
		m := &s.metrics[i]
		a, ok := acc[m.Category]
		if !ok {
			a = &statsAccumulator{}
			acc[m.Category] = a
		}
		a.add(m.Value)
	}

	out := make(map[types.Category]types.CategoryStats, len(acc))
	for c, a := range acc {
		out[c] = a.stats()
	}
	return out
}

// Summary computes the whole-collection dashboard summary.
func (s *Store) Summary() types.MetricsSummary {
	var all statsAccumulator
	trendingUp := 0
	for i := range s.metrics {
		all.add(s.metrics[i].Value)
		if s.metrics[i].Trend == types.TrendUp {
			trendingUp++
		}
	}

	stats := s.CategoryStats()
	return types.MetricsSummary{
		TotalMetrics:  len(s.metrics),
		Categories:    len(stats),
		TrendingUp:    trendingUp,
		AverageScore:  all.average(),
		CategoryStats: stats,
	}
}
