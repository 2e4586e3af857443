package metrics

import (
	"math"
	"testing"

	"github.com/jonathan/csm-portfolio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryStats_ThreeMetricStore(t *testing.T) {
	store, err := NewStore([]types.Metric{
		metric("a", types.CategorySatisfaction, types.NumberValue(84)),
		metric("b", types.CategorySatisfaction, types.NumberValue(4)),
		metric("c", types.CategoryGrowth, types.NumberValue(10)),
	})
	require.NoError(t, err)

	stats := store.CategoryStats()
	require.Len(t, stats, 2)

	satisfaction := stats[types.CategorySatisfaction]
	assert.Equal(t, 2, satisfaction.Count)
	assert.Equal(t, 44.0, satisfaction.Average)
	assert.Equal(t, 4.0, satisfaction.Min)
	assert.Equal(t, 84.0, satisfaction.Max)

	assert.Equal(t, 3, store.Summary().TotalMetrics)
}

func TestCategoryStats_NonNumericCountedButExcluded(t *testing.T) {
	store, err := NewStore([]types.Metric{
		metric("a", types.CategoryGrowth, types.StringValue("10+")),
		metric("b", types.CategoryGrowth, types.NumberValue(-2)),
		metric("c", types.CategoryGrowth, types.NumberValue(6)),
	})
	require.NoError(t, err)

	growth := store.CategoryStats()[types.CategoryGrowth]
	assert.Equal(t, 3, growth.Count)
	assert.Equal(t, 2, growth.NumericCount)
	assert.Equal(t, 2.0, growth.Average)
	assert.Equal(t, -2.0, growth.Min)
	assert.Equal(t, 6.0, growth.Max)
}

func TestCategoryStats_NoNumericValuesReportsZero(t *testing.T) {
	store, err := NewStore([]types.Metric{
		metric("a", types.CategoryEfficiency, types.StringValue("high")),
		metric("b", types.CategoryEfficiency, types.StringValue("24/7")),
	})
	require.NoError(t, err)

	eff := store.CategoryStats()[types.CategoryEfficiency]
	assert.Equal(t, types.CategoryStats{Count: 2}, eff)
	assert.False(t, math.IsNaN(eff.Average))
}

func TestCategoryStats_OnlyPresentCategories(t *testing.T) {
	store, err := NewStore([]types.Metric{
		metric("a", types.CategoryRevenue, types.NumberValue(1)),
	})
	require.NoError(t, err)

	stats := store.CategoryStats()
	assert.Len(t, stats, 1)
	_, ok := stats[types.CategoryGrowth]
	assert.False(t, ok)
}

func TestCategoryStats_AuthoredData(t *testing.T) {
	store := loadAuthoredStore(t)

	stats := store.CategoryStats()
	require.Len(t, stats, 5)

	assert.Equal(t, types.CategoryStats{Count: 2, NumericCount: 2, Average: 65, Min: 35, Max: 95}, stats[types.CategoryRetention])
	assert.Equal(t, types.CategoryStats{Count: 2, NumericCount: 1, Average: 450, Min: 450, Max: 450}, stats[types.CategoryGrowth])
	assert.Equal(t, types.CategoryStats{Count: 3, NumericCount: 3, Average: 54, Min: 22, Max: 100}, stats[types.CategoryEfficiency])
	assert.InDelta(t, 60.25, stats[types.CategoryRevenue].Average, 1e-9)
	assert.Equal(t, 3, stats[types.CategorySatisfaction].Count)
}

func TestSummary_AuthoredData(t *testing.T) {
	store := loadAuthoredStore(t)

	summary := store.Summary()
	assert.Equal(t, 12, summary.TotalMetrics)
	assert.Equal(t, 5, summary.Categories)
	assert.Equal(t, 7, summary.TrendingUp)
	assert.InDelta(t, 956.3/11, summary.AverageScore, 1e-9)
	assert.Equal(t, store.CategoryStats(), summary.CategoryStats)
}

func TestSummary_EmptyStore(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	summary := store.Summary()
	assert.Equal(t, 0, summary.TotalMetrics)
	assert.Equal(t, 0, summary.Categories)
	assert.Equal(t, 0, summary.TrendingUp)
	assert.Equal(t, 0.0, summary.AverageScore)
	assert.Empty(t, summary.CategoryStats)
}

func TestSummary_AllNonNumeric(t *testing.T) {
	store, err := NewStore([]types.Metric{
		metric("a", types.CategoryGrowth, types.StringValue("10+")),
		metric("b", types.CategoryRevenue, types.StringValue("7-figure")),
	})
	require.NoError(t, err)

	summary := store.Summary()
	assert.Equal(t, 2, summary.TotalMetrics)
	assert.Equal(t, 2, summary.Categories)
	assert.Equal(t, 0.0, summary.AverageScore)
	assert.False(t, math.IsNaN(summary.AverageScore))
}
