// Package types provides type definitions for structured data used throughout the portfolio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Category is the business dimension a metric belongs to
type Category string

// Enumerated categories
const (
	CategoryRetention    Category = "retention"
	CategoryGrowth       Category = "growth"
	CategorySatisfaction Category = "satisfaction"
	CategoryEfficiency   Category = "efficiency"
	CategoryRevenue      Category = "revenue"
)

// AllCategories returns the enumerated categories in their canonical display order.
func AllCategories() []Category {
	return []Category{
		CategoryRetention,
		CategoryGrowth,
		CategorySatisfaction,
		CategoryEfficiency,
		CategoryRevenue,
	}
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Trend describes a metric's recent movement
type Trend string

// Enumerated trends
const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Valid reports whether t is one of the enumerated trends. The empty trend is not valid;
// callers treat it as "absent".
func (t Trend) Valid() bool {
	return t == TrendUp || t == TrendDown || t == TrendStable
}

// Display units with dedicated formatting
const (
	UnitPercentage       = "%"
	UnitMillionCurrency  = "M"
	UnitThousandCurrency = "K"
	UnitNPS              = "NPS"
	UnitPositions        = "positions"
)

// MetricsDocument is the on-disk shape of a metrics data file
type MetricsDocument struct {
	Metrics []Metric `json:"metrics"`
}

// Metric represents a single named, categorized, quantified achievement
type Metric struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Value       MetricValue `json:"value"`
	Unit        string      `json:"unit"`
	Description string      `json:"description" validate:"required"`
	Category    Category    `json:"category" validate:"required,oneof=retention growth satisfaction efficiency revenue"`
	Timeframe   string      `json:"timeframe"`
	Context     string      `json:"context"`
	Trend       Trend       `json:"trend,omitempty" validate:"omitempty,oneof=up down stable"`
	Icon        string      `json:"icon,omitempty"`
}

// MetricValue is either a number or a short string token such as "10+"
type MetricValue struct {
	num     float64
	str     string
	numeric bool
}

// NumberValue returns a numeric MetricValue
func NumberValue(v float64) MetricValue {
	return MetricValue{num: v, numeric: true}
}

// StringValue returns a string token MetricValue
func StringValue(s string) MetricValue {
	return MetricValue{str: s}
}

// Number returns the numeric value and whether the value is numeric.
func (v MetricValue) Number() (float64, bool) {
	return v.num, v.numeric
}

// IsZero reports whether the value was never set.
func (v MetricValue) IsZero() bool {
	return !v.numeric && v.str == ""
}

// String renders numbers with the shortest exact decimal form (95, 2.5) and tokens verbatim.
func (v MetricValue) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// MarshalJSON encodes numbers as JSON numbers and tokens as JSON strings.
func (v MetricValue) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

// UnmarshalJSON accepts a JSON number or a JSON string.
func (v *MetricValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("metric value must be a number or string, got null")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid metric value: %w", err)
		}
		*v = StringValue(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("metric value must be a number or string: %w", err)
	}
	*v = NumberValue(f)
	return nil
}

// CategoryStats summarizes the metrics of one category.
// Average, Min and Max cover numeric values only and are 0 when NumericCount is 0.
type CategoryStats struct {
	Count        int     `json:"count"`
	NumericCount int     `json:"numeric_count"`
	Average      float64 `json:"average"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
}

// MetricsSummary is the whole-collection summary shown on the dashboard
type MetricsSummary struct {
	TotalMetrics  int                        `json:"total_metrics"`
	Categories    int                        `json:"categories"`
	TrendingUp    int                        `json:"trending_up"`
	AverageScore  float64                    `json:"average_score"`
	CategoryStats map[Category]CategoryStats `json:"category_stats"`
}
