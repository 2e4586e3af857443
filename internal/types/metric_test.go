package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricValue_UnmarshalNumber(t *testing.T) {
	var v MetricValue
	require.NoError(t, json.Unmarshal([]byte(`2.5`), &v))

	n, ok := v.Number()
	assert.True(t, ok)
	assert.Equal(t, 2.5, n)
	assert.Equal(t, "2.5", v.String())
}

func TestMetricValue_UnmarshalString(t *testing.T) {
	var v MetricValue
	require.NoError(t, json.Unmarshal([]byte(`"10+"`), &v))

	_, ok := v.Number()
	assert.False(t, ok)
	assert.Equal(t, "10+", v.String())
}

func TestMetricValue_UnmarshalRejectsOtherKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "null", input: `null`},
		{name: "bool", input: `true`},
		{name: "object", input: `{"a":1}`},
		{name: "array", input: `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v MetricValue
			assert.Error(t, json.Unmarshal([]byte(tt.input), &v))
		})
	}
}

func TestMetricValue_KeepsJSONKind(t *testing.T) {
	data, err := json.Marshal([]MetricValue{NumberValue(95), StringValue("10+")})
	require.NoError(t, err)
	assert.JSONEq(t, `[95, "10+"]`, string(data))
}

func TestMetricValue_StringWholeNumber(t *testing.T) {
	assert.Equal(t, "95", NumberValue(95).String())
	assert.Equal(t, "-3", NumberValue(-3).String())
	assert.True(t, MetricValue{}.IsZero())
	assert.False(t, NumberValue(0).IsZero())
}

func TestMetric_DecodeOptionalFields(t *testing.T) {
	content := `{
		"id": "nps-score",
		"name": "Net Promoter Score",
		"value": 84,
		"unit": "NPS",
		"description": "Portfolio NPS",
		"category": "satisfaction",
		"timeframe": "2023-2024",
		"context": "Enterprise accounts"
	}`

	var m Metric
	require.NoError(t, json.Unmarshal([]byte(content), &m))
	assert.Equal(t, CategorySatisfaction, m.Category)
	assert.Equal(t, Trend(""), m.Trend)
	assert.Empty(t, m.Icon)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "trend")
	assert.NotContains(t, string(out), "icon")
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("marketing").Valid())
	assert.False(t, Category("").Valid())
	assert.Len(t, AllCategories(), 5)
}

func TestTrend_Valid(t *testing.T) {
	assert.True(t, TrendUp.Valid())
	assert.True(t, TrendDown.Valid())
	assert.True(t, TrendStable.Valid())
	assert.False(t, Trend("sideways").Valid())
	assert.False(t, Trend("").Valid())
}
