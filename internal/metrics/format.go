package metrics

import (
	"github.com/jonathan/csm-portfolio/internal/types"
)

// Color tokens
const (
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorAmber  = "amber"
	ColorPurple = "purple"
	ColorRed    = "red"
	ColorGray   = "gray"
)

// Icon glyphs
const (
	IconSmile     = "😊"
	IconChartUp   = "📈"
	IconCycle     = "🔄"
	IconLightning = "⚡"
	IconMoney     = "💰"
	IconChart     = "📊"
)

var categoryColors = map[types.Category]string{
	types.CategoryRetention:    ColorBlue,
	types.CategoryGrowth:       ColorGreen,
	types.CategorySatisfaction: ColorAmber,
	types.CategoryEfficiency:   ColorPurple,
	types.CategoryRevenue:      ColorRed,
}

var categoryIcons = map[types.Category]string{
	types.CategorySatisfaction: IconSmile,
	types.CategoryGrowth:       IconChartUp,
	types.CategoryRetention:    IconCycle,
	types.CategoryEfficiency:   IconLightning,
	types.CategoryRevenue:      IconMoney,
}

// FormatValue renders a value with its unit for display.
//
// Position deltas are always prefixed with "+", so a negative delta renders as "+-3".
func FormatValue(v types.MetricValue, unit string) string {
	value := v.String()
	switch unit {
	case types.UnitPercentage:
		return value + "%"
	case types.UnitMillionCurrency:
		return "$" + value + "M"
	case types.UnitThousandCurrency:
		return "$" + value + "K"
	case types.UnitNPS:
		return value
	case types.UnitPositions:
		return "+" + value
	default:
		return value + unit
	}
}

// CategoryColor returns the color token for a category, gray for unknown ones.
func CategoryColor(c types.Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return ColorGray
}

// CategoryIcon returns the glyph for a category, a generic chart for unknown ones.
func CategoryIcon(c types.Category) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return IconChart
}

// DisplayIcon prefers the metric's own icon over its category glyph.
func DisplayIcon(m types.Metric) string {
	if m.Icon != "" {
		return m.Icon
	}
	return CategoryIcon(m.Category)
}

// View is a metric decorated with its presentation tokens
type View struct {
	types.Metric
	Display string `json:"display"`
	Color   string `json:"color"`
	Glyph   string `json:"glyph"`
}

// NewView decorates a metric for display
func NewView(m types.Metric) View {
	return View{
		Metric:  m,
		Display: FormatValue(m.Value, m.Unit),
		Color:   CategoryColor(m.Category),
		Glyph:   DisplayIcon(m),
	}
}

// NewViews decorates a list of metrics, preserving order
func NewViews(metrics []types.Metric) []View {
	views := make([]View, 0, len(metrics))
	for _, m := range metrics {
		views = append(views, NewView(m))
	}
	return views
}
