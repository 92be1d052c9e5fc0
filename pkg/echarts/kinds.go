package echarts

import (
	"slices"
	"strings"

	"github.com/optcharts/optcharts/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Series kinds, as named by the ECharts option schema.
const (
	SeriesLine          = "line"
	SeriesBar           = "bar"
	SeriesPie           = "pie"
	SeriesScatter       = "scatter"
	SeriesEffectScatter = "effectScatter"
	SeriesRadar         = "radar"
	SeriesTree          = "tree"
	SeriesTreemap       = "treemap"
	SeriesSunburst      = "sunburst"
	SeriesBoxplot       = "boxplot"
	SeriesCandlestick   = "candlestick"
	SeriesHeatmap       = "heatmap"
	SeriesMap           = "map"
	SeriesParallel      = "parallel"
	SeriesLines         = "lines"
	SeriesGraph         = "graph"
	SeriesSankey        = "sankey"
	SeriesFunnel        = "funnel"
	SeriesGauge         = "gauge"
	SeriesPictorialBar  = "pictorialBar"
	SeriesThemeRiver    = "themeRiver"
	SeriesCustom        = "custom"
)

// Axis kinds.
const (
	AxisCategory = "category"
	AxisValue    = "value"
	AxisTime     = "time"
	AxisLog      = "log"
)

// Axis positions. These classify an axis as horizontal or vertical; see
// [Axis.IsHorizontal] for the classification rule.
const (
	PositionTop    = "top"
	PositionBottom = "bottom"
	PositionLeft   = "left"
	PositionRight  = "right"
)

// Legend orientations.
const (
	OrientHorizontal = "horizontal"
	OrientVertical   = "vertical"
)

// Legend kinds.
const (
	LegendPlain  = "plain"
	LegendScroll = "scroll"
)

// Tooltip triggers.
const (
	TriggerAxis = "axis"
	TriggerItem = "item"
)

// Tooltip axis pointer types.
const (
	AxisPointerLine   = "line"
	AxisPointerShadow = "shadow"
	AxisPointerNone   = "none"
	AxisPointerCross  = "cross"
)

// =============================================================================
// Allowed Sets
// =============================================================================

// SeriesKinds is the ordered set of supported series kinds. NewSeries
// enforces membership.
var SeriesKinds = []string{
	SeriesLine, SeriesBar, SeriesPie, SeriesScatter, SeriesEffectScatter,
	SeriesRadar, SeriesTree, SeriesTreemap, SeriesSunburst, SeriesBoxplot,
	SeriesCandlestick, SeriesHeatmap, SeriesMap, SeriesParallel, SeriesLines,
	SeriesGraph, SeriesSankey, SeriesFunnel, SeriesGauge, SeriesPictorialBar,
	SeriesThemeRiver, SeriesCustom,
}

// AxisKinds is the ordered set of supported axis kinds. NewAxis enforces
// membership.
var AxisKinds = []string{AxisCategory, AxisValue, AxisTime, AxisLog}

// Orients is the ordered set of legend orientations. NewLegend enforces
// membership.
var Orients = []string{OrientHorizontal, OrientVertical}

// Triggers is the ordered set of tooltip triggers. NewTooltip enforces
// membership.
var Triggers = []string{TriggerAxis, TriggerItem}

// Positions lists the axis positions the schema documents. NewAxis does not
// enforce membership; the position only steers horizontal/vertical
// classification.
var Positions = []string{PositionTop, PositionBottom, PositionLeft, PositionRight}

// LegendKinds lists the legend kinds the schema documents. NewLegend does
// not enforce membership; arbitrary kind strings pass through.
var LegendKinds = []string{LegendPlain, LegendScroll}

// AxisPointerTypes lists the axis pointer types the schema documents.
// NewTooltip does not enforce membership; arbitrary strings pass through.
var AxisPointerTypes = []string{AxisPointerLine, AxisPointerShadow, AxisPointerNone, AxisPointerCross}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateSeriesKind checks that kind is a supported series kind.
func ValidateSeriesKind(kind string) error {
	return validateOneOf(errors.ErrCodeInvalidSeriesKind, "series kind", kind, SeriesKinds)
}

// ValidateAxisKind checks that kind is a supported axis kind.
func ValidateAxisKind(kind string) error {
	return validateOneOf(errors.ErrCodeInvalidAxisKind, "axis kind", kind, AxisKinds)
}

// ValidateOrient checks that orient is a supported legend orientation.
func ValidateOrient(orient string) error {
	return validateOneOf(errors.ErrCodeInvalidOrient, "orient", orient, Orients)
}

// ValidateTrigger checks that trigger is a supported tooltip trigger.
func ValidateTrigger(trigger string) error {
	return validateOneOf(errors.ErrCodeInvalidTrigger, "trigger", trigger, Triggers)
}

// validateOneOf checks membership of value in allowed and reports the full
// allowed set on failure.
func validateOneOf(code errors.Code, field, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return errors.New(code, "invalid %s: %q (must be one of: %s)", field, value, strings.Join(allowed, ", "))
}
