// Package pkg provides the core libraries for assembling ECharts option trees.
//
// # Overview
//
// Optcharts builds the nested JSON option mappings the Apache ECharts
// runtime consumes. The pkg directory is organized into four areas:
//
//  1. [echarts] - Option builders (series, axis, legend, tooltip, chart)
//  2. [theme] - Named default-option sets, builtin and TOML-loaded
//  3. [json] - JSON facade with a pluggable handler
//  4. [errors] - Structured, coded errors
//
// # Quick Start
//
// Build a chart and marshal its option tree:
//
//	import (
//	    "github.com/optcharts/optcharts/pkg/echarts"
//	    "github.com/optcharts/optcharts/pkg/theme"
//	)
//
//	// 1. Build leaf components
//	series, _ := echarts.NewLine("visits", []any{120, 200, 150})
//	axis, _ := echarts.NewAxis(echarts.AxisCategory, "day", echarts.PositionBottom,
//	    []any{"Mon", "Tue", "Wed"})
//
//	// 2. Accumulate them in a chart
//	chart := echarts.NewChart("Traffic", "per day", true, true,
//	    theme.Dark().ChartOptions()...)
//	_ = chart.AddComponent(series)
//	_ = chart.AddComponent(axis)
//
//	// 3. Marshal for the charting runtime
//	out, _ := echarts.Marshal(chart)
//
// # Main Packages
//
// [echarts] - Option builders for the ECharts schema. Every component
// validates its enumerated fields at construction, carries an open bag of
// pass-through options, and serializes itself through an insertion-ordered
// map, so output key order is deterministic.
//
// [theme] - Named sets of default pass-through options per component
// section. Builtin themes (default, dark) are embedded; custom themes load
// from TOML files (see examples/themes for a ready-to-load sample).
//
// [json] - Thin facade over the JSON codec with a swappable handler
// (json-iterator by default, encoding/json available).
//
// [errors] - Structured errors with machine-readable codes
// (INVALID_SERIES_KIND, UNKNOWN_COMPONENT, ...) used for every validation
// failure.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/echarts/...    # Specific package
//	go test -run Example         # Examples only
//
// [echarts]: https://pkg.go.dev/github.com/optcharts/optcharts/pkg/echarts
// [theme]: https://pkg.go.dev/github.com/optcharts/optcharts/pkg/theme
// [json]: https://pkg.go.dev/github.com/optcharts/optcharts/pkg/json
// [errors]: https://pkg.go.dev/github.com/optcharts/optcharts/pkg/errors
package pkg
