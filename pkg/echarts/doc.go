// Package echarts assembles the nested option mappings consumed by the
// Apache ECharts charting library.
//
// Each component (Series, Axis, Legend, Tooltip, Chart) validates a handful
// of enumerated string options at construction time, stores its data together
// with an open bag of pass-through options, and exposes Structure, which
// serializes the component into an insertion-ordered mapping matching the
// option schema ECharts expects. Nothing here renders a chart: the produced
// mapping is handed to the external charting runtime as-is.
//
// # Architecture
//
// The package is organized leaf-first:
//
//  1. Leaf components: Series (and the Line/Bar shorthands), Axis, Legend,
//     Tooltip. Immutable after construction.
//  2. Container: Chart accumulates leaf components through AddComponent and
//     produces the final nested structure.
//
// All structures are built on Map, an insertion-ordered string-keyed map, so
// serialized output is deterministic and mirrors construction order.
//
// # Usage
//
// Build leaf components, add them to a chart, and marshal:
//
//	series, err := echarts.NewLine("visits", []any{120, 200, 150})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	axis, err := echarts.NewAxis(echarts.AxisCategory, "day", echarts.PositionBottom,
//	    []any{"Mon", "Tue", "Wed"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	chart := echarts.NewChart("Traffic", "daily visits", true, true)
//	if err := chart.AddComponent(series); err != nil {
//	    log.Fatal(err)
//	}
//	if err := chart.AddComponent(axis); err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := echarts.Marshal(chart)
//
// Pass-through options cover everything the named fields do not:
//
//	series, err := echarts.NewLine("visits", data,
//	    echarts.WithExtra("smooth", true),
//	    echarts.WithExtra("stack", "total"))
//
// Extras merge last and win on key collision, so they can also override a
// component's named fields.
package echarts
