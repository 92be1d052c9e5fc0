// Package theme provides named sets of default chart options.
//
// A theme groups pass-through option defaults per component section (chart,
// series, axis, legend, tooltip). Themes are plain TOML documents: builtin
// themes are embedded in the binary, custom ones load from disk. A theme
// never mutates built components; it only contributes construction options.
//
// # Usage
//
// Apply a theme's section before the caller's own options so explicit
// options win by last-write-wins:
//
//	th := theme.Dark()
//	opts := append(th.ChartOptions(), echarts.WithExtra("backgroundColor", "#000"))
//	chart := echarts.NewChart("Traffic", "", true, true, opts...)
package theme

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/optcharts/optcharts/pkg/echarts"
	"github.com/optcharts/optcharts/pkg/errors"
)

// Theme is a named set of per-section option defaults. Every section is an
// open bag of pass-through options keyed by the ECharts option name; absent
// sections contribute nothing.
type Theme struct {
	Name    string         `toml:"name"`
	Chart   map[string]any `toml:"chart"`
	Series  map[string]any `toml:"series"`
	Axis    map[string]any `toml:"axis"`
	Legend  map[string]any `toml:"legend"`
	Tooltip map[string]any `toml:"tooltip"`
}

// Parse decodes a TOML theme document.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme")
	}
	return &t, nil
}

// Load reads and parses a TOML theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "read theme %s", path)
	}
	return Parse(data)
}

// ChartOptions returns construction options carrying the chart section.
func (t *Theme) ChartOptions() []echarts.Option {
	return sectionOptions(t.Chart)
}

// SeriesOptions returns construction options carrying the series section.
func (t *Theme) SeriesOptions() []echarts.Option {
	return sectionOptions(t.Series)
}

// AxisOptions returns construction options carrying the axis section.
func (t *Theme) AxisOptions() []echarts.Option {
	return sectionOptions(t.Axis)
}

// LegendOptions returns construction options carrying the legend section.
func (t *Theme) LegendOptions() []echarts.Option {
	return sectionOptions(t.Legend)
}

// TooltipOptions returns construction options carrying the tooltip section.
func (t *Theme) TooltipOptions() []echarts.Option {
	return sectionOptions(t.Tooltip)
}

// sectionOptions expands one section into construction options. Keys are
// applied in sorted order via WithExtras, so themed output is deterministic.
func sectionOptions(section map[string]any) []echarts.Option {
	if len(section) == 0 {
		return nil
	}
	return []echarts.Option{echarts.WithExtras(section)}
}
