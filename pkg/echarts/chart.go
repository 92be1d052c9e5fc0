package echarts

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/optcharts/optcharts/pkg/errors"
)

// Chart is the container component. It accumulates leaf components through
// AddComponent and assembles the full option structure on demand. The
// accumulator only fills: slots are overwritten, never cleared.
type Chart struct {
	title       string
	subtitle    string
	axisEnabled bool
	animation   bool

	// Named single-occupancy slots, in schema order. AddComponent fills the
	// first three; toolbox and visualMap only ever arrive through extras.
	legend    Component
	tooltip   Component
	series    Component
	toolbox   Component
	visualMap Component

	xAxes []*Axis
	yAxes []*Axis

	extras *Map
	logger *log.Logger
}

// NewChart creates a chart container. Axis components are only accepted when
// axisEnabled is true; animation toggles the top-level animation flag. A
// logger attached via WithLogger receives debug lines as components are
// accepted; without one the chart is silent.
func NewChart(title, subtitle string, axisEnabled, animation bool, opts ...Option) *Chart {
	s := newSettings(opts...)
	logger := s.logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Chart{
		title:       title,
		subtitle:    subtitle,
		axisEnabled: axisEnabled,
		animation:   animation,
		extras:      s.extras,
		logger:      logger,
	}
}

// AddComponent classifies a component by its concrete type and slots it into
// the chart: *Series, *Legend and *Tooltip each occupy a single named slot
// and overwrite silently on re-acceptance; an *Axis is appended to the
// horizontal or vertical sequence per its [Axis.IsHorizontal]
// classification. A nil concrete component, such as the one a failed
// constructor returns, is rejected with an INVALID_INPUT error; any other
// component type is rejected with UNKNOWN_COMPONENT. Accepting an axis while
// the chart has axes disabled fails with AXIS_DISABLED.
func (c *Chart) AddComponent(comp Component) error {
	switch v := comp.(type) {
	case *Series:
		if v == nil {
			return errNilComponent(comp)
		}
		c.setSlot("series", &c.series, v)
		return nil
	case *Legend:
		if v == nil {
			return errNilComponent(comp)
		}
		c.setSlot("legend", &c.legend, v)
		return nil
	case *Tooltip:
		if v == nil {
			return errNilComponent(comp)
		}
		c.setSlot("tooltip", &c.tooltip, v)
		return nil
	case *Axis:
		if v == nil {
			return errNilComponent(comp)
		}
		if !c.axisEnabled {
			return errors.New(errors.ErrCodeAxisDisabled, "axes are disabled for this chart")
		}
		if v.IsHorizontal() {
			c.xAxes = append(c.xAxes, v)
			c.logger.Debug("accepted axis", "sequence", "xAxis", "position", v.Position(), "count", len(c.xAxes))
		} else {
			c.yAxes = append(c.yAxes, v)
			c.logger.Debug("accepted axis", "sequence", "yAxis", "position", v.Position(), "count", len(c.yAxes))
		}
		return nil
	}
	return errors.New(errors.ErrCodeUnknownComponent, "unrecognized component type %T", comp)
}

// errNilComponent reports a component that matched a slot type but carries
// no value.
func errNilComponent(comp Component) error {
	return errors.New(errors.ErrCodeInvalidInput, "nil %T component", comp)
}

// setSlot fills a single-occupancy slot, logging when it overwrites.
func (c *Chart) setSlot(name string, slot *Component, comp Component) {
	if *slot != nil {
		c.logger.Debug("replacing slot", "slot", name)
	}
	*slot = comp
	c.logger.Debug("accepted component", "slot", name)
}

// Structure returns the full option mapping: {title: {text, subtext},
// animation}, then the held named slots in schema order (legend, tooltip,
// series, toolbox, visualMap), then the xAxis and yAxis sequences when axes
// are enabled (each defaulting to a single empty mapping), then extras
// merged last. It has no side effects and may be called at any point; the
// output always reflects the current accumulated state.
func (c *Chart) Structure() *Map {
	title := NewMap()
	title.Set("text", c.title)
	title.Set("subtext", c.subtitle)

	m := NewMap()
	m.Set("title", title)
	m.Set("animation", c.animation)

	for _, slot := range []struct {
		name string
		comp Component
	}{
		{"legend", c.legend},
		{"tooltip", c.tooltip},
		{"series", c.series},
		{"toolbox", c.toolbox},
		{"visualMap", c.visualMap},
	} {
		if slot.comp != nil {
			m.Set(slot.name, slot.comp.Structure())
		}
	}

	if c.axisEnabled {
		m.Set("xAxis", axisStructures(c.xAxes))
		m.Set("yAxis", axisStructures(c.yAxes))
	}

	m.Merge(c.extras)
	return m
}

// axisStructures renders an axis sequence, defaulting to one empty mapping
// so xAxis and yAxis are never absent while axes are enabled.
func axisStructures(axes []*Axis) []any {
	if len(axes) == 0 {
		return []any{NewMap()}
	}
	out := make([]any, len(axes))
	for i, a := range axes {
		out[i] = a.Structure()
	}
	return out
}
