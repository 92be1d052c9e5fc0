package echarts

// Coord is a 2-tuple position. ECharts accepts numbers as well as keyword
// strings such as "center", so both components are untyped.
type Coord struct {
	X any
	Y any
}

// Legend describes the chart legend. Immutable after construction.
type Legend struct {
	position Coord
	data     []any
	kind     string
	orient   string
	extras   *Map
}

// NewLegend creates a legend at the given position. An empty kind defaults
// to LegendPlain; the kind is otherwise not checked against LegendKinds,
// arbitrary strings pass through. An empty orient defaults to
// OrientHorizontal and is validated against Orients.
func NewLegend(position Coord, data []any, kind, orient string, opts ...Option) (*Legend, error) {
	if kind == "" {
		kind = LegendPlain
	}
	if orient == "" {
		orient = OrientHorizontal
	}
	if err := ValidateOrient(orient); err != nil {
		return nil, err
	}
	s := newSettings(opts...)
	return &Legend{position: position, data: data, kind: kind, orient: orient, extras: s.extras}, nil
}

// Structure returns {orient, data, x, y, type} with extras merged last.
func (l *Legend) Structure() *Map {
	m := NewMap()
	m.Set("orient", l.orient)
	m.Set("data", l.data)
	m.Set("x", l.position.X)
	m.Set("y", l.position.Y)
	m.Set("type", l.kind)
	m.Merge(l.extras)
	return m
}
