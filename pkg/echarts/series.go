package echarts

// Series holds the configuration of a single data series. Immutable after
// construction.
type Series struct {
	kind   string
	name   string
	data   []any
	extras *Map
}

// NewSeries creates a series of the given kind. The kind is validated
// against SeriesKinds. Data may be nil; it serializes as JSON null.
func NewSeries(kind, name string, data []any, opts ...Option) (*Series, error) {
	if err := ValidateSeriesKind(kind); err != nil {
		return nil, err
	}
	s := newSettings(opts...)
	return &Series{kind: kind, name: name, data: data, extras: s.extras}, nil
}

// NewLine creates a line series. Shorthand for NewSeries with SeriesLine.
func NewLine(name string, data []any, opts ...Option) (*Series, error) {
	return NewSeries(SeriesLine, name, data, opts...)
}

// NewBar creates a bar series. Shorthand for NewSeries with SeriesBar.
func NewBar(name string, data []any, opts ...Option) (*Series, error) {
	return NewSeries(SeriesBar, name, data, opts...)
}

// Kind returns the series kind.
func (s *Series) Kind() string { return s.kind }

// Name returns the series name.
func (s *Series) Name() string { return s.name }

// Structure returns {name, data, type} with extras merged last.
func (s *Series) Structure() *Map {
	m := NewMap()
	m.Set("name", s.name)
	m.Set("data", s.data)
	m.Set("type", s.kind)
	m.Merge(s.extras)
	return m
}
