package echarts

// Axis holds the configuration of one chart axis. Immutable after
// construction.
type Axis struct {
	kind     string
	name     string
	position string
	data     []any
	extras   *Map
}

// NewAxis creates an axis of the given kind at the given position. The kind
// is validated against AxisKinds. The position is not validated; it only
// steers horizontal/vertical classification, see [Axis.IsHorizontal].
func NewAxis(kind, name, position string, data []any, opts ...Option) (*Axis, error) {
	if err := ValidateAxisKind(kind); err != nil {
		return nil, err
	}
	s := newSettings(opts...)
	return &Axis{kind: kind, name: name, position: position, data: data, extras: s.extras}, nil
}

// Position returns the axis position.
func (a *Axis) Position() string { return a.position }

// IsHorizontal reports whether the axis runs along the top or bottom edge.
func (a *Axis) IsHorizontal() bool {
	return a.position == PositionTop || a.position == PositionBottom
}

// IsVertical is the exact negation of [Axis.IsHorizontal]: any position
// outside top/bottom classifies as vertical, including unrecognized strings.
func (a *Axis) IsVertical() bool {
	return !a.IsHorizontal()
}

// Structure returns {name, type, data, position} with extras merged last.
func (a *Axis) Structure() *Map {
	m := NewMap()
	m.Set("name", a.name)
	m.Set("type", a.kind)
	m.Set("data", a.data)
	m.Set("position", a.position)
	m.Merge(a.extras)
	return m
}
