package echarts

// Tooltip describes the hover tooltip. Immutable after construction.
type Tooltip struct {
	trigger     string
	axisPointer string
	extras      *Map
}

// NewTooltip creates a tooltip. An empty trigger defaults to TriggerAxis and
// is validated against Triggers. An empty axisPointerType defaults to
// AxisPointerLine; it is otherwise not checked against AxisPointerTypes,
// arbitrary strings pass through.
func NewTooltip(trigger, axisPointerType string, opts ...Option) (*Tooltip, error) {
	if trigger == "" {
		trigger = TriggerAxis
	}
	if err := ValidateTrigger(trigger); err != nil {
		return nil, err
	}
	if axisPointerType == "" {
		axisPointerType = AxisPointerLine
	}
	s := newSettings(opts...)
	return &Tooltip{trigger: trigger, axisPointer: axisPointerType, extras: s.extras}, nil
}

// Structure returns {trigger, axisPointer: {type}} with extras merged last.
// An extra under "axisPointer" replaces the nested map wholesale.
func (t *Tooltip) Structure() *Map {
	pointer := NewMap()
	pointer.Set("type", t.axisPointer)

	m := NewMap()
	m.Set("trigger", t.trigger)
	m.Set("axisPointer", pointer)
	m.Merge(t.extras)
	return m
}
