package echarts

import (
	"io"

	"github.com/optcharts/optcharts/pkg/json"
)

// Component is anything that can produce an option structure. Structure is
// deterministic for a given component state, has no side effects, and
// assembles a fresh Map on every call; nested values inside that Map may be
// shared with the component.
//
// Implementers: *Series, *Axis, *Legend, *Tooltip, *Chart.
type Component interface {
	Structure() *Map
}

// Marshal serializes a component's structure to compact JSON. Key order is
// the structure's insertion order.
func Marshal(c Component) ([]byte, error) {
	return json.Marshal(c.Structure())
}

// MarshalIndent serializes a component's structure to JSON indented with two
// spaces.
func MarshalIndent(c Component) ([]byte, error) {
	return json.MarshalIndent(c.Structure(), "", "  ")
}

// Write streams a component's structure to w as compact JSON followed by a
// newline.
func Write(c Component, w io.Writer) error {
	return json.NewEncoder(w).Encode(c.Structure())
}
