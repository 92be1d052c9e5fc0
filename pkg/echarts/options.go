package echarts

import (
	"slices"

	"github.com/charmbracelet/log"
)

// Option configures a component constructor.
type Option func(*settings)

// settings collects everything the variadic constructor options carry.
type settings struct {
	extras *Map
	logger *log.Logger
}

// newSettings applies opts over an empty settings value.
func newSettings(opts ...Option) settings {
	s := settings{extras: NewMap()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithExtra adds one pass-through entry to the component's option bag.
// Entries keep the order the options were applied in and merge into the
// component's structure last, so an extra under a named field's key (for
// example "name" or "xAxis") overrides that field.
func WithExtra(key string, value any) Option {
	return func(s *settings) {
		s.extras.Set(key, value)
	}
}

// WithExtras bulk-adds pass-through entries. Keys are applied in sorted
// order so the resulting structure does not depend on map iteration order.
func WithExtras(kv map[string]any) Option {
	return func(s *settings) {
		keys := make([]string, 0, len(kv))
		for k := range kv {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			s.extras.Set(k, kv[k])
		}
	}
}

// WithLogger attaches a logger for accumulation diagnostics. Only Chart
// consumes it; leaf components accept and ignore it. Without it the library
// is silent.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
