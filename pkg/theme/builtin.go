package theme

import (
	_ "embed"
	"fmt"
	"sync"
)

// Builtin themes are embedded TOML documents, parsed once on first access.

//go:embed themes/default.toml
var defaultTOML []byte

//go:embed themes/dark.toml
var darkTOML []byte

var (
	defaultTheme     *Theme
	defaultThemeOnce sync.Once

	darkTheme     *Theme
	darkThemeOnce sync.Once
)

// Default returns the builtin theme matching the stock ECharts look.
func Default() *Theme {
	defaultThemeOnce.Do(func() {
		defaultTheme = mustParse("default", defaultTOML)
	})
	return defaultTheme
}

// Dark returns the builtin dark theme.
func Dark() *Theme {
	darkThemeOnce.Do(func() {
		darkTheme = mustParse("dark", darkTOML)
	})
	return darkTheme
}

// mustParse parses an embedded theme and panics on failure; embedded themes
// are fixed at build time, so a failure is a packaging bug.
func mustParse(name string, data []byte) *Theme {
	t, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("builtin theme %s: %v", name, err))
	}
	return t
}
