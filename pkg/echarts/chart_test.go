package echarts

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/optcharts/optcharts/pkg/errors"
)

// unknownComponent satisfies Component but matches no chart slot.
type unknownComponent struct{}

func (unknownComponent) Structure() *Map { return NewMap() }

func TestChartStructureEmpty(t *testing.T) {
	tests := []struct {
		name        string
		axisEnabled bool
		animation   bool
		want        string
	}{
		{
			name:        "AxesDisabled",
			axisEnabled: false,
			animation:   true,
			want:        `{"title":{"text":"t","subtext":"s"},"animation":true}`,
		},
		{
			name:        "AxesEnabled",
			axisEnabled: true,
			animation:   true,
			want:        `{"title":{"text":"t","subtext":"s"},"animation":true,"xAxis":[{}],"yAxis":[{}]}`,
		},
		{
			name:        "AnimationOff",
			axisEnabled: false,
			animation:   false,
			want:        `{"title":{"text":"t","subtext":"s"},"animation":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChart("t", "s", tt.axisEnabled, tt.animation)
			if got := mustJSON(t, c.Structure()); got != tt.want {
				t.Errorf("Structure() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAddComponentSeries(t *testing.T) {
	s, err := NewSeries(SeriesBar, "S1", []any{1, 2, 3})
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}

	c := NewChart("t", "", false, true)
	if err := c.AddComponent(s); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}

	v, ok := c.Structure().Get("series")
	if !ok {
		t.Fatal("series slot missing")
	}
	want := `{"name":"S1","data":[1,2,3],"type":"bar"}`
	if got := mustJSON(t, v.(*Map)); got != want {
		t.Errorf("series = %s, want %s", got, want)
	}
}

func TestAddComponentAxisClassification(t *testing.T) {
	bottom, err := NewAxis(AxisCategory, "x", PositionBottom, []any{"a", "b"})
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}
	left, err := NewAxis(AxisValue, "y", PositionLeft, nil)
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}

	c := NewChart("t", "", true, true)
	if err := c.AddComponent(bottom); err != nil {
		t.Fatalf("AddComponent(bottom): %v", err)
	}
	if err := c.AddComponent(left); err != nil {
		t.Fatalf("AddComponent(left): %v", err)
	}

	m := c.Structure()

	xAxis, _ := m.Get("xAxis")
	xs := xAxis.([]any)
	if len(xs) != 1 {
		t.Fatalf("len(xAxis) = %d, want 1", len(xs))
	}
	if v, _ := xs[0].(*Map).Get("position"); v != PositionBottom {
		t.Errorf("xAxis position = %v, want bottom", v)
	}

	yAxis, _ := m.Get("yAxis")
	ys := yAxis.([]any)
	if len(ys) != 1 {
		t.Fatalf("len(yAxis) = %d, want 1", len(ys))
	}
	if v, _ := ys[0].(*Map).Get("position"); v != PositionLeft {
		t.Errorf("yAxis position = %v, want left", v)
	}
}

func TestAddComponentAxisAppends(t *testing.T) {
	c := NewChart("t", "", true, true)
	for _, pos := range []string{PositionBottom, PositionTop} {
		a, err := NewAxis(AxisValue, "", pos, nil)
		if err != nil {
			t.Fatalf("NewAxis: %v", err)
		}
		if err := c.AddComponent(a); err != nil {
			t.Fatalf("AddComponent: %v", err)
		}
	}

	xAxis, _ := c.Structure().Get("xAxis")
	if got := len(xAxis.([]any)); got != 2 {
		t.Errorf("len(xAxis) = %d, want 2", got)
	}
}

func TestAddComponentOverwritesSlot(t *testing.T) {
	first, err := NewBar("first", nil)
	if err != nil {
		t.Fatalf("NewBar: %v", err)
	}
	second, err := NewLine("second", nil)
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}

	c := NewChart("t", "", false, true)
	if err := c.AddComponent(first); err != nil {
		t.Fatalf("AddComponent(first): %v", err)
	}
	if err := c.AddComponent(second); err != nil {
		t.Fatalf("AddComponent(second): %v", err)
	}

	v, _ := c.Structure().Get("series")
	if name, _ := v.(*Map).Get("name"); name != "second" {
		t.Errorf("series name = %v, want second", name)
	}
}

func TestAddComponentUnknown(t *testing.T) {
	c := NewChart("t", "", false, true)

	err := c.AddComponent(unknownComponent{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeUnknownComponent) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownComponent)
	}
}

func TestAddComponentAxisDisabled(t *testing.T) {
	a, err := NewAxis(AxisValue, "", PositionLeft, nil)
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}

	c := NewChart("t", "", false, true)
	err = c.AddComponent(a)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeAxisDisabled) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeAxisDisabled)
	}
}

func TestAddComponentNil(t *testing.T) {
	c := NewChart("t", "", true, true)

	for _, comp := range []Component{(*Series)(nil), (*Legend)(nil), (*Tooltip)(nil), (*Axis)(nil)} {
		err := c.AddComponent(comp)
		if err == nil {
			t.Fatalf("AddComponent(nil %T) = nil, want error", comp)
		}
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("AddComponent(nil %T) code = %v, want %v", comp, errors.GetCode(err), errors.ErrCodeInvalidInput)
		}
	}

	// Nothing was accepted; the structure assembles without the slots.
	want := `{"title":{"text":"t","subtext":""},"animation":true,"xAxis":[{}],"yAxis":[{}]}`
	if got := mustJSON(t, c.Structure()); got != want {
		t.Errorf("Structure() = %s, want %s", got, want)
	}
}

func TestChartSlotOrderIsFixed(t *testing.T) {
	series, err := NewBar("s", nil)
	if err != nil {
		t.Fatalf("NewBar: %v", err)
	}
	legend, err := NewLegend(Coord{X: 0, Y: 0}, nil, "", "")
	if err != nil {
		t.Fatalf("NewLegend: %v", err)
	}
	tooltip, err := NewTooltip("", "")
	if err != nil {
		t.Fatalf("NewTooltip: %v", err)
	}

	// Acceptance order is series, tooltip, legend; output order must not
	// follow it.
	c := NewChart("t", "", false, true)
	for _, comp := range []Component{series, tooltip, legend} {
		if err := c.AddComponent(comp); err != nil {
			t.Fatalf("AddComponent: %v", err)
		}
	}

	want := []string{"title", "animation", "legend", "tooltip", "series"}
	if got := c.Structure().Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestChartExtrasWin(t *testing.T) {
	c := NewChart("t", "s", true, true,
		WithExtra("animation", false),
		WithExtra("xAxis", []any{"replaced"}),
		WithExtra("backgroundColor", "#100C2A"))

	m := c.Structure()

	if v, _ := m.Get("animation"); v != false {
		t.Errorf("animation = %v, want false", v)
	}
	xAxis, _ := m.Get("xAxis")
	if got := xAxis.([]any); len(got) != 1 || got[0] != "replaced" {
		t.Errorf("xAxis = %v, want [replaced]", got)
	}
	if v, _ := m.Get("backgroundColor"); v != "#100C2A" {
		t.Errorf("backgroundColor = %v, want #100C2A", v)
	}
}

func TestChartStructureFull(t *testing.T) {
	legend, err := NewLegend(Coord{X: "center", Y: 0}, []any{"visits"}, "", "")
	if err != nil {
		t.Fatalf("NewLegend: %v", err)
	}
	tooltip, err := NewTooltip("", "")
	if err != nil {
		t.Fatalf("NewTooltip: %v", err)
	}
	series, err := NewLine("visits", []any{120, 200, 150})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	axis, err := NewAxis(AxisCategory, "day", PositionBottom, []any{"Mon", "Tue", "Wed"})
	if err != nil {
		t.Fatalf("NewAxis: %v", err)
	}

	c := NewChart("Traffic", "daily", true, true, WithExtra("backgroundColor", "#fff"))
	for _, comp := range []Component{legend, tooltip, series, axis} {
		if err := c.AddComponent(comp); err != nil {
			t.Fatalf("AddComponent: %v", err)
		}
	}

	want := `{"title":{"text":"Traffic","subtext":"daily"},"animation":true,` +
		`"legend":{"orient":"horizontal","data":["visits"],"x":"center","y":0,"type":"plain"},` +
		`"tooltip":{"trigger":"axis","axisPointer":{"type":"line"}},` +
		`"series":{"name":"visits","data":[120,200,150],"type":"line"},` +
		`"xAxis":[{"name":"day","type":"category","data":["Mon","Tue","Wed"],"position":"bottom"}],` +
		`"yAxis":[{}],` +
		`"backgroundColor":"#fff"}`
	if got := mustJSON(t, c.Structure()); got != want {
		t.Errorf("Structure() = %s, want %s", got, want)
	}
}

func TestChartStructureReflectsLaterAdds(t *testing.T) {
	c := NewChart("t", "", false, true)

	before := mustJSON(t, c.Structure())
	if strings.Contains(before, "series") {
		t.Errorf("unexpected series in %s", before)
	}

	s, err := NewBar("s", nil)
	if err != nil {
		t.Fatalf("NewBar: %v", err)
	}
	if err := c.AddComponent(s); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}

	after := mustJSON(t, c.Structure())
	if !strings.Contains(after, `"series"`) {
		t.Errorf("series missing in %s", after)
	}
}

func TestChartLogsSlotReplacement(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	c := NewChart("t", "", false, true, WithLogger(logger))
	for _, name := range []string{"a", "b"} {
		s, err := NewBar(name, nil)
		if err != nil {
			t.Fatalf("NewBar: %v", err)
		}
		if err := c.AddComponent(s); err != nil {
			t.Fatalf("AddComponent: %v", err)
		}
	}

	if out := buf.String(); !strings.Contains(out, "replacing slot") {
		t.Errorf("log output %q missing replacement line", out)
	}
}
