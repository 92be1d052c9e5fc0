package echarts

import (
	"testing"

	"github.com/optcharts/optcharts/pkg/errors"
)

func TestNewLegend(t *testing.T) {
	tests := []struct {
		name       string
		kind       string
		orient     string
		wantKind   string
		wantOrient string
		wantErr    bool
	}{
		{name: "Defaults", kind: "", orient: "", wantKind: LegendPlain, wantOrient: OrientHorizontal},
		{name: "Scroll", kind: LegendScroll, orient: OrientVertical, wantKind: LegendScroll, wantOrient: OrientVertical},
		// The kind is not validated; arbitrary strings pass through.
		{name: "ArbitraryKind", kind: "fancy", orient: OrientHorizontal, wantKind: "fancy", wantOrient: OrientHorizontal},
		{name: "BadOrient", kind: "", orient: "diagonal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLegend(Coord{X: 0, Y: 0}, []any{"a"}, tt.kind, tt.orient)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, errors.ErrCodeInvalidOrient) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidOrient)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewLegend: %v", err)
			}

			m := l.Structure()
			if v, _ := m.Get("type"); v != tt.wantKind {
				t.Errorf("type = %v, want %v", v, tt.wantKind)
			}
			if v, _ := m.Get("orient"); v != tt.wantOrient {
				t.Errorf("orient = %v, want %v", v, tt.wantOrient)
			}
		})
	}
}

func TestLegendStructure(t *testing.T) {
	l, err := NewLegend(Coord{X: "center", Y: 20}, []any{"visits", "orders"}, "", "")
	if err != nil {
		t.Fatalf("NewLegend: %v", err)
	}

	want := `{"orient":"horizontal","data":["visits","orders"],"x":"center","y":20,"type":"plain"}`
	if got := mustJSON(t, l.Structure()); got != want {
		t.Errorf("Structure() = %s, want %s", got, want)
	}
}

func TestLegendStructureExtrasWin(t *testing.T) {
	l, err := NewLegend(Coord{X: 0, Y: 0}, nil, "", "", WithExtra("x", "right"))
	if err != nil {
		t.Fatalf("NewLegend: %v", err)
	}

	if v, _ := l.Structure().Get("x"); v != "right" {
		t.Errorf("x = %v, want right", v)
	}
}
