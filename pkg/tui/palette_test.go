package tui

import (
	"testing"

	"github.com/dshills/flowcanvas/pkg/flow"
)

func TestPaletteFilter(t *testing.T) {
	p := NewPalette(flow.NewRegistry())
	p.Show()

	all := p.Filter("")
	if len(all) != 10 {
		t.Fatalf("unfiltered palette has %d entries, want 10", len(all))
	}

	tests := []struct {
		filter string
		want   int
	}{
		{"approval", 2}, // Approval, Team Approval
		{"API", 1},
		{"api", 1}, // case-insensitive
		{"zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			got := p.Filter(tt.filter)
			if len(got) != tt.want {
				t.Errorf("Filter(%q) returned %d entries, want %d", tt.filter, len(got), tt.want)
			}
		})
	}
}

func TestPaletteSelectionWraps(t *testing.T) {
	p := NewPalette(flow.NewRegistry())
	p.Show()

	p.Previous()
	cfg, ok := p.Selected()
	if !ok {
		t.Fatal("no selection")
	}
	if cfg.Type != flow.NodePDF {
		t.Errorf("Previous from first should wrap to last, got %s", cfg.Type)
	}

	p.Next()
	cfg, _ = p.Selected()
	if cfg.Type != flow.NodeInput {
		t.Errorf("Next should wrap back to first, got %s", cfg.Type)
	}
}

func TestPaletteFilterResetsSelection(t *testing.T) {
	p := NewPalette(flow.NewRegistry())
	p.Show()
	for i := 0; i < 8; i++ {
		p.Next()
	}

	p.AppendFilter('a')
	p.AppendFilter('p')
	p.AppendFilter('i')
	cfg, ok := p.Selected()
	if !ok {
		t.Fatal("filter lost selection entirely")
	}
	if cfg.Type != flow.NodeInput {
		t.Errorf("selected = %s, want the API Endpoint entry", cfg.Type)
	}

	p.BackspaceFilter()
	p.BackspaceFilter()
	p.BackspaceFilter()
	if len(p.Filter("")) != 10 {
		t.Error("clearing the filter should restore all entries")
	}
}
