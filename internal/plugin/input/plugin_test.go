package input

import (
	"context"
	"reflect"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
)

type mockPlugin struct{ name string }

func (m *mockPlugin) Name() string        { return m.name }
func (m *mockPlugin) Description() string { return "mock" }
func (m *mockPlugin) Generate(_ context.Context, _ GenerateOptions) (*colour.Palette, error) {
	return &colour.Palette{}, nil
}
func (m *mockPlugin) RegisterFlags(_ *cobra.Command) {}
func (m *mockPlugin) Validate() error                { return nil }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockPlugin{name: "zeta"})
	r.Register(&mockPlugin{name: "alpha"})

	if got := r.List(); !reflect.DeepEqual(got, []string{"alpha", "zeta"}) {
		t.Errorf("List() = %v, want sorted names", got)
	}
	if _, ok := r.Get("alpha"); !ok {
		t.Error("Get(alpha) not found")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) found a plugin")
	}

	all := r.All()
	delete(all, "alpha")
	if _, ok := r.Get("alpha"); !ok {
		t.Error("All() exposed the registry's internal map")
	}
}

func TestParseColourSpec(t *testing.T) {
	tests := []struct {
		spec     string
		wantSlot colour.Slot
		want     colour.Colour
		wantErr  bool
	}{
		{spec: "primary=#2563EB", wantSlot: colour.SlotPrimary, want: colour.Colour{Name: "primary", Hex: "#2563eb"}},
		{spec: "Accent = #f90", wantSlot: colour.SlotAccent, want: colour.Colour{Name: "accent", Hex: "#ff9900"}},
		{spec: "error=#dc2626 Signal Red", wantSlot: colour.SlotError, want: colour.Colour{Name: "Signal Red", Hex: "#dc2626"}},
		{spec: "primary", wantErr: true},
		{spec: "background=#000000", wantErr: true},
		{spec: "primary=", wantErr: true},
		{spec: "primary=blue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			slot, c, err := ParseColourSpec(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColourSpec(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if slot != tt.wantSlot || c != tt.want {
				t.Errorf("ParseColourSpec(%q) = %s, %+v, want %s, %+v", tt.spec, slot, c, tt.wantSlot, tt.want)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	p := colour.Palette{Primary: colour.Colour{Name: "primary", Hex: "#000000"}}

	err := ApplyOverrides(&p, []string{"primary=#111111", "secondary=#222222", "primary=#333333"})
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}
	if p.Primary.Hex != "#333333" || p.Secondary.Hex != "#222222" {
		t.Errorf("palette = %+v, later overrides must win", p)
	}

	if err := ApplyOverrides(&p, []string{"nope"}); err == nil {
		t.Error("ApplyOverrides() accepted a malformed spec")
	}
}
