package colour

import (
	"fmt"
	"testing"
)

func entries(n int) []RibbonEntry {
	out := make([]RibbonEntry, n)
	for i := range out {
		out[i] = RibbonEntry{Hex: fmt.Sprintf("#%06x", i), Y: 0.9 - float64(i)*0.01}
	}
	return out
}

func TestSplitRibbon(t *testing.T) {
	tests := []struct {
		n          int
		threshold  int
		wantUpper  int
		wantLower  int
		wantShared bool
	}{
		{n: 0, threshold: 5, wantUpper: 0, wantLower: 0},
		{n: 1, threshold: 5, wantUpper: 1, wantLower: 1, wantShared: true},
		{n: 2, threshold: 5, wantUpper: 1, wantLower: 2, wantShared: true},
		{n: 3, threshold: 5, wantUpper: 2, wantLower: 2, wantShared: true},
		{n: 5, threshold: 5, wantUpper: 3, wantLower: 3, wantShared: true},
		{n: 10, threshold: 5, wantUpper: 5, wantLower: 5},
		{n: 15, threshold: 5, wantUpper: 8, wantLower: 7},
		{n: 1, threshold: 0, wantUpper: 1, wantLower: 0},
		{n: 2, threshold: 0, wantUpper: 1, wantLower: 1},
		{n: 3, threshold: 0, wantUpper: 2, wantLower: 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d/threshold=%d", tt.n, tt.threshold), func(t *testing.T) {
			upper, lower := splitRibbon(entries(tt.n), SplitPolicy{OverlapThreshold: tt.threshold})
			if len(upper) != tt.wantUpper || len(lower) != tt.wantLower {
				t.Fatalf("splitRibbon() = (%d, %d), want (%d, %d)", len(upper), len(lower), tt.wantUpper, tt.wantLower)
			}
			if tt.n == 0 {
				return
			}

			shared := len(lower) > 0 && upper[len(upper)-1] == lower[0]
			if shared != tt.wantShared {
				t.Errorf("halves share an entry = %v, want %v", shared, tt.wantShared)
			}
			if len(lower) > 0 && lower[len(lower)-1].Hex != fmt.Sprintf("#%06x", tt.n-1) {
				t.Errorf("lower half does not end with the dimmest entry")
			}
		})
	}
}

func TestSampleEvenly(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		count int
		want  []int
	}{
		{name: "fewer than count", n: 3, count: 12, want: []int{0, 1, 2}},
		{name: "exactly count", n: 4, count: 4, want: []int{0, 1, 2, 3}},
		{name: "spread", n: 10, count: 4, want: []int{0, 3, 6, 9}},
		{name: "single sample", n: 10, count: 1, want: []int{0}},
		{name: "rounding", n: 5, count: 3, want: []int{0, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all := entries(tt.n)
			got := sampleEvenly(all, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("sampleEvenly() returned %d entries, want %d", len(got), len(tt.want))
			}
			for i, idx := range tt.want {
				if got[i] != all[idx] {
					t.Errorf("entry %d = %s, want %s", i, got[i].Hex, all[idx].Hex)
				}
			}
		})
	}
}

func TestGenerateRibbonForBand(t *testing.T) {
	cfg := DefaultShadeConfig()
	base := HexToRGB("#2563eb")

	for _, band := range Bands {
		t.Run(string(band), func(t *testing.T) {
			ribbon := GenerateRibbonForBand("#2563eb", band, cfg.Text.OnLight, cfg.Text.OnDark, cfg)
			if len(ribbon) == 0 {
				t.Fatal("GenerateRibbonForBand() returned no candidates")
			}
			if len(ribbon) > cfg.Ribbon.SampleCount {
				t.Errorf("len = %d, want <= %d", len(ribbon), cfg.Ribbon.SampleCount)
			}

			window := cfg.Ribbon.WindowFor(band)
			for i, e := range ribbon {
				if e.Index != i {
					t.Errorf("entry %d has Index %d", i, e.Index)
				}
				if !window.Contains(e.Y) {
					t.Errorf("entry %d Y %.3f outside window %+v", i, e.Y, window)
				}
				if e.Contrast < cfg.Contrast.AAAMinimum || e.Contrast > cfg.Contrast.MaximumRecommended {
					t.Errorf("entry %d contrast %.2f outside [%.1f, %.1f]", i, e.Contrast,
						cfg.Contrast.AAAMinimum, cfg.Contrast.MaximumRecommended)
				}
				if got := SolveLightnessForY(base, e.Y, cfg.Solver).Hex(); got != e.Hex {
					t.Errorf("entry %d hex %s does not reproduce from Y %.3f (got %s)", i, e.Hex, e.Y, got)
				}
				if i > 0 && e.Y >= ribbon[i-1].Y {
					t.Errorf("entry %d Y %.3f not below previous %.3f", i, e.Y, ribbon[i-1].Y)
				}
			}
		})
	}
}

func TestGenerateRibbonPairsSplit(t *testing.T) {
	cfg := DefaultShadeConfig()
	ribbon := func(b Band) []RibbonEntry {
		return GenerateRibbonForBand("#2563eb", b, cfg.Text.OnLight, cfg.Text.OnDark, cfg)
	}

	lighter, light := ribbon(BandLighter), ribbon(BandLight)
	if len(lighter) != 6 || len(light) != 6 {
		t.Fatalf("tint halves = (%d, %d), want (6, 6)", len(lighter), len(light))
	}
	if lighter[len(lighter)-1].Y <= light[0].Y {
		t.Errorf("lighter ends at Y %.3f, not above light start %.3f", lighter[len(lighter)-1].Y, light[0].Y)
	}

	dark, darker := ribbon(BandDark), ribbon(BandDarker)
	if len(dark) == 0 || len(darker) == 0 {
		t.Fatalf("shade halves = (%d, %d), want both populated", len(dark), len(darker))
	}
	if dark[len(dark)-1].Y < darker[0].Y {
		t.Errorf("dark ends at Y %.3f, below darker start %.3f", dark[len(dark)-1].Y, darker[0].Y)
	}
}

func TestGenerateRibbonEmpty(t *testing.T) {
	cfg := DefaultShadeConfig()

	tests := []struct {
		name        string
		band        Band
		textOnLight string
		textOnDark  string
	}{
		{name: "grey text on tints", band: BandLighter, textOnLight: "#808080", textOnDark: cfg.Text.OnDark},
		{name: "grey text on shades", band: BandDarker, textOnLight: cfg.Text.OnLight, textOnDark: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ribbon := GenerateRibbonForBand("#2563eb", tt.band, tt.textOnLight, tt.textOnDark, cfg)
			if ribbon == nil || len(ribbon) != 0 {
				t.Fatalf("GenerateRibbonForBand() = %v, want empty non-nil slice", ribbon)
			}

			ws := RibbonWarnings("primary", "#2563eb", tt.band, ribbon)
			if len(ws) != 1 {
				t.Fatalf("RibbonWarnings() = %v, want one warning", ws)
			}
			if w := ws[0]; w.Code != WarnEmptyRibbon || w.Band != tt.band || w.Colour != "primary" {
				t.Errorf("RibbonWarnings() = %+v", w)
			}
		})
	}
}

func TestRibbonWarnings(t *testing.T) {
	tests := []struct {
		name      string
		hex       string
		ribbon    []RibbonEntry
		wantCodes []WarningCode
	}{
		{name: "populated", hex: "#2563eb", ribbon: []RibbonEntry{{Hex: "#ffffff"}}},
		{name: "shorthand", hex: "#25e", ribbon: []RibbonEntry{{Hex: "#ffffff"}}},
		{name: "malformed", hex: "blue", ribbon: []RibbonEntry{{Hex: "#ffffff"}}, wantCodes: []WarningCode{WarnMalformedHex}},
		{name: "malformed and empty", hex: "#12345", ribbon: []RibbonEntry{}, wantCodes: []WarningCode{WarnMalformedHex, WarnEmptyRibbon}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := RibbonWarnings("primary", tt.hex, BandLight, tt.ribbon)
			if len(ws) != len(tt.wantCodes) {
				t.Fatalf("RibbonWarnings() = %v, want codes %v", ws, tt.wantCodes)
			}
			for i, w := range ws {
				if w.Code != tt.wantCodes[i] || w.Band != BandLight {
					t.Errorf("warning %d = %+v, want %s", i, w, tt.wantCodes[i])
				}
			}
		})
	}
}

func TestGenerateRibbonShorthandTextColour(t *testing.T) {
	cfg := DefaultShadeConfig()
	cfg.Text.OnDark = "#fff"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	short := GenerateRibbonForBand("#2563eb", BandDark, cfg.Text.OnLight, cfg.Text.OnDark, cfg)
	full := GenerateRibbonForBand("#2563eb", BandDark, cfg.Text.OnLight, "#ffffff", cfg)
	if len(short) == 0 {
		t.Fatal("no dark candidates against #fff")
	}
	if fmt.Sprint(short) != fmt.Sprint(full) {
		t.Errorf("#fff ribbon differs from #ffffff:\n%v\n%v", short, full)
	}
	for _, e := range short {
		if e.Contrast < cfg.Contrast.AAAMinimum {
			t.Errorf("entry %s contrast %.2f below AAA", e.Hex, e.Contrast)
		}
	}
}

func TestGenerateRibbonDeterministic(t *testing.T) {
	cfg := DefaultShadeConfig()
	a := GenerateRibbonForBand("#dc2626", BandDark, cfg.Text.OnLight, cfg.Text.OnDark, cfg)
	b := GenerateRibbonForBand("#dc2626", BandDark, cfg.Text.OnLight, cfg.Text.OnDark, cfg)
	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Errorf("repeated calls differ:\n%v\n%v", a, b)
	}
}
