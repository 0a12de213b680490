package colour

import (
	"math"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGB
	}{
		{name: "with hash", hex: "#2563EB", want: RGB{R: 37, G: 99, B: 235}},
		{name: "without hash", hex: "2563eb", want: RGB{R: 37, G: 99, B: 235}},
		{name: "mixed case", hex: "#fFfF00", want: RGB{R: 255, G: 255, B: 0}},
		{name: "surrounding space", hex: "  #000080 ", want: RGB{R: 0, G: 0, B: 128}},
		{name: "empty", hex: "", want: RGB{}},
		{name: "too short", hex: "#12345", want: RGB{}},
		{name: "shorthand not accepted", hex: "#fff", want: RGB{}},
		{name: "non hex digits", hex: "#zz00zz", want: RGB{}},
		{name: "signed", hex: "+12345", want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexToRGB(tt.hex); got != tt.want {
				t.Errorf("HexToRGB(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		hex     string
		want    RGB
		wantErr bool
	}{
		{hex: "#fff", want: RGB{R: 255, G: 255, B: 255}},
		{hex: "0a0", want: RGB{R: 0, G: 170, B: 0}},
		{hex: "#DC2626", want: RGB{R: 220, G: 38, B: 38}},
		{hex: "", wantErr: true},
		{hex: "#ggg", wantErr: true},
		{hex: "#1234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ParseHex(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    string
	}{
		{name: "integers", r: 37, g: 99, b: 235, want: "#2563eb"},
		{name: "rounding", r: 12.4, g: 12.5, b: 0.49, want: "#0c0d00"},
		{name: "clamping", r: -3, g: 255.6, b: 1000, want: "#00ffff"},
		{name: "nan is black", r: math.NaN(), g: 0, b: 0, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHex(tt.r, tt.g, tt.b)
			if got != tt.want {
				t.Errorf("RGBToHex() = %s, want %s", got, tt.want)
			}
			if len(got) != 7 {
				t.Errorf("RGBToHex() length = %d, want 7", len(got))
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 51 {
				rgb := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				if got := HexToRGB(RGBToHex(float64(r), float64(g), float64(b))); got != rgb {
					t.Fatalf("round trip of %+v = %+v", rgb, got)
				}
			}
		}
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{name: "black", rgb: RGB{}, want: 0},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: 1},
		{name: "red", rgb: RGB{R: 255}, want: 0.2126},
		{name: "green", rgb: RGB{G: 255}, want: 0.7152},
		{name: "blue", rgb: RGB{B: 255}, want: 0.0722},
		{name: "linear segment", rgb: RGB{R: 10, G: 10, B: 10}, want: (10.0 / 255.0) / 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.rgb); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Luminance(%+v) = %v, want %v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}

	if got := ContrastRatio(black, white); got != 21 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", got)
	}
	if got := ContrastRatio(white, white); got != 1 {
		t.Errorf("ContrastRatio(white, white) = %v, want 1", got)
	}

	got := ContrastRatio(HexToRGB("#777777"), white)
	if got != math.Round(got*100)/100 {
		t.Errorf("ContrastRatio() = %v, want two decimal places", got)
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	hexes := []string{"#000000", "#ffffff", "#2563eb", "#dc2626", "#16a34a", "#f59e0b", "#808080", "#fffff0", "#111111"}
	for _, a := range hexes {
		for _, b := range hexes {
			ab := ContrastRatio(HexToRGB(a), HexToRGB(b))
			ba := ContrastRatio(HexToRGB(b), HexToRGB(a))
			if ab != ba {
				t.Errorf("ContrastRatio(%s, %s) = %v but reversed = %v", a, b, ab, ba)
			}
			if ab < 1 || ab > 21 {
				t.Errorf("ContrastRatio(%s, %s) = %v, outside [1, 21]", a, b, ab)
			}
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{name: "red", rgb: RGB{R: 255}, want: HSL{H: 0, S: 1, L: 0.5}},
		{name: "green", rgb: RGB{G: 255}, want: HSL{H: 120, S: 1, L: 0.5}},
		{name: "blue", rgb: RGB{B: 255}, want: HSL{H: 240, S: 1, L: 0.5}},
		{name: "magenta wraps below 360", rgb: RGB{R: 255, B: 128}, want: HSL{H: 329.882, S: 1, L: 0.5}},
		{name: "grey is achromatic", rgb: RGB{R: 128, G: 128, B: 128}, want: HSL{H: 0, S: 0, L: 0.502}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.rgb)
			if math.Abs(got.H-tt.want.H) > 0.01 || math.Abs(got.S-tt.want.S) > 0.01 || math.Abs(got.L-tt.want.L) > 0.01 {
				t.Errorf("RGBToHSL(%+v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name string
		hsl  HSL
		want RGB
	}{
		{name: "red", hsl: HSL{H: 0, S: 1, L: 0.5}, want: RGB{R: 255}},
		{name: "hue wraps above 360", hsl: HSL{H: 480, S: 1, L: 0.5}, want: RGB{G: 255}},
		{name: "negative hue wraps", hsl: HSL{H: -120, S: 1, L: 0.5}, want: RGB{B: 255}},
		{name: "achromatic", hsl: HSL{H: 200, S: 0, L: 0.5}, want: RGB{R: 128, G: 128, B: 128}},
		{name: "lightness clamps", hsl: HSL{H: 10, S: 0.5, L: 1.5}, want: RGB{R: 255, G: 255, B: 255}},
		{name: "black", hsl: HSL{H: 10, S: 0.5, L: 0}, want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.hsl); got != tt.want {
				t.Errorf("HSLToRGB(%+v) = %+v, want %+v", tt.hsl, got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#2563eb", "#dc2626", "#16a34a", "#f59e0b", "#7c3aed", "#0ea5e9", "#808080"} {
		rgb := HexToRGB(hex)
		if got := HSLToRGB(RGBToHSL(rgb)); got != rgb {
			t.Errorf("HSL round trip of %s = %s", hex, got.Hex())
		}
	}
}
