// Package colour provides colour-space conversion, WCAG luminance and contrast
// maths, and the accessible shade generation built on top of them.
package colour

import (
	"math"
)

// WCAG luminance coefficients for linearised sRGB channels.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722

	// gammaBreakpoint is the sRGB value below which the transfer curve is linear.
	gammaBreakpoint = 0.03928
)

// HSL is a colour in normalised HSL space.
// H is in degrees [0,360), S and L are in [0,1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	rf := gammaCorrect(float64(c.R) / 255.0)
	gf := gammaCorrect(float64(c.G) / 255.0)
	bf := gammaCorrect(float64(c.B) / 255.0)

	return lumaR*rf + lumaG*gf + lumaB*bf
}

// LuminanceOf returns the luminance of a hex colour. Malformed input is
// treated as black, matching HexToRGB.
func LuminanceOf(hex string) float64 {
	return Luminance(HexToRGB(hex))
}

// gammaCorrect converts an sRGB channel in [0,1] to linear light.
func gammaCorrect(v float64) float64 {
	if v <= gammaBreakpoint {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0,
// rounded to two decimal places. The result is symmetric in its arguments and lies
// between 1 and 21.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	return math.Round(contrastFromLuminance(Luminance(a), Luminance(b))*100) / 100
}

// contrastFromLuminance computes the unrounded WCAG ratio for two luminances.
func contrastFromLuminance(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// RGBToHSL converts an RGB colour to normalised HSL.
// Achromatic colours (max == min) have zero hue and saturation.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return HSL{H: wrapHue(h * 60), S: s, L: l}
}

// HSLToRGB converts normalised HSL to RGB. Hue wraps modulo 360; saturation
// and lightness are clamped to [0,1]. Channels are rounded to the nearest integer.
func HSLToRGB(c HSL) RGB {
	h := wrapHue(c.H)
	s := clamp01(c.S)
	l := clamp01(c.L)

	if s == 0 {
		v := channel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: channel(hueToRGB(p, q, h+120)),
		G: channel(hueToRGB(p, q, h)),
		B: channel(hueToRGB(p, q, h-120)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = wrapHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// wrapHue maps any angle into [0,360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// channel rounds a normalised channel value to an 8-bit integer.
func channel(v float64) uint8 {
	return clampChannel(v * 255)
}

// clampChannel rounds and clamps a channel value to [0,255].
func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// roundY snaps a scanned luminance value to four decimals so that repeated
// increments do not accumulate floating point drift.
func roundY(y float64) float64 {
	return math.Round(y*1e4) / 1e4
}
