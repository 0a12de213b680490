package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL returns the colour in normalised HSL space.
func (rgb RGB) HSL() HSL {
	return RGBToHSL(rgb)
}

// RGBToHex formats channel values as a 7 character hex string. Each channel is
// rounded and clamped to [0,255] first.
func RGBToHex(r, g, b float64) string {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}.Hex()
}

// HexToRGB parses a 6 digit hex colour with an optional leading '#'.
// It fails closed: malformed input yields black. Use ParseHex when the
// caller needs to reject bad input.
func HexToRGB(hex string) RGB {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}
	}
	rgb, err := parseHexDigits(s)
	if err != nil {
		return RGB{}
	}
	return rgb
}

// ParseHex strictly parses a hex colour in #RRGGBB or #RGB form. The leading
// '#' is optional and digits are case-insensitive.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 3 or 6 hex digits", hex)
	}

	rgb, err := parseHexDigits(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	return rgb, nil
}

// NormaliseHex returns the canonical lower-case #rrggbb form of a hex colour.
func NormaliseHex(hex string) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// parseHexDigits decodes exactly six hex digits.
func parseHexDigits(s string) (RGB, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, err
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
