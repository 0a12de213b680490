package colour

import (
	"fmt"
	"math"
)

// RibbonEntry is one candidate on a band's picker strip.
type RibbonEntry struct {
	Hex      string  `json:"hex"`
	Y        float64 `json:"y"`        // target luminance that reproduces Hex
	Index    int     `json:"index"`    // position within the band's strip
	Contrast float64 `json:"contrast"` // against the band's reference text colour
}

// GenerateRibbonForBand builds the candidate strip for one band of a base colour.
//
// The band's luminance window is scanned at a fixed increment; every solved colour
// whose contrast against the reference text colour (textOnLight for tints,
// textOnDark for shades) lies within [AAAMinimum, MaximumRecommended] survives.
// Survivors are sampled evenly down to the configured count and split in half:
// the brighter half serves lighter/dark, the dimmer half light/darker.
//
// An empty (non-nil) slice means the text colour cannot be paired with this base
// colour at AAA; callers should surface that rather than treat it as an error.
func GenerateRibbonForBand(baseHex string, band Band, textOnLight, textOnDark string, cfg ShadeConfig) []RibbonEntry {
	// Malformed input scans from black; RibbonWarnings reports it.
	base, _ := ParseHex(baseHex)
	candidates := scanBand(base, band, referenceText(band, textOnLight, textOnDark), cfg)
	if len(candidates) == 0 {
		return []RibbonEntry{}
	}

	sampled := sampleEvenly(candidates, cfg.Ribbon.SampleCount)
	upper, lower := splitRibbon(sampled, cfg.Ribbon.Split)

	picked := lower
	if band.upperHalf() {
		picked = upper
	}

	out := make([]RibbonEntry, len(picked))
	for i, e := range picked {
		e.Index = i
		out[i] = e
	}
	return out
}

// RibbonWarnings returns the advisories for one band's ribbon: a malformed
// base colour, which the scan treats as black, and an empty ribbon.
func RibbonWarnings(colourName, baseHex string, band Band, ribbon []RibbonEntry) []Warning {
	var ws []Warning
	if _, err := ParseHex(baseHex); err != nil {
		ws = append(ws, Warning{
			Colour:  colourName,
			Band:    band,
			Code:    WarnMalformedHex,
			Message: fmt.Sprintf("base colour %q is not a valid hex colour; using black", baseHex),
		})
	}
	if len(ribbon) > 0 {
		return ws
	}

	text := "text-on-light"
	if !band.IsTint() {
		text = "text-on-dark"
	}
	return append(ws, Warning{
		Colour:  colourName,
		Band:    band,
		Code:    WarnEmptyRibbon,
		Message: fmt.Sprintf("no %s candidates meet AAA against the %s colour; adjust the %s colour", band, text, text),
	})
}

// referenceText picks the text colour a band is measured against.
func referenceText(band Band, textOnLight, textOnDark string) RGB {
	if band.IsTint() {
		return textColour(textOnLight)
	}
	return textColour(textOnDark)
}

// textColour resolves a reference text colour in either hex form. Malformed
// values resolve to black; ShadeConfig.Validate rejects them up front.
func textColour(hex string) RGB {
	rgb, _ := ParseHex(hex)
	return rgb
}

// scanBand walks the band window from bright to dark and keeps every solved
// colour inside the contrast window. Consecutive luminance samples that solve
// to the same hex are collapsed into the first.
func scanBand(base RGB, band Band, text RGB, cfg ShadeConfig) []RibbonEntry {
	window := cfg.Ribbon.WindowFor(band)
	step := cfg.Ribbon.Step
	if step <= 0 {
		return nil
	}

	samples := int(math.Floor((window.MaxY-window.MinY)/step+1e-9)) + 1
	textY := Luminance(text)

	var (
		out     []RibbonEntry
		lastHex string
	)
	for i := range samples {
		y := roundY(window.MaxY - float64(i)*step)
		sol := SolveLightness(base, y, cfg.Solver)

		contrast := math.Round(contrastFromLuminance(sol.Y, textY)*100) / 100
		if !cfg.Contrast.within(contrast) {
			continue
		}

		hex := sol.RGB.Hex()
		if hex == lastHex {
			continue
		}
		lastHex = hex
		out = append(out, RibbonEntry{Hex: hex, Y: y, Contrast: contrast})
	}
	return out
}

// sampleEvenly picks up to count entries spread across the list by index
// interpolation, always including both ends.
func sampleEvenly(entries []RibbonEntry, count int) []RibbonEntry {
	n := len(entries)
	if count <= 0 || n <= count {
		return append([]RibbonEntry(nil), entries...)
	}
	if count == 1 {
		return []RibbonEntry{entries[0]}
	}

	out := make([]RibbonEntry, count)
	for i := range count {
		idx := int(math.Round(float64(i) * float64(n-1) / float64(count-1)))
		out[i] = entries[idx]
	}
	return out
}

// splitRibbon divides a brightness-descending list into its upper and lower
// halves. An odd middle entry goes to the upper half. Lists no longer than the
// overlap threshold share one entry across the split so that both halves are
// populated whenever the list is.
func splitRibbon(entries []RibbonEntry, policy SplitPolicy) (upper, lower []RibbonEntry) {
	n := len(entries)
	if n == 0 {
		return nil, nil
	}

	mid := (n + 1) / 2
	upper = entries[:mid]
	if n <= policy.OverlapThreshold {
		lower = entries[mid-1:]
	} else {
		lower = entries[mid:]
	}
	return upper, lower
}
