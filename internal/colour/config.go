package colour

import (
	"errors"
	"fmt"
)

// WCAG contrast thresholds.
const (
	AAAMinimum         = 7.0  // WCAG AAA for normal text
	AAMinimum          = 4.5  // WCAG AA for normal text
	MaximumRecommended = 18.0 // Above this, text/background pairs get uncomfortably harsh
)

// Luminance of a base colour at or beyond which its variations are flagged.
const (
	extremeHighY = 0.95
	extremeLowY  = 0.05
)

// MinStep is the smallest luminance increment accepted for scanning and
// seeking. Targets are rounded to four decimals, so finer steps stall.
const MinStep = 1e-4

// ContrastConfig bounds the acceptable contrast between a variation and its text colour.
type ContrastConfig struct {
	AAAMinimum         float64 `json:"aaaMinimum" toml:"aaa_minimum"`
	AAMinimum          float64 `json:"aaMinimum" toml:"aa_minimum"`
	MaximumRecommended float64 `json:"maximumRecommended" toml:"maximum_recommended"`
}

// within reports whether a ratio sits inside [AAAMinimum, MaximumRecommended].
func (c ContrastConfig) within(ratio float64) bool {
	return ratio >= c.AAAMinimum && ratio <= c.MaximumRecommended
}

// classify maps a contrast ratio onto a compliance tier.
func (c ContrastConfig) classify(ratio float64) Compliance {
	switch {
	case ratio >= c.AAAMinimum:
		return ComplianceAAA
	case ratio >= c.AAMinimum:
		return ComplianceAA
	default:
		return ComplianceInfeasible
	}
}

// Window is a closed luminance range.
type Window struct {
	MinY float64 `json:"minY" toml:"min_y"`
	MaxY float64 `json:"maxY" toml:"max_y"`
}

// Contains reports whether y lies in the window.
func (w Window) Contains(y float64) bool {
	return y >= w.MinY && y <= w.MaxY
}

// SplitPolicy controls how a sampled ribbon is divided between the two bands of a pair.
type SplitPolicy struct {
	// OverlapThreshold is the largest list size for which both halves share
	// the middle entry, so neither band of the pair comes back empty.
	// Zero disables the overlap.
	OverlapThreshold int `json:"overlapThreshold" toml:"overlap_threshold"`
}

// RibbonConfig configures candidate strip generation.
type RibbonConfig struct {
	Tint        Window      `json:"tint" toml:"tint"`
	Shade       Window      `json:"shade" toml:"shade"`
	Step        float64     `json:"step" toml:"step"`
	SampleCount int         `json:"sampleCount" toml:"sample_count"`
	Split       SplitPolicy `json:"split" toml:"split"`
}

// WindowFor returns the scan window for a band.
func (rc RibbonConfig) WindowFor(b Band) Window {
	if b.IsTint() {
		return rc.Tint
	}
	return rc.Shade
}

// BandDefaults holds the starting luminance per band when no target is given.
type BandDefaults struct {
	Lighter float64 `json:"lighter" toml:"lighter"`
	Light   float64 `json:"light" toml:"light"`
	Dark    float64 `json:"dark" toml:"dark"`
	Darker  float64 `json:"darker" toml:"darker"`
}

// For returns the default luminance for a band.
func (d BandDefaults) For(b Band) float64 {
	switch b {
	case BandLighter:
		return d.Lighter
	case BandLight:
		return d.Light
	case BandDark:
		return d.Dark
	default:
		return d.Darker
	}
}

// GapConfig is the minimum luminance separation within each band pair.
type GapConfig struct {
	Tint  float64 `json:"tint" toml:"tint"`
	Shade float64 `json:"shade" toml:"shade"`
}

// SeekConfig bounds the contrast-seeking walk used for default bands.
type SeekConfig struct {
	Step          float64 `json:"step" toml:"step"`
	MaxIterations int     `json:"maxIterations" toml:"max_iterations"`
	MinY          float64 `json:"minY" toml:"min_y"`
	MaxY          float64 `json:"maxY" toml:"max_y"`
}

// TextConfig names the reference text colours contrast is measured against.
type TextConfig struct {
	// OnLight is the near-black text placed on tints.
	OnLight string `json:"onLight" toml:"on_light"`
	// OnDark is the near-white text placed on shades.
	OnDark string `json:"onDark" toml:"on_dark"`
}

// ShadeConfig gathers every tunable of shade generation.
type ShadeConfig struct {
	Contrast ContrastConfig `json:"contrast" toml:"contrast"`
	Ribbon   RibbonConfig   `json:"ribbon" toml:"ribbon"`
	Defaults BandDefaults   `json:"defaults" toml:"defaults"`
	Gaps     GapConfig      `json:"gaps" toml:"gaps"`
	Seek     SeekConfig     `json:"seek" toml:"seek"`
	Solver   SolverOptions  `json:"solver" toml:"solver"`
	Text     TextConfig     `json:"text" toml:"text"`
}

// DefaultShadeConfig returns the default shade generation configuration.
func DefaultShadeConfig() ShadeConfig {
	return ShadeConfig{
		Contrast: ContrastConfig{
			AAAMinimum:         AAAMinimum,
			AAMinimum:          AAMinimum,
			MaximumRecommended: MaximumRecommended,
		},
		Ribbon: RibbonConfig{
			Tint:        Window{MinY: 0.50, MaxY: 0.98},
			Shade:       Window{MinY: 0.02, MaxY: 0.50},
			Step:        0.005,
			SampleCount: 12,
			Split:       SplitPolicy{OverlapThreshold: 5},
		},
		Defaults: BandDefaults{
			Lighter: 0.85,
			Light:   0.65,
			Dark:    0.08,
			Darker:  0.04,
		},
		Gaps: GapConfig{
			Tint:  0.10,
			Shade: 0.03,
		},
		Seek: SeekConfig{
			Step:          0.005,
			MaxIterations: 200,
			MinY:          0.02,
			MaxY:          0.98,
		},
		Solver: DefaultSolverOptions(),
		Text: TextConfig{
			OnLight: "#111111",
			OnDark:  "#fffff0",
		},
	}
}

// Validate checks that the configuration is internally consistent.
func (c ShadeConfig) Validate() error {
	var errs []error

	if c.Contrast.AAMinimum < 1 || c.Contrast.AAAMinimum < c.Contrast.AAMinimum {
		errs = append(errs, fmt.Errorf("contrast: need 1 <= aa_minimum <= aaa_minimum (got %.2f, %.2f)",
			c.Contrast.AAMinimum, c.Contrast.AAAMinimum))
	}
	if c.Contrast.MaximumRecommended < c.Contrast.AAAMinimum {
		errs = append(errs, fmt.Errorf("contrast: maximum_recommended %.2f is below aaa_minimum %.2f",
			c.Contrast.MaximumRecommended, c.Contrast.AAAMinimum))
	}

	windows := []struct {
		name string
		w    Window
	}{{"ribbon.tint", c.Ribbon.Tint}, {"ribbon.shade", c.Ribbon.Shade}}
	for _, nw := range windows {
		if nw.w.MinY < 0 || nw.w.MaxY > 1 || nw.w.MinY >= nw.w.MaxY {
			errs = append(errs, fmt.Errorf("%s: window [%.3f, %.3f] must be increasing within [0, 1]", nw.name, nw.w.MinY, nw.w.MaxY))
		}
	}
	if c.Ribbon.Step < MinStep {
		errs = append(errs, fmt.Errorf("ribbon: step %g is below the minimum %g", c.Ribbon.Step, MinStep))
	}
	if c.Ribbon.SampleCount < 1 {
		errs = append(errs, errors.New("ribbon: sample_count must be at least 1"))
	}
	if c.Ribbon.Split.OverlapThreshold < 0 {
		errs = append(errs, errors.New("ribbon.split: overlap_threshold must not be negative"))
	}

	for _, b := range Bands {
		if y := c.Defaults.For(b); y < 0 || y > 1 {
			errs = append(errs, fmt.Errorf("defaults: %s luminance %.3f outside [0, 1]", b, y))
		}
	}
	if c.Gaps.Tint < 0 || c.Gaps.Shade < 0 {
		errs = append(errs, errors.New("gaps: minimum gaps must not be negative"))
	}

	if c.Seek.Step < MinStep {
		errs = append(errs, fmt.Errorf("seek: step %g is below the minimum %g", c.Seek.Step, MinStep))
	}
	if c.Seek.MaxIterations < 1 {
		errs = append(errs, errors.New("seek: max_iterations must be at least 1"))
	}
	if c.Seek.MinY < 0 || c.Seek.MaxY > 1 || c.Seek.MinY >= c.Seek.MaxY {
		errs = append(errs, fmt.Errorf("seek: bounds [%.3f, %.3f] must be increasing within [0, 1]", c.Seek.MinY, c.Seek.MaxY))
	}

	if err := c.Solver.Validate(); err != nil {
		errs = append(errs, err)
	}

	if _, err := ParseHex(c.Text.OnLight); err != nil {
		errs = append(errs, fmt.Errorf("text.on_light: %w", err))
	}
	if _, err := ParseHex(c.Text.OnDark); err != nil {
		errs = append(errs, fmt.Errorf("text.on_dark: %w", err))
	}

	return errors.Join(errs...)
}

// minGap returns the required separation for the pair a band belongs to.
func (c ShadeConfig) minGap(b Band) float64 {
	if b.IsTint() {
		return c.Gaps.Tint
	}
	return c.Gaps.Shade
}
