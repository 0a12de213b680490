package colour

import (
	"fmt"
)

// gapTolerance absorbs float noise when comparing luminance gaps.
const gapTolerance = 1e-9

// Variation is one derived tint or shade of a base colour.
type Variation struct {
	Name         string     `json:"name"`
	Hex          string     `json:"hex"`
	Step         Band       `json:"step"`
	Y            float64    `json:"y"`         // luminance the colour was solved for
	Luminance    float64    `json:"luminance"` // luminance actually achieved
	Contrast     float64    `json:"contrast"`  // against the band's reference text colour
	Compliance   Compliance `json:"compliance"`
	UserSupplied bool       `json:"userSupplied,omitempty"`
}

// ShadeSet is the four variations of one base colour plus any advisories.
type ShadeSet struct {
	Variations []Variation `json:"variations"`
	Warnings   []Warning   `json:"warnings,omitempty"`
}

// Get returns the variation for a band.
func (s ShadeSet) Get(b Band) (Variation, bool) {
	for _, v := range s.Variations {
		if v.Step == b {
			return v, true
		}
	}
	return Variation{}, false
}

// GenerateShades derives the lighter, light, dark and darker variations of a
// base colour, in that order, each named "{colourName}-{band}".
//
// A band with an explicit target is solved at exactly that luminance and is
// never moved afterwards. Other bands start from their configured default and
// walk toward the extreme until contrast against the reference text colour
// enters [AAAMinimum, MaximumRecommended]; if AAA is out of reach the best
// contrast found is used and the shortfall reported. Within each pair the
// non-explicit band is then nudged to restore the minimum luminance gap and to
// keep the two from resolving to the same hex.
//
// The result depends only on the arguments, so identical calls return
// identical hex values.
func GenerateShades(baseHex, colourName string, targets BandTargets, cfg ShadeConfig) ShadeSet {
	r := newShadeResolver(baseHex, colourName, cfg)

	states := make([]bandState, len(Bands))
	for i, b := range Bands {
		if y, ok := targets.Get(b).Value(); ok {
			states[i] = r.solve(b, y)
			states[i].user = true
			continue
		}
		states[i] = r.seek(b)
	}

	lighter, light, dark, darker := &states[0], &states[1], &states[2], &states[3]

	r.enforceGap(lighter, light)
	r.enforceGap(dark, darker)
	r.separate(lighter, light)
	r.separate(dark, darker)

	set := ShadeSet{Variations: make([]Variation, len(states))}
	for i, st := range states {
		compliance := cfg.Contrast.classify(st.contrast)
		r.reportCompliance(st, compliance)

		set.Variations[i] = Variation{
			Name:         fmt.Sprintf("%s-%s", colourName, st.band),
			Hex:          st.rgb.Hex(),
			Step:         st.band,
			Y:            st.y,
			Luminance:    st.lum,
			Contrast:     st.contrast,
			Compliance:   compliance,
			UserSupplied: st.user,
		}
	}
	set.Warnings = r.warnings
	return set
}

// bandState is the working value of one band during assembly.
type bandState struct {
	band     Band
	y        float64
	rgb      RGB
	lum      float64
	contrast float64
	user     bool
}

// mover is a band allowed to shift in one direction to fix its pair.
type mover struct {
	st  *bandState
	dir float64
}

type shadeResolver struct {
	name     string
	base     RGB
	cfg      ShadeConfig
	onLight  RGB
	onDark   RGB
	warnings []Warning
}

func newShadeResolver(baseHex, name string, cfg ShadeConfig) *shadeResolver {
	r := &shadeResolver{
		name:    name,
		cfg:     cfg,
		onLight: textColour(cfg.Text.OnLight),
		onDark:  textColour(cfg.Text.OnDark),
	}

	base, err := ParseHex(baseHex)
	if err != nil {
		r.warn("", WarnMalformedHex, fmt.Sprintf("base colour %q is not a valid hex colour; using black", baseHex))
	}
	r.base = base

	switch y := Luminance(base); {
	case y >= extremeHighY:
		r.warn("", WarnExtremeBase, fmt.Sprintf("base luminance %.3f is near white; tints will be barely distinguishable", y))
	case y <= extremeLowY:
		r.warn("", WarnExtremeBase, fmt.Sprintf("base luminance %.3f is near black; shades will be barely distinguishable", y))
	}
	return r
}

func (r *shadeResolver) warn(b Band, code WarningCode, msg string) {
	r.warnings = append(r.warnings, Warning{Colour: r.name, Band: b, Code: code, Message: msg})
}

// text returns the reference text colour for a band.
func (r *shadeResolver) text(b Band) RGB {
	if b.IsTint() {
		return r.onLight
	}
	return r.onDark
}

// solve resolves a band at luminance y.
func (r *shadeResolver) solve(b Band, y float64) bandState {
	sol := SolveLightness(r.base, y, r.cfg.Solver)
	return bandState{
		band:     b,
		y:        y,
		rgb:      sol.RGB,
		lum:      sol.Y,
		contrast: ContrastRatio(sol.RGB, r.text(b)),
	}
}

// seek walks luminance from the band default toward the band's extreme until
// contrast lands in the acceptable window. Tints brighten (more contrast with
// near-black text); shades darken (more contrast with near-white text).
// Overshooting the ceiling reverses the step. The walk ends at the iteration
// cap, at the luminance bounds, or when it would revisit a value.
func (r *shadeResolver) seek(b Band) bandState {
	seek := r.cfg.Seek
	ceiling := r.cfg.Contrast.MaximumRecommended

	dir := 1.0
	if !b.IsTint() {
		dir = -1.0
	}

	y := roundY(clamp(r.cfg.Defaults.For(b), seek.MinY, seek.MaxY))
	visited := make(map[float64]bool)

	var best, over bandState
	haveBest, haveOver := false, false

	for range seek.MaxIterations {
		st := r.solve(b, y)
		if r.cfg.Contrast.within(st.contrast) {
			return st
		}
		visited[y] = true

		next := y + dir*seek.Step
		if st.contrast > ceiling {
			next = y - dir*seek.Step
			if !haveOver || st.contrast < over.contrast {
				over, haveOver = st, true
			}
		} else if !haveBest || st.contrast > best.contrast {
			best, haveBest = st, true
		}

		next = roundY(clamp(next, seek.MinY, seek.MaxY))
		if visited[next] {
			break
		}
		y = next
	}

	if haveBest {
		return best
	}
	return over
}

// enforceGap restores the minimum luminance gap between the brighter (upper)
// and dimmer (lower) band of a pair by moving whichever bands the operator did
// not choose. Tint pairs prefer brightening the upper band; shade pairs prefer
// darkening the lower one.
func (r *shadeResolver) enforceGap(upper, lower *bandState) {
	gap := r.cfg.minGap(upper.band)
	satisfied := func() bool { return upper.lum-lower.lum >= gap-gapTolerance }

	if satisfied() {
		return
	}
	if upper.user && lower.user {
		r.warn(lower.band, WarnBandsTooClose, fmt.Sprintf("%s and %s are %.3f apart (minimum %.3f); both were chosen explicitly and are kept",
			upper.band, lower.band, upper.lum-lower.lum, gap))
		return
	}

	for _, m := range r.movers(upper, lower) {
		orig := *m.st
		for range r.cfg.Seek.MaxIterations {
			if satisfied() {
				break
			}
			y := roundY(m.st.y + m.dir*r.cfg.Seek.Step)
			if y == m.st.y {
				break
			}
			next := r.solve(m.st.band, y)
			if !r.acceptable(next, orig) {
				break
			}
			*m.st = next
		}
		if satisfied() {
			return
		}
	}

	r.warn(lower.band, WarnBandsTooClose, fmt.Sprintf("%s and %s could only be separated by %.3f (minimum %.3f)",
		upper.band, lower.band, upper.lum-lower.lum, gap))
}

// separate nudges a pair apart one step at a time while both resolve to the
// same hex. Explicitly chosen bands are never moved.
func (r *shadeResolver) separate(upper, lower *bandState) {
	if upper.rgb != lower.rgb {
		return
	}
	if upper.user && lower.user {
		r.warn(lower.band, WarnCollapsed, fmt.Sprintf("%s and %s were both chosen explicitly and resolve to the same colour %s",
			upper.band, lower.band, upper.rgb.Hex()))
		return
	}

	for _, m := range r.movers(upper, lower) {
		orig := *m.st
		for range r.cfg.Seek.MaxIterations {
			y := roundY(m.st.y + m.dir*r.cfg.Seek.Step)
			if y == m.st.y {
				break
			}
			next := r.solve(m.st.band, y)
			if !r.acceptable(next, orig) {
				break
			}
			*m.st = next
			if upper.rgb != lower.rgb {
				return
			}
		}
		*m.st = orig
	}

	r.warn(lower.band, WarnCollapsed, fmt.Sprintf("%s and %s both resolve to %s and cannot be separated without breaking contrast",
		upper.band, lower.band, upper.rgb.Hex()))
}

// movers lists the bands of a pair that may move, in preference order, with
// the direction that widens the pair.
func (r *shadeResolver) movers(upper, lower *bandState) []mover {
	candidates := []mover{{st: upper, dir: 1}, {st: lower, dir: -1}}
	if !upper.band.IsTint() {
		candidates[0], candidates[1] = candidates[1], candidates[0]
	}

	out := make([]mover, 0, 2)
	for _, m := range candidates {
		if !m.st.user {
			out = append(out, m)
		}
	}
	return out
}

// acceptable reports whether a nudged state stays legal: inside the seek bounds
// and no worse on contrast than the band was before nudging began.
func (r *shadeResolver) acceptable(next, orig bandState) bool {
	if next.y < r.cfg.Seek.MinY-gapTolerance || next.y > r.cfg.Seek.MaxY+gapTolerance {
		return false
	}
	floor := min(r.cfg.Contrast.AAAMinimum, orig.contrast)
	ceiling := max(r.cfg.Contrast.MaximumRecommended, orig.contrast)
	return next.contrast >= floor && next.contrast <= ceiling
}

// reportCompliance records a warning for any band short of AAA.
func (r *shadeResolver) reportCompliance(st bandState, c Compliance) {
	who := "best achievable"
	if st.user {
		who = "chosen target"
	}

	switch c {
	case ComplianceAA:
		r.warn(st.band, WarnDegradedCompliance, fmt.Sprintf("%s contrast %.2f:1 meets AA but not AAA (%.2f:1)",
			who, st.contrast, r.cfg.Contrast.AAAMinimum))
	case ComplianceInfeasible:
		r.warn(st.band, WarnInfeasible, fmt.Sprintf("%s contrast %.2f:1 is below AA (%.2f:1); adjust the text colours",
			who, st.contrast, r.cfg.Contrast.AAMinimum))
	}
}
