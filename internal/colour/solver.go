package colour

import (
	"errors"
	"math"
)

// SolverOptions tunes the lightness solver.
type SolverOptions struct {
	// MaxIters caps the bisection steps per saturation level.
	MaxIters int `json:"maxIters" toml:"max_iters"`
	// Eps is the luminance error at which the search stops early.
	Eps float64 `json:"eps" toml:"eps"`
	// RelaxSaturation lets the solver trade saturation for accuracy when
	// the target is unreachable at the base saturation.
	RelaxSaturation bool `json:"relaxSaturation" toml:"relax_saturation"`
	// RelaxDecay is the multiplicative saturation reduction per relax step.
	RelaxDecay float64 `json:"relaxDecay" toml:"relax_decay"`
	// RelaxSteps caps the number of reduced saturations tried.
	RelaxSteps int `json:"relaxSteps" toml:"relax_steps"`
	// MinSaturation is the floor relaxation never goes below.
	MinSaturation float64 `json:"minSaturation" toml:"min_saturation"`
}

// DefaultSolverOptions returns the default solver options.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIters:        22,
		Eps:             0.001,
		RelaxSaturation: true,
		RelaxDecay:      0.04,
		RelaxSteps:      6,
		MinSaturation:   0.1,
	}
}

// Validate checks the options are usable.
func (o SolverOptions) Validate() error {
	var errs []error
	if o.MaxIters < 1 {
		errs = append(errs, errors.New("solver: max_iters must be at least 1"))
	}
	if o.Eps <= 0 {
		errs = append(errs, errors.New("solver: eps must be positive"))
	}
	if o.RelaxDecay <= 0 || o.RelaxDecay >= 1 {
		errs = append(errs, errors.New("solver: relax_decay must be in (0, 1)"))
	}
	if o.RelaxSteps < 0 {
		errs = append(errs, errors.New("solver: relax_steps must not be negative"))
	}
	if o.MinSaturation < 0 || o.MinSaturation > 1 {
		errs = append(errs, errors.New("solver: min_saturation must be in [0, 1]"))
	}
	return errors.Join(errs...)
}

// Solution is the outcome of a lightness solve.
type Solution struct {
	RGB        RGB     `json:"rgb"`
	Y          float64 `json:"y"`          // achieved luminance
	Error      float64 `json:"error"`      // |Y - target|
	Saturation float64 `json:"saturation"` // saturation of the winning candidate
	Iterations int     `json:"iterations"` // lightness probes spent across all passes
	Converged  bool    `json:"converged"`  // Error < Eps
	// Exhausted is set when relaxation was allowed, every relax step was
	// spent, and the target still could not be met.
	Exhausted bool `json:"exhausted"`
}

// SolveLightnessForY returns the colour sharing base's hue and saturation whose
// luminance is closest to targetY. It never fails; unreachable targets yield
// the nearest achievable colour.
func SolveLightnessForY(base RGB, targetY float64, opts SolverOptions) RGB {
	return SolveLightness(base, targetY, opts).RGB
}

// SolveLightness is SolveLightnessForY with the search details exposed.
//
// Hue and saturation are held fixed while HSL lightness is bisected, which keeps
// every derived variation recognisably related to the base colour. When the
// best error still exceeds Eps and relaxation is enabled, saturation decays
// geometrically and a shorter bisection runs at each level, keeping the overall
// best candidate.
func SolveLightness(base RGB, targetY float64, opts SolverOptions) Solution {
	opts = opts.withDefaults()
	targetY = clamp01(targetY)
	hsl := RGBToHSL(base)

	best := bisectLightness(hsl.H, hsl.S, targetY, opts.MaxIters, opts.Eps)
	total := best.Iterations

	if best.Error >= opts.Eps && opts.RelaxSaturation {
		s := hsl.S
		relaxIters := max(1, opts.MaxIters/2)
		for step := 0; step < opts.RelaxSteps; step++ {
			next := math.Max(opts.MinSaturation, s*(1-opts.RelaxDecay))
			if next >= s {
				break
			}
			s = next

			candidate := bisectLightness(hsl.H, s, targetY, relaxIters, opts.Eps)
			total += candidate.Iterations
			if candidate.Error < best.Error {
				best = candidate
			}
			if best.Error < opts.Eps {
				break
			}
		}
		best.Exhausted = best.Error >= opts.Eps
	}

	best.Iterations = total
	best.Converged = best.Error < opts.Eps
	return best
}

// bisectLightness searches lightness in [0,1] at fixed hue and saturation.
// Luminance is monotonically non-decreasing in lightness, so bisection applies;
// the lowest-error probe is returned because rounding to 8-bit channels makes
// the final midpoint not necessarily the closest.
func bisectLightness(h, s, targetY float64, maxIters int, eps float64) Solution {
	lo, hi := 0.0, 1.0
	best := Solution{Error: math.Inf(1), Saturation: s}

	iterations := 0
	for iterations < maxIters {
		iterations++
		mid := (lo + hi) / 2
		rgb := HSLToRGB(HSL{H: h, S: s, L: mid})
		y := Luminance(rgb)
		diff := math.Abs(y - targetY)

		if diff < best.Error {
			best = Solution{RGB: rgb, Y: y, Error: diff, Saturation: s}
		}
		if diff < eps {
			break
		}
		if y < targetY {
			lo = mid
		} else {
			hi = mid
		}
	}

	best.Iterations = iterations
	return best
}

// withDefaults fills zero-valued fields from DefaultSolverOptions.
func (o SolverOptions) withDefaults() SolverOptions {
	d := DefaultSolverOptions()
	if o.MaxIters <= 0 {
		o.MaxIters = d.MaxIters
	}
	if o.Eps <= 0 {
		o.Eps = d.Eps
	}
	if o.RelaxDecay <= 0 || o.RelaxDecay >= 1 {
		o.RelaxDecay = d.RelaxDecay
	}
	if o.RelaxSteps < 0 {
		o.RelaxSteps = 0
	}
	return o
}
