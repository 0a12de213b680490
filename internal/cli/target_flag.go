package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/colour"
)

// targetSpec is one parsed "slot.band=Y" assignment.
type targetSpec struct {
	Slot colour.Slot
	Band colour.Band
	Y    float64
}

// parseTargetSpec parses "slot.band=Y" with Y a relative luminance in [0, 1].
func parseTargetSpec(s string) (targetSpec, error) {
	lhs, rhs, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		return targetSpec{}, fmt.Errorf("invalid target %q: expected slot.band=Y", s)
	}

	slotName, bandName, ok := strings.Cut(lhs, ".")
	if !ok {
		return targetSpec{}, fmt.Errorf("invalid target %q: expected slot.band=Y", s)
	}

	slot, err := colour.ParseSlot(slotName)
	if err != nil {
		return targetSpec{}, err
	}
	band, err := colour.ParseBand(bandName)
	if err != nil {
		return targetSpec{}, err
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(rhs), 64)
	if err != nil {
		return targetSpec{}, fmt.Errorf("invalid luminance in %q: %w", s, err)
	}
	if y < 0 || y > 1 {
		return targetSpec{}, fmt.Errorf("luminance %g in %q outside [0, 1]", y, s)
	}

	return targetSpec{Slot: slot, Band: band, Y: y}, nil
}

// targetFlag is a repeatable flag collecting band targets.
type targetFlag struct {
	raw     []string
	targets colour.PaletteTargets
}

var _ pflag.Value = (*targetFlag)(nil)

func (f *targetFlag) String() string {
	return strings.Join(f.raw, ",")
}

// Set accepts one or more comma-separated "slot.band=Y" assignments.
func (f *targetFlag) Set(value string) error {
	for part := range strings.SplitSeq(value, ",") {
		spec, err := parseTargetSpec(part)
		if err != nil {
			return err
		}
		if f.targets == nil {
			f.targets = colour.PaletteTargets{}
		}
		f.targets[spec.Slot] = f.targets[spec.Slot].With(spec.Band, spec.Y)
		f.raw = append(f.raw, strings.TrimSpace(part))
	}
	return nil
}

func (f *targetFlag) Type() string {
	return "slot.band=Y"
}

// mergeTargets overlays override onto base band by band.
func mergeTargets(base, override colour.PaletteTargets) colour.PaletteTargets {
	out := colour.PaletteTargets{}
	for slot, bt := range base {
		out[slot] = bt
	}
	for slot, bt := range override {
		out[slot] = out[slot].Merge(bt)
	}
	return out
}
