package colour

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Band is one of the four luminance tiers derived from a base colour.
type Band string

const (
	// Tints: light backgrounds carrying near-black text.
	BandLighter Band = "lighter"
	BandLight   Band = "light"

	// Shades: dark backgrounds carrying near-white text.
	BandDark   Band = "dark"
	BandDarker Band = "darker"
)

// Bands lists every band in output order.
var Bands = []Band{BandLighter, BandLight, BandDark, BandDarker}

// ParseBand converts a band name to a Band.
func ParseBand(s string) (Band, error) {
	switch b := Band(s); b {
	case BandLighter, BandLight, BandDark, BandDarker:
		return b, nil
	default:
		return "", fmt.Errorf("unknown band %q (expected lighter, light, dark or darker)", s)
	}
}

// IsTint reports whether the band is one of the brighter pair.
func (b Band) IsTint() bool {
	return b == BandLighter || b == BandLight
}

// upperHalf reports whether the band takes the higher-luminance half of a ribbon.
func (b Band) upperHalf() bool {
	return b == BandLighter || b == BandDark
}

// Compliance records how well a variation meets its contrast requirement.
type Compliance string

const (
	// ComplianceAAA means contrast reached the AAA floor.
	ComplianceAAA Compliance = "aaa"
	// ComplianceAA means AAA was unreachable but the looser AA floor holds.
	ComplianceAA Compliance = "aa"
	// ComplianceInfeasible means not even AA could be reached.
	ComplianceInfeasible Compliance = "infeasible"
)

// Target is an optional luminance target for a band. The zero value is unset,
// meaning the band is computed automatically; a set target is authoritative.
type Target struct {
	y   float64
	set bool
}

// TargetY returns a set target for luminance y.
func TargetY(y float64) Target {
	return Target{y: y, set: true}
}

// Value returns the target luminance and whether it was set.
func (t Target) Value() (float64, bool) {
	return t.y, t.set
}

// IsSet reports whether the target was supplied.
func (t Target) IsSet() bool {
	return t.set
}

// MarshalJSON encodes an unset target as null.
func (t Target) MarshalJSON() ([]byte, error) {
	if !t.set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(t.y, 'f', -1, 64)), nil
}

// UnmarshalJSON decodes null as unset and a number as a set target.
func (t *Target) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = Target{}
		return nil
	}
	var y float64
	if err := json.Unmarshal(data, &y); err != nil {
		return fmt.Errorf("band target: %w", err)
	}
	*t = TargetY(y)
	return nil
}

// BandTargets holds the optional explicit target per band for one colour.
type BandTargets struct {
	Lighter Target `json:"lighter"`
	Light   Target `json:"light"`
	Dark    Target `json:"dark"`
	Darker  Target `json:"darker"`
}

// Get returns the target for a band.
func (bt BandTargets) Get(b Band) Target {
	switch b {
	case BandLighter:
		return bt.Lighter
	case BandLight:
		return bt.Light
	case BandDark:
		return bt.Dark
	case BandDarker:
		return bt.Darker
	}
	return Target{}
}

// Set assigns a target to a band.
func (bt *BandTargets) Set(b Band, t Target) {
	switch b {
	case BandLighter:
		bt.Lighter = t
	case BandLight:
		bt.Light = t
	case BandDark:
		bt.Dark = t
	case BandDarker:
		bt.Darker = t
	}
}

// With returns a copy with band b targeted at luminance y.
func (bt BandTargets) With(b Band, y float64) BandTargets {
	bt.Set(b, TargetY(y))
	return bt
}

// IsEmpty reports whether no band has a target.
func (bt BandTargets) IsEmpty() bool {
	for _, b := range Bands {
		if bt.Get(b).IsSet() {
			return false
		}
	}
	return true
}

// Merge overlays every set target of other onto bt.
func (bt BandTargets) Merge(other BandTargets) BandTargets {
	for _, b := range Bands {
		if t := other.Get(b); t.IsSet() {
			bt.Set(b, t)
		}
	}
	return bt
}

// WarningCode identifies the kind of advisory a generation step produced.
type WarningCode string

const (
	WarnMalformedHex       WarningCode = "malformed-hex"
	WarnExtremeBase        WarningCode = "extreme-base"
	WarnDegradedCompliance WarningCode = "degraded-compliance"
	WarnInfeasible         WarningCode = "infeasible"
	WarnBandsTooClose      WarningCode = "bands-too-close"
	WarnCollapsed          WarningCode = "collapsed"
	WarnEmptyRibbon        WarningCode = "empty-ribbon"
)

// Warning is a non-fatal note attached to generated output. Generation always
// completes; warnings tell the operator what to adjust.
type Warning struct {
	Colour  string      `json:"colour"`
	Band    Band        `json:"band,omitempty"`
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	if w.Band == "" {
		return fmt.Sprintf("%s: %s", w.Colour, w.Message)
	}
	return fmt.Sprintf("%s-%s: %s", w.Colour, w.Band, w.Message)
}
