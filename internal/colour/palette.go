package colour

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Slot names one of the seven fixed colours of a palette.
type Slot string

const (
	// Brand slots
	SlotPrimary   Slot = "primary"
	SlotSecondary Slot = "secondary"
	SlotTertiary  Slot = "tertiary"
	SlotAccent    Slot = "accent"

	// Semantic slots
	SlotError   Slot = "error"
	SlotWarning Slot = "warning"
	SlotSuccess Slot = "success"
)

// Slots lists every palette slot in output order.
var Slots = []Slot{SlotPrimary, SlotSecondary, SlotTertiary, SlotAccent, SlotError, SlotWarning, SlotSuccess}

// BrandSlots lists the slots supplied by the brand.
var BrandSlots = Slots[:4]

// SemanticSlots lists the status-communicating slots.
var SemanticSlots = Slots[4:]

// ParseSlot converts a slot name to a Slot.
func ParseSlot(s string) (Slot, error) {
	slot := Slot(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Slots {
		if slot == known {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown colour slot %q (expected one of %s)", s, joinSlots(Slots))
}

// IsSemantic reports whether the slot is error, warning or success.
func (s Slot) IsSemantic() bool {
	return s == SlotError || s == SlotWarning || s == SlotSuccess
}

// Colour is a named hex colour.
type Colour struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Palette is the seven base colours a palette is generated from.
type Palette struct {
	Primary   Colour `json:"primary"`
	Secondary Colour `json:"secondary"`
	Tertiary  Colour `json:"tertiary"`
	Accent    Colour `json:"accent"`
	Error     Colour `json:"error"`
	Warning   Colour `json:"warning"`
	Success   Colour `json:"success"`
}

// Get returns the colour in a slot.
func (p Palette) Get(s Slot) (Colour, bool) {
	if ptr := p.slot(s); ptr != nil {
		return *ptr, true
	}
	return Colour{}, false
}

// Set replaces the colour in a slot.
func (p *Palette) Set(s Slot, c Colour) error {
	ptr := p.slot(s)
	if ptr == nil {
		return fmt.Errorf("unknown colour slot %q", s)
	}
	*ptr = c
	return nil
}

func (p *Palette) slot(s Slot) *Colour {
	switch s {
	case SlotPrimary:
		return &p.Primary
	case SlotSecondary:
		return &p.Secondary
	case SlotTertiary:
		return &p.Tertiary
	case SlotAccent:
		return &p.Accent
	case SlotError:
		return &p.Error
	case SlotWarning:
		return &p.Warning
	case SlotSuccess:
		return &p.Success
	}
	return nil
}

// Validate reports every slot without a colour. A palette with all seven
// slots filled is structurally valid; hex syntax is handled leniently later.
func (p Palette) Validate() error {
	var missing []Slot
	for _, s := range Slots {
		c, _ := p.Get(s)
		if strings.TrimSpace(c.Hex) == "" {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("palette is missing colours for: %s", joinSlots(missing))
	}
	return nil
}

// WithSemanticDefaults returns a copy with any empty semantic slot filled by
// its standard colour.
func (p Palette) WithSemanticDefaults() Palette {
	for _, s := range SemanticSlots {
		if c, _ := p.Get(s); strings.TrimSpace(c.Hex) == "" {
			_ = p.Set(s, DefaultSemanticColour(s))
		}
	}
	return p
}

// ColourWithVariations is a base colour with its four derived variations.
type ColourWithVariations struct {
	Colour
	Variations []Variation `json:"variations"`
	Warnings   []Warning   `json:"warnings,omitempty"`
}

// Variation returns the variation for a band.
func (c ColourWithVariations) Variation(b Band) (Variation, bool) {
	return ShadeSet{Variations: c.Variations}.Get(b)
}

// PaletteWithVariations is the full generated palette. It is a pure projection
// of a Palette and its targets and is recomputed rather than stored.
type PaletteWithVariations struct {
	Primary   ColourWithVariations `json:"primary"`
	Secondary ColourWithVariations `json:"secondary"`
	Tertiary  ColourWithVariations `json:"tertiary"`
	Accent    ColourWithVariations `json:"accent"`
	Error     ColourWithVariations `json:"error"`
	Warning   ColourWithVariations `json:"warning"`
	Success   ColourWithVariations `json:"success"`
}

// Get returns the generated colour for a slot.
func (p PaletteWithVariations) Get(s Slot) (ColourWithVariations, bool) {
	if ptr := p.slot(s); ptr != nil {
		return *ptr, true
	}
	return ColourWithVariations{}, false
}

func (p *PaletteWithVariations) slot(s Slot) *ColourWithVariations {
	switch s {
	case SlotPrimary:
		return &p.Primary
	case SlotSecondary:
		return &p.Secondary
	case SlotTertiary:
		return &p.Tertiary
	case SlotAccent:
		return &p.Accent
	case SlotError:
		return &p.Error
	case SlotWarning:
		return &p.Warning
	case SlotSuccess:
		return &p.Success
	}
	return nil
}

// Warnings collects every slot's warnings in slot order.
func (p PaletteWithVariations) Warnings() []Warning {
	var out []Warning
	for _, s := range Slots {
		c, _ := p.Get(s)
		out = append(out, c.Warnings...)
	}
	return out
}

// All returns an iterator over the slots and their generated colours.
func (p PaletteWithVariations) All() func(func(Slot, ColourWithVariations) bool) {
	return func(yield func(Slot, ColourWithVariations) bool) {
		for _, s := range Slots {
			c, _ := p.Get(s)
			if !yield(s, c) {
				return
			}
		}
	}
}

// ToJSON converts the palette to indented JSON.
func (p PaletteWithVariations) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// PaletteTargets holds explicit band targets per slot. Slots without an entry
// are computed automatically.
type PaletteTargets map[Slot]BandTargets

// ErrInvalidPalette is returned when a base palette is structurally incomplete.
var ErrInvalidPalette = errors.New("invalid palette")

// AssemblePalette generates the four variations of every slot. The only error is
// a structurally invalid base palette; unmet contrast or distinctness goals are
// reported as warnings on the affected colour.
func AssemblePalette(base Palette, targets PaletteTargets, cfg ShadeConfig) (PaletteWithVariations, error) {
	if err := base.Validate(); err != nil {
		return PaletteWithVariations{}, fmt.Errorf("%w: %w", ErrInvalidPalette, err)
	}

	var out PaletteWithVariations
	for _, s := range Slots {
		c, _ := base.Get(s)
		name := c.Name
		if strings.TrimSpace(name) == "" {
			name = string(s)
		}

		set := GenerateShades(c.Hex, name, targets[s], cfg)
		*out.slot(s) = ColourWithVariations{
			Colour:     Colour{Name: name, Hex: normaliseOrKeep(c.Hex)},
			Variations: set.Variations,
			Warnings:   set.Warnings,
		}
	}
	return out, nil
}

// normaliseOrKeep lower-cases valid hex colours and leaves anything else as given.
func normaliseOrKeep(hex string) string {
	if n, err := NormaliseHex(hex); err == nil {
		return n
	}
	return hex
}

func joinSlots(slots []Slot) string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
