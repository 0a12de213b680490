package colour

// Semantic colour constants.
const (
	semanticSaturation = 0.75 // Vibrant enough to read as a status colour
	semanticLightness  = 0.45
)

// SemanticHues defines the standard hue values for semantic colours.
// Based on universal colour conventions.
var SemanticHues = map[Slot]float64{
	SlotError:   0,   // Red - errors, destructive actions
	SlotWarning: 45,  // Amber - warnings, caution
	SlotSuccess: 120, // Green - success, confirmation
}

// DefaultSemanticColour returns the standard colour for a semantic slot, used
// when a palette source only supplies brand colours. Non-semantic slots fall
// back to the error hue.
func DefaultSemanticColour(s Slot) Colour {
	hue := SemanticHues[s]
	rgb := HSLToRGB(HSL{H: hue, S: semanticSaturation, L: semanticLightness})
	return Colour{Name: string(s), Hex: rgb.Hex()}
}
