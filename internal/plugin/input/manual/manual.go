// Package manual provides an input plugin that builds a base palette from flags.
package manual

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/plugin/input"
)

// Plugin implements the input.Plugin interface with one hex flag per slot.
type Plugin struct {
	hexes map[colour.Slot]*string
}

// New creates a new manual input plugin.
func New() *Plugin {
	p := &Plugin{hexes: make(map[colour.Slot]*string, len(colour.Slots))}
	for _, s := range colour.Slots {
		p.hexes[s] = new(string)
	}
	return p
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "manual"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Build a base palette from --manual.<slot> hex flags"
}

// RegisterFlags registers one --manual.<slot> flag per palette slot.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	for _, s := range colour.Slots {
		usage := fmt.Sprintf("%s colour (hex)", s)
		if s.IsSemantic() {
			usage += ", defaults to the standard semantic colour"
		}
		cmd.Flags().StringVar(p.hexes[s], "manual."+string(s), "", usage)
	}
}

// SetHex sets the colour for a slot.
func (p *Plugin) SetHex(s colour.Slot, hex string) {
	if ptr, ok := p.hexes[s]; ok {
		*ptr = hex
	}
}

// Validate checks every supplied colour parses.
func (p *Plugin) Validate() error {
	var errs []error
	for _, s := range colour.Slots {
		if hex := *p.hexes[s]; hex != "" {
			if _, err := colour.ParseHex(hex); err != nil {
				errs = append(errs, fmt.Errorf("--manual.%s: %w", s, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Generate builds the palette from the flags and any colour overrides.
func (p *Plugin) Generate(_ context.Context, opts input.GenerateOptions) (*colour.Palette, error) {
	var palette colour.Palette
	for _, s := range colour.Slots {
		hex := *p.hexes[s]
		if hex == "" {
			continue
		}
		norm, err := colour.NormaliseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}
		if err := palette.Set(s, colour.Colour{Name: string(s), Hex: norm}); err != nil {
			return nil, err
		}
	}

	if err := input.ApplyOverrides(&palette, opts.ColourOverrides); err != nil {
		return nil, fmt.Errorf("failed to apply colour overrides: %w", err)
	}

	filled := palette.WithSemanticDefaults()
	return &filled, nil
}
