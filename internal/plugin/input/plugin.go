// Package input provides the interface and base types for input plugins.
package input

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
)

// GenerateOptions holds options passed to input plugins during generation.
type GenerateOptions struct {
	// Verbose enables verbose output
	Verbose bool

	// ColourOverrides are manual colour specifications (slot=hex)
	ColourOverrides []string
}

// Plugin represents an input plugin that supplies a base palette.
type Plugin interface {
	// Name returns the plugin's name (e.g., "manual", "file").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate builds the base palette from plugin-specific inputs.
	// Semantic slots the source leaves empty are filled with defaults;
	// brand slots are left for Palette.Validate to report.
	Generate(ctx context.Context, opts GenerateOptions) (*colour.Palette, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin has all required inputs configured.
	Validate() error
}

// Registry holds all registered input plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new input plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered plugins.
func (r *Registry) All() map[string]Plugin {
	// Return a copy to prevent external modification
	plugins := make(map[string]Plugin, len(r.plugins))
	for name, plugin := range r.plugins {
		plugins[name] = plugin
	}
	return plugins
}

// ParseColourSpec parses "slot=hex" or "slot=hex name" into a slot and colour.
// The hex is validated strictly and normalised; the name defaults to the slot.
func ParseColourSpec(spec string) (colour.Slot, colour.Colour, error) {
	slotName, value, ok := strings.Cut(spec, "=")
	if !ok {
		return "", colour.Colour{}, fmt.Errorf("invalid colour format '%s': expected 'slot=hex'", spec)
	}

	slot, err := colour.ParseSlot(slotName)
	if err != nil {
		return "", colour.Colour{}, err
	}

	fields := strings.Fields(value)
	if len(fields) == 0 {
		return "", colour.Colour{}, fmt.Errorf("missing hex colour for %s", slot)
	}

	hex, err := colour.NormaliseHex(fields[0])
	if err != nil {
		return "", colour.Colour{}, fmt.Errorf("%s: %w", slot, err)
	}

	name := string(slot)
	if len(fields) > 1 {
		name = strings.Join(fields[1:], " ")
	}
	return slot, colour.Colour{Name: name, Hex: hex}, nil
}

// ApplyOverrides sets every "slot=hex" spec on the palette, later specs
// replacing earlier ones.
func ApplyOverrides(p *colour.Palette, specs []string) error {
	for _, spec := range specs {
		slot, c, err := ParseColourSpec(spec)
		if err != nil {
			return err
		}
		if err := p.Set(slot, c); err != nil {
			return err
		}
	}
	return nil
}
