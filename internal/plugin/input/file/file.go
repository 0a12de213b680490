// Package file provides an input plugin for loading base palettes from files.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/plugin/input"
)

// Plugin implements the input.Plugin interface for file-based palette loading.
type Plugin struct {
	path string
}

// New creates a new file input plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "file"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Load a base palette from a JSON or slot=hex text file"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.path, "file.path", "", "Path to palette file (JSON or slot=hex text)")
}

// Validate checks if the plugin has all required inputs configured.
func (p *Plugin) Validate() error {
	if p.path == "" {
		return fmt.Errorf("must provide --file.path")
	}
	return nil
}

// SetPath sets the palette file location.
func (p *Plugin) SetPath(path string) {
	p.path = path
}

// Generate loads the palette file and applies any colour overrides on top.
func (p *Plugin) Generate(_ context.Context, opts input.GenerateOptions) (*colour.Palette, error) {
	data, err := os.ReadFile(p.path) // #nosec G304 - User-specified input file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	palette, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load palette file %s: %w", p.path, err)
	}

	if err := input.ApplyOverrides(palette, opts.ColourOverrides); err != nil {
		return nil, fmt.Errorf("failed to apply colour overrides: %w", err)
	}

	filled := palette.WithSemanticDefaults()
	return &filled, nil
}

// Parse reads a palette in any supported format: the JSON palette shape
// ({"primary": {"name": ..., "hex": ...}, ...}), a flat JSON object of
// slot to hex, or slot=hex text lines.
func Parse(data []byte) (*colour.Palette, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		return parseJSON([]byte(trimmed))
	}
	return parseTextFormat(trimmed)
}

// parseJSON accepts either the structured or the flat JSON form.
func parseJSON(data []byte) (*colour.Palette, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var palette colour.Palette
	for key, value := range raw {
		slot, err := colour.ParseSlot(key)
		if err != nil {
			return nil, err
		}

		var c colour.Colour
		var hex string
		switch {
		case json.Unmarshal(value, &hex) == nil:
			c = colour.Colour{Name: string(slot), Hex: hex}
		case json.Unmarshal(value, &c) == nil:
			if c.Name == "" {
				c.Name = string(slot)
			}
		default:
			return nil, fmt.Errorf("%s: expected a hex string or {\"name\", \"hex\"} object", slot)
		}

		norm, err := colour.NormaliseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", slot, err)
		}
		c.Hex = norm

		if err := palette.Set(slot, c); err != nil {
			return nil, err
		}
	}
	return &palette, nil
}

// parseTextFormat parses a simple text format palette file.
// Format: slot=hex [name], one per line; lines starting with "//" or ";" and
// blank lines are ignored.
func parseTextFormat(content string) (*colour.Palette, error) {
	var palette colour.Palette

	for lineNum, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, ";") {
			continue
		}

		slot, c, err := input.ParseColourSpec(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		if err := palette.Set(slot, c); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
	}

	return &palette, nil
}
