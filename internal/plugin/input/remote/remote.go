// Package remote provides an input plugin for fetching base palettes over HTTP.
package remote

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/plugin/input"
	"github.com/jmylchreest/tonal/internal/plugin/input/file"
	httputil "github.com/jmylchreest/tonal/internal/util/http"
)

// Plugin implements the input.Plugin interface for remote palette files.
type Plugin struct {
	url     string
	timeout time.Duration
}

// New creates a new remote input plugin.
func New() *Plugin {
	return &Plugin{timeout: httputil.DefaultTimeout}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "remote"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Fetch a base palette (JSON or slot=hex text) from a URL"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.url, "remote.url", "", "URL of the palette file")
	cmd.Flags().DurationVar(&p.timeout, "remote.timeout", httputil.DefaultTimeout, "HTTP timeout")
}

// SetURL sets the palette location.
func (p *Plugin) SetURL(u string) {
	p.url = u
}

// Validate checks if the plugin has all required inputs configured.
func (p *Plugin) Validate() error {
	if p.url == "" {
		return fmt.Errorf("must provide --remote.url")
	}

	parsed, err := url.Parse(p.url)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL must have a hostname")
	}

	if p.timeout <= 0 {
		return fmt.Errorf("--remote.timeout must be positive")
	}
	return nil
}

// Generate fetches and parses the remote palette, then applies overrides.
func (p *Plugin) Generate(ctx context.Context, opts input.GenerateOptions) (*colour.Palette, error) {
	content, err := httputil.Fetch(ctx, p.url, httputil.FetchOptions{
		Timeout: p.timeout,
		Headers: map[string]string{"Accept": "application/json, text/plain"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch palette: %w", err)
	}

	palette, err := file.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse palette from %s: %w", p.url, err)
	}

	if err := input.ApplyOverrides(palette, opts.ColourOverrides); err != nil {
		return nil, fmt.Errorf("failed to apply colour overrides: %w", err)
	}

	filled := palette.WithSemanticDefaults()
	return &filled, nil
}
